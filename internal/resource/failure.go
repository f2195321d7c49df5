package resource

import "strings"

// Failure is the single error shape stored in containers. The fetch
// operation resolves whatever it caught into a Failure exactly once;
// nothing downstream re-inspects raw errors.
type Failure struct {
	Message string
	TraceID string
}

// NewFailure builds a Failure, substituting fallback when message is blank.
func NewFailure(message, traceID, fallback string) Failure {
	message = strings.TrimSpace(message)
	if message == "" {
		message = fallback
	}
	return Failure{Message: message, TraceID: traceID}
}
