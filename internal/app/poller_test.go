package app

import (
	"testing"
	"time"
)

func TestCalculateBackoff(t *testing.T) {
	tests := []struct {
		name     string
		failures int
		base     time.Duration
		want     time.Duration
	}{
		{"zero failures", 0, defaultPollInterval, defaultPollInterval},
		{"negative failures", -2, defaultPollInterval, defaultPollInterval},
		{"one failure", 1, defaultPollInterval, 10 * time.Second},
		{"two failures", 2, defaultPollInterval, 20 * time.Second},
		{"three failures capped", 3, defaultPollInterval, maxBackoff}, // 40s before the cap
		{"short base doubles", 2, time.Second, 4 * time.Second},
		{"many failures capped", 12, time.Second, maxBackoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, tt.base)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, tt.base, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_NeverExceedsCap(t *testing.T) {
	for failures := 0; failures <= 24; failures++ {
		if got := calculateBackoff(failures, defaultPollInterval); got > maxBackoff {
			t.Errorf("calculateBackoff(%d) = %v, exceeds cap %v", failures, got, maxBackoff)
		}
	}
}
