// Package forgeline provides the HTTP client for the Forgeline ERP API.
//
// # Overview
//
// Every Forgeline endpoint responds with the same JSON envelope:
//
//	{ "success": bool, "message": string, "data": T,
//	  "pagination": {"page", "limit", "totalRecords", "totalPages"} }
//
// The client decodes the envelope once, in roundTrip, and hands callers the
// typed data payload plus the pagination block for list endpoints. Failures
// of every kind collapse into a single error value per call:
//
//   - server-reported failures (non-2xx, or 2xx with success=false) become
//     *APIError carrying the server message and trace id
//   - transport and decode failures stay wrapped stdlib errors
//
// Callers never re-inspect response bodies; the fetch-operation layer
// normalizes the error into a display message exactly once.
//
// # Endpoints
//
//   - GET  /api/status                                   server status
//   - GET  /api/boms                                     BOM catalog (paginated)
//   - GET  /api/boms/:id/details                         BOM detail (flattened client-side)
//   - GET  /api/boms/:id/readiness                       production readiness + bottlenecks
//   - GET  /api/inventory-allocations                    allocations (paginated)
//   - POST /api/inventory-allocations/allocate/:orderId  run allocation
//   - GET  /api/orders                                   outbound orders (paginated)
//   - POST /api/orders/:orderId/fulfillment/confirm      confirm fulfillment
//   - GET  /api/pricing                                  pricing records (paginated)
//   - GET  /api/products                                 product/SKU catalog (paginated)
//   - GET  /api/compliance-records[/:id]                 compliance records
//
// List endpoints accept ListQuery, flattened into query-string parameters
// (page, limit, sortBy, sortDir, search, plus resource filters).
//
// Monetary and quantity fields use shopspring decimals; allocation math and
// cost variance are computed server-side and must round-trip exactly.
//
// # Design
//
// The client is deliberately minimal: one HTTP call per method, a 5 second
// timeout, context on every call, no retries and no caching. Refresh
// cadence and failure backoff belong to the poller; per-dispatch failure
// handling belongs to the state containers.
package forgeline
