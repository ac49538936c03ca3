// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of managed
// components such as the database pool and the HTTP server.
const DefaultTimeout = 10 * time.Second
