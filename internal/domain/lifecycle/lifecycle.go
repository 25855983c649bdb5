// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds backend pings on start and graceful shutdown on stop.
const DefaultTimeout = 10 * time.Second
