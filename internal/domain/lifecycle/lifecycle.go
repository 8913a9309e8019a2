// Package lifecycle holds shared constants for process start/stop management.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of deliveries.
const DefaultTimeout = 10 * time.Second
