// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and shutdown of long-lived components.
const DefaultTimeout = 30 * time.Second
