// Package lifecycle holds shared start/stop constants for fx-managed
// components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infra components.
const DefaultTimeout = 10 * time.Second
