// Package lifecycle holds process start and stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown hooks.
const DefaultTimeout = 10 * time.Second
