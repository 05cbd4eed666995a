// Package lifecycle holds the timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 10 * time.Second
