package utils

import (
	"context"
	"time"
)

const (
	// DefaultTimeout is the default timeout for database and cache operations
	DefaultTimeout = 10 * time.Second

	// LongTimeout is for catalog snapshots and other bulk reads
	LongTimeout = 30 * time.Second

	// ShortTimeout is for quick operations (cache lookups, pings)
	ShortTimeout = 2 * time.Second
)

// WithTimeout creates a context with default timeout
func WithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, DefaultTimeout)
}

// WithLongTimeout creates a context with long timeout for bulk reads
func WithLongTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, LongTimeout)
}

// WithShortTimeout creates a context with short timeout for quick operations
func WithShortTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, ShortTimeout)
}

// WithCustomTimeout creates a context with custom timeout duration.
// A non-positive duration returns a cancelable context without a deadline.
func WithCustomTimeout(parent context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, duration)
}
