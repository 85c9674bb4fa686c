package review

import (
	"context"

	"github.com/barberhub/barberhub-api/internal/audit"
)

// AuditSink is satisfied by *audit.Dispatcher.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

// CacheInvalidator drops the public directory cache after a rating change.
// Satisfied by *cache.Directory, including a nil one.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}
