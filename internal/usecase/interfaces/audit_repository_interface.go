package interfaces

import (
	"context"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
)

// IAuditRepository is the append-only workflow ledger. Append is the only
// write; entries are never mutated or removed.
type IAuditRepository interface {
	Append(ctx context.Context, ev entities.AuditEvent) (entities.AuditEvent, error)
	// List returns entries most-recent-first, optionally filtered by process
	// type and status, capped at limit.
	List(ctx context.Context, processType entities.AuditProcessType, status string, limit int) ([]entities.AuditEvent, error)
	ListByTimeRange(ctx context.Context, from, to time.Time) ([]entities.AuditEvent, error)
}
