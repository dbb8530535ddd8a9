package interfaces

import (
	"context"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
)

// IProposalRepository persists statements of work.
//
// UpdateStatusIfCurrent is the compare-and-set primitive that serializes
// concurrent transitions on one proposal: the update applies only while the
// stored status still equals expected, and returns the zero value when the
// condition fails (the caller maps that to a state conflict).
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	GetByIntakeID(ctx context.Context, intakeID string) (entities.Proposal, error)
	UpdateStatusIfCurrent(ctx context.Context, id string, expected, next entities.ProposalStatus) (entities.Proposal, error)
	ListByCreatedRange(ctx context.Context, from, to time.Time) ([]entities.Proposal, error)
}
