package interfaces

import (
	"context"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
)

// IContractRepository persists generated contracts. Status transitions use
// the same compare-and-set convention as proposals; the signature timestamps
// are written together with the status they belong to.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.Contract, error)
	UpdateStatusIfCurrent(ctx context.Context, id string, expected, next entities.ContractStatus, at time.Time) (entities.Contract, error)
	SetSignatureEnvelope(ctx context.Context, id, envelopeID string) error
	ListByCreatedRange(ctx context.Context, from, to time.Time) ([]entities.Contract, error)
}
