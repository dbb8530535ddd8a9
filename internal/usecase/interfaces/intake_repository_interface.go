package interfaces

import (
	"context"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
)

// IIntakeRepository persists scored discovery-call records. Intakes are
// write-once: the qualification snapshot is stored at create time and the
// record is never updated afterwards.
type IIntakeRepository interface {
	Create(ctx context.Context, rec entities.IntakeRecord) (entities.IntakeRecord, error)
	GetByID(ctx context.Context, id string) (entities.IntakeRecord, error)
	ListByCallDateRange(ctx context.Context, from, to time.Time) ([]entities.IntakeRecord, error)
}
