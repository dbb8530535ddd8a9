package interfaces

import (
	"context"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
)

type IKickoffRepository interface {
	Create(ctx context.Context, k entities.KickoffRecord) (entities.KickoffRecord, error)
	GetByID(ctx context.Context, id string) (entities.KickoffRecord, error)
	GetByContractID(ctx context.Context, contractID string) (entities.KickoffRecord, error)
}
