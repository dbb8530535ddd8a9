package interfaces

import (
	"context"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
)

// IServiceCatalogRepository reads the priced service catalog. The catalog is
// owned externally; the pipeline only ever lists active entries.
type IServiceCatalogRepository interface {
	ListActive(ctx context.Context) ([]entities.ServiceCatalogEntry, error)
}

// ITemplateRepository reads the contract and kickoff templates, both
// externally owned reference data.
type ITemplateRepository interface {
	GetContractTemplate(ctx context.Context, id string) (entities.ContractTemplate, error)
	GetKickoffTemplateByTier(ctx context.Context, tier entities.KickoffTemplateTier) (entities.KickoffTemplate, error)
}

// ISequenceRepository issues monotonically increasing ordinals per named
// counter. Human-facing codes (contract numbers, invoice numbers, project
// codes) are derived from these instead of uuids.
type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int, error)
}
