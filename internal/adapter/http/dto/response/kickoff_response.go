package response

import (
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
)

type KickoffResponse struct {
	ID         string `json:"id"`
	ContractID string `json:"contract_id"`
	TemplateID string `json:"template_id"`

	ProjectCode    string    `json:"project_code"`
	ProjectName    string    `json:"project_name"`
	ProjectManager string    `json:"project_manager"`
	ScheduledDate  time.Time `json:"kickoff_scheduled_date"`
	Deliverables   []string  `json:"kickoff_deliverables"`

	CreatedAt time.Time `json:"created_at"`
}

func FromKickoff(k entities.KickoffRecord) KickoffResponse {
	return KickoffResponse{
		ID:         k.ID,
		ContractID: k.ContractID,
		TemplateID: k.TemplateID,

		ProjectCode:    k.ProjectCode,
		ProjectName:    k.ProjectName,
		ProjectManager: k.ProjectManager,
		ScheduledDate:  k.ScheduledDate,
		Deliverables:   k.Deliverables,

		CreatedAt: k.CreatedAt,
	}
}

// KickoffDeferredResponse is returned when the trigger ran but no completed
// payment exists yet, so no kickoff was created.
type KickoffDeferredResponse struct {
	ContractID string `json:"contract_id"`
	Triggered  bool   `json:"triggered"`
	Reason     string `json:"reason"`
}
