package response

import (
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
)

type ProposalResponse struct {
	ID       string `json:"id"`
	IntakeID string `json:"intake_id"`

	Content       entities.ProposalContent    `json:"content"`
	Services      []entities.ServiceSelection `json:"services"`
	Pricing       entities.PricingBreakdown   `json:"pricing"`
	Phases        []entities.ProposalPhase    `json:"phases"`
	Schedule      []entities.PaymentMilestone `json:"payment_schedule"`
	TimelineWeeks int                         `json:"timeline_weeks"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:       p.ID,
		IntakeID: p.IntakeID,

		Content:       p.Content,
		Services:      p.Services,
		Pricing:       p.Pricing,
		Phases:        p.Phases,
		Schedule:      p.Schedule,
		TimelineWeeks: p.TimelineWeeks,

		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		ExpiresAt: p.ExpiresAt,
	}
}
