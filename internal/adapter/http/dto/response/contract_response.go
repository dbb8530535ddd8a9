package response

import (
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ContractResponse struct {
	ID         string `json:"id"`
	ProposalID string `json:"proposal_id"`
	TemplateID string `json:"template_id"`

	ContractNumber string `json:"contract_number"`
	Title          string `json:"title"`

	ClientLegalName      string `json:"client_legal_name"`
	ClientSignatoryName  string `json:"client_signatory_name"`
	ClientSignatoryEmail string `json:"client_signatory_email"`

	TotalValue decimal.Decimal             `json:"total_value"`
	Schedule   []entities.PaymentMilestone `json:"payment_schedule"`

	ProjectStart   time.Time `json:"project_start_date"`
	ProjectEnd     time.Time `json:"project_end_date"`
	EffectiveDate  time.Time `json:"contract_effective_date"`
	ExpirationDate time.Time `json:"contract_expiration_date"`

	Content       string `json:"content"`
	ContentDigest string `json:"content_digest"`

	SignatureEnvelopeID string `json:"signature_envelope_id,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:         c.ID,
		ProposalID: c.ProposalID,
		TemplateID: c.TemplateID,

		ContractNumber: c.ContractNumber,
		Title:          c.Title,

		ClientLegalName:      c.ClientLegalName,
		ClientSignatoryName:  c.ClientSignatoryName,
		ClientSignatoryEmail: c.ClientSignatoryEmail,

		TotalValue: c.TotalValue,
		Schedule:   c.Schedule,

		ProjectStart:   c.ProjectStart,
		ProjectEnd:     c.ProjectEnd,
		EffectiveDate:  c.EffectiveDate,
		ExpirationDate: c.ExpirationDate,

		Content:       c.Content,
		ContentDigest: c.ContentDigest,

		SignatureEnvelopeID: c.SignatureEnvelopeID,

		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
