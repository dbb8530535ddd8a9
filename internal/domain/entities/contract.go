package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractDraft            ContractStatus = "draft"
	ContractReview           ContractStatus = "review"
	ContractSentForSignature ContractStatus = "sent_for_signature"
	ContractPartiallySigned  ContractStatus = "partially_signed"
	ContractFullyExecuted    ContractStatus = "fully_executed"
	ContractExpired          ContractStatus = "expired"
	ContractCancelled        ContractStatus = "cancelled"
)

// ContractTemplate is read-only reference data: the agreement body with
// {{PLACEHOLDER}} tokens plus the legal terms merged into every contract
// rendered from it.
type ContractTemplate struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Body                   string `json:"body"`
	GoverningLaw           string `json:"governing_law"`
	LiabilityCapPercentage int    `json:"liability_cap_percentage"`
	WarrantyPeriodMonths   int    `json:"warranty_period_months"`
}

// Contract is the signed-ready agreement generated from an approved
// proposal. Content is the fully rendered document; ContentDigest is the
// sha256 hex of that text, so any re-render from identical inputs must
// reproduce it byte for byte.
//
// Storage model (DynamoDB):
//   - PK: id
//   - proposal_id carries the one-to-one ownership link
type Contract struct {
	ID         string `json:"id"`
	ProposalID string `json:"proposal_id"`
	TemplateID string `json:"template_id"`
	Sequence   int    `json:"sequence"`

	ContractNumber string `json:"contract_number"`
	Title          string `json:"title"`

	ClientLegalName       string `json:"client_legal_name"`
	ClientSignatoryName   string `json:"client_signatory_name"`
	ClientSignatoryTitle  string `json:"client_signatory_title"`
	ClientSignatoryEmail  string `json:"client_signatory_email"`
	ProviderSignatoryName string `json:"provider_signatory_name"`
	ProviderSignatoryTitle string `json:"provider_signatory_title"`

	TotalValue decimal.Decimal    `json:"total_value"`
	Schedule   []PaymentMilestone `json:"payment_schedule"`

	ProjectStart       time.Time `json:"project_start_date"`
	ProjectEnd         time.Time `json:"project_end_date"`
	EffectiveDate      time.Time `json:"contract_effective_date"`
	ExpirationDate     time.Time `json:"contract_expiration_date"`
	SentForSignatureAt time.Time `json:"sent_for_signature_at,omitempty"`
	FullyExecutedAt    time.Time `json:"fully_executed_at,omitempty"`

	Content       string `json:"content"`
	ContentDigest string `json:"content_digest"`

	SignatureEnvelopeID string `json:"signature_envelope_id,omitempty"`

	Status    ContractStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
