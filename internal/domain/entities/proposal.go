package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus is the statement-of-work lifecycle. Only an approved
// proposal may spawn a contract; Expired is applied lazily when a transition
// observes the expiry timestamp has passed.
type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "draft"
	ProposalReview   ProposalStatus = "review"
	ProposalSent     ProposalStatus = "sent"
	ProposalApproved ProposalStatus = "approved"
	ProposalRejected ProposalStatus = "rejected"
	ProposalExpired  ProposalStatus = "expired"
)

// PaymentMilestone is one named percentage-of-total checkpoint. Percentages
// across a schedule sum to 100.
type PaymentMilestone struct {
	Name        string          `json:"name"`
	Percentage  decimal.Decimal `json:"percentage"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ProposalPhase is one entry of the phased delivery plan.
type ProposalPhase struct {
	Phase         int    `json:"phase"`
	Name          string `json:"name"`
	DurationWeeks int    `json:"duration_weeks"`
	Description   string `json:"description"`
}

// ProposalContent holds the generated narrative sections of the SOW.
type ProposalContent struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	Objectives           string `json:"objectives"`
	SuccessCriteria      string `json:"success_criteria"`
	Deliverables         string `json:"deliverables"`
	Exclusions           string `json:"exclusions"`
	Assumptions          string `json:"assumptions"`
	ChangeRequestProcess string `json:"change_request_process"`
	AcceptanceCriteria   string `json:"acceptance_criteria"`
}

// Proposal is the priced statement of work generated from a qualified
// intake. Exactly one proposal exists per intake.
//
// Storage model (DynamoDB):
//   - PK: id
//   - intake_id carries the one-to-one ownership link
type Proposal struct {
	ID       string `json:"id"`
	IntakeID string `json:"intake_id"`
	Sequence int    `json:"sequence"`

	Content       ProposalContent    `json:"content"`
	Services      []ServiceSelection `json:"services"`
	Pricing       PricingBreakdown   `json:"pricing"`
	Phases        []ProposalPhase    `json:"phases"`
	Schedule      []PaymentMilestone `json:"payment_schedule"`
	TimelineWeeks int                `json:"timeline_weeks"`

	Status    ProposalStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// ExpiredAt reports whether the proposal's validity window has closed at the
// given instant. Terminal statuses never expire.
func (p Proposal) ExpiredAt(now time.Time) bool {
	switch p.Status {
	case ProposalApproved, ProposalRejected, ProposalExpired:
		return false
	}
	return now.After(p.ExpiresAt)
}
