package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditProcessType names the pipeline transition an audit event records.
type AuditProcessType string

const (
	ProcessDiscoveryToSOW    AuditProcessType = "discovery_to_sow"
	ProcessSOWToContract     AuditProcessType = "sow_to_contract"
	ProcessContractToPayment AuditProcessType = "contract_to_payment"
	ProcessPaymentToKickoff  AuditProcessType = "payment_to_kickoff"
)

// AuditAction is the specific automatic action taken.
type AuditAction string

const (
	ActionDiscoveryProcessed AuditAction = "discovery_call_processed"
	ActionSOWGenerated       AuditAction = "sow_generated"
	ActionContractGenerated  AuditAction = "contract_generated"
	ActionPaymentSetup       AuditAction = "payment_setup"
	ActionKickoffTriggered   AuditAction = "kickoff_triggered"
)

const AuditStatusCompleted = "completed"

// AuditPayload is the structured result attached to an event. Only the
// fields relevant to the action are set; Notes carries the free-form text.
type AuditPayload struct {
	OverallScore   int             `json:"overall_score,omitempty"`
	TotalCost      decimal.Decimal `json:"total_cost,omitempty"`
	ContractNumber string          `json:"contract_number,omitempty"`
	InvoiceNumber  string          `json:"invoice_number,omitempty"`
	ProjectCode    string          `json:"project_code,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// AuditEvent is one append-only ledger entry. Events reference entities by
// id only and are never updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - process_type + created_at serve the filtered, most-recent-first reads
type AuditEvent struct {
	ID          string           `json:"id"`
	ProcessType AuditProcessType `json:"process_type"`
	SourceID    string           `json:"source_id"`
	TargetID    string           `json:"target_id,omitempty"`
	Trigger     string           `json:"trigger"`
	Action      AuditAction      `json:"action"`
	Status      string           `json:"status"`
	Payload     AuditPayload     `json:"payload"`
	Actor       string           `json:"actor"`
	CreatedAt   time.Time        `json:"created_at"`
}
