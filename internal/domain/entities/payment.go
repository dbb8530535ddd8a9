package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionInvoice TransactionType = "invoice"
	TransactionPayment TransactionType = "payment"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

// PaymentConfiguration is created once a contract is fully executed. It
// pins the milestone schedule the invoices will be issued against.
//
// Storage model (DynamoDB):
//   - PK: id
//   - contract_id carries the ownership link
type PaymentConfiguration struct {
	ID         string `json:"id"`
	ContractID string `json:"contract_id"`
	Sequence   int    `json:"sequence"`

	Provider    string             `json:"provider"`
	PaymentType string             `json:"payment_type"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Currency    string             `json:"currency"`
	Schedule    []PaymentMilestone `json:"payment_schedule"`

	AutoInvoiceEnabled bool `json:"auto_invoice_enabled"`
	LateFeeEnabled     bool `json:"late_fee_enabled"`

	CreatedAt time.Time `json:"created_at"`
}

// PaymentTransaction is one invoice or received payment under a
// configuration.
//
// Storage model (DynamoDB):
//   - PK: id
//   - config_id carries the ownership link
type PaymentTransaction struct {
	ID       string `json:"id"`
	ConfigID string `json:"config_id"`

	Type                 TransactionType   `json:"type"`
	Amount               decimal.Decimal   `json:"amount"`
	InvoiceNumber        string            `json:"invoice_number,omitempty"`
	InvoiceDueDate       time.Time         `json:"invoice_due_date,omitempty"`
	MilestoneDescription string            `json:"milestone_description,omitempty"`
	PaymentMethod        string            `json:"payment_method,omitempty"`
	ProviderPaymentID    string            `json:"provider_payment_id,omitempty"`
	Status               TransactionStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
