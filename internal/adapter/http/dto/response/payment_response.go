package response

import (
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentConfigurationResponse struct {
	ID         string `json:"id"`
	ContractID string `json:"contract_id"`

	Provider    string                      `json:"provider"`
	PaymentType string                      `json:"payment_type"`
	TotalAmount decimal.Decimal             `json:"total_amount"`
	Currency    string                      `json:"currency"`
	Schedule    []entities.PaymentMilestone `json:"payment_schedule"`

	AutoInvoiceEnabled bool `json:"auto_invoice_enabled"`
	LateFeeEnabled     bool `json:"late_fee_enabled"`

	CreatedAt time.Time `json:"created_at"`
}

func FromPaymentConfiguration(cfg entities.PaymentConfiguration) PaymentConfigurationResponse {
	return PaymentConfigurationResponse{
		ID:         cfg.ID,
		ContractID: cfg.ContractID,

		Provider:    cfg.Provider,
		PaymentType: cfg.PaymentType,
		TotalAmount: cfg.TotalAmount,
		Currency:    cfg.Currency,
		Schedule:    cfg.Schedule,

		AutoInvoiceEnabled: cfg.AutoInvoiceEnabled,
		LateFeeEnabled:     cfg.LateFeeEnabled,

		CreatedAt: cfg.CreatedAt,
	}
}

type PaymentTransactionResponse struct {
	ID       string `json:"id"`
	ConfigID string `json:"config_id"`

	Type                 string          `json:"type"`
	Amount               decimal.Decimal `json:"amount"`
	InvoiceNumber        string          `json:"invoice_number,omitempty"`
	InvoiceDueDate       *time.Time      `json:"invoice_due_date,omitempty"`
	MilestoneDescription string          `json:"milestone_description,omitempty"`
	ProviderPaymentID    string          `json:"provider_payment_id,omitempty"`
	Status               string          `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func FromPaymentTransaction(tx entities.PaymentTransaction) PaymentTransactionResponse {
	resp := PaymentTransactionResponse{
		ID:       tx.ID,
		ConfigID: tx.ConfigID,

		Type:                 string(tx.Type),
		Amount:               tx.Amount,
		InvoiceNumber:        tx.InvoiceNumber,
		MilestoneDescription: tx.MilestoneDescription,
		ProviderPaymentID:    tx.ProviderPaymentID,
		Status:               string(tx.Status),

		CreatedAt: tx.CreatedAt,
	}
	if !tx.InvoiceDueDate.IsZero() {
		due := tx.InvoiceDueDate
		resp.InvoiceDueDate = &due
	}
	return resp
}

func FromPaymentTransactions(txs []entities.PaymentTransaction) []PaymentTransactionResponse {
	out := make([]PaymentTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromPaymentTransaction(tx))
	}
	return out
}
