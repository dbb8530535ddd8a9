package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultPaymentProvider = "mercadopago"
	defaultCurrency        = "USD"
	firstMilestoneName     = "Project Start"
	invoiceDueDays         = 7
)

// IPaymentUseCase configures milestone invoicing for executed contracts and
// records incoming milestone payments.
type IPaymentUseCase interface {
	SetupPayment(ctx context.Context, contractID string) (entities.PaymentConfiguration, error)
	RecordMilestonePayment(ctx context.Context, configID, milestoneName string, payload json.RawMessage) (entities.PaymentTransaction, error)
	ListTransactions(ctx context.Context, configID string) ([]entities.PaymentTransaction, error)
}

type PaymentUseCase struct {
	paymentRepo  interfaces.IPaymentRepository
	contractRepo interfaces.IContractRepository
	auditRepo    interfaces.IAuditRepository
	seqRepo      interfaces.ISequenceRepository
	gateway      interfaces.IPaymentGateway
	clock        interfaces.IClock
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	paymentRepo interfaces.IPaymentRepository,
	contractRepo interfaces.IContractRepository,
	auditRepo interfaces.IAuditRepository,
	seqRepo interfaces.ISequenceRepository,
	gateway interfaces.IPaymentGateway,
	clock interfaces.IClock,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
		auditRepo:    auditRepo,
		seqRepo:      seqRepo,
		gateway:      gateway,
		clock:        clock,
	}
}

// SetupPayment pins the contract's milestone schedule into a payment
// configuration and immediately issues the Project Start invoice, due seven
// days out. Remaining milestones are invoiced by later external triggers.
func (u *PaymentUseCase) SetupPayment(ctx context.Context, contractID string) (entities.PaymentConfiguration, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.PaymentConfiguration{}, ErrInvalidContractID
	}

	contract, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return entities.PaymentConfiguration{}, err
	}
	if contract.ID == "" {
		return entities.PaymentConfiguration{}, NewNotFoundError("contract", contractID)
	}
	if contract.Status != entities.ContractFullyExecuted {
		return entities.PaymentConfiguration{}, NewStateConflictError("contract", contractID, string(contract.Status), string(entities.ContractFullyExecuted))
	}

	if existing, err := u.paymentRepo.GetConfigurationByContractID(ctx, contractID); err != nil {
		return entities.PaymentConfiguration{}, err
	} else if existing.ID != "" {
		return entities.PaymentConfiguration{}, ErrPaymentSetupExists
	}

	seq, err := u.seqRepo.Next(ctx, "payment_configs")
	if err != nil {
		return entities.PaymentConfiguration{}, err
	}

	now := u.clock.Now().UTC()
	cfg := entities.PaymentConfiguration{
		ID:         uuid.NewString(),
		ContractID: contract.ID,
		Sequence:   seq,

		Provider:    defaultPaymentProvider,
		PaymentType: "milestone_based",
		TotalAmount: contract.TotalValue,
		Currency:    defaultCurrency,
		Schedule:    contract.Schedule,

		AutoInvoiceEnabled: true,
		LateFeeEnabled:     true,

		CreatedAt: now,
	}

	created, err := u.paymentRepo.CreateConfiguration(ctx, cfg)
	if err != nil {
		return entities.PaymentConfiguration{}, err
	}

	invoiceNumber := fmt.Sprintf("INV-%s-%04d", now.Format("20060102"), created.Sequence)
	for _, milestone := range created.Schedule {
		if milestone.Name != firstMilestoneName {
			continue
		}
		_, err = u.paymentRepo.CreateTransaction(ctx, entities.PaymentTransaction{
			ID:                   uuid.NewString(),
			ConfigID:             created.ID,
			Type:                 entities.TransactionInvoice,
			Amount:               milestone.Amount,
			InvoiceNumber:        invoiceNumber,
			InvoiceDueDate:       now.AddDate(0, 0, invoiceDueDays),
			MilestoneDescription: milestone.Description,
			PaymentMethod:        "credit_card",
			Status:               entities.TransactionPending,
			CreatedAt:            now,
		})
		if err != nil {
			return entities.PaymentConfiguration{}, err
		}
		log.Printf("[payment][usecase] invoice issued config_id=%s invoice=%s amount=%s",
			created.ID, invoiceNumber, milestone.Amount.StringFixed(2))
	}

	_, err = u.auditRepo.Append(ctx, entities.AuditEvent{
		ID:          uuid.NewString(),
		ProcessType: entities.ProcessContractToPayment,
		SourceID:    contract.ID,
		TargetID:    created.ID,
		Trigger:     "automatic_trigger",
		Action:      entities.ActionPaymentSetup,
		Status:      entities.AuditStatusCompleted,
		Payload: entities.AuditPayload{
			ContractNumber: contract.ContractNumber,
			InvoiceNumber:  invoiceNumber,
			TotalCost:      contract.TotalValue,
			Notes:          "payment processing configured for executed contract",
		},
		Actor:     "system",
		CreatedAt: now,
	})
	if err != nil {
		return entities.PaymentConfiguration{}, err
	}
	return created, nil
}

// RecordMilestonePayment collects one milestone through the payment gateway
// and persists the completed payment transaction. The first completed
// payment is what unblocks project kickoff.
func (u *PaymentUseCase) RecordMilestonePayment(ctx context.Context, configID, milestoneName string, payload json.RawMessage) (entities.PaymentTransaction, error) {
	configID = strings.TrimSpace(configID)
	if configID == "" {
		return entities.PaymentTransaction{}, ErrInvalidConfigID
	}

	cfg, err := u.paymentRepo.GetConfigurationByID(ctx, configID)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if cfg.ID == "" {
		return entities.PaymentTransaction{}, NewNotFoundError("payment configuration", configID)
	}

	var milestone *entities.PaymentMilestone
	for i := range cfg.Schedule {
		if cfg.Schedule[i].Name == milestoneName {
			milestone = &cfg.Schedule[i]
			break
		}
	}
	if milestone == nil {
		return entities.PaymentTransaction{}, NewValidationError("milestone", "is not part of the payment schedule")
	}

	if len(payload) == 0 || !json.Valid(payload) {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		// The configuration is the source of truth for the amount.
		amount, _ := milestone.Amount.Float64()
		reqMap["transaction_amount"] = amount
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = cfg.ContractID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Milestone %q for contract %s", milestone.Name, cfg.ContractID)
		}
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	log.Printf("[payment][usecase] gateway payment collected config_id=%s provider_payment_id=%s provider_status=%s",
		cfg.ID, providerPaymentID, providerStatus)

	now := u.clock.Now().UTC()
	tx := entities.PaymentTransaction{
		ID:                   uuid.NewString(),
		ConfigID:             cfg.ID,
		Type:                 entities.TransactionPayment,
		Amount:               milestone.Amount,
		MilestoneDescription: milestone.Description,
		PaymentMethod:        "credit_card",
		ProviderPaymentID:    providerPaymentID,
		Status:               entities.TransactionCompleted,
		CreatedAt:            now,
	}
	return u.paymentRepo.CreateTransaction(ctx, tx)
}

func (u *PaymentUseCase) ListTransactions(ctx context.Context, configID string) ([]entities.PaymentTransaction, error) {
	configID = strings.TrimSpace(configID)
	if configID == "" {
		return nil, ErrInvalidConfigID
	}
	return u.paymentRepo.ListTransactionsByConfigID(ctx, configID)
}
