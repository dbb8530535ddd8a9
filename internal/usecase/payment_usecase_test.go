package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	mock_interfaces "github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	paymentRepo  *mock_interfaces.MockIPaymentRepository
	contractRepo *mock_interfaces.MockIContractRepository
	auditRepo    *mock_interfaces.MockIAuditRepository
	seqRepo      *mock_interfaces.MockISequenceRepository
	gateway      *mock_interfaces.MockIPaymentGateway
	clock        *mock_interfaces.MockIClock
}

func newPaymentUseCase(ctrl *gomock.Controller) (*PaymentUseCase, paymentMocks) {
	m := paymentMocks{
		paymentRepo:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		contractRepo: mock_interfaces.NewMockIContractRepository(ctrl),
		auditRepo:    mock_interfaces.NewMockIAuditRepository(ctrl),
		seqRepo:      mock_interfaces.NewMockISequenceRepository(ctrl),
		gateway:      mock_interfaces.NewMockIPaymentGateway(ctrl),
		clock:        mock_interfaces.NewMockIClock(ctrl),
	}
	u := NewPaymentUseCase(m.paymentRepo, m.contractRepo, m.auditRepo, m.seqRepo, m.gateway, m.clock)
	return u, m
}

func executedContractFixture() entities.Contract {
	return entities.Contract{
		ID:             "contract-1",
		ContractNumber: "ENT-202603-0042",
		TotalValue:     decimal.NewFromInt(80000),
		Schedule:       BuildPaymentSchedule(decimal.NewFromInt(80000)),
		Status:         entities.ContractFullyExecuted,
	}
}

func TestSetupPayment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 21, 10, 0, 0, 0, time.UTC)

	t.Run("invalid contract id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, _ := newPaymentUseCase(ctrl)
		_, err := u.SetupPayment(ctx, " ")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("contract not fully executed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newPaymentUseCase(ctrl)
		contract := executedContractFixture()
		contract.Status = entities.ContractSentForSignature
		m.contractRepo.EXPECT().GetByID(ctx, "contract-1").Return(contract, nil)

		_, err := u.SetupPayment(ctx, "contract-1")
		if !IsStateConflict(err) {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})

	t.Run("one configuration per contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newPaymentUseCase(ctrl)
		m.contractRepo.EXPECT().GetByID(ctx, "contract-1").Return(executedContractFixture(), nil)
		m.paymentRepo.EXPECT().GetConfigurationByContractID(ctx, "contract-1").Return(entities.PaymentConfiguration{ID: "cfg-1"}, nil)

		_, err := u.SetupPayment(ctx, "contract-1")
		if !errors.Is(err, ErrPaymentSetupExists) {
			t.Fatalf("expected ErrPaymentSetupExists, got %v", err)
		}
	})

	t.Run("setup issues the first invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newPaymentUseCase(ctrl)
		contract := executedContractFixture()

		m.contractRepo.EXPECT().GetByID(ctx, "contract-1").Return(contract, nil)
		m.paymentRepo.EXPECT().GetConfigurationByContractID(ctx, "contract-1").Return(entities.PaymentConfiguration{}, nil)
		m.seqRepo.EXPECT().Next(ctx, "payment_configs").Return(7, nil)
		m.clock.EXPECT().Now().Return(now)

		m.paymentRepo.EXPECT().
			CreateConfiguration(ctx, gomock.AssignableToTypeOf(entities.PaymentConfiguration{})).
			DoAndReturn(func(_ context.Context, cfg entities.PaymentConfiguration) (entities.PaymentConfiguration, error) {
				if cfg.ContractID != "contract-1" {
					t.Fatalf("expected contract link, got %s", cfg.ContractID)
				}
				if !cfg.TotalAmount.Equal(contract.TotalValue) {
					t.Fatalf("expected total %s, got %s", contract.TotalValue, cfg.TotalAmount)
				}
				if len(cfg.Schedule) != len(contract.Schedule) {
					t.Fatalf("expected the contract schedule pinned, got %d milestones", len(cfg.Schedule))
				}
				if !cfg.AutoInvoiceEnabled {
					t.Fatalf("expected auto invoicing enabled")
				}
				return cfg, nil
			})

		m.paymentRepo.EXPECT().
			CreateTransaction(ctx, gomock.AssignableToTypeOf(entities.PaymentTransaction{})).
			DoAndReturn(func(_ context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
				if tx.Type != entities.TransactionInvoice {
					t.Fatalf("expected invoice transaction, got %s", tx.Type)
				}
				if tx.Status != entities.TransactionPending {
					t.Fatalf("expected pending invoice, got %s", tx.Status)
				}
				if tx.InvoiceNumber != "INV-20260321-0007" {
					t.Fatalf("expected invoice number INV-20260321-0007, got %s", tx.InvoiceNumber)
				}
				// Thirty percent of 80000.
				if !tx.Amount.Equal(decimal.NewFromInt(24000)) {
					t.Fatalf("expected amount 24000, got %s", tx.Amount)
				}
				if !tx.InvoiceDueDate.Equal(now.AddDate(0, 0, 7)) {
					t.Fatalf("expected due date 7 days out, got %s", tx.InvoiceDueDate)
				}
				return tx, nil
			})

		m.auditRepo.EXPECT().
			Append(ctx, gomock.AssignableToTypeOf(entities.AuditEvent{})).
			DoAndReturn(func(_ context.Context, ev entities.AuditEvent) (entities.AuditEvent, error) {
				if ev.Action != entities.ActionPaymentSetup {
					t.Fatalf("expected action payment_setup, got %s", ev.Action)
				}
				if ev.Payload.InvoiceNumber != "INV-20260321-0007" {
					t.Fatalf("expected invoice number in payload, got %s", ev.Payload.InvoiceNumber)
				}
				return ev, nil
			})

		created, err := u.SetupPayment(ctx, "contract-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Provider != "mercadopago" {
			t.Fatalf("expected mercadopago provider, got %s", created.Provider)
		}
		if created.Currency != "USD" {
			t.Fatalf("expected USD, got %s", created.Currency)
		}
	})
}

func TestRecordMilestonePayment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 25, 10, 0, 0, 0, time.UTC)

	configFixture := func() entities.PaymentConfiguration {
		return entities.PaymentConfiguration{
			ID:         "cfg-1",
			ContractID: "contract-1",
			Schedule:   BuildPaymentSchedule(decimal.NewFromInt(80000)),
		}
	}

	t.Run("unknown milestone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newPaymentUseCase(ctrl)
		m.paymentRepo.EXPECT().GetConfigurationByID(ctx, "cfg-1").Return(configFixture(), nil)

		_, err := u.RecordMilestonePayment(ctx, "cfg-1", "Bonus Round", nil)
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("configuration not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newPaymentUseCase(ctrl)
		m.paymentRepo.EXPECT().GetConfigurationByID(ctx, "missing").Return(entities.PaymentConfiguration{}, nil)

		_, err := u.RecordMilestonePayment(ctx, "missing", "Project Start", nil)
		if !IsNotFound(err) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("payment collected through the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newPaymentUseCase(ctrl)
		m.paymentRepo.EXPECT().GetConfigurationByID(ctx, "cfg-1").Return(configFixture(), nil)

		m.gateway.EXPECT().
			CreatePayment(ctx, gomock.AssignableToTypeOf(json.RawMessage{})).
			DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("expected valid gateway payload: %v", err)
				}
				if req["transaction_amount"] != 24000.0 {
					t.Fatalf("expected configured milestone amount 24000, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "contract-1" {
					t.Fatalf("expected contract reference, got %v", req["external_reference"])
				}
				return "mp-991", "approved", json.RawMessage(`{"status":"approved"}`), nil
			})

		m.clock.EXPECT().Now().Return(now)
		m.paymentRepo.EXPECT().
			CreateTransaction(ctx, gomock.AssignableToTypeOf(entities.PaymentTransaction{})).
			DoAndReturn(func(_ context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
				if tx.Type != entities.TransactionPayment {
					t.Fatalf("expected payment transaction, got %s", tx.Type)
				}
				if tx.Status != entities.TransactionCompleted {
					t.Fatalf("expected completed status, got %s", tx.Status)
				}
				if tx.ProviderPaymentID != "mp-991" {
					t.Fatalf("expected provider payment id mp-991, got %s", tx.ProviderPaymentID)
				}
				return tx, nil
			})

		tx, err := u.RecordMilestonePayment(ctx, "cfg-1", "Project Start", json.RawMessage(`{"token":"card-token"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tx.Amount.Equal(decimal.NewFromInt(24000)) {
			t.Fatalf("expected amount 24000, got %s", tx.Amount)
		}
	})

	t.Run("gateway rejection is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newPaymentUseCase(ctrl)
		m.paymentRepo.EXPECT().GetConfigurationByID(ctx, "cfg-1").Return(configFixture(), nil)
		gatewayErr := errors.New("card declined")
		m.gateway.EXPECT().CreatePayment(ctx, gomock.Any()).Return("", "", nil, gatewayErr)

		_, err := u.RecordMilestonePayment(ctx, "cfg-1", "Project Start", nil)
		if !errors.Is(err, gatewayErr) {
			t.Fatalf("expected %v, got %v", gatewayErr, err)
		}
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid config id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, _ := newPaymentUseCase(ctrl)
		_, err := u.ListTransactions(ctx, " ")
		if !errors.Is(err, ErrInvalidConfigID) {
			t.Fatalf("expected ErrInvalidConfigID, got %v", err)
		}
	})

	t.Run("list passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newPaymentUseCase(ctrl)
		want := []entities.PaymentTransaction{{ID: "tx-1"}, {ID: "tx-2"}}
		m.paymentRepo.EXPECT().ListTransactionsByConfigID(ctx, "cfg-1").Return(want, nil)

		got, err := u.ListTransactions(ctx, "cfg-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(got))
		}
	})
}
