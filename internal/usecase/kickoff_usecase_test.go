package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	mock_interfaces "github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type kickoffMocks struct {
	kickoffRepo  *mock_interfaces.MockIKickoffRepository
	contractRepo *mock_interfaces.MockIContractRepository
	proposalRepo *mock_interfaces.MockIProposalRepository
	paymentRepo  *mock_interfaces.MockIPaymentRepository
	templateRepo *mock_interfaces.MockITemplateRepository
	auditRepo    *mock_interfaces.MockIAuditRepository
	seqRepo      *mock_interfaces.MockISequenceRepository
	clock        *mock_interfaces.MockIClock
}

func newKickoffUseCase(ctrl *gomock.Controller) (*KickoffUseCase, kickoffMocks) {
	m := kickoffMocks{
		kickoffRepo:  mock_interfaces.NewMockIKickoffRepository(ctrl),
		contractRepo: mock_interfaces.NewMockIContractRepository(ctrl),
		proposalRepo: mock_interfaces.NewMockIProposalRepository(ctrl),
		paymentRepo:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		templateRepo: mock_interfaces.NewMockITemplateRepository(ctrl),
		auditRepo:    mock_interfaces.NewMockIAuditRepository(ctrl),
		seqRepo:      mock_interfaces.NewMockISequenceRepository(ctrl),
		clock:        mock_interfaces.NewMockIClock(ctrl),
	}
	u := NewKickoffUseCase(m.kickoffRepo, m.contractRepo, m.proposalRepo, m.paymentRepo, m.templateRepo, m.auditRepo, m.seqRepo, m.clock)
	return u, m
}

func TestSelectKickoffTier(t *testing.T) {
	auto := entities.ServiceSelection{Category: entities.CategoryAutomationDevelopment}
	integ := entities.ServiceSelection{Category: entities.CategoryIntegrationSetup}
	train := entities.ServiceSelection{Category: entities.CategoryTraining}

	cases := []struct {
		name     string
		services []entities.ServiceSelection
		want     entities.KickoffTemplateTier
	}{
		{"automation with broad scope is complex", []entities.ServiceSelection{auto, integ, train}, entities.KickoffTierComplex},
		{"automation alone is standard", []entities.ServiceSelection{auto}, entities.KickoffTierStandard},
		{"automation with one extra is standard", []entities.ServiceSelection{auto, integ}, entities.KickoffTierStandard},
		{"no automation is basic", []entities.ServiceSelection{integ, train}, entities.KickoffTierBasic},
		{"empty is basic", nil, entities.KickoffTierBasic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := entities.SelectKickoffTier(tc.services); got != tc.want {
				t.Fatalf("expected tier %s, got %s", tc.want, got)
			}
		})
	}
}

func TestTriggerKickoff(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 28, 10, 0, 0, 0, time.UTC)

	t.Run("invalid contract id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, _ := newKickoffUseCase(ctrl)
		_, _, err := u.TriggerKickoff(ctx, " ")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("deferred while no payment has completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newKickoffUseCase(ctrl)
		m.contractRepo.EXPECT().GetByID(ctx, "contract-1").Return(entities.Contract{ID: "contract-1", Status: entities.ContractFullyExecuted}, nil)
		m.paymentRepo.EXPECT().CountCompletedPayments(ctx, "contract-1").Return(0, nil)

		rec, triggered, err := u.TriggerKickoff(ctx, "contract-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if triggered {
			t.Fatalf("expected kickoff deferred")
		}
		if rec.ID != "" {
			t.Fatalf("expected no record, got %+v", rec)
		}
	})

	t.Run("already kicked off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newKickoffUseCase(ctrl)
		m.contractRepo.EXPECT().GetByID(ctx, "contract-1").Return(entities.Contract{ID: "contract-1"}, nil)
		m.paymentRepo.EXPECT().CountCompletedPayments(ctx, "contract-1").Return(1, nil)
		m.kickoffRepo.EXPECT().GetByContractID(ctx, "contract-1").Return(entities.KickoffRecord{ID: "kickoff-1"}, nil)

		_, _, err := u.TriggerKickoff(ctx, "contract-1")
		if !errors.Is(err, ErrKickoffExists) {
			t.Fatalf("expected ErrKickoffExists, got %v", err)
		}
	})

	t.Run("trigger success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newKickoffUseCase(ctrl)

		contract := entities.Contract{ID: "contract-1", ProposalID: "proposal-1", Sequence: 9, Status: entities.ContractFullyExecuted}
		proposal := entities.Proposal{
			ID:      "proposal-1",
			Content: entities.ProposalContent{Title: "Acme Logistics - Business Process Automation & Optimization"},
			Services: []entities.ServiceSelection{
				{Category: entities.CategoryAutomationDevelopment},
				{Category: entities.CategoryIntegrationSetup},
				{Category: entities.CategoryTraining},
			},
		}
		template := entities.KickoffTemplate{
			ID:   "kick-complex",
			Tier: entities.KickoffTierComplex,
			InitialDeliverables: []string{
				"Project charter and communication plan",
				"Integration inventory and access checklist",
			},
		}

		m.contractRepo.EXPECT().GetByID(ctx, "contract-1").Return(contract, nil)
		m.paymentRepo.EXPECT().CountCompletedPayments(ctx, "contract-1").Return(1, nil)
		m.kickoffRepo.EXPECT().GetByContractID(ctx, "contract-1").Return(entities.KickoffRecord{}, nil)
		m.proposalRepo.EXPECT().GetByID(ctx, "proposal-1").Return(proposal, nil)
		m.templateRepo.EXPECT().GetKickoffTemplateByTier(ctx, entities.KickoffTierComplex).Return(template, nil)
		m.seqRepo.EXPECT().Next(ctx, "kickoffs").Return(3, nil)
		m.clock.EXPECT().Now().Return(now)

		m.kickoffRepo.EXPECT().
			Create(ctx, gomock.AssignableToTypeOf(entities.KickoffRecord{})).
			DoAndReturn(func(_ context.Context, rec entities.KickoffRecord) (entities.KickoffRecord, error) {
				if rec.ProjectCode != "ENT2603009" {
					t.Fatalf("expected project code ENT2603009, got %s", rec.ProjectCode)
				}
				if rec.TemplateID != "kick-complex" {
					t.Fatalf("expected complex template, got %s", rec.TemplateID)
				}
				if rec.ProjectName != proposal.Content.Title {
					t.Fatalf("expected project name from proposal, got %s", rec.ProjectName)
				}
				if !rec.ScheduledDate.Equal(now.AddDate(0, 0, 3)) {
					t.Fatalf("expected kickoff 3 days out, got %s", rec.ScheduledDate)
				}
				if len(rec.Deliverables) != 2 {
					t.Fatalf("expected template deliverables copied, got %d", len(rec.Deliverables))
				}
				return rec, nil
			})

		m.auditRepo.EXPECT().
			Append(ctx, gomock.AssignableToTypeOf(entities.AuditEvent{})).
			DoAndReturn(func(_ context.Context, ev entities.AuditEvent) (entities.AuditEvent, error) {
				if ev.Action != entities.ActionKickoffTriggered {
					t.Fatalf("expected action kickoff_triggered, got %s", ev.Action)
				}
				if ev.ProcessType != entities.ProcessPaymentToKickoff {
					t.Fatalf("expected process payment_to_kickoff, got %s", ev.ProcessType)
				}
				if ev.Payload.ProjectCode != "ENT2603009" {
					t.Fatalf("expected project code in payload, got %s", ev.Payload.ProjectCode)
				}
				return ev, nil
			})

		created, triggered, err := u.TriggerKickoff(ctx, "contract-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !triggered {
			t.Fatalf("expected kickoff triggered")
		}
		if created.Sequence != 3 {
			t.Fatalf("expected sequence 3, got %d", created.Sequence)
		}
	})
}

func TestKickoffGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("kickoff not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newKickoffUseCase(ctrl)
		m.kickoffRepo.EXPECT().GetByID(ctx, "missing").Return(entities.KickoffRecord{}, nil)

		_, err := u.GetByID(ctx, "missing")
		if !IsNotFound(err) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, _ := newKickoffUseCase(ctrl)
		_, err := u.GetByID(ctx, " ")
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
