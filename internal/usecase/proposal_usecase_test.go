package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	mock_interfaces "github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestBuildPaymentSchedule(t *testing.T) {
	cases := []struct {
		name        string
		total       decimal.Decimal
		wantNames   []string
		wantAmounts []string
	}{
		{
			name:        "small engagement splits fifty fifty",
			total:       decimal.NewFromInt(40000),
			wantNames:   []string{"Project Start", "Project Completion"},
			wantAmounts: []string{"20000", "20000"},
		},
		{
			name:        "fifty thousand exactly uses the three way split",
			total:       decimal.NewFromInt(50000),
			wantNames:   []string{"Project Start", "Development Milestone", "Project Completion"},
			wantAmounts: []string{"15000", "20000", "15000"},
		},
		{
			name:        "mid tier splits thirty forty thirty",
			total:       decimal.NewFromInt(80000),
			wantNames:   []string{"Project Start", "Development Milestone", "Project Completion"},
			wantAmounts: []string{"24000", "32000", "24000"},
		},
		{
			name:        "one hundred fifty thousand exactly uses four milestones",
			total:       decimal.NewFromInt(150000),
			wantNames:   []string{"Project Start", "Development Phase 1", "Development Phase 2", "Project Completion"},
			wantAmounts: []string{"37500", "37500", "37500", "37500"},
		},
		{
			name:        "large engagement splits into quarters",
			total:       decimal.NewFromInt(200000),
			wantNames:   []string{"Project Start", "Development Phase 1", "Development Phase 2", "Project Completion"},
			wantAmounts: []string{"50000", "50000", "50000", "50000"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			milestones := BuildPaymentSchedule(tc.total)

			if len(milestones) != len(tc.wantNames) {
				t.Fatalf("expected %d milestones, got %d", len(tc.wantNames), len(milestones))
			}
			pctSum := decimal.Zero
			for i, m := range milestones {
				if m.Name != tc.wantNames[i] {
					t.Fatalf("milestone %d: expected %q, got %q", i, tc.wantNames[i], m.Name)
				}
				want, _ := decimal.NewFromString(tc.wantAmounts[i])
				if !m.Amount.Equal(want) {
					t.Fatalf("milestone %q: expected amount %s, got %s", m.Name, want, m.Amount)
				}
				pctSum = pctSum.Add(m.Percentage)
			}
			if !pctSum.Equal(decimal.NewFromInt(100)) {
				t.Fatalf("expected percentages to sum to 100, got %s", pctSum)
			}
		})
	}
}

func qualifiedIntakeFixture() entities.IntakeRecord {
	in := validDiscoveryIntake()
	in.ID = "intake-1"
	in.ProspectID = "prospect-1"
	in.Qualification = ScoreIntake(in)
	return in
}

func TestGenerateFromIntake(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	newUseCase := func(ctrl *gomock.Controller) (*ProposalUseCase, *mock_interfaces.MockIProposalRepository, *mock_interfaces.MockIIntakeRepository, *mock_interfaces.MockIServiceCatalogRepository, *mock_interfaces.MockIAuditRepository, *mock_interfaces.MockISequenceRepository, *mock_interfaces.MockIClock) {
		proposalRepo := mock_interfaces.NewMockIProposalRepository(ctrl)
		intakeRepo := mock_interfaces.NewMockIIntakeRepository(ctrl)
		catalogRepo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		auditRepo := mock_interfaces.NewMockIAuditRepository(ctrl)
		seqRepo := mock_interfaces.NewMockISequenceRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		u := NewProposalUseCase(proposalRepo, intakeRepo, catalogRepo, auditRepo, seqRepo, clock)
		return u, proposalRepo, intakeRepo, catalogRepo, auditRepo, seqRepo, clock
	}

	t.Run("invalid intake id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, _, _, _, _, _, _ := newUseCase(ctrl)
		_, err := u.GenerateFromIntake(ctx, " ")
		if !errors.Is(err, ErrInvalidIntakeID) {
			t.Fatalf("expected ErrInvalidIntakeID, got %v", err)
		}
	})

	t.Run("intake not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, _, intakeRepo, _, _, _, _ := newUseCase(ctrl)
		intakeRepo.EXPECT().GetByID(ctx, "missing").Return(entities.IntakeRecord{}, nil)

		_, err := u.GenerateFromIntake(ctx, "missing")
		if !IsNotFound(err) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("one proposal per intake", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, proposalRepo, intakeRepo, _, _, _, _ := newUseCase(ctrl)
		intakeRepo.EXPECT().GetByID(ctx, "intake-1").Return(qualifiedIntakeFixture(), nil)
		proposalRepo.EXPECT().GetByIntakeID(ctx, "intake-1").Return(entities.Proposal{ID: "proposal-1"}, nil)

		_, err := u.GenerateFromIntake(ctx, "intake-1")
		if !errors.Is(err, ErrProposalExists) {
			t.Fatalf("expected ErrProposalExists, got %v", err)
		}
	})

	t.Run("generate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, proposalRepo, intakeRepo, catalogRepo, auditRepo, seqRepo, clock := newUseCase(ctrl)

		intake := qualifiedIntakeFixture()
		intakeRepo.EXPECT().GetByID(ctx, "intake-1").Return(intake, nil)
		proposalRepo.EXPECT().GetByIntakeID(ctx, "intake-1").Return(entities.Proposal{}, nil)
		catalogRepo.EXPECT().ListActive(ctx).Return(testCatalog(), nil)
		seqRepo.EXPECT().Next(ctx, "proposals").Return(12, nil)
		clock.EXPECT().Now().Return(now)

		proposalRepo.EXPECT().
			Create(ctx, gomock.AssignableToTypeOf(entities.Proposal{})).
			DoAndReturn(func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.ID == "" {
					t.Fatalf("expected generated proposal id")
				}
				if p.IntakeID != "intake-1" {
					t.Fatalf("expected intake id intake-1, got %s", p.IntakeID)
				}
				if p.Sequence != 12 {
					t.Fatalf("expected sequence 12, got %d", p.Sequence)
				}
				if p.Status != entities.ProposalDraft {
					t.Fatalf("expected draft status, got %s", p.Status)
				}
				if !p.ExpiresAt.Equal(now.AddDate(0, 0, 30)) {
					t.Fatalf("expected 30-day validity, got %s", p.ExpiresAt)
				}
				if len(p.Services) == 0 {
					t.Fatalf("expected recommended services")
				}
				if len(p.Phases) != 4 {
					t.Fatalf("expected 4 phases, got %d", len(p.Phases))
				}
				if p.TimelineWeeks != p.Pricing.EstimatedHours/40+1 {
					t.Fatalf("expected timeline derived from hours, got %d weeks for %d hours", p.TimelineWeeks, p.Pricing.EstimatedHours)
				}
				if !strings.Contains(p.Content.Title, intake.CompanyName) {
					t.Fatalf("expected title to name the company, got %q", p.Content.Title)
				}
				return p, nil
			})

		auditRepo.EXPECT().
			Append(ctx, gomock.AssignableToTypeOf(entities.AuditEvent{})).
			DoAndReturn(func(_ context.Context, ev entities.AuditEvent) (entities.AuditEvent, error) {
				if ev.Action != entities.ActionSOWGenerated {
					t.Fatalf("expected action sow_generated, got %s", ev.Action)
				}
				if ev.SourceID != "intake-1" {
					t.Fatalf("expected source intake-1, got %s", ev.SourceID)
				}
				return ev, nil
			})

		created, err := u.GenerateFromIntake(ctx, "intake-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Pricing.TotalCost.LessThan(entities.MinimumProjectValue) {
			t.Fatalf("expected total at or above the floor, got %s", created.Pricing.TotalCost)
		}
	})
}

func TestProposalTransitions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	newUseCase := func(ctrl *gomock.Controller) (*ProposalUseCase, *mock_interfaces.MockIProposalRepository, *mock_interfaces.MockIClock) {
		proposalRepo := mock_interfaces.NewMockIProposalRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		u := NewProposalUseCase(
			proposalRepo,
			mock_interfaces.NewMockIIntakeRepository(ctrl),
			mock_interfaces.NewMockIServiceCatalogRepository(ctrl),
			mock_interfaces.NewMockIAuditRepository(ctrl),
			mock_interfaces.NewMockISequenceRepository(ctrl),
			clock,
		)
		return u, proposalRepo, clock
	}

	t.Run("submit for review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, proposalRepo, clock := newUseCase(ctrl)
		stored := entities.Proposal{ID: "proposal-1", Status: entities.ProposalDraft, ExpiresAt: now.AddDate(0, 0, 10)}
		proposalRepo.EXPECT().GetByID(ctx, "proposal-1").Return(stored, nil)
		clock.EXPECT().Now().Return(now)
		proposalRepo.EXPECT().
			UpdateStatusIfCurrent(ctx, "proposal-1", entities.ProposalDraft, entities.ProposalReview).
			Return(entities.Proposal{ID: "proposal-1", Status: entities.ProposalReview}, nil)

		updated, err := u.SubmitForReview(ctx, "proposal-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ProposalReview {
			t.Fatalf("expected review status, got %s", updated.Status)
		}
	})

	t.Run("lost compare-and-set is a state conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, proposalRepo, clock := newUseCase(ctrl)
		stored := entities.Proposal{ID: "proposal-1", Status: entities.ProposalDraft, ExpiresAt: now.AddDate(0, 0, 10)}
		proposalRepo.EXPECT().GetByID(ctx, "proposal-1").Return(stored, nil)
		clock.EXPECT().Now().Return(now)
		proposalRepo.EXPECT().
			UpdateStatusIfCurrent(ctx, "proposal-1", entities.ProposalSent, entities.ProposalApproved).
			Return(entities.Proposal{}, nil)

		_, err := u.Approve(ctx, "proposal-1")
		if !IsStateConflict(err) {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})

	t.Run("expiry is applied lazily", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, proposalRepo, clock := newUseCase(ctrl)
		stored := entities.Proposal{ID: "proposal-1", Status: entities.ProposalSent, ExpiresAt: now.AddDate(0, 0, -1)}
		proposalRepo.EXPECT().GetByID(ctx, "proposal-1").Return(stored, nil)
		clock.EXPECT().Now().Return(now)
		proposalRepo.EXPECT().
			UpdateStatusIfCurrent(ctx, "proposal-1", entities.ProposalSent, entities.ProposalExpired).
			Return(entities.Proposal{ID: "proposal-1", Status: entities.ProposalExpired}, nil)

		_, err := u.Approve(ctx, "proposal-1")
		if !IsStateConflict(err) {
			t.Fatalf("expected state conflict after lazy expiry, got %v", err)
		}
	})

	t.Run("terminal status never expires", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, proposalRepo, clock := newUseCase(ctrl)
		stored := entities.Proposal{ID: "proposal-1", Status: entities.ProposalApproved, ExpiresAt: now.AddDate(0, 0, -1)}
		proposalRepo.EXPECT().GetByID(ctx, "proposal-1").Return(stored, nil)
		clock.EXPECT().Now().Return(now)
		proposalRepo.EXPECT().
			UpdateStatusIfCurrent(ctx, "proposal-1", entities.ProposalSent, entities.ProposalRejected).
			Return(entities.Proposal{}, nil)

		_, err := u.Reject(ctx, "proposal-1")
		if !IsStateConflict(err) {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})

	t.Run("proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, proposalRepo, _ := newUseCase(ctrl)
		proposalRepo.EXPECT().GetByID(ctx, "missing").Return(entities.Proposal{}, nil)

		_, err := u.Send(ctx, "missing")
		if !IsNotFound(err) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}
