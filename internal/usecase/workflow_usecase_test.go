package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	mock_interfaces "github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// workflow tests wire mock use cases through local stubs of the narrow
// interfaces the orchestrator depends on.
type stubQualification struct {
	rec entities.IntakeRecord
	err error
}

func (s stubQualification) ScoreAndRecordIntake(context.Context, string, entities.IntakeRecord) (entities.IntakeRecord, error) {
	return s.rec, s.err
}

func (s stubQualification) GetByID(context.Context, string) (entities.IntakeRecord, error) {
	return s.rec, s.err
}

type stubProposals struct {
	proposal entities.Proposal
	err      error
	called   *bool
}

func (s stubProposals) GenerateFromIntake(context.Context, string) (entities.Proposal, error) {
	if s.called != nil {
		*s.called = true
	}
	return s.proposal, s.err
}

func (s stubProposals) SubmitForReview(context.Context, string) (entities.Proposal, error) {
	return s.proposal, s.err
}

func (s stubProposals) Send(context.Context, string) (entities.Proposal, error) {
	return s.proposal, s.err
}

func (s stubProposals) Approve(context.Context, string) (entities.Proposal, error) {
	return s.proposal, s.err
}

func (s stubProposals) Reject(context.Context, string) (entities.Proposal, error) {
	return s.proposal, s.err
}

func (s stubProposals) GetByID(context.Context, string) (entities.Proposal, error) {
	return s.proposal, s.err
}

func TestProcessDiscoveryCall(t *testing.T) {
	ctx := context.Background()

	t.Run("qualified intake chains into a proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		intake := entities.IntakeRecord{
			ID:            "intake-1",
			Qualification: entities.QualificationResult{OverallScore: 85, Status: entities.QualificationQualified},
		}
		called := false
		u := NewWorkflowUseCase(
			stubQualification{rec: intake},
			stubProposals{proposal: entities.Proposal{ID: "proposal-1", IntakeID: "intake-1"}, called: &called},
			mock_interfaces.NewMockIAuditRepository(ctrl),
		)

		gotIntake, gotProposal, err := u.ProcessDiscoveryCall(ctx, "prospect-1", entities.IntakeRecord{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotIntake.ID != "intake-1" {
			t.Fatalf("expected recorded intake, got %+v", gotIntake)
		}
		if gotProposal == nil || gotProposal.ID != "proposal-1" {
			t.Fatalf("expected generated proposal, got %+v", gotProposal)
		}
		if !called {
			t.Fatalf("expected proposal generation to run")
		}
	})

	t.Run("nurture intake stops at scoring", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		intake := entities.IntakeRecord{
			ID:            "intake-2",
			Qualification: entities.QualificationResult{OverallScore: 60, Status: entities.QualificationNurture},
		}
		called := false
		u := NewWorkflowUseCase(
			stubQualification{rec: intake},
			stubProposals{called: &called},
			mock_interfaces.NewMockIAuditRepository(ctrl),
		)

		gotIntake, gotProposal, err := u.ProcessDiscoveryCall(ctx, "prospect-1", entities.IntakeRecord{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotIntake.ID != "intake-2" {
			t.Fatalf("expected recorded intake, got %+v", gotIntake)
		}
		if gotProposal != nil {
			t.Fatalf("expected no proposal for nurture, got %+v", gotProposal)
		}
		if called {
			t.Fatalf("expected proposal generation skipped")
		}
	})

	t.Run("scoring failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		scoreErr := NewValidationError("company_name", "is required")
		u := NewWorkflowUseCase(
			stubQualification{err: scoreErr},
			stubProposals{},
			mock_interfaces.NewMockIAuditRepository(ctrl),
		)

		_, _, err := u.ProcessDiscoveryCall(ctx, "prospect-1", entities.IntakeRecord{})
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("proposal failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		intake := entities.IntakeRecord{
			ID:            "intake-3",
			Qualification: entities.QualificationResult{Status: entities.QualificationQualified},
		}
		genErr := errors.New("catalog unavailable")
		u := NewWorkflowUseCase(
			stubQualification{rec: intake},
			stubProposals{err: genErr},
			mock_interfaces.NewMockIAuditRepository(ctrl),
		)

		_, _, err := u.ProcessDiscoveryCall(ctx, "prospect-1", entities.IntakeRecord{})
		if !errors.Is(err, genErr) {
			t.Fatalf("expected %v, got %v", genErr, err)
		}
	})
}

func TestGetWorkflowStatus(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditRepo := mock_interfaces.NewMockIAuditRepository(ctrl)
	auditRepo.EXPECT().
		List(ctx, entities.ProcessDiscoveryToSOW, "completed", 100).
		Return([]entities.AuditEvent{{ID: "ev-1"}}, nil)

	u := NewWorkflowUseCase(stubQualification{}, stubProposals{}, auditRepo)
	events, err := u.GetWorkflowStatus(ctx, entities.ProcessDiscoveryToSOW, "completed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "ev-1" {
		t.Fatalf("expected the ledger entries, got %+v", events)
	}
}
