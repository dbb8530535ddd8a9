package usecase

import (
	"context"
	"log"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"
)

const workflowStatusLimit = 100

// IWorkflowUseCase is the explicit pipeline orchestration: scoring a
// discovery call and, when it qualifies, immediately generating the
// proposal. The chaining policy lives here, visibly, instead of inside the
// scorer.
type IWorkflowUseCase interface {
	ProcessDiscoveryCall(ctx context.Context, prospectID string, in entities.IntakeRecord) (entities.IntakeRecord, *entities.Proposal, error)
	GetWorkflowStatus(ctx context.Context, processType entities.AuditProcessType, status string) ([]entities.AuditEvent, error)
}

type WorkflowUseCase struct {
	qualification IQualificationUseCase
	proposals     IProposalUseCase
	auditRepo     interfaces.IAuditRepository
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(qualification IQualificationUseCase, proposals IProposalUseCase, auditRepo interfaces.IAuditRepository) *WorkflowUseCase {
	return &WorkflowUseCase{qualification: qualification, proposals: proposals, auditRepo: auditRepo}
}

// ProcessDiscoveryCall scores and records the intake, then generates a
// proposal when the call qualified. The intake stands on its own: a failure
// in proposal generation is reported but does not roll back the scored call.
func (u *WorkflowUseCase) ProcessDiscoveryCall(ctx context.Context, prospectID string, in entities.IntakeRecord) (entities.IntakeRecord, *entities.Proposal, error) {
	intake, err := u.qualification.ScoreAndRecordIntake(ctx, prospectID, in)
	if err != nil {
		return entities.IntakeRecord{}, nil, err
	}

	if intake.Qualification.Status != entities.QualificationQualified {
		return intake, nil, nil
	}

	log.Printf("[workflow][usecase] intake qualified intake_id=%s - generating proposal", intake.ID)
	proposal, err := u.proposals.GenerateFromIntake(ctx, intake.ID)
	if err != nil {
		return entities.IntakeRecord{}, nil, err
	}
	return intake, &proposal, nil
}

// GetWorkflowStatus returns the most recent ledger entries, optionally
// filtered by process type and status.
func (u *WorkflowUseCase) GetWorkflowStatus(ctx context.Context, processType entities.AuditProcessType, status string) ([]entities.AuditEvent, error) {
	return u.auditRepo.List(ctx, processType, status, workflowStatusLimit)
}
