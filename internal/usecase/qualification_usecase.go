package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Thresholds the pain sub-score is built from.
var (
	painCost100K = decimal.NewFromInt(100000)
	painCost50K  = decimal.NewFromInt(50000)
	painCost25K  = decimal.NewFromInt(25000)
	painCost10K  = decimal.NewFromInt(10000)
)

// IQualificationUseCase scores discovery calls and persists the immutable
// intake snapshot.
type IQualificationUseCase interface {
	ScoreAndRecordIntake(ctx context.Context, prospectID string, in entities.IntakeRecord) (entities.IntakeRecord, error)
	GetByID(ctx context.Context, id string) (entities.IntakeRecord, error)
}

type QualificationUseCase struct {
	intakeRepo interfaces.IIntakeRepository
	auditRepo  interfaces.IAuditRepository
	seqRepo    interfaces.ISequenceRepository
	clock      interfaces.IClock
}

var _ IQualificationUseCase = (*QualificationUseCase)(nil)

func NewQualificationUseCase(
	intakeRepo interfaces.IIntakeRepository,
	auditRepo interfaces.IAuditRepository,
	seqRepo interfaces.ISequenceRepository,
	clock interfaces.IClock,
) *QualificationUseCase {
	return &QualificationUseCase{intakeRepo: intakeRepo, auditRepo: auditRepo, seqRepo: seqRepo, clock: clock}
}

// ScoreIntake computes the four bounded sub-scores and the overall
// qualification from intake data. Pure: same input, same result.
func ScoreIntake(in entities.IntakeRecord) entities.QualificationResult {
	pain := 0
	switch {
	case in.WeeklyWasteHours > 20:
		pain += 4
	case in.WeeklyWasteHours > 10:
		pain += 2
	case in.WeeklyWasteHours > 5:
		pain++
	}
	switch {
	case in.CostInefficiency.GreaterThan(painCost100K):
		pain += 4
	case in.CostInefficiency.GreaterThan(painCost50K):
		pain += 3
	case in.CostInefficiency.GreaterThan(painCost25K):
		pain += 2
	case in.CostInefficiency.GreaterThan(painCost10K):
		pain++
	}
	switch {
	case in.TeamSizeAffected > 10:
		pain += 2
	case in.TeamSizeAffected > 5:
		pain++
	}
	pain = clampScore(pain)

	budget := in.BudgetRange.AuthorityPoints()
	if strings.TrimSpace(in.DecisionMakerName) != "" {
		budget += 2
	}
	budget = clampScore(budget)

	timeline := in.TimelineUrgency.UrgencyPoints()

	technical := 5 + in.CompanySize.FitPoints()
	if entities.IndustryHighFit(in.Industry) {
		technical += 2
	}
	technical = clampScore(technical)

	// The 30/30/20/20 weighting times the 0-100 rescale reduces to exact
	// integer arithmetic.
	overall := 3*pain + 3*budget + 2*timeline + 2*technical

	return entities.QualificationResult{
		PainScore:            pain,
		BudgetAuthorityScore: budget,
		TimelineUrgencyScore: timeline,
		TechnicalFitScore:    technical,
		OverallScore:         overall,
		Status:               entities.StatusForScore(overall),
	}
}

func clampScore(v int) int {
	if v > 10 {
		return 10
	}
	return v
}

func validateIntake(in entities.IntakeRecord) error {
	if strings.TrimSpace(in.CompanyName) == "" {
		return NewValidationError("company_name", "is required")
	}
	if strings.TrimSpace(in.PrimaryContactName) == "" {
		return NewValidationError("primary_contact_name", "is required")
	}
	if strings.TrimSpace(in.PrimaryContactEmail) == "" {
		return NewValidationError("primary_contact_email", "is required")
	}
	if in.WeeklyWasteHours < 0 {
		return NewValidationError("weekly_waste_hours", "must not be negative")
	}
	if in.CostInefficiency.IsNegative() {
		return NewValidationError("cost_inefficiency", "must not be negative")
	}
	if in.TeamSizeAffected < 0 {
		return NewValidationError("team_size_affected", "must not be negative")
	}
	return nil
}

// ScoreAndRecordIntake validates the discovery-call input, scores it and
// persists the snapshot together with its qualification result, then appends
// the audit entry. The qualified-to-proposal chain is driven by the workflow
// orchestrator, not here.
func (u *QualificationUseCase) ScoreAndRecordIntake(ctx context.Context, prospectID string, in entities.IntakeRecord) (entities.IntakeRecord, error) {
	prospectID = strings.TrimSpace(prospectID)
	if prospectID == "" {
		return entities.IntakeRecord{}, NewValidationError("prospect_id", "is required")
	}
	if err := validateIntake(in); err != nil {
		return entities.IntakeRecord{}, err
	}

	seq, err := u.seqRepo.Next(ctx, "intakes")
	if err != nil {
		return entities.IntakeRecord{}, err
	}

	now := u.clock.Now().UTC()
	in.ID = uuid.NewString()
	in.ProspectID = prospectID
	in.Sequence = seq
	in.CallDate = now
	in.Qualification = ScoreIntake(in)

	created, err := u.intakeRepo.Create(ctx, in)
	if err != nil {
		return entities.IntakeRecord{}, err
	}
	log.Printf("[qualification][usecase] intake recorded intake_id=%s overall=%d status=%s",
		created.ID, created.Qualification.OverallScore, created.Qualification.Status)

	if err := u.appendAudit(ctx, created, now); err != nil {
		return entities.IntakeRecord{}, err
	}
	return created, nil
}

func (u *QualificationUseCase) appendAudit(ctx context.Context, rec entities.IntakeRecord, now time.Time) error {
	_, err := u.auditRepo.Append(ctx, entities.AuditEvent{
		ID:          uuid.NewString(),
		ProcessType: entities.ProcessDiscoveryToSOW,
		SourceID:    rec.ID,
		Trigger:     "automatic_trigger",
		Action:      entities.ActionDiscoveryProcessed,
		Status:      entities.AuditStatusCompleted,
		Payload: entities.AuditPayload{
			OverallScore: rec.Qualification.OverallScore,
			Notes:        "discovery call processed with qualification scoring",
		},
		Actor:     "system",
		CreatedAt: now,
	})
	return err
}

func (u *QualificationUseCase) GetByID(ctx context.Context, id string) (entities.IntakeRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.IntakeRecord{}, ErrInvalidIntakeID
	}
	rec, err := u.intakeRepo.GetByID(ctx, id)
	if err != nil {
		return entities.IntakeRecord{}, err
	}
	if rec.ID == "" {
		return entities.IntakeRecord{}, NewNotFoundError("intake", id)
	}
	return rec, nil
}
