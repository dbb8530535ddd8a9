package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const proposalValidityDays = 30

var (
	scheduleTierSmall  = decimal.NewFromInt(50000)
	scheduleTierMedium = decimal.NewFromInt(150000)
	oneHundred         = decimal.NewFromInt(100)
)

// IProposalUseCase generates statements of work from scored intake and
// drives their review lifecycle.
type IProposalUseCase interface {
	GenerateFromIntake(ctx context.Context, intakeID string) (entities.Proposal, error)
	SubmitForReview(ctx context.Context, id string) (entities.Proposal, error)
	Send(ctx context.Context, id string) (entities.Proposal, error)
	Approve(ctx context.Context, id string) (entities.Proposal, error)
	Reject(ctx context.Context, id string) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	proposalRepo interfaces.IProposalRepository
	intakeRepo   interfaces.IIntakeRepository
	catalogRepo  interfaces.IServiceCatalogRepository
	auditRepo    interfaces.IAuditRepository
	seqRepo      interfaces.ISequenceRepository
	clock        interfaces.IClock
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	proposalRepo interfaces.IProposalRepository,
	intakeRepo interfaces.IIntakeRepository,
	catalogRepo interfaces.IServiceCatalogRepository,
	auditRepo interfaces.IAuditRepository,
	seqRepo interfaces.ISequenceRepository,
	clock interfaces.IClock,
) *ProposalUseCase {
	return &ProposalUseCase{
		proposalRepo: proposalRepo,
		intakeRepo:   intakeRepo,
		catalogRepo:  catalogRepo,
		auditRepo:    auditRepo,
		seqRepo:      seqRepo,
		clock:        clock,
	}
}

// GenerateFromIntake recommends services, prices the engagement, composes
// the SOW narrative with its phased plan and milestone schedule, persists
// the proposal and appends the sow_generated audit entry. One proposal per
// intake.
func (u *ProposalUseCase) GenerateFromIntake(ctx context.Context, intakeID string) (entities.Proposal, error) {
	intakeID = strings.TrimSpace(intakeID)
	if intakeID == "" {
		return entities.Proposal{}, ErrInvalidIntakeID
	}

	intake, err := u.intakeRepo.GetByID(ctx, intakeID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if intake.ID == "" {
		return entities.Proposal{}, NewNotFoundError("intake", intakeID)
	}

	if existing, err := u.proposalRepo.GetByIntakeID(ctx, intakeID); err != nil {
		return entities.Proposal{}, err
	} else if existing.ID != "" {
		return entities.Proposal{}, ErrProposalExists
	}

	catalog, err := u.catalogRepo.ListActive(ctx)
	if err != nil {
		return entities.Proposal{}, err
	}

	services := RecommendServices(intake, catalog)
	pricing := CalculateProjectPricing(intake, services)
	schedule := BuildPaymentSchedule(pricing.TotalCost)

	seq, err := u.seqRepo.Next(ctx, "proposals")
	if err != nil {
		return entities.Proposal{}, err
	}

	now := u.clock.Now().UTC()
	developmentWeeks := pricing.EstimatedHours / 40

	p := entities.Proposal{
		ID:       uuid.NewString(),
		IntakeID: intake.ID,
		Sequence: seq,

		Content:       composeProposalContent(intake, services),
		Services:      services,
		Pricing:       pricing,
		Phases:        buildProjectPhases(developmentWeeks),
		Schedule:      schedule,
		TimelineWeeks: developmentWeeks + 1,

		Status:    entities.ProposalDraft,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.AddDate(0, 0, proposalValidityDays),
	}

	created, err := u.proposalRepo.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] sow generated proposal_id=%s intake_id=%s total=%s",
		created.ID, intake.ID, created.Pricing.TotalCost.StringFixed(2))

	_, err = u.auditRepo.Append(ctx, entities.AuditEvent{
		ID:          uuid.NewString(),
		ProcessType: entities.ProcessDiscoveryToSOW,
		SourceID:    intake.ID,
		TargetID:    created.ID,
		Trigger:     "automatic_trigger",
		Action:      entities.ActionSOWGenerated,
		Status:      entities.AuditStatusCompleted,
		Payload: entities.AuditPayload{
			TotalCost: created.Pricing.TotalCost,
			Notes:     "statement of work generated from discovery call",
		},
		Actor:     "system",
		CreatedAt: now,
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return created, nil
}

// BuildPaymentSchedule selects the milestone tier for the total and splits
// it accordingly. Percentages always sum to 100.
func BuildPaymentSchedule(total decimal.Decimal) []entities.PaymentMilestone {
	type split struct {
		name, description string
		percentage        int64
	}

	var splits []split
	switch {
	case total.LessThan(scheduleTierSmall):
		splits = []split{
			{"Project Start", "Initial payment to begin project development", 50},
			{"Project Completion", "Final payment upon successful project delivery", 50},
		}
	case total.LessThan(scheduleTierMedium):
		splits = []split{
			{"Project Start", "Initial payment to begin project development", 30},
			{"Development Milestone", "Payment upon completion of core development", 40},
			{"Project Completion", "Final payment upon successful project delivery", 30},
		}
	default:
		splits = []split{
			{"Project Start", "Initial payment to begin project development", 25},
			{"Development Phase 1", "Payment upon completion of phase 1 development", 25},
			{"Development Phase 2", "Payment upon completion of phase 2 development", 25},
			{"Project Completion", "Final payment upon successful project delivery", 25},
		}
	}

	milestones := make([]entities.PaymentMilestone, 0, len(splits))
	for _, s := range splits {
		pct := decimal.NewFromInt(s.percentage)
		milestones = append(milestones, entities.PaymentMilestone{
			Name:        s.name,
			Percentage:  pct,
			Amount:      total.Mul(pct).DivRound(oneHundred, 2),
			Description: s.description,
		})
	}
	return milestones
}

func buildProjectPhases(developmentWeeks int) []entities.ProposalPhase {
	return []entities.ProposalPhase{
		{Phase: 1, Name: "Discovery & Planning", DurationWeeks: 1,
			Description: "Detailed requirements analysis, system architecture design, and project planning"},
		{Phase: 2, Name: "Development & Integration", DurationWeeks: developmentWeeks,
			Description: "Core automation development, system integrations, and testing"},
		{Phase: 3, Name: "Testing & Training", DurationWeeks: 1,
			Description: "User acceptance testing, team training, and knowledge transfer"},
		{Phase: 4, Name: "Launch & Support", DurationWeeks: 1,
			Description: "Production deployment, go-live support, and transition to operations"},
	}
}

var deliverableTemplates = map[entities.ServiceCategory][]string{
	entities.CategoryAutomationDevelopment: {
		"Custom automation workflows and business logic",
		"User interface for process management",
		"System integration and API connections",
		"Data migration and cleanup processes",
	},
	entities.CategoryProcessOptimization: {
		"Process analysis and optimization recommendations",
		"Workflow redesign and efficiency improvements",
		"Standard operating procedures documentation",
	},
	entities.CategoryIntegrationSetup: {
		"API integrations with existing systems",
		"Data synchronization and mapping",
		"Integration testing and validation",
	},
	entities.CategoryTraining: {
		"User training materials and documentation",
		"Live training sessions for team members",
		"Ongoing support and knowledge transfer",
	},
}

func composeProposalContent(in entities.IntakeRecord, services []entities.ServiceSelection) entities.ProposalContent {
	var deliverables []string
	for _, svc := range services {
		deliverables = append(deliverables, deliverableTemplates[svc.Category]...)
	}
	var sb strings.Builder
	for i, d := range deliverables {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("• " + d)
	}

	objectives := in.PrimaryObjectives
	if strings.TrimSpace(objectives) == "" {
		objectives = fmt.Sprintf(
			"- Eliminate %d hours of weekly manual work\n"+
				"- Reduce operational costs by $%s annually\n"+
				"- Improve process efficiency and consistency across %d team members\n"+
				"- Enable scalable growth through automated workflows",
			in.WeeklyWasteHours, in.CostInefficiency.StringFixed(2), in.TeamSizeAffected)
	}

	successCriteria := in.SuccessMetrics
	if strings.TrimSpace(successCriteria) == "" {
		successCriteria = "- 80% reduction in manual processing time\n" +
			"- 95% accuracy in automated processes\n" +
			"- ROI achievement within 12 months\n" +
			"- Full team adoption and utilization\n" +
			"- Seamless integration with existing systems"
	}

	return entities.ProposalContent{
		Title: fmt.Sprintf("%s - Business Process Automation & Optimization", in.CompanyName),
		Description: fmt.Sprintf(
			"This project will deliver comprehensive business process automation and optimization "+
				"solutions for %s, addressing their current challenges with manual processes and "+
				"inefficiencies. Our solution will automate key workflows, integrate existing systems, "+
				"and optimize operations to achieve significant time savings and cost reductions.\n\n"+
				"Current State: %s\n\n"+
				"Proposed Solution: Custom automation platform integrating with existing systems to "+
				"eliminate manual processes and optimize workflow efficiency.",
			in.CompanyName, in.CurrentChallenges),
		Objectives:      objectives,
		SuccessCriteria: successCriteria,
		Deliverables:    sb.String(),
		Exclusions: "• Third-party software licensing costs (client responsibility)\n" +
			"• Hardware or infrastructure costs beyond software development\n" +
			"• Ongoing maintenance beyond 30-day warranty period\n" +
			"• Changes to original scope without formal change request approval\n" +
			"• Training for more than 10 users (additional training available separately)",
		Assumptions: fmt.Sprintf(
			"• Client will provide timely access to required systems and stakeholders\n"+
				"• Existing systems have available APIs or integration capabilities\n"+
				"• Client technical team will be available for collaboration and testing\n"+
				"• Project timeline assumes standard business hours (M-F, 9-5 %s timezone)\n"+
				"• No major system changes will occur during project implementation",
			in.CompanyName),
		ChangeRequestProcess: "All changes to project scope must be documented in writing and approved by " +
			"both parties. Change requests will be evaluated for impact on timeline, cost, and " +
			"deliverables. Additional work will be billed at standard hourly rates with prior approval.",
		AcceptanceCriteria: "Each deliverable will be considered complete upon successful demonstration of " +
			"functionality, passing of all defined tests, and written acceptance by client project " +
			"stakeholder. Final project acceptance requires successful completion of all deliverables " +
			"and 30-day production stability period.",
	}
}

func (u *ProposalUseCase) SubmitForReview(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalDraft, entities.ProposalReview)
}

func (u *ProposalUseCase) Send(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalReview, entities.ProposalSent)
}

func (u *ProposalUseCase) Approve(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalSent, entities.ProposalApproved)
}

func (u *ProposalUseCase) Reject(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalSent, entities.ProposalRejected)
}

// transition applies one lifecycle step through a compare-and-set on the
// stored status. Losing the race (or requesting a step the current status
// does not permit) is a state conflict, never a double-apply. An expiry
// deadline that has passed is applied lazily before the requested step.
func (u *ProposalUseCase) transition(ctx context.Context, id string, expected, next entities.ProposalStatus) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	current, err := u.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if current.ID == "" {
		return entities.Proposal{}, NewNotFoundError("proposal", id)
	}

	now := u.clock.Now().UTC()
	if current.ExpiredAt(now) {
		if _, err := u.proposalRepo.UpdateStatusIfCurrent(ctx, id, current.Status, entities.ProposalExpired); err != nil {
			return entities.Proposal{}, err
		}
		return entities.Proposal{}, NewStateConflictError("proposal", id, string(entities.ProposalExpired), string(expected))
	}

	updated, err := u.proposalRepo.UpdateStatusIfCurrent(ctx, id, expected, next)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, NewStateConflictError("proposal", id, string(current.Status), string(expected))
	}
	return updated, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, NewNotFoundError("proposal", id)
	}
	return p, nil
}
