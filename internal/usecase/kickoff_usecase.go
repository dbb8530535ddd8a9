package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultProjectManager = "Alex Thompson"
	kickoffLeadDays       = 3
)

// IKickoffUseCase creates the project-kickoff record once the first
// milestone payment has cleared.
type IKickoffUseCase interface {
	// TriggerKickoff returns triggered=false (and no error) while the
	// contract has no completed payment yet; the trigger is safe to repeat.
	TriggerKickoff(ctx context.Context, contractID string) (rec entities.KickoffRecord, triggered bool, err error)
	GetByID(ctx context.Context, id string) (entities.KickoffRecord, error)
}

type KickoffUseCase struct {
	kickoffRepo  interfaces.IKickoffRepository
	contractRepo interfaces.IContractRepository
	proposalRepo interfaces.IProposalRepository
	paymentRepo  interfaces.IPaymentRepository
	templateRepo interfaces.ITemplateRepository
	auditRepo    interfaces.IAuditRepository
	seqRepo      interfaces.ISequenceRepository
	clock        interfaces.IClock
}

var _ IKickoffUseCase = (*KickoffUseCase)(nil)

func NewKickoffUseCase(
	kickoffRepo interfaces.IKickoffRepository,
	contractRepo interfaces.IContractRepository,
	proposalRepo interfaces.IProposalRepository,
	paymentRepo interfaces.IPaymentRepository,
	templateRepo interfaces.ITemplateRepository,
	auditRepo interfaces.IAuditRepository,
	seqRepo interfaces.ISequenceRepository,
	clock interfaces.IClock,
) *KickoffUseCase {
	return &KickoffUseCase{
		kickoffRepo:  kickoffRepo,
		contractRepo: contractRepo,
		proposalRepo: proposalRepo,
		paymentRepo:  paymentRepo,
		templateRepo: templateRepo,
		auditRepo:    auditRepo,
		seqRepo:      seqRepo,
		clock:        clock,
	}
}

func (u *KickoffUseCase) TriggerKickoff(ctx context.Context, contractID string) (entities.KickoffRecord, bool, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.KickoffRecord{}, false, ErrInvalidContractID
	}

	contract, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return entities.KickoffRecord{}, false, err
	}
	if contract.ID == "" {
		return entities.KickoffRecord{}, false, NewNotFoundError("contract", contractID)
	}

	completed, err := u.paymentRepo.CountCompletedPayments(ctx, contractID)
	if err != nil {
		return entities.KickoffRecord{}, false, err
	}
	if completed == 0 {
		// Deferred, not failed: the same trigger fires again after the
		// first payment clears.
		log.Printf("[kickoff][usecase] no completed payments yet contract_id=%s - kickoff not triggered", contractID)
		return entities.KickoffRecord{}, false, nil
	}

	if existing, err := u.kickoffRepo.GetByContractID(ctx, contractID); err != nil {
		return entities.KickoffRecord{}, false, err
	} else if existing.ID != "" {
		return entities.KickoffRecord{}, false, ErrKickoffExists
	}

	proposal, err := u.proposalRepo.GetByID(ctx, contract.ProposalID)
	if err != nil {
		return entities.KickoffRecord{}, false, err
	}
	if proposal.ID == "" {
		return entities.KickoffRecord{}, false, NewNotFoundError("proposal", contract.ProposalID)
	}

	tier := entities.SelectKickoffTier(proposal.Services)
	template, err := u.templateRepo.GetKickoffTemplateByTier(ctx, tier)
	if err != nil {
		return entities.KickoffRecord{}, false, err
	}
	if template.ID == "" {
		return entities.KickoffRecord{}, false, NewNotFoundError("kickoff template", string(tier))
	}

	seq, err := u.seqRepo.Next(ctx, "kickoffs")
	if err != nil {
		return entities.KickoffRecord{}, false, err
	}

	now := u.clock.Now().UTC()
	rec := entities.KickoffRecord{
		ID:         uuid.NewString(),
		ContractID: contract.ID,
		TemplateID: template.ID,
		Sequence:   seq,

		ProjectCode:    fmt.Sprintf("ENT%s%03d", now.Format("0601"), contract.Sequence),
		ProjectName:    proposal.Content.Title,
		ProjectManager: defaultProjectManager,
		ScheduledDate:  now.AddDate(0, 0, kickoffLeadDays),
		Deliverables:   append([]string(nil), template.InitialDeliverables...),

		CreatedAt: now,
	}

	created, err := u.kickoffRepo.Create(ctx, rec)
	if err != nil {
		return entities.KickoffRecord{}, false, err
	}
	log.Printf("[kickoff][usecase] kickoff triggered kickoff_id=%s project_code=%s contract_id=%s",
		created.ID, created.ProjectCode, contract.ID)

	_, err = u.auditRepo.Append(ctx, entities.AuditEvent{
		ID:          uuid.NewString(),
		ProcessType: entities.ProcessPaymentToKickoff,
		SourceID:    contract.ID,
		TargetID:    created.ID,
		Trigger:     "automatic_trigger",
		Action:      entities.ActionKickoffTriggered,
		Status:      entities.AuditStatusCompleted,
		Payload: entities.AuditPayload{
			ProjectCode: created.ProjectCode,
			Notes:       "project kickoff initiated after first completed payment",
		},
		Actor:     "system",
		CreatedAt: now,
	})
	if err != nil {
		return entities.KickoffRecord{}, false, err
	}
	return created, true, nil
}

func (u *KickoffUseCase) GetByID(ctx context.Context, id string) (entities.KickoffRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.KickoffRecord{}, NewValidationError("kickoff_id", "is required")
	}
	k, err := u.kickoffRepo.GetByID(ctx, id)
	if err != nil {
		return entities.KickoffRecord{}, err
	}
	if k.ID == "" {
		return entities.KickoffRecord{}, NewNotFoundError("kickoff", id)
	}
	return k, nil
}
