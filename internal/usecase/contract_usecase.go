package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	providerSignatoryName  = "Jordan Martinez"
	providerSignatoryTitle = "CEO"
	defaultPaymentTerms    = "30 days"
)

var placeholderPattern = regexp.MustCompile(`\{\{[A-Z_]+\}\}`)

// IContractUseCase turns approved proposals into signed-ready contracts and
// drives the signature lifecycle.
type IContractUseCase interface {
	GenerateFromProposal(ctx context.Context, proposalID, templateID string) (entities.Contract, error)
	SendForSignature(ctx context.Context, id string) (entities.Contract, error)
	MarkExecuted(ctx context.Context, id string) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
}

type ContractUseCase struct {
	contractRepo interfaces.IContractRepository
	proposalRepo interfaces.IProposalRepository
	intakeRepo   interfaces.IIntakeRepository
	templateRepo interfaces.ITemplateRepository
	auditRepo    interfaces.IAuditRepository
	seqRepo      interfaces.ISequenceRepository
	signatures   interfaces.ISignatureGateway
	clock        interfaces.IClock
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	contractRepo interfaces.IContractRepository,
	proposalRepo interfaces.IProposalRepository,
	intakeRepo interfaces.IIntakeRepository,
	templateRepo interfaces.ITemplateRepository,
	auditRepo interfaces.IAuditRepository,
	seqRepo interfaces.ISequenceRepository,
	signatures interfaces.ISignatureGateway,
	clock interfaces.IClock,
) *ContractUseCase {
	return &ContractUseCase{
		contractRepo: contractRepo,
		proposalRepo: proposalRepo,
		intakeRepo:   intakeRepo,
		templateRepo: templateRepo,
		auditRepo:    auditRepo,
		seqRepo:      seqRepo,
		signatures:   signatures,
		clock:        clock,
	}
}

// GenerateFromProposal merges the approved proposal with the contract
// template. Every placeholder token in the template body must resolve; an
// unmatched token aborts generation before anything is persisted. The sha256
// digest of the rendered text is stored for later tamper detection.
func (u *ContractUseCase) GenerateFromProposal(ctx context.Context, proposalID, templateID string) (entities.Contract, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Contract{}, ErrInvalidProposalID
	}

	proposal, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Contract{}, err
	}
	if proposal.ID == "" {
		return entities.Contract{}, NewNotFoundError("proposal", proposalID)
	}

	now := u.clock.Now().UTC()
	if proposal.ExpiredAt(now) {
		if _, err := u.proposalRepo.UpdateStatusIfCurrent(ctx, proposal.ID, proposal.Status, entities.ProposalExpired); err != nil {
			return entities.Contract{}, err
		}
		return entities.Contract{}, NewStateConflictError("proposal", proposalID, string(entities.ProposalExpired), string(entities.ProposalApproved))
	}
	if proposal.Status != entities.ProposalApproved {
		return entities.Contract{}, NewStateConflictError("proposal", proposalID, string(proposal.Status), string(entities.ProposalApproved))
	}

	if existing, err := u.contractRepo.GetByProposalID(ctx, proposalID); err != nil {
		return entities.Contract{}, err
	} else if existing.ID != "" {
		return entities.Contract{}, ErrContractExists
	}

	intake, err := u.intakeRepo.GetByID(ctx, proposal.IntakeID)
	if err != nil {
		return entities.Contract{}, err
	}
	if intake.ID == "" {
		return entities.Contract{}, NewNotFoundError("intake", proposal.IntakeID)
	}

	template, err := u.templateRepo.GetContractTemplate(ctx, templateID)
	if err != nil {
		return entities.Contract{}, err
	}
	if template.ID == "" {
		return entities.Contract{}, NewNotFoundError("contract template", templateID)
	}

	contractNumber := fmt.Sprintf("ENT-%s-%04d", now.Format("200601"), proposal.Sequence)
	content, err := renderContractContent(template, proposal, intake, contractNumber, now)
	if err != nil {
		return entities.Contract{}, err
	}

	seq, err := u.seqRepo.Next(ctx, "contracts")
	if err != nil {
		return entities.Contract{}, err
	}

	digest := sha256.Sum256([]byte(content))
	projectStart := now.AddDate(0, 0, 14)

	c := entities.Contract{
		ID:         uuid.NewString(),
		ProposalID: proposal.ID,
		TemplateID: template.ID,
		Sequence:   seq,

		ContractNumber: contractNumber,
		Title:          proposal.Content.Title,

		ClientLegalName:        intake.CompanyName,
		ClientSignatoryName:    intake.PrimaryContactName,
		ClientSignatoryTitle:   intake.PrimaryContactTitle,
		ClientSignatoryEmail:   intake.PrimaryContactEmail,
		ProviderSignatoryName:  providerSignatoryName,
		ProviderSignatoryTitle: providerSignatoryTitle,

		TotalValue: proposal.Pricing.TotalCost,
		Schedule:   proposal.Schedule,

		ProjectStart:   projectStart,
		ProjectEnd:     projectStart.AddDate(0, 0, 7*proposal.TimelineWeeks),
		EffectiveDate:  now,
		ExpirationDate: now.AddDate(0, 0, 365),

		Content:       content,
		ContentDigest: hex.EncodeToString(digest[:]),

		Status:    entities.ContractDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.contractRepo.Create(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	log.Printf("[contract][usecase] contract generated contract_id=%s number=%s proposal_id=%s",
		created.ID, created.ContractNumber, proposal.ID)

	_, err = u.auditRepo.Append(ctx, entities.AuditEvent{
		ID:          uuid.NewString(),
		ProcessType: entities.ProcessSOWToContract,
		SourceID:    proposal.ID,
		TargetID:    created.ID,
		Trigger:     "automatic_trigger",
		Action:      entities.ActionContractGenerated,
		Status:      entities.AuditStatusCompleted,
		Payload: entities.AuditPayload{
			ContractNumber: created.ContractNumber,
			TotalCost:      created.TotalValue,
			Notes:          "contract generated from approved statement of work",
		},
		Actor:     "system",
		CreatedAt: now,
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return created, nil
}

// renderContractContent substitutes every named token in the template body.
// Tokens left behind after substitution mean the template and the data no
// longer agree; that is a computation error, not a partial contract.
func renderContractContent(
	template entities.ContractTemplate,
	proposal entities.Proposal,
	intake entities.IntakeRecord,
	contractNumber string,
	now time.Time,
) (string, error) {
	variables := map[string]string{
		"{{CONTRACT_NUMBER}}":      contractNumber,
		"{{CONTRACT_DATE}}":        now.Format("January 2, 2006"),
		"{{CLIENT_COMPANY_NAME}}":  intake.CompanyName,
		"{{CLIENT_CONTACT_NAME}}":  intake.PrimaryContactName,
		"{{CLIENT_CONTACT_TITLE}}": intake.PrimaryContactTitle,
		"{{CLIENT_EMAIL}}":         intake.PrimaryContactEmail,
		"{{PROJECT_TITLE}}":        proposal.Content.Title,
		"{{PROJECT_DESCRIPTION}}":  proposal.Content.Description,
		"{{TOTAL_CONTRACT_VALUE}}": "$" + proposal.Pricing.TotalCost.StringFixed(2),
		"{{PROJECT_TIMELINE}}":     fmt.Sprintf("%d weeks", proposal.TimelineWeeks),
		"{{DELIVERABLES}}":         proposal.Content.Deliverables,
		"{{PAYMENT_TERMS}}":        defaultPaymentTerms,
		"{{GOVERNING_LAW}}":        template.GoverningLaw,
		"{{LIABILITY_CAP}}":        fmt.Sprintf("%d%% of contract value", template.LiabilityCapPercentage),
		"{{WARRANTY_PERIOD}}":      fmt.Sprintf("%d months", template.WarrantyPeriodMonths),
		"{{PROVIDER_SIGNATORY}}":   providerSignatoryName + ", " + providerSignatoryTitle,
	}

	content := template.Body
	for token, value := range variables {
		content = strings.ReplaceAll(content, token, value)
	}

	if unmatched := placeholderPattern.FindAllString(content, -1); len(unmatched) > 0 {
		return "", NewComputationError("render contract", "unmatched template placeholders: "+strings.Join(unmatched, ", "))
	}
	return content, nil
}

// SendForSignature hands the rendered contract to the signature provider and
// moves Draft to SentForSignature.
func (u *ContractUseCase) SendForSignature(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	current, err := u.contractRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if current.ID == "" {
		return entities.Contract{}, NewNotFoundError("contract", id)
	}

	envelopeID, err := u.signatures.SendEnvelope(ctx, current.ContractNumber, current.ClientSignatoryEmail, current.Content)
	if err != nil {
		return entities.Contract{}, err
	}

	now := u.clock.Now().UTC()
	updated, err := u.contractRepo.UpdateStatusIfCurrent(ctx, id, entities.ContractDraft, entities.ContractSentForSignature, now)
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, NewStateConflictError("contract", id, string(current.Status), string(entities.ContractDraft))
	}
	if err := u.contractRepo.SetSignatureEnvelope(ctx, id, envelopeID); err != nil {
		return entities.Contract{}, err
	}
	updated.SignatureEnvelopeID = envelopeID
	return updated, nil
}

// MarkExecuted records full execution reported by the signature provider.
func (u *ContractUseCase) MarkExecuted(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	current, err := u.contractRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if current.ID == "" {
		return entities.Contract{}, NewNotFoundError("contract", id)
	}

	now := u.clock.Now().UTC()
	updated, err := u.contractRepo.UpdateStatusIfCurrent(ctx, id, entities.ContractSentForSignature, entities.ContractFullyExecuted, now)
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, NewStateConflictError("contract", id, string(current.Status), string(entities.ContractSentForSignature))
	}
	return updated, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.contractRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, NewNotFoundError("contract", id)
	}
	return c, nil
}
