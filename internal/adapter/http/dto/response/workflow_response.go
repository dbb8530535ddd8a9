package response

import (
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"
)

type AuditEventResponse struct {
	ID          string                `json:"id"`
	ProcessType string                `json:"process_type"`
	SourceID    string                `json:"source_id"`
	TargetID    string                `json:"target_id,omitempty"`
	Trigger     string                `json:"trigger"`
	Action      string                `json:"action"`
	Status      string                `json:"status"`
	Payload     entities.AuditPayload `json:"payload"`
	Actor       string                `json:"actor"`
	CreatedAt   time.Time             `json:"created_at"`
}

func FromAuditEvent(ev entities.AuditEvent) AuditEventResponse {
	return AuditEventResponse{
		ID:          ev.ID,
		ProcessType: string(ev.ProcessType),
		SourceID:    ev.SourceID,
		TargetID:    ev.TargetID,
		Trigger:     ev.Trigger,
		Action:      string(ev.Action),
		Status:      ev.Status,
		Payload:     ev.Payload,
		Actor:       ev.Actor,
		CreatedAt:   ev.CreatedAt,
	}
}

type WorkflowStatusResponse struct {
	Events []AuditEventResponse `json:"events"`
}

func FromAuditEvents(events []entities.AuditEvent) WorkflowStatusResponse {
	out := WorkflowStatusResponse{Events: make([]AuditEventResponse, 0, len(events))}
	for _, ev := range events {
		out.Events = append(out.Events, FromAuditEvent(ev))
	}
	return out
}

// DiscoveryOutcomeResponse is the result of running the discovery stage of
// the pipeline: the scored intake, plus the generated proposal when the
// prospect qualified.
type DiscoveryOutcomeResponse struct {
	Intake   IntakeResponse    `json:"intake"`
	Proposal *ProposalResponse `json:"proposal,omitempty"`
}

func FromDiscoveryOutcome(intake entities.IntakeRecord, proposal *entities.Proposal) DiscoveryOutcomeResponse {
	out := DiscoveryOutcomeResponse{Intake: FromIntake(intake)}
	if proposal != nil {
		p := FromProposal(*proposal)
		out.Proposal = &p
	}
	return out
}

type AnalyticsResponse struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	usecase.AnalyticsReport
}

func FromAnalyticsReport(from, to time.Time, report usecase.AnalyticsReport) AnalyticsResponse {
	return AnalyticsResponse{
		PeriodStart:     from,
		PeriodEnd:       to,
		AnalyticsReport: report,
	}
}
