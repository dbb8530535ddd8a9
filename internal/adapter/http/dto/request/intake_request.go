package request

import (
	"strings"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DiscoveryCallRequest is the intake payload captured on a discovery call.
// It carries everything the qualification scorer reads, so submitting it is
// enough to produce a fully scored intake record.
type DiscoveryCallRequest struct {
	ProspectID string `json:"prospect_id"`

	CompanyName   string `json:"company_name" binding:"required"`
	CompanySize   string `json:"company_size"`
	Industry      string `json:"industry"`
	AnnualRevenue string `json:"annual_revenue"`

	PrimaryContactName  string `json:"primary_contact_name" binding:"required"`
	PrimaryContactEmail string `json:"primary_contact_email" binding:"required"`
	PrimaryContactTitle string `json:"primary_contact_title"`
	DecisionMakerName   string `json:"decision_maker_name"`
	DecisionMakerTitle  string `json:"decision_maker_title"`

	CurrentChallenges   string          `json:"current_challenges"`
	ManualProcesses     string          `json:"manual_processes"`
	WeeklyWasteHours    int             `json:"weekly_time_waste_hours"`
	CostInefficiency    decimal.Decimal `json:"cost_of_inefficiency"`
	CurrentToolsSystems string          `json:"current_tools_systems"`
	TeamSizeAffected    int             `json:"team_size_affected"`

	PrimaryObjectives       string `json:"primary_objectives"`
	SuccessMetrics          string `json:"success_metrics"`
	AutomationPriorities    string `json:"automation_priorities"`
	IntegrationRequirements string `json:"integration_requirements"`
	ComplianceRequirements  string `json:"compliance_requirements"`
	SecurityRequirements    string `json:"security_requirements"`

	BudgetRange      string `json:"budget_range"`
	TimelineUrgency  string `json:"timeline_urgency"`
	DecisionTimeline string `json:"decision_timeline"`
	ROIExpectations  string `json:"roi_expectations"`

	SalesRep            string `json:"sales_rep"`
	CallDurationMinutes int    `json:"call_duration_minutes"`
	NextSteps           string `json:"next_steps"`
	CallNotes           string `json:"call_notes"`
}

func (r DiscoveryCallRequest) ResolveProspectID() string {
	return strings.TrimSpace(r.ProspectID)
}

func (r DiscoveryCallRequest) ToIntakeRecord() entities.IntakeRecord {
	return entities.IntakeRecord{
		CompanyName:   strings.TrimSpace(r.CompanyName),
		CompanySize:   entities.CompanySize(strings.TrimSpace(r.CompanySize)),
		Industry:      strings.TrimSpace(r.Industry),
		AnnualRevenue: strings.TrimSpace(r.AnnualRevenue),

		PrimaryContactName:  strings.TrimSpace(r.PrimaryContactName),
		PrimaryContactEmail: strings.TrimSpace(r.PrimaryContactEmail),
		PrimaryContactTitle: strings.TrimSpace(r.PrimaryContactTitle),
		DecisionMakerName:   strings.TrimSpace(r.DecisionMakerName),
		DecisionMakerTitle:  strings.TrimSpace(r.DecisionMakerTitle),

		CurrentChallenges:   r.CurrentChallenges,
		ManualProcesses:     r.ManualProcesses,
		WeeklyWasteHours:    r.WeeklyWasteHours,
		CostInefficiency:    r.CostInefficiency,
		CurrentToolsSystems: r.CurrentToolsSystems,
		TeamSizeAffected:    r.TeamSizeAffected,

		PrimaryObjectives:       r.PrimaryObjectives,
		SuccessMetrics:          r.SuccessMetrics,
		AutomationPriorities:    r.AutomationPriorities,
		IntegrationRequirements: r.IntegrationRequirements,
		ComplianceRequirements:  r.ComplianceRequirements,
		SecurityRequirements:    r.SecurityRequirements,

		BudgetRange:      entities.BudgetRange(strings.TrimSpace(r.BudgetRange)),
		TimelineUrgency:  entities.TimelineUrgency(strings.TrimSpace(r.TimelineUrgency)),
		DecisionTimeline: r.DecisionTimeline,
		ROIExpectations:  r.ROIExpectations,

		SalesRep:            strings.TrimSpace(r.SalesRep),
		CallDurationMinutes: r.CallDurationMinutes,
		NextSteps:           r.NextSteps,
		CallNotes:           r.CallNotes,
	}
}
