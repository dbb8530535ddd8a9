package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntakeRecord captures a discovery call with a prospect. Once scored it is
// an immutable snapshot: the qualification result is derived from exactly the
// values stored here and a later edit would invalidate it.
//
// Storage model (DynamoDB):
//   - PK: id
type IntakeRecord struct {
	ID         string `json:"id"`
	ProspectID string `json:"prospect_id"`
	Sequence   int    `json:"sequence"`

	// Company
	CompanyName   string      `json:"company_name"`
	CompanySize   CompanySize `json:"company_size"`
	Industry      string      `json:"industry"`
	AnnualRevenue string      `json:"annual_revenue"`

	// Contacts
	PrimaryContactName  string `json:"primary_contact_name"`
	PrimaryContactEmail string `json:"primary_contact_email"`
	PrimaryContactTitle string `json:"primary_contact_title"`
	DecisionMakerName   string `json:"decision_maker_name,omitempty"`
	DecisionMakerTitle  string `json:"decision_maker_title,omitempty"`

	// Current state
	CurrentChallenges    string          `json:"current_challenges"`
	ManualProcesses      string          `json:"manual_processes"`
	WeeklyWasteHours     int             `json:"weekly_waste_hours"`
	CostInefficiency     decimal.Decimal `json:"cost_inefficiency"`
	CurrentToolsSystems  string          `json:"current_tools_systems"`
	TeamSizeAffected     int             `json:"team_size_affected"`

	// Requirements
	PrimaryObjectives       string `json:"primary_objectives"`
	SuccessMetrics          string `json:"success_metrics"`
	AutomationPriorities    string `json:"automation_priorities"`
	IntegrationRequirements string `json:"integration_requirements"`
	ComplianceRequirements  string `json:"compliance_requirements"`
	SecurityRequirements    string `json:"security_requirements"`

	// Business case
	BudgetRange      BudgetRange     `json:"budget_range"`
	TimelineUrgency  TimelineUrgency `json:"timeline_urgency"`
	DecisionTimeline string          `json:"decision_timeline"`
	ROIExpectations  string          `json:"roi_expectations"`

	// Call metadata
	SalesRep            string `json:"sales_rep"`
	CallDurationMinutes int    `json:"call_duration_minutes"`
	NextSteps           string `json:"next_steps"`
	CallNotes           string `json:"call_notes"`

	Qualification QualificationResult `json:"qualification"`
	CallDate      time.Time           `json:"call_date"`
}
