package entities

import "time"

// KickoffTemplateTier is computed from the services a contract includes.
type KickoffTemplateTier string

const (
	KickoffTierComplex  KickoffTemplateTier = "complex"
	KickoffTierStandard KickoffTemplateTier = "standard"
	KickoffTierBasic    KickoffTemplateTier = "basic"
)

// KickoffTemplate is read-only reference data seeding the initial project
// deliverables for a tier.
type KickoffTemplate struct {
	ID                  string              `json:"id"`
	Tier                KickoffTemplateTier `json:"tier"`
	Name                string              `json:"name"`
	InitialDeliverables []string            `json:"initial_deliverables"`
}

// SelectKickoffTier picks the template tier from the included services:
// automation development plus a broad scope gets the complex runbook.
func SelectKickoffTier(services []ServiceSelection) KickoffTemplateTier {
	categories := map[ServiceCategory]struct{}{}
	hasAutomation := false
	for _, s := range services {
		categories[s.Category] = struct{}{}
		if s.Category == CategoryAutomationDevelopment {
			hasAutomation = true
		}
	}
	switch {
	case hasAutomation && len(categories) > 2:
		return KickoffTierComplex
	case hasAutomation:
		return KickoffTierStandard
	default:
		return KickoffTierBasic
	}
}

// KickoffRecord is the project-initiation record created after the first
// completed payment on a fully executed contract.
//
// Storage model (DynamoDB):
//   - PK: id
//   - contract_id carries the ownership link
type KickoffRecord struct {
	ID         string `json:"id"`
	ContractID string `json:"contract_id"`
	TemplateID string `json:"template_id"`
	Sequence   int    `json:"sequence"`

	ProjectCode    string    `json:"project_code"`
	ProjectName    string    `json:"project_name"`
	ProjectManager string    `json:"project_manager"`
	ScheduledDate  time.Time `json:"kickoff_scheduled_date"`
	Deliverables   []string  `json:"kickoff_deliverables"`

	CreatedAt time.Time `json:"created_at"`
}
