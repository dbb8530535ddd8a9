package entities

import "github.com/shopspring/decimal"

// ServiceCategory tags a catalog entry with the recommendation rule family it
// belongs to.
type ServiceCategory string

const (
	CategoryAutomationDevelopment ServiceCategory = "automation_development"
	CategoryProcessOptimization   ServiceCategory = "process_optimization"
	CategoryIntegrationSetup      ServiceCategory = "integration_setup"
	CategoryOngoingManagement     ServiceCategory = "ongoing_management"
	CategoryTraining              ServiceCategory = "training"
)

// ServiceCatalogEntry is read-only reference data owned by the catalog table.
//
// Storage model (DynamoDB):
//   - PK: id
type ServiceCatalogEntry struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  ServiceCategory `json:"category"`
	BasePrice decimal.Decimal `json:"base_price"`
	BaseHours int             `json:"base_hours"`
	Active    bool            `json:"active"`
}

// ServiceSelection is a catalog entry chosen for a proposal, with quantity
// and any per-selection customization applied. Price and Hours already
// reflect the complexity multiplier.
type ServiceSelection struct {
	ServiceID            string          `json:"service_id"`
	Name                 string          `json:"name"`
	Category             ServiceCategory `json:"category"`
	Price                decimal.Decimal `json:"price"`
	Hours                int             `json:"hours"`
	Quantity             int             `json:"quantity"`
	ComplexityMultiplier float64         `json:"complexity_multiplier,omitempty"`
}
