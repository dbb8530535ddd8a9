package usecase

import (
	"strings"
	"testing"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func testCatalog() []entities.ServiceCatalogEntry {
	return []entities.ServiceCatalogEntry{
		{ID: "svc-auto", Name: "Automation Development", Category: entities.CategoryAutomationDevelopment,
			BasePrice: decimal.NewFromInt(15000), BaseHours: 100, Active: true},
		{ID: "svc-opt", Name: "Process Optimization", Category: entities.CategoryProcessOptimization,
			BasePrice: decimal.NewFromInt(8000), BaseHours: 40, Active: true},
		{ID: "svc-int", Name: "Integration Setup", Category: entities.CategoryIntegrationSetup,
			BasePrice: decimal.NewFromInt(5000), BaseHours: 25, Active: true},
		{ID: "svc-mgmt", Name: "Ongoing Management", Category: entities.CategoryOngoingManagement,
			BasePrice: decimal.NewFromInt(3000), BaseHours: 20, Active: true},
		{ID: "svc-train", Name: "Team Training", Category: entities.CategoryTraining,
			BasePrice: decimal.NewFromInt(2500), BaseHours: 16, Active: true},
	}
}

func selectionByService(t *testing.T, selections []entities.ServiceSelection, serviceID string) entities.ServiceSelection {
	t.Helper()
	for _, s := range selections {
		if s.ServiceID == serviceID {
			return s
		}
	}
	t.Fatalf("expected selection for %s, got %+v", serviceID, selections)
	return entities.ServiceSelection{}
}

func TestRecommendServices(t *testing.T) {
	t.Run("baseline recommends automation only", func(t *testing.T) {
		in := entities.IntakeRecord{
			WeeklyWasteHours: 5,
			CompanySize:      entities.CompanySize11To50,
			TeamSizeAffected: 3,
		}

		selections := RecommendServices(in, testCatalog())

		if len(selections) != 1 {
			t.Fatalf("expected 1 selection, got %d", len(selections))
		}
		auto := selections[0]
		if auto.ServiceID != "svc-auto" {
			t.Fatalf("expected automation service, got %s", auto.ServiceID)
		}
		if auto.ComplexityMultiplier != 1.0 {
			t.Fatalf("expected multiplier 1.0, got %f", auto.ComplexityMultiplier)
		}
		if !auto.Price.Equal(decimal.NewFromInt(15000)) {
			t.Fatalf("expected base price 15000, got %s", auto.Price)
		}
	})

	t.Run("full complexity doubles automation scope", func(t *testing.T) {
		in := entities.IntakeRecord{
			IntegrationRequirements: strings.Repeat("deep integration with legacy platforms ", 3),
			ComplianceRequirements:  strings.Repeat("SOC2 and HIPAA controls ", 3),
			SecurityRequirements:    strings.Repeat("SSO, audit trails, encryption ", 2),
			TeamSizeAffected:        25,
		}

		selections := RecommendServices(in, testCatalog())
		auto := selectionByService(t, selections, "svc-auto")

		if auto.ComplexityMultiplier != 2.0 {
			t.Fatalf("expected multiplier 2.0, got %f", auto.ComplexityMultiplier)
		}
		if !auto.Price.Equal(decimal.NewFromInt(30000)) {
			t.Fatalf("expected price 30000, got %s", auto.Price)
		}
		if auto.Hours != 200 {
			t.Fatalf("expected 200 hours, got %d", auto.Hours)
		}
	})

	t.Run("heavy waste adds process optimization", func(t *testing.T) {
		in := entities.IntakeRecord{WeeklyWasteHours: 11}

		selections := RecommendServices(in, testCatalog())
		opt := selectionByService(t, selections, "svc-opt")

		if opt.Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", opt.Quantity)
		}
	})

	t.Run("integration quantity counts named touchpoints", func(t *testing.T) {
		in := entities.IntakeRecord{
			IntegrationRequirements: "integration with the billing api, the crm api and the inventory system",
		}

		selections := RecommendServices(in, testCatalog())
		integ := selectionByService(t, selections, "svc-int")

		// Two "api" mentions plus one "system" plus the baseline.
		if integ.Quantity != 4 {
			t.Fatalf("expected quantity 4, got %d", integ.Quantity)
		}
	})

	t.Run("integration quantity caps at five", func(t *testing.T) {
		in := entities.IntakeRecord{
			IntegrationRequirements: "integration: api api api api api api system system",
		}

		selections := RecommendServices(in, testCatalog())
		integ := selectionByService(t, selections, "svc-int")

		if integ.Quantity != 5 {
			t.Fatalf("expected capped quantity 5, got %d", integ.Quantity)
		}
	})

	t.Run("enterprise scale adds ongoing management", func(t *testing.T) {
		in := entities.IntakeRecord{CompanySize: entities.CompanySize501To1000}

		selections := RecommendServices(in, testCatalog())
		selectionByService(t, selections, "svc-mgmt")
	})

	t.Run("large affected team adds training", func(t *testing.T) {
		in := entities.IntakeRecord{TeamSizeAffected: 11}

		selections := RecommendServices(in, testCatalog())
		selectionByService(t, selections, "svc-train")
	})

	t.Run("inactive entries are ignored", func(t *testing.T) {
		catalog := testCatalog()
		for i := range catalog {
			catalog[i].Active = false
		}

		selections := RecommendServices(entities.IntakeRecord{WeeklyWasteHours: 30, TeamSizeAffected: 50}, catalog)
		if len(selections) != 0 {
			t.Fatalf("expected no selections from inactive catalog, got %d", len(selections))
		}
	})

	t.Run("missing catalog entry for a matched rule is skipped", func(t *testing.T) {
		catalog := []entities.ServiceCatalogEntry{testCatalog()[0]}
		in := entities.IntakeRecord{WeeklyWasteHours: 30, TeamSizeAffected: 50, CompanySize: entities.CompanySizeOver1000}

		selections := RecommendServices(in, catalog)
		if len(selections) != 1 {
			t.Fatalf("expected only the automation selection, got %d", len(selections))
		}
	})
}
