package usecase

import (
	"strings"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RecommendServices selects catalog entries and quantities from intake
// signals. The rules are independent and combine; a missing catalog entry
// for a matched rule is skipped silently (catalog incompleteness is not a
// pipeline failure).
func RecommendServices(in entities.IntakeRecord, catalog []entities.ServiceCatalogEntry) []entities.ServiceSelection {
	byCategory := map[entities.ServiceCategory]entities.ServiceCatalogEntry{}
	for _, entry := range catalog {
		if !entry.Active {
			continue
		}
		if _, ok := byCategory[entry.Category]; !ok {
			byCategory[entry.Category] = entry
		}
	}

	var selections []entities.ServiceSelection

	// Core automation development, scaled by requirement complexity.
	if svc, ok := byCategory[entities.CategoryAutomationDevelopment]; ok {
		multiplier := complexityMultiplier(in)
		factor := decimal.NewFromFloat(multiplier)
		selections = append(selections, entities.ServiceSelection{
			ServiceID:            svc.ID,
			Name:                 svc.Name,
			Category:             svc.Category,
			Price:                svc.BasePrice.Mul(factor),
			Hours:                int(factor.Mul(decimal.NewFromInt(int64(svc.BaseHours))).IntPart()),
			Quantity:             1,
			ComplexityMultiplier: multiplier,
		})
	}

	if in.WeeklyWasteHours > 10 {
		if svc, ok := byCategory[entities.CategoryProcessOptimization]; ok {
			selections = append(selections, baseSelection(svc, 1))
		}
	}

	integrationText := strings.ToLower(in.IntegrationRequirements)
	if strings.Contains(integrationText, "integration") {
		if svc, ok := byCategory[entities.CategoryIntegrationSetup]; ok {
			count := strings.Count(integrationText, "api") + strings.Count(integrationText, "system") + 1
			if count > 5 {
				count = 5
			}
			selections = append(selections, baseSelection(svc, count))
		}
	}

	if in.CompanySize.Enterprise() {
		if svc, ok := byCategory[entities.CategoryOngoingManagement]; ok {
			selections = append(selections, baseSelection(svc, 1))
		}
	}

	if in.TeamSizeAffected > 10 {
		if svc, ok := byCategory[entities.CategoryTraining]; ok {
			selections = append(selections, baseSelection(svc, 1))
		}
	}

	return selections
}

func baseSelection(svc entities.ServiceCatalogEntry, quantity int) entities.ServiceSelection {
	return entities.ServiceSelection{
		ServiceID: svc.ID,
		Name:      svc.Name,
		Category:  svc.Category,
		Price:     svc.BasePrice,
		Hours:     svc.BaseHours,
		Quantity:  quantity,
	}
}

// complexityMultiplier starts at 1.0 and grows with integration, compliance
// and security requirement depth plus affected-team size.
func complexityMultiplier(in entities.IntakeRecord) float64 {
	m := 1.0
	if len(in.IntegrationRequirements) > 100 {
		m += 0.3
	}
	if len(in.ComplianceRequirements) > 50 {
		m += 0.2
	}
	if len(in.SecurityRequirements) > 50 {
		m += 0.2
	}
	if in.TeamSizeAffected > 20 {
		m += 0.3
	}
	return m
}
