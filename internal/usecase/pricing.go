package usecase

import (
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	volumeDiscount200K    = decimal.NewFromInt(200000)
	volumeDiscount100K    = decimal.NewFromInt(100000)
	tenPercent            = decimal.NewFromFloat(0.10)
	fivePercent           = decimal.NewFromFloat(0.05)
)

// CalculateProjectPricing aggregates the selected services into a priced
// breakdown: company-size, industry and urgency adjustments on top of the
// base cost, volume plus new-client discounts, and the minimum-engagement
// floor.
func CalculateProjectPricing(in entities.IntakeRecord, services []entities.ServiceSelection) entities.PricingBreakdown {
	baseCost := decimal.Zero
	totalHours := 0
	for _, svc := range services {
		qty := decimal.NewFromInt(int64(svc.Quantity))
		baseCost = baseCost.Add(svc.Price.Mul(qty))
		totalHours += svc.Hours * svc.Quantity
	}

	adjustmentRate := in.CompanySize.PricingAdjustment() +
		entities.IndustryPremium(in.Industry) +
		in.TimelineUrgency.PricingPremium()
	adjustment := baseCost.Mul(decimal.NewFromFloat(adjustmentRate))

	discounts := decimal.Zero
	switch {
	case baseCost.GreaterThan(volumeDiscount200K):
		discounts = discounts.Add(baseCost.Mul(tenPercent))
	case baseCost.GreaterThan(volumeDiscount100K):
		discounts = discounts.Add(baseCost.Mul(fivePercent))
	}
	// Flat new-client discount.
	discounts = discounts.Add(baseCost.Mul(fivePercent))

	additional := decimal.Zero
	total := baseCost.Add(additional).Add(adjustment).Sub(discounts)
	if total.LessThan(entities.MinimumProjectValue) {
		total = entities.MinimumProjectValue
	}

	hourlyRate := decimal.Zero
	if totalHours > 0 {
		hourlyRate = total.DivRound(decimal.NewFromInt(int64(totalHours)), 2)
	}

	return entities.PricingBreakdown{
		BaseCost:             baseCost,
		AdditionalCost:       additional,
		ComplexityAdjustment: adjustment,
		Discounts:            discounts,
		TotalCost:            total,
		EstimatedHours:       totalHours,
		EffectiveHourlyRate:  hourlyRate,
	}
}
