package entities

import "github.com/shopspring/decimal"

// MinimumProjectValue is the price floor: no engagement is priced below it
// regardless of discounting.
var MinimumProjectValue = decimal.NewFromInt(25000)

// PricingBreakdown itemizes how a proposal total was reached.
//
// Invariant: TotalCost = max(BaseCost + AdditionalCost + ComplexityAdjustment
// - Discounts, MinimumProjectValue). ComplexityAdjustment may be negative;
// Discounts never is.
type PricingBreakdown struct {
	BaseCost             decimal.Decimal `json:"base_cost"`
	AdditionalCost       decimal.Decimal `json:"additional_cost"`
	ComplexityAdjustment decimal.Decimal `json:"complexity_adjustment"`
	Discounts            decimal.Decimal `json:"discounts"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	EstimatedHours       int             `json:"estimated_hours"`
	EffectiveHourlyRate  decimal.Decimal `json:"effective_hourly_rate"`
}
