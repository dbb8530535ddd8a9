package entities

import "strings"

// Canonical categorical vocabularies used across qualification scoring and
// pricing. Each dimension has exactly one lookup table so the scorer and the
// pricing calculator can never drift apart.

type CompanySize string

const (
	CompanySize1To10      CompanySize = "1-10"
	CompanySize11To50     CompanySize = "11-50"
	CompanySize51To200    CompanySize = "51-200"
	CompanySize201To500   CompanySize = "201-500"
	CompanySize501To1000  CompanySize = "501-1000"
	CompanySizeOver1000   CompanySize = "1000+"
)

type BudgetRange string

const (
	BudgetUnder25K     BudgetRange = "under_25k"
	Budget25KTo50K     BudgetRange = "25k_50k"
	Budget50KTo100K    BudgetRange = "50k_100k"
	Budget100KTo250K   BudgetRange = "100k_250k"
	Budget250KPlus     BudgetRange = "250k_plus"
	BudgetNotDisclosed BudgetRange = "not_disclosed"
)

type TimelineUrgency string

const (
	UrgencyImmediate TimelineUrgency = "immediate"
	Urgency1Month    TimelineUrgency = "1_month"
	Urgency3Months   TimelineUrgency = "3_months"
	Urgency6Months   TimelineUrgency = "6_months"
	Urgency12Months  TimelineUrgency = "12_months"
)

// budgetAuthorityPoints maps the disclosed budget range onto the 0-10
// budget-authority axis. Undisclosed (and unknown) ranges score 3.
var budgetAuthorityPoints = map[BudgetRange]int{
	BudgetUnder25K:     2,
	Budget25KTo50K:     4,
	Budget50KTo100K:    6,
	Budget100KTo250K:   8,
	Budget250KPlus:     10,
	BudgetNotDisclosed: 3,
}

func (b BudgetRange) AuthorityPoints() int {
	if pts, ok := budgetAuthorityPoints[b]; ok {
		return pts
	}
	return 3
}

func (b BudgetRange) Known() bool {
	_, ok := budgetAuthorityPoints[b]
	return ok
}

var urgencyPoints = map[TimelineUrgency]int{
	UrgencyImmediate: 10,
	Urgency1Month:    8,
	Urgency3Months:   6,
	Urgency6Months:   4,
	Urgency12Months:  2,
}

func (u TimelineUrgency) UrgencyPoints() int {
	if pts, ok := urgencyPoints[u]; ok {
		return pts
	}
	return 3
}

func (u TimelineUrgency) Known() bool {
	_, ok := urgencyPoints[u]
	return ok
}

// urgencyPremiums feeds the pricing complexity adjustment. A relaxed
// 12-month timeline earns a small concession.
var urgencyPremiums = map[TimelineUrgency]float64{
	UrgencyImmediate: 0.25,
	Urgency1Month:    0.15,
	Urgency3Months:   0.05,
	Urgency6Months:   0.0,
	Urgency12Months:  -0.05,
}

func (u TimelineUrgency) PricingPremium() float64 {
	return urgencyPremiums[u]
}

// sizeFitPoints captures the mid-market sweet spot on the technical-fit axis.
var sizeFitPoints = map[CompanySize]int{
	CompanySize1To10:     1,
	CompanySize11To50:    2,
	CompanySize51To200:   3,
	CompanySize201To500:  2,
	CompanySize501To1000: 1,
	CompanySizeOver1000:  1,
}

func (s CompanySize) FitPoints() int {
	if pts, ok := sizeFitPoints[s]; ok {
		return pts
	}
	return 1
}

func (s CompanySize) Known() bool {
	_, ok := sizeFitPoints[s]
	return ok
}

var sizePricingAdjustments = map[CompanySize]float64{
	CompanySize1To10:     -0.15,
	CompanySize11To50:    -0.05,
	CompanySize51To200:   0.0,
	CompanySize201To500:  0.10,
	CompanySize501To1000: 0.15,
	CompanySizeOver1000:  0.20,
}

func (s CompanySize) PricingAdjustment() float64 {
	return sizePricingAdjustments[s]
}

// Enterprise-scale companies qualify for the ongoing-management service.
func (s CompanySize) Enterprise() bool {
	switch s {
	case CompanySize201To500, CompanySize501To1000, CompanySizeOver1000:
		return true
	}
	return false
}

// highFitIndustries are the verticals the delivery team has repeat playbooks
// for; they earn a technical-fit bonus. Matched case-insensitively.
var highFitIndustries = map[string]struct{}{
	"technology":            {},
	"professional services": {},
	"healthcare":            {},
	"finance":               {},
	"real estate":           {},
}

func IndustryHighFit(industry string) bool {
	_, ok := highFitIndustries[strings.ToLower(strings.TrimSpace(industry))]
	return ok
}

// industryPremiums price in the regulatory overhead of certain verticals.
var industryPremiums = map[string]float64{
	"healthcare": 0.15,
	"finance":    0.20,
	"government": 0.25,
}

func IndustryPremium(industry string) float64 {
	return industryPremiums[strings.ToLower(strings.TrimSpace(industry))]
}
