package usecase

import (
	"context"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DiscoveryStats aggregates scored discovery calls in range.
type DiscoveryStats struct {
	TotalCalls            int             `json:"total_calls"`
	QualifiedCount        int             `json:"qualified_count"`
	AvgQualificationScore float64         `json:"avg_qualification_score"`
	AvgCallDuration       float64         `json:"avg_call_duration_minutes"`
	AvgTimeWasteHours     float64         `json:"avg_time_waste_hours"`
	AvgCostInefficiency   decimal.Decimal `json:"avg_cost_inefficiency"`
}

// ProposalStats aggregates generated statements of work in range.
type ProposalStats struct {
	TotalProposals     int             `json:"total_proposals"`
	ApprovedCount      int             `json:"approved_count"`
	AvgProjectValue    decimal.Decimal `json:"avg_project_value"`
	TotalPipelineValue decimal.Decimal `json:"total_pipeline_value"`
	AvgTimelineWeeks   float64         `json:"avg_timeline_weeks"`
}

// ContractStats aggregates generated contracts in range. AvgSigningDays is
// the mean of (fully executed - sent for signature) over executed contracts.
type ContractStats struct {
	TotalContracts int             `json:"total_contracts"`
	ExecutedCount  int             `json:"executed_count"`
	ClosedRevenue  decimal.Decimal `json:"closed_revenue"`
	AvgSigningDays float64         `json:"avg_signing_days"`
}

// ConversionRates is the four-stage funnel, each step a percentage of the
// prior stage (zero when the denominator is zero).
type ConversionRates struct {
	CallToQualified float64 `json:"call_to_qualified"`
	QualifiedToSOW  float64 `json:"qualified_to_sow"`
	SOWToContract   float64 `json:"sow_to_contract"`
	Overall         float64 `json:"overall_conversion"`
}

// ProcessEfficiency is the automation success rate of one process type.
type ProcessEfficiency struct {
	Total       int     `json:"total"`
	Successful  int     `json:"successful"`
	SuccessRate float64 `json:"success_rate"`
}

type AnalyticsReport struct {
	DiscoveryCalls       DiscoveryStats                                   `json:"discovery_calls"`
	SOWGeneration        ProposalStats                                    `json:"sow_generation"`
	ContractExecution    ContractStats                                    `json:"contract_execution"`
	ConversionRates      ConversionRates                                  `json:"conversion_rates"`
	AutomationEfficiency map[entities.AuditProcessType]ProcessEfficiency `json:"automation_efficiency"`
}

// IAnalyticsUseCase is the pure read side: it aggregates persisted records
// over a date range and never raises for empty result sets.
type IAnalyticsUseCase interface {
	GetAnalytics(ctx context.Context, from, to time.Time) (AnalyticsReport, error)
}

type AnalyticsUseCase struct {
	intakeRepo   interfaces.IIntakeRepository
	proposalRepo interfaces.IProposalRepository
	contractRepo interfaces.IContractRepository
	auditRepo    interfaces.IAuditRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(
	intakeRepo interfaces.IIntakeRepository,
	proposalRepo interfaces.IProposalRepository,
	contractRepo interfaces.IContractRepository,
	auditRepo interfaces.IAuditRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		intakeRepo:   intakeRepo,
		proposalRepo: proposalRepo,
		contractRepo: contractRepo,
		auditRepo:    auditRepo,
	}
}

func (u *AnalyticsUseCase) GetAnalytics(ctx context.Context, from, to time.Time) (AnalyticsReport, error) {
	report := AnalyticsReport{
		AutomationEfficiency: map[entities.AuditProcessType]ProcessEfficiency{},
	}

	intakes, err := u.intakeRepo.ListByCallDateRange(ctx, from, to)
	if err != nil {
		return AnalyticsReport{}, err
	}
	report.DiscoveryCalls = aggregateDiscovery(intakes)

	proposals, err := u.proposalRepo.ListByCreatedRange(ctx, from, to)
	if err != nil {
		return AnalyticsReport{}, err
	}
	report.SOWGeneration = aggregateProposals(proposals)

	contracts, err := u.contractRepo.ListByCreatedRange(ctx, from, to)
	if err != nil {
		return AnalyticsReport{}, err
	}
	report.ContractExecution = aggregateContracts(contracts)

	report.ConversionRates = conversionRates(
		report.DiscoveryCalls.TotalCalls,
		report.DiscoveryCalls.QualifiedCount,
		report.SOWGeneration.ApprovedCount,
		report.ContractExecution.ExecutedCount,
	)

	events, err := u.auditRepo.ListByTimeRange(ctx, from, to)
	if err != nil {
		return AnalyticsReport{}, err
	}
	for _, ev := range events {
		eff := report.AutomationEfficiency[ev.ProcessType]
		eff.Total++
		if ev.Status == entities.AuditStatusCompleted {
			eff.Successful++
		}
		report.AutomationEfficiency[ev.ProcessType] = eff
	}
	for pt, eff := range report.AutomationEfficiency {
		if eff.Total > 0 {
			eff.SuccessRate = float64(eff.Successful) / float64(eff.Total) * 100
		}
		report.AutomationEfficiency[pt] = eff
	}

	return report, nil
}

func aggregateDiscovery(intakes []entities.IntakeRecord) DiscoveryStats {
	stats := DiscoveryStats{AvgCostInefficiency: decimal.Zero}
	if len(intakes) == 0 {
		return stats
	}

	scoreSum, durationSum, wasteSum := 0, 0, 0
	costSum := decimal.Zero
	for _, in := range intakes {
		stats.TotalCalls++
		if in.Qualification.Status == entities.QualificationQualified {
			stats.QualifiedCount++
		}
		scoreSum += in.Qualification.OverallScore
		durationSum += in.CallDurationMinutes
		wasteSum += in.WeeklyWasteHours
		costSum = costSum.Add(in.CostInefficiency)
	}

	n := float64(stats.TotalCalls)
	stats.AvgQualificationScore = float64(scoreSum) / n
	stats.AvgCallDuration = float64(durationSum) / n
	stats.AvgTimeWasteHours = float64(wasteSum) / n
	stats.AvgCostInefficiency = costSum.DivRound(decimal.NewFromInt(int64(stats.TotalCalls)), 2)
	return stats
}

func aggregateProposals(proposals []entities.Proposal) ProposalStats {
	stats := ProposalStats{AvgProjectValue: decimal.Zero, TotalPipelineValue: decimal.Zero}
	if len(proposals) == 0 {
		return stats
	}

	weeksSum := 0
	for _, p := range proposals {
		stats.TotalProposals++
		if p.Status == entities.ProposalApproved {
			stats.ApprovedCount++
		}
		stats.TotalPipelineValue = stats.TotalPipelineValue.Add(p.Pricing.TotalCost)
		weeksSum += p.TimelineWeeks
	}
	stats.AvgProjectValue = stats.TotalPipelineValue.DivRound(decimal.NewFromInt(int64(stats.TotalProposals)), 2)
	stats.AvgTimelineWeeks = float64(weeksSum) / float64(stats.TotalProposals)
	return stats
}

func aggregateContracts(contracts []entities.Contract) ContractStats {
	stats := ContractStats{ClosedRevenue: decimal.Zero}

	signingDaysSum := 0.0
	signingSamples := 0
	for _, c := range contracts {
		stats.TotalContracts++
		if c.Status == entities.ContractFullyExecuted {
			stats.ExecutedCount++
			stats.ClosedRevenue = stats.ClosedRevenue.Add(c.TotalValue)
		}
		if !c.FullyExecutedAt.IsZero() && !c.SentForSignatureAt.IsZero() {
			signingDaysSum += c.FullyExecutedAt.Sub(c.SentForSignatureAt).Hours() / 24
			signingSamples++
		}
	}
	if signingSamples > 0 {
		stats.AvgSigningDays = signingDaysSum / float64(signingSamples)
	}
	return stats
}

func conversionRates(calls, qualified, approved, executed int) ConversionRates {
	rate := func(num, den int) float64 {
		if den == 0 {
			return 0
		}
		return float64(num) / float64(den) * 100
	}
	return ConversionRates{
		CallToQualified: rate(qualified, calls),
		QualifiedToSOW:  rate(approved, qualified),
		SOWToContract:   rate(executed, approved),
		Overall:         rate(executed, calls),
	}
}
