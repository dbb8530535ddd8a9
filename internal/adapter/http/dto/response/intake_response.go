package response

import (
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type QualificationResponse struct {
	PainScore            int    `json:"pain_score"`
	BudgetAuthorityScore int    `json:"budget_authority_score"`
	TimelineUrgencyScore int    `json:"timeline_urgency_score"`
	TechnicalFitScore    int    `json:"technical_fit_score"`
	OverallScore         int    `json:"overall_score"`
	Status               string `json:"status"`
}

type IntakeResponse struct {
	ID               string                `json:"id"`
	ProspectID       string                `json:"prospect_id"`
	CompanyName      string                `json:"company_name"`
	CompanySize      string                `json:"company_size"`
	Industry         string                `json:"industry"`
	WeeklyWasteHours int                   `json:"weekly_time_waste_hours"`
	CostInefficiency decimal.Decimal       `json:"cost_of_inefficiency"`
	BudgetRange      string                `json:"budget_range"`
	TimelineUrgency  string                `json:"timeline_urgency"`
	SalesRep         string                `json:"sales_rep"`
	Qualification    QualificationResponse `json:"qualification"`
	CallDate         time.Time             `json:"call_date"`
}

func FromIntake(rec entities.IntakeRecord) IntakeResponse {
	return IntakeResponse{
		ID:               rec.ID,
		ProspectID:       rec.ProspectID,
		CompanyName:      rec.CompanyName,
		CompanySize:      string(rec.CompanySize),
		Industry:         rec.Industry,
		WeeklyWasteHours: rec.WeeklyWasteHours,
		CostInefficiency: rec.CostInefficiency,
		BudgetRange:      string(rec.BudgetRange),
		TimelineUrgency:  string(rec.TimelineUrgency),
		SalesRep:         rec.SalesRep,
		Qualification: QualificationResponse{
			PainScore:            rec.Qualification.PainScore,
			BudgetAuthorityScore: rec.Qualification.BudgetAuthorityScore,
			TimelineUrgencyScore: rec.Qualification.TimelineUrgencyScore,
			TechnicalFitScore:    rec.Qualification.TechnicalFitScore,
			OverallScore:         rec.Qualification.OverallScore,
			Status:               string(rec.Qualification.Status),
		},
		CallDate: rec.CallDate,
	}
}
