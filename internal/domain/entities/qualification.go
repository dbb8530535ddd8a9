package entities

// QualificationStatus decides whether the pipeline auto-advances from a
// scored discovery call to proposal generation.
type QualificationStatus string

const (
	QualificationQualified     QualificationStatus = "qualified"
	QualificationNurture       QualificationStatus = "nurture"
	QualificationPendingReview QualificationStatus = "pending_review"
	QualificationDisqualified  QualificationStatus = "disqualified"
)

// QualificationResult is a deterministic function of the intake record it was
// derived from. It is never mutated after creation.
//
// Sub-scores are each 0-10; the overall score is a weighted composite on a
// 0-100 scale (pain and budget authority weigh 30% each, timeline urgency and
// technical fit 20% each).
type QualificationResult struct {
	PainScore            int                 `json:"pain_score"`
	BudgetAuthorityScore int                 `json:"budget_authority_score"`
	TimelineUrgencyScore int                 `json:"timeline_urgency_score"`
	TechnicalFitScore    int                 `json:"technical_fit_score"`
	OverallScore         int                 `json:"overall_score"`
	Status               QualificationStatus `json:"status"`
}

// StatusForScore applies the inclusive qualification thresholds.
func StatusForScore(overall int) QualificationStatus {
	switch {
	case overall >= 70:
		return QualificationQualified
	case overall >= 50:
		return QualificationNurture
	case overall >= 30:
		return QualificationPendingReview
	default:
		return QualificationDisqualified
	}
}
