package repository

import (
	"context"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultIntakesTableName = "discovery_intakes"

type intakeItem struct {
	ID         string `dynamodbav:"id"`
	ProspectID string `dynamodbav:"prospect_id"`
	Sequence   int    `dynamodbav:"sequence"`

	CompanyName   string `dynamodbav:"company_name"`
	CompanySize   string `dynamodbav:"company_size"`
	Industry      string `dynamodbav:"industry"`
	AnnualRevenue string `dynamodbav:"annual_revenue"`

	PrimaryContactName  string `dynamodbav:"primary_contact_name"`
	PrimaryContactEmail string `dynamodbav:"primary_contact_email"`
	PrimaryContactTitle string `dynamodbav:"primary_contact_title"`
	DecisionMakerName   string `dynamodbav:"decision_maker_name,omitempty"`
	DecisionMakerTitle  string `dynamodbav:"decision_maker_title,omitempty"`

	CurrentChallenges   string `dynamodbav:"current_challenges"`
	ManualProcesses     string `dynamodbav:"manual_processes"`
	WeeklyWasteHours    int    `dynamodbav:"weekly_waste_hours"`
	CostInefficiency    string `dynamodbav:"cost_inefficiency"`
	CurrentToolsSystems string `dynamodbav:"current_tools_systems"`
	TeamSizeAffected    int    `dynamodbav:"team_size_affected"`

	PrimaryObjectives       string `dynamodbav:"primary_objectives"`
	SuccessMetrics          string `dynamodbav:"success_metrics"`
	AutomationPriorities    string `dynamodbav:"automation_priorities"`
	IntegrationRequirements string `dynamodbav:"integration_requirements"`
	ComplianceRequirements  string `dynamodbav:"compliance_requirements"`
	SecurityRequirements    string `dynamodbav:"security_requirements"`

	BudgetRange      string `dynamodbav:"budget_range"`
	TimelineUrgency  string `dynamodbav:"timeline_urgency"`
	DecisionTimeline string `dynamodbav:"decision_timeline"`
	ROIExpectations  string `dynamodbav:"roi_expectations"`

	SalesRep            string `dynamodbav:"sales_rep"`
	CallDurationMinutes int    `dynamodbav:"call_duration_minutes"`
	NextSteps           string `dynamodbav:"next_steps"`
	CallNotes           string `dynamodbav:"call_notes"`

	PainScore            int    `dynamodbav:"pain_score"`
	BudgetAuthorityScore int    `dynamodbav:"budget_authority_score"`
	TimelineUrgencyScore int    `dynamodbav:"timeline_urgency_score"`
	TechnicalFitScore    int    `dynamodbav:"technical_fit_score"`
	OverallScore         int    `dynamodbav:"overall_score"`
	QualificationStatus  string `dynamodbav:"qualification_status"`

	CallDate string `dynamodbav:"call_date"`
}

// IntakeDynamoRepository persists IntakeRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Intakes are written once and never updated: the qualification scores are a
// function of the captured answers, so the row is an immutable snapshot.

type IntakeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIntakeRepository = (*IntakeDynamoRepository)(nil)

func NewIntakeDynamoRepository(ddb *dynamodb.Client) *IntakeDynamoRepository {
	return &IntakeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INTAKES_TABLE", defaultIntakesTableName),
	}
}

func (r *IntakeDynamoRepository) Create(ctx context.Context, rec entities.IntakeRecord) (entities.IntakeRecord, error) {
	it := toIntakeItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.IntakeRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.IntakeRecord{}, err
	}
	return rec, nil
}

func (r *IntakeDynamoRepository) GetByID(ctx context.Context, id string) (entities.IntakeRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IntakeRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.IntakeRecord{}, nil
	}

	var it intakeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.IntakeRecord{}, err
	}
	return fromIntakeItem(it), nil
}

func (r *IntakeDynamoRepository) ListByCallDateRange(ctx context.Context, from, to time.Time) ([]entities.IntakeRecord, error) {
	var (
		items     []entities.IntakeRecord
		startFrom map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#call_date BETWEEN :from AND :to"),
			ExpressionAttributeNames: map[string]string{
				"#call_date": "call_date",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from": &types.AttributeValueMemberS{Value: formatTime(from)},
				":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
			},
			ExclusiveStartKey: startFrom,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it intakeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromIntakeItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startFrom = out.LastEvaluatedKey
	}
	return items, nil
}

func toIntakeItem(rec entities.IntakeRecord) intakeItem {
	return intakeItem{
		ID:         rec.ID,
		ProspectID: rec.ProspectID,
		Sequence:   rec.Sequence,

		CompanyName:   rec.CompanyName,
		CompanySize:   string(rec.CompanySize),
		Industry:      rec.Industry,
		AnnualRevenue: rec.AnnualRevenue,

		PrimaryContactName:  rec.PrimaryContactName,
		PrimaryContactEmail: rec.PrimaryContactEmail,
		PrimaryContactTitle: rec.PrimaryContactTitle,
		DecisionMakerName:   rec.DecisionMakerName,
		DecisionMakerTitle:  rec.DecisionMakerTitle,

		CurrentChallenges:   rec.CurrentChallenges,
		ManualProcesses:     rec.ManualProcesses,
		WeeklyWasteHours:    rec.WeeklyWasteHours,
		CostInefficiency:    rec.CostInefficiency.String(),
		CurrentToolsSystems: rec.CurrentToolsSystems,
		TeamSizeAffected:    rec.TeamSizeAffected,

		PrimaryObjectives:       rec.PrimaryObjectives,
		SuccessMetrics:          rec.SuccessMetrics,
		AutomationPriorities:    rec.AutomationPriorities,
		IntegrationRequirements: rec.IntegrationRequirements,
		ComplianceRequirements:  rec.ComplianceRequirements,
		SecurityRequirements:    rec.SecurityRequirements,

		BudgetRange:      string(rec.BudgetRange),
		TimelineUrgency:  string(rec.TimelineUrgency),
		DecisionTimeline: rec.DecisionTimeline,
		ROIExpectations:  rec.ROIExpectations,

		SalesRep:            rec.SalesRep,
		CallDurationMinutes: rec.CallDurationMinutes,
		NextSteps:           rec.NextSteps,
		CallNotes:           rec.CallNotes,

		PainScore:            rec.Qualification.PainScore,
		BudgetAuthorityScore: rec.Qualification.BudgetAuthorityScore,
		TimelineUrgencyScore: rec.Qualification.TimelineUrgencyScore,
		TechnicalFitScore:    rec.Qualification.TechnicalFitScore,
		OverallScore:         rec.Qualification.OverallScore,
		QualificationStatus:  string(rec.Qualification.Status),

		CallDate: formatTime(rec.CallDate),
	}
}

func fromIntakeItem(it intakeItem) entities.IntakeRecord {
	cost, _ := decimal.NewFromString(it.CostInefficiency)
	return entities.IntakeRecord{
		ID:         it.ID,
		ProspectID: it.ProspectID,
		Sequence:   it.Sequence,

		CompanyName:   it.CompanyName,
		CompanySize:   entities.CompanySize(it.CompanySize),
		Industry:      it.Industry,
		AnnualRevenue: it.AnnualRevenue,

		PrimaryContactName:  it.PrimaryContactName,
		PrimaryContactEmail: it.PrimaryContactEmail,
		PrimaryContactTitle: it.PrimaryContactTitle,
		DecisionMakerName:   it.DecisionMakerName,
		DecisionMakerTitle:  it.DecisionMakerTitle,

		CurrentChallenges:   it.CurrentChallenges,
		ManualProcesses:     it.ManualProcesses,
		WeeklyWasteHours:    it.WeeklyWasteHours,
		CostInefficiency:    cost,
		CurrentToolsSystems: it.CurrentToolsSystems,
		TeamSizeAffected:    it.TeamSizeAffected,

		PrimaryObjectives:       it.PrimaryObjectives,
		SuccessMetrics:          it.SuccessMetrics,
		AutomationPriorities:    it.AutomationPriorities,
		IntegrationRequirements: it.IntegrationRequirements,
		ComplianceRequirements:  it.ComplianceRequirements,
		SecurityRequirements:    it.SecurityRequirements,

		BudgetRange:      entities.BudgetRange(it.BudgetRange),
		TimelineUrgency:  entities.TimelineUrgency(it.TimelineUrgency),
		DecisionTimeline: it.DecisionTimeline,
		ROIExpectations:  it.ROIExpectations,

		SalesRep:            it.SalesRep,
		CallDurationMinutes: it.CallDurationMinutes,
		NextSteps:           it.NextSteps,
		CallNotes:           it.CallNotes,

		Qualification: entities.QualificationResult{
			PainScore:            it.PainScore,
			BudgetAuthorityScore: it.BudgetAuthorityScore,
			TimelineUrgencyScore: it.TimelineUrgencyScore,
			TechnicalFitScore:    it.TechnicalFitScore,
			OverallScore:         it.OverallScore,
			Status:               entities.QualificationStatus(it.QualificationStatus),
		},
		CallDate: parseTime(it.CallDate),
	}
}
