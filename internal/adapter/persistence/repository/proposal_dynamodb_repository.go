package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName = "proposals"
	proposalsIntakeIDIndex    = "intake_id-index"
)

type proposalItem struct {
	ID       string `dynamodbav:"id"`
	IntakeID string `dynamodbav:"intake_id"`
	Sequence int    `dynamodbav:"sequence"`

	// Document sections are stored as JSON strings; decimal amounts survive
	// round trips because the entity json tags emit them as exact strings.
	Content  string `dynamodbav:"content"`
	Services string `dynamodbav:"services"`
	Pricing  string `dynamodbav:"pricing"`
	Phases   string `dynamodbav:"phases"`
	Schedule string `dynamodbav:"payment_schedule"`

	TimelineWeeks int    `dynamodbav:"timeline_weeks"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	ExpiresAt     string `dynamodbav:"expires_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: intake_id-index (PK: intake_id)
//
// Status transitions go through a conditional update keyed on the current
// status, so two callers racing the same transition cannot both win.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) GetByIntakeID(ctx context.Context, intakeID string) (entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsIntakeIDIndex),
		KeyConditionExpression: aws.String("intake_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: intakeID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Items) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) UpdateStatusIfCurrent(ctx context.Context, id string, expected, next entities.ProposalStatus) (entities.Proposal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":next":       &types.AttributeValueMemberS{Value: string(next)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]entities.Proposal, error) {
	var (
		items     []entities.Proposal
		startFrom map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#created_at BETWEEN :from AND :to"),
			ExpressionAttributeNames: map[string]string{
				"#created_at": "created_at",
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
			var it proposalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromProposalItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startFrom = out.LastEvaluatedKey
	}
	return items, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:       p.ID,
		IntakeID: p.IntakeID,
		Sequence: p.Sequence,

		Content:  jsonString(p.Content),
		Services: jsonString(p.Services),
		Pricing:  jsonString(p.Pricing),
		Phases:   jsonString(p.Phases),
		Schedule: jsonString(p.Schedule),

		TimelineWeeks: p.TimelineWeeks,
		Status:        string(p.Status),
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
		ExpiresAt:     formatTime(p.ExpiresAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	p := entities.Proposal{
		ID:            it.ID,
		IntakeID:      it.IntakeID,
		Sequence:      it.Sequence,
		TimelineWeeks: it.TimelineWeeks,
		Status:        entities.ProposalStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		ExpiresAt:     parseTime(it.ExpiresAt),
	}
	fromJSONString(it.Content, &p.Content)
	fromJSONString(it.Services, &p.Services)
	fromJSONString(it.Pricing, &p.Pricing)
	fromJSONString(it.Phases, &p.Phases)
	fromJSONString(it.Schedule, &p.Schedule)
	return p
}
