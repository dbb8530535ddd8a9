package repository

import (
	"context"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultKickoffsTableName = "project_kickoffs"
	kickoffsContractIDIndex  = "contract_id-index"
)

type kickoffItem struct {
	ID         string `dynamodbav:"id"`
	ContractID string `dynamodbav:"contract_id"`
	TemplateID string `dynamodbav:"template_id"`
	Sequence   int    `dynamodbav:"sequence"`

	ProjectCode    string   `dynamodbav:"project_code"`
	ProjectName    string   `dynamodbav:"project_name"`
	ProjectManager string   `dynamodbav:"project_manager"`
	ScheduledDate  string   `dynamodbav:"kickoff_scheduled_date"`
	Deliverables   []string `dynamodbav:"kickoff_deliverables"`

	CreatedAt string `dynamodbav:"created_at"`
}

// KickoffDynamoRepository persists KickoffRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)

type KickoffDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IKickoffRepository = (*KickoffDynamoRepository)(nil)

func NewKickoffDynamoRepository(ddb *dynamodb.Client) *KickoffDynamoRepository {
	return &KickoffDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("KICKOFFS_TABLE", defaultKickoffsTableName),
	}
}

func (r *KickoffDynamoRepository) Create(ctx context.Context, k entities.KickoffRecord) (entities.KickoffRecord, error) {
	it := toKickoffItem(k)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.KickoffRecord{}, err
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
		return entities.KickoffRecord{}, err
	}
	return k, nil
}

func (r *KickoffDynamoRepository) GetByID(ctx context.Context, id string) (entities.KickoffRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.KickoffRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.KickoffRecord{}, nil
	}

	var it kickoffItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.KickoffRecord{}, err
	}
	return fromKickoffItem(it), nil
}

func (r *KickoffDynamoRepository) GetByContractID(ctx context.Context, contractID string) (entities.KickoffRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(kickoffsContractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.KickoffRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.KickoffRecord{}, nil
	}

	var it kickoffItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.KickoffRecord{}, err
	}
	return fromKickoffItem(it), nil
}

func toKickoffItem(k entities.KickoffRecord) kickoffItem {
	return kickoffItem{
		ID:         k.ID,
		ContractID: k.ContractID,
		TemplateID: k.TemplateID,
		Sequence:   k.Sequence,

		ProjectCode:    k.ProjectCode,
		ProjectName:    k.ProjectName,
		ProjectManager: k.ProjectManager,
		ScheduledDate:  formatTime(k.ScheduledDate),
		Deliverables:   k.Deliverables,

		CreatedAt: formatTime(k.CreatedAt),
	}
}

func fromKickoffItem(it kickoffItem) entities.KickoffRecord {
	return entities.KickoffRecord{
		ID:         it.ID,
		ContractID: it.ContractID,
		TemplateID: it.TemplateID,
		Sequence:   it.Sequence,

		ProjectCode:    it.ProjectCode,
		ProjectName:    it.ProjectName,
		ProjectManager: it.ProjectManager,
		ScheduledDate:  parseTime(it.ScheduledDate),
		Deliverables:   it.Deliverables,

		CreatedAt: parseTime(it.CreatedAt),
	}
}
