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
	"github.com/shopspring/decimal"
)

const (
	defaultContractsTableName = "contracts"
	contractsProposalIDIndex  = "proposal_id-index"
)

type contractItem struct {
	ID         string `dynamodbav:"id"`
	ProposalID string `dynamodbav:"proposal_id"`
	TemplateID string `dynamodbav:"template_id"`
	Sequence   int    `dynamodbav:"sequence"`

	ContractNumber string `dynamodbav:"contract_number"`
	Title          string `dynamodbav:"title"`

	ClientLegalName        string `dynamodbav:"client_legal_name"`
	ClientSignatoryName    string `dynamodbav:"client_signatory_name"`
	ClientSignatoryTitle   string `dynamodbav:"client_signatory_title"`
	ClientSignatoryEmail   string `dynamodbav:"client_signatory_email"`
	ProviderSignatoryName  string `dynamodbav:"provider_signatory_name"`
	ProviderSignatoryTitle string `dynamodbav:"provider_signatory_title"`

	TotalValue string `dynamodbav:"total_value"`
	Schedule   string `dynamodbav:"payment_schedule"`

	ProjectStart       string `dynamodbav:"project_start_date"`
	ProjectEnd         string `dynamodbav:"project_end_date"`
	EffectiveDate      string `dynamodbav:"contract_effective_date"`
	ExpirationDate     string `dynamodbav:"contract_expiration_date"`
	SentForSignatureAt string `dynamodbav:"sent_for_signature_at,omitempty"`
	FullyExecutedAt    string `dynamodbav:"fully_executed_at,omitempty"`

	Content       string `dynamodbav:"content"`
	ContentDigest string `dynamodbav:"content_digest"`

	SignatureEnvelopeID string `dynamodbav:"signature_envelope_id,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)
//
// Lifecycle updates also stamp the matching date column (sent_for_signature_at,
// fully_executed_at) so the signing-duration metric can be computed later.

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	it := toContractItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Items) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) UpdateStatusIfCurrent(ctx context.Context, id string, expected, next entities.ContractStatus, at time.Time) (entities.Contract, error) {
	stamp := formatTime(at)

	expr := "SET #status = :next, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":next":       &types.AttributeValueMemberS{Value: string(next)},
		":updated_at": &types.AttributeValueMemberS{Value: stamp},
	}

	switch next {
	case entities.ContractSentForSignature:
		expr += ", #sent_at = :stamp"
		names["#sent_at"] = "sent_for_signature_at"
		values[":stamp"] = &types.AttributeValueMemberS{Value: stamp}
	case entities.ContractFullyExecuted:
		expr += ", #executed_at = :stamp"
		names["#executed_at"] = "fully_executed_at"
		values[":stamp"] = &types.AttributeValueMemberS{Value: stamp}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) SetSignatureEnvelope(ctx context.Context, id, envelopeID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #envelope_id = :envelope_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#envelope_id": "signature_envelope_id",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":envelope_id": &types.AttributeValueMemberS{Value: envelopeID},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

func (r *ContractDynamoRepository) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]entities.Contract, error) {
	var (
		items     []entities.Contract
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
			var it contractItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromContractItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startFrom = out.LastEvaluatedKey
	}
	return items, nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:         c.ID,
		ProposalID: c.ProposalID,
		TemplateID: c.TemplateID,
		Sequence:   c.Sequence,

		ContractNumber: c.ContractNumber,
		Title:          c.Title,

		ClientLegalName:        c.ClientLegalName,
		ClientSignatoryName:    c.ClientSignatoryName,
		ClientSignatoryTitle:   c.ClientSignatoryTitle,
		ClientSignatoryEmail:   c.ClientSignatoryEmail,
		ProviderSignatoryName:  c.ProviderSignatoryName,
		ProviderSignatoryTitle: c.ProviderSignatoryTitle,

		TotalValue: c.TotalValue.String(),
		Schedule:   jsonString(c.Schedule),

		ProjectStart:       formatTime(c.ProjectStart),
		ProjectEnd:         formatTime(c.ProjectEnd),
		EffectiveDate:      formatTime(c.EffectiveDate),
		ExpirationDate:     formatTime(c.ExpirationDate),
		SentForSignatureAt: formatTime(c.SentForSignatureAt),
		FullyExecutedAt:    formatTime(c.FullyExecutedAt),

		Content:       c.Content,
		ContentDigest: c.ContentDigest,

		SignatureEnvelopeID: c.SignatureEnvelopeID,

		Status:    string(c.Status),
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	total, _ := decimal.NewFromString(it.TotalValue)
	c := entities.Contract{
		ID:         it.ID,
		ProposalID: it.ProposalID,
		TemplateID: it.TemplateID,
		Sequence:   it.Sequence,

		ContractNumber: it.ContractNumber,
		Title:          it.Title,

		ClientLegalName:        it.ClientLegalName,
		ClientSignatoryName:    it.ClientSignatoryName,
		ClientSignatoryTitle:   it.ClientSignatoryTitle,
		ClientSignatoryEmail:   it.ClientSignatoryEmail,
		ProviderSignatoryName:  it.ProviderSignatoryName,
		ProviderSignatoryTitle: it.ProviderSignatoryTitle,

		TotalValue: total,

		ProjectStart:       parseTime(it.ProjectStart),
		ProjectEnd:         parseTime(it.ProjectEnd),
		EffectiveDate:      parseTime(it.EffectiveDate),
		ExpirationDate:     parseTime(it.ExpirationDate),
		SentForSignatureAt: parseTime(it.SentForSignatureAt),
		FullyExecutedAt:    parseTime(it.FullyExecutedAt),

		Content:       it.Content,
		ContentDigest: it.ContentDigest,

		SignatureEnvelopeID: it.SignatureEnvelopeID,

		Status:    entities.ContractStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	fromJSONString(it.Schedule, &c.Schedule)
	return c
}
