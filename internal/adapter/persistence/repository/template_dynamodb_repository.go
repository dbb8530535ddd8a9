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
	defaultContractTemplatesTableName = "contract_templates"
	defaultKickoffTemplatesTableName  = "kickoff_templates"
)

type contractTemplateItem struct {
	ID                     string `dynamodbav:"id"`
	Name                   string `dynamodbav:"name"`
	Body                   string `dynamodbav:"body"`
	GoverningLaw           string `dynamodbav:"governing_law"`
	LiabilityCapPercentage int    `dynamodbav:"liability_cap_percentage"`
	WarrantyPeriodMonths   int    `dynamodbav:"warranty_period_months"`
}

type kickoffTemplateItem struct {
	Tier                string   `dynamodbav:"tier"`
	ID                  string   `dynamodbav:"id"`
	Name                string   `dynamodbav:"name"`
	InitialDeliverables []string `dynamodbav:"initial_deliverables"`
}

// TemplateDynamoRepository reads contract and kickoff templates.
//
// Table requirements:
//   - contract_templates: PK: id (string)
//   - kickoff_templates:  PK: tier (string)
//
// Kickoff templates are keyed by tier directly to guarantee one template per
// tier, which keeps tier selection a single GetItem.

type TemplateDynamoRepository struct {
	ddb                    *dynamodb.Client
	contractTemplatesTable string
	kickoffTemplatesTable  string
}

var _ interfaces.ITemplateRepository = (*TemplateDynamoRepository)(nil)

func NewTemplateDynamoRepository(ddb *dynamodb.Client) *TemplateDynamoRepository {
	return &TemplateDynamoRepository{
		ddb:                    ddb,
		contractTemplatesTable: getenvDefault("CONTRACT_TEMPLATES_TABLE", defaultContractTemplatesTableName),
		kickoffTemplatesTable:  getenvDefault("KICKOFF_TEMPLATES_TABLE", defaultKickoffTemplatesTableName),
	}
}

func (r *TemplateDynamoRepository) GetContractTemplate(ctx context.Context, id string) (entities.ContractTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.contractTemplatesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractTemplate{}, nil
	}

	var it contractTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractTemplate{}, err
	}
	return entities.ContractTemplate{
		ID:                     it.ID,
		Name:                   it.Name,
		Body:                   it.Body,
		GoverningLaw:           it.GoverningLaw,
		LiabilityCapPercentage: it.LiabilityCapPercentage,
		WarrantyPeriodMonths:   it.WarrantyPeriodMonths,
	}, nil
}

func (r *TemplateDynamoRepository) GetKickoffTemplateByTier(ctx context.Context, tier entities.KickoffTemplateTier) (entities.KickoffTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.kickoffTemplatesTable),
		Key: map[string]types.AttributeValue{
			"tier": &types.AttributeValueMemberS{Value: string(tier)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.KickoffTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.KickoffTemplate{}, nil
	}

	var it kickoffTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.KickoffTemplate{}, err
	}
	return entities.KickoffTemplate{
		ID:                  it.ID,
		Tier:                entities.KickoffTemplateTier(it.Tier),
		Name:                it.Name,
		InitialDeliverables: it.InitialDeliverables,
	}, nil
}
