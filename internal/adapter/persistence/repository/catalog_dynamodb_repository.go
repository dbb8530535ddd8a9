package repository

import (
	"context"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultServiceCatalogTableName = "service_catalog"

type serviceCatalogItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Category  string `dynamodbav:"category"`
	BasePrice string `dynamodbav:"base_price"`
	BaseHours int    `dynamodbav:"base_hours"`
	Active    bool   `dynamodbav:"active"`
}

// ServiceCatalogDynamoRepository reads the service catalog reference data.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small and seeded out of band; a full scan per read is fine.

type ServiceCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogDynamoRepository)(nil)

func NewServiceCatalogDynamoRepository(ddb *dynamodb.Client) *ServiceCatalogDynamoRepository {
	return &ServiceCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_CATALOG_TABLE", defaultServiceCatalogTableName),
	}
}

func (r *ServiceCatalogDynamoRepository) ListActive(ctx context.Context) ([]entities.ServiceCatalogEntry, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.ServiceCatalogEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceCatalogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromServiceCatalogItem(it))
	}
	return entries, nil
}

func fromServiceCatalogItem(it serviceCatalogItem) entities.ServiceCatalogEntry {
	price, _ := decimal.NewFromString(it.BasePrice)
	return entities.ServiceCatalogEntry{
		ID:        it.ID,
		Name:      it.Name,
		Category:  entities.ServiceCategory(it.Category),
		BasePrice: price,
		BaseHours: it.BaseHours,
		Active:    it.Active,
	}
}
