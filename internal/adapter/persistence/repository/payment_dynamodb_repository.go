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

const (
	defaultPaymentConfigsTableName      = "payment_configurations"
	defaultPaymentTransactionsTableName = "payment_transactions"
	paymentConfigsContractIDIndex       = "contract_id-index"
	paymentTransactionsConfigIDIndex    = "config_id-index"
)

type paymentConfigItem struct {
	ID         string `dynamodbav:"id"`
	ContractID string `dynamodbav:"contract_id"`
	Sequence   int    `dynamodbav:"sequence"`

	Provider    string `dynamodbav:"provider"`
	PaymentType string `dynamodbav:"payment_type"`
	TotalAmount string `dynamodbav:"total_amount"`
	Currency    string `dynamodbav:"currency"`
	Schedule    string `dynamodbav:"payment_schedule"`

	AutoInvoiceEnabled bool `dynamodbav:"auto_invoice_enabled"`
	LateFeeEnabled     bool `dynamodbav:"late_fee_enabled"`

	CreatedAt string `dynamodbav:"created_at"`
}

type paymentTransactionItem struct {
	ID       string `dynamodbav:"id"`
	ConfigID string `dynamodbav:"config_id"`

	Type                 string `dynamodbav:"type"`
	Amount               string `dynamodbav:"amount"`
	InvoiceNumber        string `dynamodbav:"invoice_number,omitempty"`
	InvoiceDueDate       string `dynamodbav:"invoice_due_date,omitempty"`
	MilestoneDescription string `dynamodbav:"milestone_description,omitempty"`
	PaymentMethod        string `dynamodbav:"payment_method,omitempty"`
	ProviderPaymentID    string `dynamodbav:"provider_payment_id,omitempty"`
	Status               string `dynamodbav:"status"`

	CreatedAt string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists payment configurations and their
// transactions in DynamoDB, one table each.
//
// Table requirements:
//   - payment_configurations: PK: id (string), GSI: contract_id-index
//   - payment_transactions:   PK: id (string), GSI: config_id-index

type PaymentDynamoRepository struct {
	ddb               *dynamodb.Client
	configsTableName  string
	transactionsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:               ddb,
		configsTableName:  getenvDefault("PAYMENT_CONFIGS_TABLE", defaultPaymentConfigsTableName),
		transactionsTable: getenvDefault("PAYMENT_TRANSACTIONS_TABLE", defaultPaymentTransactionsTableName),
	}
}

func (r *PaymentDynamoRepository) CreateConfiguration(ctx context.Context, cfg entities.PaymentConfiguration) (entities.PaymentConfiguration, error) {
	it := toPaymentConfigItem(cfg)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentConfiguration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.configsTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentConfiguration{}, err
	}
	return cfg, nil
}

func (r *PaymentDynamoRepository) GetConfigurationByID(ctx context.Context, id string) (entities.PaymentConfiguration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.configsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentConfiguration{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentConfiguration{}, nil
	}

	var it paymentConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentConfiguration{}, err
	}
	return fromPaymentConfigItem(it), nil
}

func (r *PaymentDynamoRepository) GetConfigurationByContractID(ctx context.Context, contractID string) (entities.PaymentConfiguration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.configsTableName),
		IndexName:              aws.String(paymentConfigsContractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentConfiguration{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentConfiguration{}, nil
	}

	var it paymentConfigItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentConfiguration{}, err
	}
	return fromPaymentConfigItem(it), nil
}

func (r *PaymentDynamoRepository) CreateTransaction(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	it := toPaymentTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.transactionsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return tx, nil
}

func (r *PaymentDynamoRepository) ListTransactionsByConfigID(ctx context.Context, configID string) ([]entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.transactionsTable),
		IndexName:              aws.String(paymentTransactionsConfigIDIndex),
		KeyConditionExpression: aws.String("config_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: configID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentTransactionItem(it))
	}
	return items, nil
}

func (r *PaymentDynamoRepository) CountCompletedPayments(ctx context.Context, contractID string) (int, error) {
	cfg, err := r.GetConfigurationByContractID(ctx, contractID)
	if err != nil {
		return 0, err
	}
	if cfg.ID == "" {
		return 0, nil
	}

	txs, err := r.ListTransactionsByConfigID(ctx, cfg.ID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, tx := range txs {
		if tx.Type == entities.TransactionPayment && tx.Status == entities.TransactionCompleted {
			count++
		}
	}
	return count, nil
}

func toPaymentConfigItem(cfg entities.PaymentConfiguration) paymentConfigItem {
	return paymentConfigItem{
		ID:         cfg.ID,
		ContractID: cfg.ContractID,
		Sequence:   cfg.Sequence,

		Provider:    cfg.Provider,
		PaymentType: cfg.PaymentType,
		TotalAmount: cfg.TotalAmount.String(),
		Currency:    cfg.Currency,
		Schedule:    jsonString(cfg.Schedule),

		AutoInvoiceEnabled: cfg.AutoInvoiceEnabled,
		LateFeeEnabled:     cfg.LateFeeEnabled,

		CreatedAt: formatTime(cfg.CreatedAt),
	}
}

func fromPaymentConfigItem(it paymentConfigItem) entities.PaymentConfiguration {
	total, _ := decimal.NewFromString(it.TotalAmount)
	cfg := entities.PaymentConfiguration{
		ID:         it.ID,
		ContractID: it.ContractID,
		Sequence:   it.Sequence,

		Provider:    it.Provider,
		PaymentType: it.PaymentType,
		TotalAmount: total,
		Currency:    it.Currency,

		AutoInvoiceEnabled: it.AutoInvoiceEnabled,
		LateFeeEnabled:     it.LateFeeEnabled,

		CreatedAt: parseTime(it.CreatedAt),
	}
	fromJSONString(it.Schedule, &cfg.Schedule)
	return cfg
}

func toPaymentTransactionItem(tx entities.PaymentTransaction) paymentTransactionItem {
	return paymentTransactionItem{
		ID:       tx.ID,
		ConfigID: tx.ConfigID,

		Type:                 string(tx.Type),
		Amount:               tx.Amount.String(),
		InvoiceNumber:        tx.InvoiceNumber,
		InvoiceDueDate:       formatTime(tx.InvoiceDueDate),
		MilestoneDescription: tx.MilestoneDescription,
		PaymentMethod:        tx.PaymentMethod,
		ProviderPaymentID:    tx.ProviderPaymentID,
		Status:               string(tx.Status),

		CreatedAt: formatTime(tx.CreatedAt),
	}
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.PaymentTransaction{
		ID:       it.ID,
		ConfigID: it.ConfigID,

		Type:                 entities.TransactionType(it.Type),
		Amount:               amount,
		InvoiceNumber:        it.InvoiceNumber,
		InvoiceDueDate:       parseTime(it.InvoiceDueDate),
		MilestoneDescription: it.MilestoneDescription,
		PaymentMethod:        it.PaymentMethod,
		ProviderPaymentID:    it.ProviderPaymentID,
		Status:               entities.TransactionStatus(it.Status),

		CreatedAt: parseTime(it.CreatedAt),
	}
}
