package repository

import (
	"context"
	"sort"
	"time"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuditTableName      = "automation_audit_log"
	auditProcessTypeIndex      = "process_type-created_at-index"
	auditListDefaultScanFactor = 4
)

type auditItem struct {
	ID          string `dynamodbav:"id"`
	ProcessType string `dynamodbav:"process_type"`
	SourceID    string `dynamodbav:"source_id"`
	TargetID    string `dynamodbav:"target_id,omitempty"`
	Trigger     string `dynamodbav:"trigger"`
	Action      string `dynamodbav:"action"`
	Status      string `dynamodbav:"status"`
	Payload     string `dynamodbav:"payload"`
	Actor       string `dynamodbav:"actor"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// AuditDynamoRepository is the append-only pipeline ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: process_type-created_at-index (PK: process_type, SK: created_at)
//
// Events are never updated or deleted; the repository exposes no write path
// other than Append.

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, ev entities.AuditEvent) (entities.AuditEvent, error) {
	it := toAuditItem(ev)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AuditEvent{}, err
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
		return entities.AuditEvent{}, err
	}
	return ev, nil
}

// List returns the most recent events first, optionally narrowed by process
// type and status. With a process type the GSI serves the read in sorted
// order; without one we fall back to a scan and sort in memory.
func (r *AuditDynamoRepository) List(ctx context.Context, processType entities.AuditProcessType, status string, limit int) ([]entities.AuditEvent, error) {
	if processType != "" {
		return r.listByProcessType(ctx, processType, status, limit)
	}

	events, err := r.scanAll(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	if status != "" {
		filtered := events[:0]
		for _, ev := range events {
			if ev.Status == status {
				filtered = append(filtered, ev)
			}
		}
		events = filtered
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (r *AuditDynamoRepository) listByProcessType(ctx context.Context, processType entities.AuditProcessType, status string, limit int) ([]entities.AuditEvent, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditProcessTypeIndex),
		KeyConditionExpression: aws.String("process_type = :pt"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pt": &types.AttributeValueMemberS{Value: string(processType)},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: status}
	}
	if limit > 0 {
		// The filter runs after the page is read, so over-fetch to keep one
		// round trip sufficient for typical status distributions.
		in.Limit = aws.Int32(int32(limit * auditListDefaultScanFactor))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	events := make([]entities.AuditEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it auditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, fromAuditItem(it))
	}
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (r *AuditDynamoRepository) ListByTimeRange(ctx context.Context, from, to time.Time) ([]entities.AuditEvent, error) {
	return r.scanAll(ctx,
		aws.String("#created_at BETWEEN :from AND :to"),
		map[string]string{"#created_at": "created_at"},
		map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	)
}

func (r *AuditDynamoRepository) scanAll(ctx context.Context, filter *string, names map[string]string, values map[string]types.AttributeValue) ([]entities.AuditEvent, error) {
	var (
		events    []entities.AuditEvent
		startFrom map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startFrom,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it auditItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			events = append(events, fromAuditItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startFrom = out.LastEvaluatedKey
	}
	return events, nil
}

func toAuditItem(ev entities.AuditEvent) auditItem {
	return auditItem{
		ID:          ev.ID,
		ProcessType: string(ev.ProcessType),
		SourceID:    ev.SourceID,
		TargetID:    ev.TargetID,
		Trigger:     ev.Trigger,
		Action:      string(ev.Action),
		Status:      ev.Status,
		Payload:     jsonString(ev.Payload),
		Actor:       ev.Actor,
		CreatedAt:   formatTime(ev.CreatedAt),
	}
}

func fromAuditItem(it auditItem) entities.AuditEvent {
	ev := entities.AuditEvent{
		ID:          it.ID,
		ProcessType: entities.AuditProcessType(it.ProcessType),
		SourceID:    it.SourceID,
		TargetID:    it.TargetID,
		Trigger:     it.Trigger,
		Action:      entities.AuditAction(it.Action),
		Status:      it.Status,
		Actor:       it.Actor,
		CreatedAt:   parseTime(it.CreatedAt),
	}
	fromJSONString(it.Payload, &ev.Payload)
	return ev
}
