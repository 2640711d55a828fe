package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/quickqualified/exteriors-api/pkg/logging"
)

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoRepository persists leads to a DynamoDB table keyed by id.
type DynamoRepository struct {
	client    dynamoAPI
	tableName string
	logger    *logging.Logger
}

var _ Repository = (*DynamoRepository)(nil)

// NewDynamoRepository builds a repository backed by the provided client.
func NewDynamoRepository(client dynamoAPI, tableName string, logger *logging.Logger) *DynamoRepository {
	if client == nil {
		panic("leads: dynamodb client cannot be nil")
	}
	if tableName == "" {
		panic("leads: table name cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DynamoRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Create assigns a fresh id and writes the lead in one call.
func (r *DynamoRepository) Create(ctx context.Context, lead *Lead) (string, error) {
	id := r.NewID()
	if err := r.Put(ctx, id, lead); err != nil {
		return "", err
	}
	return id, nil
}

// NewID reserves a unique document id synchronously, without a network round
// trip, so callers can use it as an upload path prefix before the write.
func (r *DynamoRepository) NewID() string {
	return uuid.NewString()
}

// Put writes the full lead document under the given id. CreatedAt is assigned
// here, at write time. The conditional write keeps a lead from ever being
// silently overwritten.
func (r *DynamoRepository) Put(ctx context.Context, id string, lead *Lead) error {
	if lead == nil {
		return fmt.Errorf("%w: nil lead", ErrPersistFailed)
	}
	lead.ID = id
	lead.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	item, err := attributevalue.MarshalMap(lead)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPersistFailed, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		r.logger.Error("failed to persist lead", "error", err, "lead_id", id)
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	r.logger.Info("lead persisted", "lead_id", id, "attachments", len(lead.Attachments))
	return nil
}

// GetByID fetches a lead by id.
func (r *DynamoRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	if id == "" {
		return nil, errors.New("leads: id required")
	}
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("leads: failed to fetch lead: %w", err)
	}
	if out.Item == nil {
		return nil, ErrLeadNotFound
	}

	var lead Lead
	if err := attributevalue.UnmarshalMap(out.Item, &lead); err != nil {
		return nil, fmt.Errorf("leads: failed to decode lead: %w", err)
	}
	return &lead, nil
}
