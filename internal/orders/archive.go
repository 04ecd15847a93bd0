package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/topacai/top-acai-backend/internal/aws"
)

// ErrAlreadyArchived indicates the order id is already present in the
// archive table. Duplicate queue deliveries land here and are harmless.
var ErrAlreadyArchived = errors.New("order already archived")

// archiveRecord is the shape stored in the DynamoDB archive table. The full
// order travels as a JSON payload; a few fields are lifted to top-level
// attributes for back-office queries.
type archiveRecord struct {
	OrderID       string    `dynamodbav:"order_id"` // PK
	CustomerName  string    `dynamodbav:"customer_name"`
	PaymentMethod string    `dynamodbav:"payment_method"`
	Subtotal      float64   `dynamodbav:"subtotal"`
	DeliveryFee   *float64  `dynamodbav:"delivery_fee,omitempty"` // nil while an agent still has to set it
	Total         float64   `dynamodbav:"total"`
	Payload       string    `dynamodbav:"payload"`
	CreatedAt     time.Time `dynamodbav:"created_at"`
	ArchivedAt    time.Time `dynamodbav:"archived_at"`
}

// ArchiveStore copies submitted orders into a DynamoDB table for the
// back office. It is fed by the queue worker, never by the checkout path,
// so the customer-facing flow does not depend on it.
type ArchiveStore struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewArchiveStore creates an archive store bound to a table.
func NewArchiveStore(client aws.DynamoDBAPI, tableName string) *ArchiveStore {
	return &ArchiveStore{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Put writes the order into the archive. The write is guarded by
// attribute_not_exists(order_id); a second delivery of the same order
// returns ErrAlreadyArchived.
func (s *ArchiveStore) Put(ctx context.Context, order Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order payload: %w", err)
	}

	rec := archiveRecord{
		OrderID:       order.ID,
		CustomerName:  order.Customer.Name,
		PaymentMethod: order.PaymentMethod,
		Subtotal:      order.Subtotal,
		Total:         order.Total,
		Payload:       string(payload),
		CreatedAt:     order.CreatedAt,
		ArchivedAt:    s.nowFunc().UTC(),
	}
	if amount, ok := order.DeliveryFee.Amount(); ok {
		rec.DeliveryFee = &amount
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal archive record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(order_id)"),
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "ConditionalCheckFailedException" {
			return ErrAlreadyArchived
		}
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// Get fetches an archived order by id. Returns (nil, nil) if not found.
func (s *ArchiveStore) Get(ctx context.Context, orderID string) (*Order, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var rec archiveRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal archive record: %w", err)
	}
	var order Order
	if err := json.Unmarshal([]byte(rec.Payload), &order); err != nil {
		return nil, fmt.Errorf("unmarshal order payload: %w", err)
	}
	return &order, nil
}

func awsString(s string) *string { return &s }
