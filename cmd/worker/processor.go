package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"github.com/topacai/top-acai-backend/internal/aws"
	"github.com/topacai/top-acai-backend/internal/orders"
)

// Processor consumes submitted orders from the queue and archives them in
// DynamoDB for the back office.
type Processor struct {
	archive *orders.ArchiveStore
	metrics *aws.Metrics
}

// NewProcessor creates a worker processor with AWS clients injected.
// metrics may be nil.
func NewProcessor(clients *aws.AWSClients, archiveTable string) *Processor {
	p := &Processor{
		archive: orders.NewArchiveStore(clients.DynamoDB, archiveTable),
	}
	if clients.CloudWatch != nil {
		p.metrics = aws.NewMetrics(clients.CloudWatch, "TopAcai/Orders")
	}
	return p
}

// Lookup fetches an archived order by id. Returns (nil, nil) if the order
// was never archived.
func (p *Processor) Lookup(ctx context.Context, orderID string) (*orders.Order, error) {
	return p.archive.Get(ctx, orderID)
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry. If failed too many times, message goes to DLQ.
			log.Printf("worker error: %v", err)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var order orders.Order
	if err := json.Unmarshal([]byte(rec.Body), &order); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if order.ID == "" {
		return fmt.Errorf("message without order id")
	}

	log.Printf("[worker] received order=%s customer=%q total=%.2f", order.ID, order.Customer.Name, order.Total)

	err := p.archive.Put(ctx, order)
	if errors.Is(err, orders.ErrAlreadyArchived) {
		// Duplicate queue delivery: the order is already in the archive.
		log.Printf("[worker] duplicate delivery for order=%s", order.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("archive order %s: %w", order.ID, err)
	}

	if p.metrics != nil {
		if err := p.metrics.Count(ctx, "OrdersArchived"); err != nil {
			log.Printf("[worker] count archive for order=%s: %v", order.ID, err)
		}
	}

	log.Printf("[worker] archived order=%s", order.ID)
	return nil
}
