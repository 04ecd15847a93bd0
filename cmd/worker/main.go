package worker

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	internalaws "github.com/topacai/top-acai-backend/internal/aws"
)

func main() {
	clients, err := internalaws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	table := os.Getenv("ORDERS_ARCHIVE_TABLE")
	if table == "" {
		log.Fatal("ORDERS_ARCHIVE_TABLE is required")
	}

	p := NewProcessor(clients, table)

	// If RUN_LOCAL=true, simulate a single SQS event for local testing.
	if os.Getenv("RUN_LOCAL") == "true" {
		body := os.Getenv("LOCAL_SQS_BODY")
		if body == "" {
			body = `{"order_id":"local-order-1","customer":{"name":"Teste","address_and_number":"Rua X, 1"},"payment_method":"PIX","items":[],"subtotal":0,"delivery_fee":null,"total":0}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{{Body: body}},
		}
		ctx := context.Background()
		if err := p.Handle(ctx, event); err != nil {
			log.Fatalf("local handler error: %v", err)
		}

		// Read the order back from the archive to confirm the write.
		var msg struct {
			OrderID string `json:"order_id"`
		}
		if err := json.Unmarshal([]byte(body), &msg); err != nil {
			log.Fatalf("parse local body: %v", err)
		}
		archived, err := p.Lookup(ctx, msg.OrderID)
		if err != nil {
			log.Fatalf("lookup archived order: %v", err)
		}
		if archived == nil {
			log.Fatalf("order %s not found in archive", msg.OrderID)
		}
		log.Printf("archived order=%s total=%.2f", archived.ID, archived.Total)
		return
	}

	lambda.Start(p.Handle)
}
