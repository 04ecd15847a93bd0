package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	internalaws "github.com/topacai/top-acai-backend/internal/aws"
	"github.com/topacai/top-acai-backend/internal/handlers"
	"github.com/topacai/top-acai-backend/internal/menu"
	"github.com/topacai/top-acai-backend/internal/orders"
)

func setupRouter(cfg handlers.HandlerConfig, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	handlers.RegisterMenuRoutes(r, cfg.Catalog)
	handlers.RegisterOrderRoutes(r, cfg)

	return r
}

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	catalog := menu.Default()

	ordersFile := os.Getenv("ORDERS_FILE")
	if ordersFile == "" {
		ordersFile = "orders.json"
	}

	cfg := handlers.HandlerConfig{
		Catalog: catalog,
		Store:   orders.NewFileStore(ordersFile),
		WAPhone: os.Getenv("WA_PHONE"),
	}

	// The back-office pipeline is optional: without a queue URL the
	// storefront runs standalone and only writes the order file.
	if queueURL := os.Getenv("ORDERS_QUEUE_URL"); queueURL != "" {
		clients, err := internalaws.NewAWSClients(context.Background())
		if err != nil {
			log.Fatalf("failed to init aws clients: %v", err)
		}
		cfg.Publisher = internalaws.NewPublisher(clients.SQS, queueURL)
		cfg.Metrics = internalaws.NewMetrics(clients.CloudWatch, "TopAcai/Orders")
	}

	allowedOrigins := []string{"http://localhost:5173"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		allowedOrigins = strings.Split(v, ",")
	}

	r := setupRouter(cfg, allowedOrigins)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		addr := ":" + port
		log.Printf("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
