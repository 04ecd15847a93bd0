package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/topacai/top-acai-backend/internal/aws"
	"github.com/topacai/top-acai-backend/internal/delivery"
	"github.com/topacai/top-acai-backend/internal/menu"
	"github.com/topacai/top-acai-backend/internal/orders"
	"github.com/topacai/top-acai-backend/internal/pricing"
	"github.com/topacai/top-acai-backend/internal/validation"
	"github.com/topacai/top-acai-backend/internal/whatsapp"
)

// OrderStore records assembled orders durably and lists what has been
// recorded, oldest first.
type OrderStore interface {
	Append(ctx context.Context, order orders.Order) error
	List(ctx context.Context) ([]orders.Order, error)
}

// HandlerConfig groups dependencies for the storefront handlers. Publisher
// and Metrics may be nil; the back-office pipeline is optional.
type HandlerConfig struct {
	Catalog   *menu.Catalog
	Store     OrderStore
	Publisher *aws.Publisher
	Metrics   *aws.Metrics
	WAPhone   string
	NowFunc   func() time.Time
}

// RegisterOrderRoutes registers the checkout endpoint and the back-office
// order listing.
func RegisterOrderRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	nowFunc := cfg.NowFunc
	if nowFunc == nil {
		nowFunc = time.Now
	}
	phone := cfg.WAPhone
	if phone == "" {
		phone = cfg.Catalog.WAPhone
	}

	r.GET("/api/orders", func(c *gin.Context) {
		list, err := cfg.Store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler pedidos"})
			return
		}
		if list == nil {
			list = []orders.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": list, "count": len(list)})
	})

	r.POST("/api/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		// Price every line server-side from the catalog.
		items := make([]orders.LineItem, 0, len(req.Items))
		for _, it := range req.Items {
			product, addons, err := cfg.Catalog.Find(it.Category, it.ProductID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Produto não encontrado no cardápio", "detail": err.Error()})
				return
			}
			line, err := pricing.PriceSelection(it.Category, product, addons, pricing.Selection{
				Quantity:       it.Quantity,
				FreeAddons:     it.FreeAddons,
				PaidAddonIDs:   it.PaidAddonIDs,
				NeedsSpoon:     it.NeedsSpoon,
				NeedsStraw:     it.NeedsStraw,
				KetchupSachets: it.KetchupSachets,
				MayoSachets:    it.MayoSachets,
			})
			if err != nil {
				var uae *pricing.UnknownAddonError
				if errors.As(err, &uae) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Adicional não encontrado no cardápio", "detail": uae.Error()})
					return
				}
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			items = append(items, line)
		}

		fee := delivery.ResolveFee(req.Customer.Address, cfg.Catalog.FreeDeliveryNeighborhood)

		order := orders.Assemble(
			uuid.NewString(),
			orders.Customer{Name: req.Customer.Name, Address: req.Customer.Address},
			req.PaymentMethod,
			orders.ChangeInfo{NeedsChange: req.ChangeInfo.NeedsChange, ChangeAmount: req.ChangeInfo.ChangeAmount},
			items,
			fee,
			nowFunc(),
		)

		if err := cfg.Store.Append(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar pedido"})
			return
		}

		waMessage := whatsapp.RenderMessage(cfg.Catalog, order)
		waLink := whatsapp.Link(phone, waMessage)

		// Hand the order to the back office. Failures here are logged only:
		// the customer's order is already persisted.
		if cfg.Publisher != nil {
			body, _ := json.Marshal(order)
			attrs := map[string]string{"order_id": order.ID}
			// SQS rejects empty message-attribute values.
			if rid := c.GetHeader("X-Request-Id"); rid != "" {
				attrs["correlation_id"] = rid
			}
			if err := cfg.Publisher.SendOrderMessage(ctx, string(body), attrs); err != nil {
				log.Printf("publish order %s: %v", order.ID, err)
			}
		}
		if cfg.Metrics != nil {
			if err := cfg.Metrics.Count(ctx, "OrdersCreated"); err != nil {
				log.Printf("count order %s: %v", order.ID, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"order_id":  order.ID,
			"waMessage": waMessage,
			"waLink":    waLink,
			"order":     order,
		})
	})
}
