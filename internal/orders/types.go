package orders

import (
	"time"

	"github.com/topacai/top-acai-backend/internal/delivery"
	"github.com/topacai/top-acai-backend/internal/menu"
)

// Payment methods accepted at checkout. The values are the wire strings the
// storefront sends.
const (
	PaymentCard = "CARTÃO"
	PaymentCash = "DINHEIRO"
	PaymentPix  = "PIX"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []string{PaymentCard, PaymentCash, PaymentPix}

// Customer identifies who the order is for and where it goes.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address_and_number"`
}

// ChangeInfo records a cash customer's change request. ChangeAmount is the
// bill the customer pays with; the order summary computes the change due
// from it, the core never rejects an amount at or below the total.
type ChangeInfo struct {
	NeedsChange  bool    `json:"needs_change"`
	ChangeAmount float64 `json:"change_amount,omitempty"`
}

// LineItem is one priced entry of an order: a product selection with its
// addons, fulfillment flags and quantity. Immutable once computed.
type LineItem struct {
	Category    string  `json:"category"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"base_price"`
	Quantity    int     `json:"quantity"`

	// FreeAddons were granted at no charge; ExtraAddons overflowed the
	// product's free limit and are charged ExtraAddonsTotal per unit.
	FreeAddons       []string         `json:"free_addons"`
	ExtraAddons      []string         `json:"extra_addons"`
	ExtraAddonsTotal float64          `json:"extra_addons_price_total"`
	PaidAddons       []menu.PaidAddon `json:"paid_addons"`

	NeedsSpoon     bool `json:"needs_spoon"`
	NeedsStraw     bool `json:"needs_straw"`
	KetchupSachets int  `json:"ketchup_sache"`
	MayoSachets    int  `json:"maionese_sache"`

	Subtotal float64 `json:"subtotal"`
}

// Order is a validated, priced order ready for hand-off. Constructed once at
// checkout and never mutated afterwards.
type Order struct {
	ID            string       `json:"order_id"`
	Customer      Customer     `json:"customer"`
	PaymentMethod string       `json:"payment_method"`
	ChangeInfo    ChangeInfo   `json:"change_info"`
	Items         []LineItem   `json:"items"`
	Subtotal      float64      `json:"subtotal"`
	DeliveryFee   delivery.Fee `json:"delivery_fee"`
	Total         float64      `json:"total"`
	CreatedAt     time.Time    `json:"created_at"`
}

// PersistenceError reports that an order could not be durably recorded. It
// is distinct from a validation rejection: the order itself may be fine.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persist order: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
