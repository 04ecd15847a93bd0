package validation

import "strings"

// CheckoutItem is one cart line as submitted by the storefront. It carries
// the customer's selections only — prices always come from the server-side
// catalog, never from the client.
type CheckoutItem struct {
	Category     string   `json:"category" validate:"required"`
	ProductID    string   `json:"product_id" validate:"required"`
	Quantity     int      `json:"quantity" validate:"required,min=1"`
	FreeAddons   []string `json:"free_addons"`
	PaidAddonIDs []string `json:"paid_addons"`

	NeedsSpoon     bool `json:"needs_spoon"`
	NeedsStraw     bool `json:"needs_straw"`
	KetchupSachets int  `json:"ketchup_sache" validate:"min=0,max=5"`
	MayoSachets    int  `json:"maionese_sache" validate:"min=0,max=5"`
}

// Customer is the checkout contact block.
type Customer struct {
	Name    string `json:"name" validate:"required,notblank"`
	Address string `json:"address_and_number" validate:"required,notblank"`
}

// ChangeInfo is the cash customer's change request.
type ChangeInfo struct {
	NeedsChange  bool    `json:"needs_change"`
	ChangeAmount float64 `json:"change_amount"`
}

// CreateOrderRequest is the payload for POST /api/orders.
type CreateOrderRequest struct {
	Customer      Customer       `json:"customer"`
	PaymentMethod string         `json:"payment_method" validate:"required,oneof=CARTÃO DINHEIRO PIX"`
	ChangeInfo    ChangeInfo     `json:"change_info"`
	Items         []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

var markupStripper = strings.NewReplacer("<", "", ">", "")

// Sanitize strips characters that could be read as markup from the
// free-text fields. Applied before validation and before storage.
func (r *CreateOrderRequest) Sanitize() {
	r.Customer.Name = markupStripper.Replace(r.Customer.Name)
	r.Customer.Address = markupStripper.Replace(r.Customer.Address)
}
