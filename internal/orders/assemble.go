package orders

import (
	"time"

	"github.com/topacai/top-acai-backend/internal/delivery"
)

// Assemble combines priced line items, the resolved delivery fee and the
// customer's checkout data into a final Order. The payload is assumed
// validated by this point; assembly is pure composition. The total includes
// the fee only when it is determined — a pending fee leaves the total equal
// to the subtotal and the fee flagged for an agent to settle.
func Assemble(id string, customer Customer, paymentMethod string, change ChangeInfo, items []LineItem, fee delivery.Fee, now time.Time) Order {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Subtotal
	}

	return Order{
		ID:            id,
		Customer:      customer,
		PaymentMethod: paymentMethod,
		ChangeInfo:    change,
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         fee.AddTo(subtotal),
		CreatedAt:     now.UTC(),
	}
}
