// Package delivery resolves the delivery fee for an order address.
//
// A fee has three legitimate outcomes: free, a positive amount, or pending,
// meaning a human agent sets it after checkout. Pending is not an error and
// must never be collapsed into zero.
package delivery

import (
	"encoding/json"
	"strings"
)

// Fee is a delivery fee that is either a determined amount or pending.
// The zero value is Determined(0); use Pending() for the undetermined state.
type Fee struct {
	amount  float64
	pending bool
}

// Determined returns a fee with a known amount.
func Determined(amount float64) Fee {
	return Fee{amount: amount}
}

// Pending returns the fee state meaning "an agent sets this later".
func Pending() Fee {
	return Fee{pending: true}
}

// Amount returns the fee amount and whether it is determined.
func (f Fee) Amount() (float64, bool) {
	return f.amount, !f.pending
}

// IsPending reports whether the fee still has to be set by an agent.
func (f Fee) IsPending() bool {
	return f.pending
}

// AddTo returns subtotal plus the fee when it is determined, or the
// subtotal unchanged when the fee is pending.
func (f Fee) AddTo(subtotal float64) float64 {
	if f.pending {
		return subtotal
	}
	return subtotal + f.amount
}

// MarshalJSON encodes a determined fee as its amount and a pending fee as
// null, the shape the storefront already understands.
func (f Fee) MarshalJSON() ([]byte, error) {
	if f.pending {
		return []byte("null"), nil
	}
	return json.Marshal(f.amount)
}

// UnmarshalJSON accepts a number or null.
func (f *Fee) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Pending()
		return nil
	}
	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		return err
	}
	*f = Determined(amount)
	return nil
}

// ResolveFee maps a free-text address to a delivery fee. Delivery is free
// when the configured neighborhood name appears anywhere in the address,
// compared case-insensitively; every other address is Pending.
func ResolveFee(address, freeNeighborhood string) Fee {
	if freeNeighborhood != "" &&
		strings.Contains(strings.ToLower(address), strings.ToLower(freeNeighborhood)) {
		return Determined(0)
	}
	return Pending()
}
