// Package pricing turns a product selection into a priced line item.
//
// Pricing is a pure computation over the injected menu catalog: the same
// product, addon catalog and selection always produce the same line item.
package pricing

import (
	"fmt"

	"github.com/topacai/top-acai-backend/internal/menu"
	"github.com/topacai/top-acai-backend/internal/orders"
)

// Selection is everything the customer chose for one product.
type Selection struct {
	Quantity     int
	FreeAddons   []string // in the order the customer picked them
	PaidAddonIDs []string

	// Fulfillment extras: recorded on the line, never priced.
	NeedsSpoon     bool
	NeedsStraw     bool
	KetchupSachets int
	MayoSachets    int
}

// UnknownAddonError reports a selection naming an addon the product's addon
// catalog does not offer.
type UnknownAddonError struct {
	Kind string // "free" or "paid"
	Ref  string
}

func (e *UnknownAddonError) Error() string {
	return fmt.Sprintf("unknown %s addon %q", e.Kind, e.Ref)
}

// PriceSelection computes the line item for a product selection.
//
// The selected free addons are deduplicated (a repeated name counts once),
// then split, in submission order, into the first FreeAddonLimit (granted
// free) and the remainder (charged as extras at the catalog's per-extra
// price). Paid addons charge their listed price once
// each; a repeated id does not charge twice. The whole unit price scales by
// quantity. A product group with no addon catalog ignores any submitted
// addon selections. An addon the catalog does not offer is rejected.
func PriceSelection(category string, product menu.Product, addons menu.AddonCatalog, sel Selection) (orders.LineItem, error) {
	if sel.Quantity < 1 {
		return orders.LineItem{}, fmt.Errorf("quantity must be at least 1, got %d", sel.Quantity)
	}

	line := orders.LineItem{
		Category:       category,
		ProductID:      product.ID,
		ProductName:    product.Name,
		UnitPrice:      product.Price,
		Quantity:       sel.Quantity,
		FreeAddons:     []string{},
		ExtraAddons:    []string{},
		PaidAddons:     []menu.PaidAddon{},
		NeedsSpoon:     sel.NeedsSpoon,
		NeedsStraw:     sel.NeedsStraw,
		KetchupSachets: sel.KetchupSachets,
		MayoSachets:    sel.MayoSachets,
	}

	if addons.Empty() {
		line.Subtotal = product.Price * float64(sel.Quantity)
		return line, nil
	}

	// The free-addon selection is a set: a repeated name counts once and
	// never spills into the charged extras. First-occurrence order is kept.
	free := make([]string, 0, len(sel.FreeAddons))
	seenFree := make(map[string]bool, len(sel.FreeAddons))
	for _, name := range sel.FreeAddons {
		if !addons.HasFreeAddon(name) {
			return orders.LineItem{}, &UnknownAddonError{Kind: "free", Ref: name}
		}
		if seenFree[name] {
			continue
		}
		seenFree[name] = true
		free = append(free, name)
	}
	limit := product.FreeAddonLimit
	if limit > len(free) {
		limit = len(free)
	}
	line.FreeAddons = append(line.FreeAddons, free[:limit]...)
	line.ExtraAddons = append(line.ExtraAddons, free[limit:]...)
	line.ExtraAddonsTotal = float64(len(line.ExtraAddons)) * addons.ExtraPricePerExtra

	var paidTotal float64
	seenPaid := make(map[string]bool, len(sel.PaidAddonIDs))
	for _, id := range sel.PaidAddonIDs {
		if seenPaid[id] {
			continue
		}
		seenPaid[id] = true
		addon, ok := addons.PaidAddonByID(id)
		if !ok {
			return orders.LineItem{}, &UnknownAddonError{Kind: "paid", Ref: id}
		}
		line.PaidAddons = append(line.PaidAddons, addon)
		paidTotal += addon.Price
	}

	unit := product.Price + paidTotal + line.ExtraAddonsTotal
	line.Subtotal = unit * float64(sel.Quantity)
	return line, nil
}
