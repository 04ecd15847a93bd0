package menu

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a category or product lookup missed the catalog.
var ErrNotFound = errors.New("not found in catalog")

// Product is one sellable item on the menu.
type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	FreeAddonLimit int     `json:"free_addons_limit,omitempty"`
	Description    string  `json:"description,omitempty"`
}

// PaidAddon is an addon that always costs extra.
type PaidAddon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AddonCatalog describes the addons offered for a product group.
// FreeAddons is ordered; selections past a product's free limit are charged
// ExtraPricePerExtra each. The zero value means no addons are offered.
type AddonCatalog struct {
	FreeAddons         []string    `json:"free_addons,omitempty"`
	PaidAddons         []PaidAddon `json:"paid_addons,omitempty"`
	ExtraPricePerExtra float64     `json:"extra_price_per_extra,omitempty"`
}

// Empty reports whether the group offers no addons at all.
func (a AddonCatalog) Empty() bool {
	return len(a.FreeAddons) == 0 && len(a.PaidAddons) == 0
}

// PaidAddonByID returns the paid addon with the given id.
func (a AddonCatalog) PaidAddonByID(id string) (PaidAddon, bool) {
	for _, p := range a.PaidAddons {
		if p.ID == id {
			return p, true
		}
	}
	return PaidAddon{}, false
}

// HasFreeAddon reports whether name is one of the offered free addons.
func (a AddonCatalog) HasFreeAddon(name string) bool {
	for _, f := range a.FreeAddons {
		if f == name {
			return true
		}
	}
	return false
}

// Group is a cluster of products sharing one addon catalog, e.g. the açaí
// cups or the Spanish churros. Category is the full display path the
// storefront shows ("Gelados > Açaí > Copos").
type Group struct {
	Category string       `json:"category"`
	Products []Product    `json:"products"`
	Addons   AddonCatalog `json:"addons"`
}

// PixInfo holds the payer-facing instant-transfer account details included
// in the order summary when the customer pays via PIX.
type PixInfo struct {
	CPF  string `json:"cpf"`
	Name string `json:"name"`
	Bank string `json:"bank"`
}

// Catalog is the whole store menu plus store-level rules. It is built once
// and passed explicitly to whoever needs it; there is no package-level
// catalog state.
type Catalog struct {
	StoreName string  `json:"store_name"`
	WAPhone   string  `json:"wa_phone"`
	Groups    []Group `json:"groups"`

	// FreeDeliveryNeighborhood gets free delivery when its name appears in
	// the customer address, matched case-insensitively.
	FreeDeliveryNeighborhood string  `json:"free_delivery_neighborhood"`
	Pix                      PixInfo `json:"pix_info"`
}

// Find returns the product with the given id inside the named category,
// together with the addon catalog of its group.
func (c *Catalog) Find(category, productID string) (Product, AddonCatalog, error) {
	for _, g := range c.Groups {
		if g.Category != category {
			continue
		}
		for _, p := range g.Products {
			if p.ID == productID {
				return p, g.Addons, nil
			}
		}
		return Product{}, AddonCatalog{}, fmt.Errorf("product %q in category %q: %w", productID, category, ErrNotFound)
	}
	return Product{}, AddonCatalog{}, fmt.Errorf("category %q: %w", category, ErrNotFound)
}
