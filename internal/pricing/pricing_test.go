package pricing

import (
	"errors"
	"reflect"
	"testing"

	"github.com/topacai/top-acai-backend/internal/menu"
)

var acaiAddons = menu.AddonCatalog{
	FreeAddons: []string{"banana", "kiwi", "manga", "morango", "uva", "granola", "paçoca"},
	PaidAddons: []menu.PaidAddon{
		{ID: "creme_avelã", Name: "Creme de avelã", Price: 5.00},
		{ID: "creme_leitinho", Name: "Creme de leitinho", Price: 5.00},
	},
	ExtraPricePerExtra: 3.00,
}

func TestPriceSelection_FreeLimitPartition(t *testing.T) {
	product := menu.Product{ID: "cop500", Name: "500ml", Price: 22.00, FreeAddonLimit: 4}

	tests := []struct {
		name        string
		selected    []string
		wantFree    []string
		wantExtras  []string
		wantExtraCharge float64
	}{
		{
			name:     "under the limit",
			selected: []string{"banana", "kiwi"},
			wantFree: []string{"banana", "kiwi"},
			wantExtras: []string{},
		},
		{
			name:     "exactly the limit",
			selected: []string{"banana", "kiwi", "manga", "morango"},
			wantFree: []string{"banana", "kiwi", "manga", "morango"},
			wantExtras: []string{},
		},
		{
			name:       "over the limit keeps submission order",
			selected:   []string{"banana", "kiwi", "manga", "morango", "uva", "granola"},
			wantFree:   []string{"banana", "kiwi", "manga", "morango"},
			wantExtras: []string{"uva", "granola"},
			wantExtraCharge: 6.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := PriceSelection("Gelados > Açaí > Copos", product, acaiAddons, Selection{
				Quantity:   1,
				FreeAddons: tt.selected,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(line.FreeAddons, tt.wantFree) {
				t.Errorf("free addons = %v, want %v", line.FreeAddons, tt.wantFree)
			}
			if !reflect.DeepEqual(line.ExtraAddons, tt.wantExtras) {
				t.Errorf("extra addons = %v, want %v", line.ExtraAddons, tt.wantExtras)
			}
			if line.ExtraAddonsTotal != tt.wantExtraCharge {
				t.Errorf("extra charge = %.2f, want %.2f", line.ExtraAddonsTotal, tt.wantExtraCharge)
			}
		})
	}
}

func TestPriceSelection_EndToEndScenario(t *testing.T) {
	// 22.00 base, limit 4, six free addons selected, one paid addon at 5.00,
	// quantity 2: unit = 22 + 5 + 2*3 = 33.00, line = 66.00.
	product := menu.Product{ID: "cop500", Name: "500ml", Price: 22.00, FreeAddonLimit: 4}

	line, err := PriceSelection("Gelados > Açaí > Copos", product, acaiAddons, Selection{
		Quantity:     2,
		FreeAddons:   []string{"banana", "kiwi", "manga", "morango", "uva", "granola"},
		PaidAddonIDs: []string{"creme_avelã"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.Subtotal != 66.00 {
		t.Errorf("subtotal = %.2f, want 66.00", line.Subtotal)
	}
	if len(line.PaidAddons) != 1 || line.PaidAddons[0].Price != 5.00 {
		t.Errorf("paid addons = %v, want one at 5.00", line.PaidAddons)
	}
	if line.ExtraAddonsTotal != 6.00 {
		t.Errorf("extra charge = %.2f, want 6.00", line.ExtraAddonsTotal)
	}
}

func TestPriceSelection_QuantityScaling(t *testing.T) {
	product := menu.Product{ID: "cop400", Name: "400ml", Price: 19.00, FreeAddonLimit: 3}
	sel := Selection{
		FreeAddons:   []string{"banana", "kiwi", "manga", "morango"},
		PaidAddonIDs: []string{"creme_leitinho"},
	}

	sel.Quantity = 1
	one, err := PriceSelection("cat", product, acaiAddons, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, n := range []int{2, 3, 7} {
		sel.Quantity = n
		line, err := PriceSelection("cat", product, acaiAddons, sel)
		if err != nil {
			t.Fatalf("quantity %d: unexpected error: %v", n, err)
		}
		if want := one.Subtotal * float64(n); line.Subtotal != want {
			t.Errorf("quantity %d: subtotal = %.2f, want %.2f", n, line.Subtotal, want)
		}
	}
}

func TestPriceSelection_Pure(t *testing.T) {
	product := menu.Product{ID: "cop300", Name: "300ml", Price: 15.00, FreeAddonLimit: 3}
	sel := Selection{
		Quantity:     2,
		FreeAddons:   []string{"banana", "kiwi", "manga", "morango"},
		PaidAddonIDs: []string{"creme_avelã"},
		NeedsSpoon:   true,
	}

	a, err := PriceSelection("cat", product, acaiAddons, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := PriceSelection("cat", product, acaiAddons, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same inputs produced different line items:\n%+v\n%+v", a, b)
	}
}

func TestPriceSelection_ZeroLimitMakesEverythingExtra(t *testing.T) {
	product := menu.Product{ID: "x", Name: "x", Price: 10.00}

	line, err := PriceSelection("cat", product, acaiAddons, Selection{
		Quantity:   1,
		FreeAddons: []string{"banana", "kiwi"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line.FreeAddons) != 0 {
		t.Errorf("free addons = %v, want none", line.FreeAddons)
	}
	if line.ExtraAddonsTotal != 6.00 {
		t.Errorf("extra charge = %.2f, want 6.00", line.ExtraAddonsTotal)
	}
	if line.Subtotal != 16.00 {
		t.Errorf("subtotal = %.2f, want 16.00", line.Subtotal)
	}
}

func TestPriceSelection_DuplicatePaidAddonChargesOnce(t *testing.T) {
	product := menu.Product{ID: "cop300", Name: "300ml", Price: 15.00, FreeAddonLimit: 3}

	line, err := PriceSelection("cat", product, acaiAddons, Selection{
		Quantity:     1,
		PaidAddonIDs: []string{"creme_avelã", "creme_avelã"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Subtotal != 20.00 {
		t.Errorf("subtotal = %.2f, want 20.00", line.Subtotal)
	}
	if len(line.PaidAddons) != 1 {
		t.Errorf("paid addons = %v, want one entry", line.PaidAddons)
	}
}

func TestPriceSelection_DuplicateFreeAddonCountsOnce(t *testing.T) {
	product := menu.Product{ID: "cop300", Name: "300ml", Price: 15.00, FreeAddonLimit: 2}

	// A repeated name never fills the limit or spills into charged extras.
	line, err := PriceSelection("cat", product, acaiAddons, Selection{
		Quantity:   1,
		FreeAddons: []string{"banana", "banana", "banana"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(line.FreeAddons, []string{"banana"}) {
		t.Errorf("free addons = %v, want [banana]", line.FreeAddons)
	}
	if len(line.ExtraAddons) != 0 || line.ExtraAddonsTotal != 0 {
		t.Errorf("extras = %v (%.2f), want none", line.ExtraAddons, line.ExtraAddonsTotal)
	}
	if line.Subtotal != 15.00 {
		t.Errorf("subtotal = %.2f, want 15.00", line.Subtotal)
	}

	// Deduplication keeps first-occurrence order before partitioning.
	line, err = PriceSelection("cat", product, acaiAddons, Selection{
		Quantity:   1,
		FreeAddons: []string{"banana", "kiwi", "banana", "manga"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(line.FreeAddons, []string{"banana", "kiwi"}) {
		t.Errorf("free addons = %v, want [banana kiwi]", line.FreeAddons)
	}
	if !reflect.DeepEqual(line.ExtraAddons, []string{"manga"}) {
		t.Errorf("extra addons = %v, want [manga]", line.ExtraAddons)
	}
	if line.ExtraAddonsTotal != 3.00 {
		t.Errorf("extra charge = %.2f, want 3.00", line.ExtraAddonsTotal)
	}
}

func TestPriceSelection_EmptyAddonCatalogIgnoresSelections(t *testing.T) {
	product := menu.Product{ID: "coca2", Name: "Coca Cola 2L", Price: 13.00}

	line, err := PriceSelection("Bebidas > Refrigerantes de 2L", product, menu.AddonCatalog{}, Selection{
		Quantity:     2,
		FreeAddons:   []string{"banana"},
		PaidAddonIDs: []string{"creme_avelã"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Subtotal != 26.00 {
		t.Errorf("subtotal = %.2f, want 26.00", line.Subtotal)
	}
	if len(line.FreeAddons) != 0 || len(line.PaidAddons) != 0 || len(line.ExtraAddons) != 0 {
		t.Errorf("expected no addons on the line, got %+v", line)
	}
}

func TestPriceSelection_UnknownAddonRejected(t *testing.T) {
	product := menu.Product{ID: "cop300", Name: "300ml", Price: 15.00, FreeAddonLimit: 3}

	_, err := PriceSelection("cat", product, acaiAddons, Selection{
		Quantity:   1,
		FreeAddons: []string{"abacaxi"},
	})
	var uae *UnknownAddonError
	if !errors.As(err, &uae) {
		t.Fatalf("expected UnknownAddonError for unknown free addon, got %v", err)
	}

	_, err = PriceSelection("cat", product, acaiAddons, Selection{
		Quantity:     1,
		PaidAddonIDs: []string{"creme_inexistente"},
	})
	if !errors.As(err, &uae) {
		t.Fatalf("expected UnknownAddonError for unknown paid addon, got %v", err)
	}
}

func TestPriceSelection_InvalidQuantity(t *testing.T) {
	product := menu.Product{ID: "cop300", Name: "300ml", Price: 15.00}
	if _, err := PriceSelection("cat", product, acaiAddons, Selection{Quantity: 0}); err == nil {
		t.Fatal("expected error for zero quantity, got nil")
	}
}
