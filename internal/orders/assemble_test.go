package orders

import (
	"testing"
	"time"

	"github.com/topacai/top-acai-backend/internal/delivery"
)

func sampleItems() []LineItem {
	return []LineItem{
		{ProductID: "cop500", ProductName: "500ml", UnitPrice: 22.00, Quantity: 2, Subtotal: 66.00},
	}
}

func TestAssemble_DeterminedFee(t *testing.T) {
	now := time.Date(2025, 7, 1, 21, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	order := Assemble("o1",
		Customer{Name: "Maria", Address: "bem viver arapongas, 10"},
		PaymentCard,
		ChangeInfo{},
		sampleItems(),
		delivery.Determined(0),
		now,
	)

	if order.Subtotal != 66.00 {
		t.Errorf("subtotal = %.2f, want 66.00", order.Subtotal)
	}
	if order.Total != 66.00 {
		t.Errorf("total = %.2f, want 66.00", order.Total)
	}
	if order.DeliveryFee.IsPending() {
		t.Error("fee should be determined")
	}
	if order.CreatedAt.Location() != time.UTC {
		t.Errorf("created at should be stamped UTC, got %v", order.CreatedAt.Location())
	}
	if !order.CreatedAt.Equal(now) {
		t.Errorf("created at = %v, want %v", order.CreatedAt, now)
	}
}

func TestAssemble_PendingFeeLeavesTotalAtSubtotal(t *testing.T) {
	order := Assemble("o2",
		Customer{Name: "Maria", Address: "Rua X, 45"},
		PaymentPix,
		ChangeInfo{},
		sampleItems(),
		delivery.Pending(),
		time.Now(),
	)

	if order.Total != order.Subtotal {
		t.Errorf("total = %.2f, want subtotal %.2f", order.Total, order.Subtotal)
	}
	if !order.DeliveryFee.IsPending() {
		t.Error("fee must stay flagged pending, not collapse to zero")
	}
}

func TestAssemble_CarriesChangeAmountUnmodified(t *testing.T) {
	change := ChangeInfo{NeedsChange: true, ChangeAmount: 70.00}
	order := Assemble("o3",
		Customer{Name: "Maria", Address: "bem viver arapongas"},
		PaymentCash,
		change,
		sampleItems(),
		delivery.Determined(0),
		time.Now(),
	)

	if order.ChangeInfo != change {
		t.Errorf("change info = %+v, want %+v carried through untouched", order.ChangeInfo, change)
	}
	// The summary computes change due from the raw amount.
	if due := order.ChangeInfo.ChangeAmount - order.Total; due != 4.00 {
		t.Errorf("change due = %.2f, want 4.00", due)
	}
}

func TestAssemble_SumsMultipleLines(t *testing.T) {
	items := []LineItem{
		{ProductID: "a", Subtotal: 10.50},
		{ProductID: "b", Subtotal: 5.00},
		{ProductID: "c", Subtotal: 13.00},
	}
	order := Assemble("o4", Customer{Name: "n", Address: "a"}, PaymentCard, ChangeInfo{}, items, delivery.Determined(7), time.Now())

	if order.Subtotal != 28.50 {
		t.Errorf("subtotal = %.2f, want 28.50", order.Subtotal)
	}
	if order.Total != 35.50 {
		t.Errorf("total = %.2f, want 35.50", order.Total)
	}
}
