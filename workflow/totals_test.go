package workflow

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotalsPartsAndLabour(t *testing.T) {
	// parts 2×150 + labour 3×200 at 15% tax => 900 / 135 / 1035
	items := []Item{
		{Type: ItemParts, Quantity: 2, UnitPrice: 150},
		{Type: ItemLabour, Quantity: 3, UnitPrice: 200},
	}
	b := Totals(items, 15)

	if !almostEqual(b.PartsSubtotal, 300) {
		t.Errorf("PartsSubtotal = %v, want 300", b.PartsSubtotal)
	}
	if !almostEqual(b.LabourSubtotal, 600) {
		t.Errorf("LabourSubtotal = %v, want 600", b.LabourSubtotal)
	}
	if !almostEqual(b.Subtotal, 900) {
		t.Errorf("Subtotal = %v, want 900", b.Subtotal)
	}
	if !almostEqual(b.Tax, 135) {
		t.Errorf("Tax = %v, want 135", b.Tax)
	}
	if !almostEqual(b.Total, 1035) {
		t.Errorf("Total = %v, want 1035", b.Total)
	}
}

func TestTotalsNoItems(t *testing.T) {
	b := Totals(nil, 15)
	if b.Subtotal != 0 || b.Tax != 0 || b.Total != 0 {
		t.Errorf("Totals(nil) = %+v, want all zero", b)
	}
}

func TestTotalsZeroTaxRate(t *testing.T) {
	b := Totals([]Item{{Type: ItemLabour, Quantity: 1.5, UnitPrice: 100}}, 0)
	if !almostEqual(b.Subtotal, 150) || !almostEqual(b.Tax, 0) || !almostEqual(b.Total, 150) {
		t.Errorf("Totals with 0%% tax = %+v, want 150/0/150", b)
	}
}

func TestTotalsRounding(t *testing.T) {
	// 3 × 33.335 = 100.005 -> subtotal rounds to 100.01 (parts 100.01),
	// tax at 15% = 15.0015 -> 15.00
	b := Totals([]Item{{Type: ItemParts, Quantity: 3, UnitPrice: 33.335}}, 15)
	if !almostEqual(b.Subtotal, 100.01) {
		t.Errorf("Subtotal = %v, want 100.01", b.Subtotal)
	}
	if !almostEqual(b.Tax, 15.0) {
		t.Errorf("Tax = %v, want 15.00", b.Tax)
	}
	if !almostEqual(b.Total, 115.01) {
		t.Errorf("Total = %v, want 115.01", b.Total)
	}
}
