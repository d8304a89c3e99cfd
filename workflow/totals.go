package workflow

import "orion-backend/utils"

// ItemType classifies a line item as parts or labour; the two feed separate
// subtotal columns.
type ItemType string

const (
	ItemParts  ItemType = "parts"
	ItemLabour ItemType = "labour"
)

// Item is the slice of a line item the totals calculation needs.
type Item struct {
	Type      ItemType
	Quantity  float64
	UnitPrice float64
}

// Breakdown is the derived financial summary of a job card.
type Breakdown struct {
	PartsSubtotal  float64 `json:"parts_subtotal"`
	LabourSubtotal float64 `json:"labour_subtotal"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
}

// Totals computes the full breakdown from the live line items:
//
//	subtotal = Σ parts + Σ labour
//	tax      = subtotal × taxRate/100
//	total    = subtotal + tax
//
// Line amounts are never stored; quantity × unit price is recomputed here
// every time. All figures are rounded to 2dp.
func Totals(items []Item, taxRate float64) Breakdown {
	var b Breakdown
	for _, it := range items {
		amount := it.Quantity * it.UnitPrice
		switch it.Type {
		case ItemParts:
			b.PartsSubtotal += amount
		case ItemLabour:
			b.LabourSubtotal += amount
		}
	}
	b.PartsSubtotal = utils.Round2(b.PartsSubtotal)
	b.LabourSubtotal = utils.Round2(b.LabourSubtotal)
	b.Subtotal = utils.Round2(b.PartsSubtotal + b.LabourSubtotal)
	b.Tax = utils.Round2(b.Subtotal * taxRate / 100)
	b.Total = utils.Round2(b.Subtotal + b.Tax)
	return b
}
