package models

import (
	"time"

	"gorm.io/datatypes"
)

// Invoice is an immutable priced snapshot of a job card's line items at the
// moment of invoicing. Generation requires at least one line item.
type Invoice struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	InvoiceNumber string         `json:"invoice_number" gorm:"unique"`
	JobCardID     uint           `json:"job_card_id" gorm:"index"`
	Subtotal      float64        `json:"subtotal" gorm:"type:numeric(12,2)"`
	TaxTotal      float64        `json:"tax_total" gorm:"type:numeric(12,2)"`
	Total         float64        `json:"total" gorm:"type:numeric(12,2)"`
	Snapshot      datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`
	CreatedAt     time.Time      `json:"created_at"`
}
