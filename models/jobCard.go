package models

import (
	"time"

	"orion-backend/workflow"

	"gorm.io/gorm"
)

// JobCard is one vehicle-service engagement, tracked through the 11-state
// lifecycle in the workflow package. Total is a persisted cache of the live
// line-item computation; RecomputeTotal keeps the two in step and always runs
// in the same transaction as the line-item write.
type JobCard struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	JobCardNumber string `json:"job_card_number" gorm:"unique"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `json:"client,omitempty" gorm:"foreignKey:ClientID;references:Id"`

	TechnicianID *uint       `json:"technician_id"`
	Technician   *Technician `json:"technician,omitempty" gorm:"foreignKey:TechnicianID;references:Id"`

	// Vehicle attributes (all optional free text)
	VehicleReg   string `json:"vehicle_reg"`
	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
	VehicleYear  string `json:"vehicle_year"`
	VehicleVIN   string `json:"vehicle_vin"`
	VehicleColor string `json:"vehicle_color"`
	Mileage      string `json:"mileage"`

	// Narrative fields, mutable at any stage
	ReportedIssue   string `json:"reported_issue"`
	Diagnosis       string `json:"diagnosis"`
	RecommendedWork string `json:"recommended_work"`
	Notes           string `json:"notes"`

	// Workflow
	Status              workflow.Status `json:"status" gorm:"type:varchar(20);default:'received'"`
	Priority            string          `json:"priority" gorm:"default:'normal'"`
	EstimatedCompletion *time.Time      `json:"estimated_completion"`
	CompletedAt         *time.Time      `json:"completed_at"`

	// Financials
	TaxRate float64 `json:"tax_rate"` // percent
	Total   float64 `json:"total" gorm:"type:numeric(12,2)"`

	Items []LineItem `json:"line_items" gorm:"foreignKey:JobCardID;constraint:OnDelete:CASCADE"`

	// One-way links, set when the documents are generated
	QuoteID   *uint `json:"quote_id"`
	InvoiceID *uint `json:"invoice_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineItem is a billable parts or labour entry owned by its job card.
// The line amount (quantity × unit price) is never stored; it is recomputed
// wherever it is shown.
type LineItem struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	JobCardID   uint              `json:"-" gorm:"index"`
	ItemType    workflow.ItemType `json:"item_type" gorm:"type:varchar(10);not null"`
	Description string            `json:"description" gorm:"not null"`
	PartNumber  string            `json:"part_number"` // parts only
	Quantity    float64           `json:"quantity"`
	UnitPrice   float64           `json:"unit_price" gorm:"type:numeric(12,2)"`
	CreatedAt   time.Time         `json:"created_at"`
}

// WorkflowItems projects the line items into the shape the totals
// calculation consumes.
func (jc *JobCard) WorkflowItems() []workflow.Item {
	items := make([]workflow.Item, 0, len(jc.Items))
	for _, it := range jc.Items {
		items = append(items, workflow.Item{
			Type:      it.ItemType,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return items
}

// RecomputeTotal reloads the job card's line items, recomputes the breakdown
// with the card's tax rate and persists the new total. Callers run it inside
// the request transaction so an item write and its total update land (or fail)
// together.
func RecomputeTotal(db *gorm.DB, jobCardID uint) (workflow.Breakdown, error) {
	var card JobCard
	if err := db.Preload("Items").First(&card, "id = ?", jobCardID).Error; err != nil {
		return workflow.Breakdown{}, err
	}

	breakdown := workflow.Totals(card.WorkflowItems(), card.TaxRate)
	if err := db.Model(&JobCard{}).Where("id = ?", jobCardID).
		Update("total", breakdown.Total).Error; err != nil {
		return workflow.Breakdown{}, err
	}
	return breakdown, nil
}
