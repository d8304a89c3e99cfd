package controllers

import (
	"encoding/json"
	"errors"
	"strings"

	"orion-backend/database"
	"orion-backend/models"
	"orion-backend/utils"
	"orion-backend/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loadCardWithItems fetches a job card and its items for document generation.
func loadCardWithItems(db *gorm.DB, id string) (*models.JobCard, error) {
	var card models.JobCard
	if err := db.Preload("Items").First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// POST /api/jobcard/:id/quote
// Snapshots the card's current line items into a numbered quote, links it
// back and moves the card to quoted.
func CreateQuote(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing job card id in path")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	card, err := loadCardWithItems(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "job card not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	breakdown := workflow.Totals(card.WorkflowItems(), card.TaxRate)
	snapshot, err := json.Marshal(card.Items)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not snapshot line items")
	}

	var last models.Quote
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id DESC").First(&last).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "could not allocate quote number")
	}

	quote := models.Quote{
		QuoteNumber: utils.NextNumber("QT-", last.QuoteNumber),
		JobCardID:   card.ID,
		Subtotal:    breakdown.Subtotal,
		TaxTotal:    breakdown.Tax,
		Total:       breakdown.Total,
		Snapshot:    datatypes.JSON(snapshot),
	}
	if err := db.Create(&quote).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create quote")
	}

	if err := db.Model(&models.JobCard{}).Where("id = ?", card.ID).
		Updates(map[string]any{
			"quote_id": quote.ID,
			"status":   workflow.StatusQuoted,
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not link quote to job card")
	}

	return c.Status(fiber.StatusCreated).JSON(quote)
}

// POST /api/jobcard/:id/invoice
// Requires at least one line item (mirrors the action-availability rule).
// Snapshots the items, links the invoice and moves the card to invoiced.
func CreateInvoice(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing job card id in path")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	card, err := loadCardWithItems(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "job card not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	if len(card.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "cannot invoice a job card without line items")
	}

	breakdown := workflow.Totals(card.WorkflowItems(), card.TaxRate)
	snapshot, err := json.Marshal(card.Items)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not snapshot line items")
	}

	var last models.Invoice
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id DESC").First(&last).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "could not allocate invoice number")
	}

	invoice := models.Invoice{
		InvoiceNumber: utils.NextNumber("INV-", last.InvoiceNumber),
		JobCardID:     card.ID,
		Subtotal:      breakdown.Subtotal,
		TaxTotal:      breakdown.Tax,
		Total:         breakdown.Total,
		Snapshot:      datatypes.JSON(snapshot),
	}
	if err := db.Create(&invoice).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create invoice")
	}

	if err := db.Model(&models.JobCard{}).Where("id = ?", card.ID).
		Updates(map[string]any{
			"invoice_id": invoice.ID,
			"status":     workflow.StatusInvoiced,
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not link invoice to job card")
	}

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GET /api/quotes
func GetQuotes(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	var quotes []models.Quote
	if err := db.Order("created_at DESC").Find(&quotes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{"quotes": quotes})
}

// GET /api/invoices
func GetInvoices(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	var invoices []models.Invoice
	if err := db.Order("created_at DESC").Find(&invoices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{"invoices": invoices})
}
