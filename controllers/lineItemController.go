package controllers

import (
	"errors"
	"strings"

	"orion-backend/database"
	"orion-backend/middlewares"
	"orion-backend/models"
	"orion-backend/utils"
	"orion-backend/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LineItemCreateDTO struct {
	ItemType    string  `json:"item_type" validate:"required,oneof=parts labour"`
	Description string  `json:"description" validate:"required,min=1"`
	PartNumber  string  `json:"part_number" validate:"omitempty"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

// POST /api/jobcard/:id/items
// Inserts the line item and recomputes the persisted total. Both writes run
// in the request TX, so a failed recompute rolls the item back too.
func AddLineItem(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing job card id in path")
	}

	var in LineItemCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	var card models.JobCard
	if err := db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "job card not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	item := models.LineItem{
		JobCardID:   card.ID,
		ItemType:    workflow.ItemType(in.ItemType),
		Description: in.Description,
		PartNumber:  in.PartNumber,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	}
	if item.ItemType != workflow.ItemParts {
		// Part numbers only make sense on parts lines.
		item.PartNumber = ""
	}

	if err := db.Create(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not add line item")
	}

	breakdown, err := models.RecomputeTotal(db, card.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not recompute total")
	}

	var out models.JobCard
	if err := db.Preload("Items").First(&out, "id = ?", card.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload job card")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"job_card": out,
		"totals":   breakdown,
	})
}

// DELETE /api/jobcard/:id/items/:itemID
// Removing an item that no longer exists fails with 404 and leaves the total
// untouched, so a double-delete cannot corrupt the card.
func RemoveLineItem(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	itemID := strings.TrimSpace(c.Params("itemID"))
	if id == "" || itemID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing id in path")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	var card models.JobCard
	if err := db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "job card not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	res := db.Where("job_card_id = ?", card.ID).Delete(&models.LineItem{}, "id = ?", itemID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not remove line item")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "line item not found")
	}

	breakdown, err := models.RecomputeTotal(db, card.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not recompute total")
	}

	var out models.JobCard
	if err := db.Preload("Items").First(&out, "id = ?", card.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload job card")
	}
	return c.JSON(fiber.Map{
		"job_card": out,
		"totals":   breakdown,
	})
}
