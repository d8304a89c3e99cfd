package controllers

import (
	"errors"
	"strings"
	"time"

	"orion-backend/database"
	"orion-backend/middlewares"
	"orion-backend/models"
	"orion-backend/utils"
	"orion-backend/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobCardCreateDTO struct {
	ClientID     *uint  `json:"client_id" validate:"omitempty"`
	TechnicianID *uint  `json:"technician_id" validate:"omitempty"`
	VehicleReg   string `json:"vehicle_reg" validate:"omitempty"`
	VehicleMake  string `json:"vehicle_make" validate:"omitempty"`
	VehicleModel string `json:"vehicle_model" validate:"omitempty"`
	VehicleYear  string `json:"vehicle_year" validate:"omitempty"`
	VehicleVIN   string `json:"vehicle_vin" validate:"omitempty"`
	VehicleColor string `json:"vehicle_color" validate:"omitempty"`
	Mileage      string `json:"mileage" validate:"omitempty"`

	ReportedIssue string  `json:"reported_issue" validate:"omitempty"`
	Notes         string  `json:"notes" validate:"omitempty"`
	Priority      string  `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	TaxRate       float64 `json:"tax_rate" validate:"gte=0,lte=100"`
}

type JobCardUpdateDTO struct {
	ClientID     *uint   `json:"client_id" validate:"omitempty"`
	TechnicianID *uint   `json:"technician_id" validate:"omitempty"`
	VehicleReg   *string `json:"vehicle_reg" validate:"omitempty"`
	VehicleMake  *string `json:"vehicle_make" validate:"omitempty"`
	VehicleModel *string `json:"vehicle_model" validate:"omitempty"`
	VehicleYear  *string `json:"vehicle_year" validate:"omitempty"`
	VehicleVIN   *string `json:"vehicle_vin" validate:"omitempty"`
	VehicleColor *string `json:"vehicle_color" validate:"omitempty"`
	Mileage      *string `json:"mileage" validate:"omitempty"`

	ReportedIssue   *string `json:"reported_issue" validate:"omitempty"`
	Diagnosis       *string `json:"diagnosis" validate:"omitempty"`
	RecommendedWork *string `json:"recommended_work" validate:"omitempty"`
	Notes           *string `json:"notes" validate:"omitempty"`

	Priority            *string    `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	EstimatedCompletion *time.Time `json:"estimated_completion" validate:"omitempty"`
	TaxRate             *float64   `json:"tax_rate" validate:"omitempty,gte=0,lte=100"`
}

// nextJobCardNumber derives the next JC-#### number from the most recent job
// card. The read runs with FOR UPDATE inside the request TX so concurrent
// intakes can't both read the same suffix.
func nextJobCardNumber(db *gorm.DB) (string, error) {
	var last models.JobCard
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id DESC").First(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	return utils.NextNumber("JC-", last.JobCardNumber), nil
}

// POST /api/jobcard
func CreateJobCard(c *fiber.Ctx) error {
	var in JobCardCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	number, err := nextJobCardNumber(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not allocate job card number")
	}

	card := models.JobCard{
		JobCardNumber: number,
		ClientID:      in.ClientID,
		TechnicianID:  in.TechnicianID,
		VehicleReg:    in.VehicleReg,
		VehicleMake:   in.VehicleMake,
		VehicleModel:  in.VehicleModel,
		VehicleYear:   in.VehicleYear,
		VehicleVIN:    in.VehicleVIN,
		VehicleColor:  in.VehicleColor,
		Mileage:       in.Mileage,
		ReportedIssue: in.ReportedIssue,
		Notes:         in.Notes,
		Priority:      in.Priority,
		TaxRate:       in.TaxRate,
		Status:        workflow.StatusReceived,
	}
	if card.Priority == "" {
		card.Priority = "normal"
	}

	if err := db.Create(&card).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create job card")
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// GET /api/jobcards
func GetJobCards(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	q := db.Preload("Items").Preload("Client").Preload("Technician").
		Order("created_at DESC")
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !workflow.Status(s).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "unknown status filter")
		}
		q = q.Where("status = ?", s)
	}

	var cards []models.JobCard
	if err := q.Find(&cards).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{"job_cards": cards})
}

// GET /api/jobcard/:id
// Returns the card plus the live totals breakdown and the recommended next
// action. The breakdown is recomputed from the current items on every read;
// the persisted total is only the cached copy.
func GetJobCard(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing job card id in path")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	var card models.JobCard
	if err := db.Preload("Items").Preload("Client").Preload("Technician").
		First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "job card not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	breakdown := workflow.Totals(card.WorkflowItems(), card.TaxRate)
	action := workflow.NextAction(card.Status, len(card.Items) > 0)

	return c.JSON(fiber.Map{
		"job_card":    card,
		"totals":      breakdown,
		"next_action": action,
	})
}

// PUT /api/jobcard/:id
func UpdateJobCard(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing job card id in path")
	}

	var in JobCardUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	var existing models.JobCard
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "job card not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := db.Model(&models.JobCard{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update job card")
		}
	}

	// A tax rate change shifts the cached total as well.
	if in.TaxRate != nil {
		if _, err := models.RecomputeTotal(db, existing.ID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not recompute total")
		}
	}

	var out models.JobCard
	if err := db.Preload("Items").First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload job card")
	}
	return c.JSON(out)
}

type StatusUpdateDTO struct {
	Status string `json:"status" validate:"required"`
}

// PUT /api/jobcard/:id/status
// Accepts any of the 11 lifecycle states. Transition legality is not checked:
// the guided flow is advisory and operators may jump to any state directly.
// Moving to completed stamps the completion timestamp.
func UpdateJobCardStatus(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing job card id in path")
	}

	var in StatusUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	status := workflow.Status(strings.TrimSpace(in.Status))
	if !status.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown status")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	var existing models.JobCard
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "job card not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := map[string]any{"status": status}
	if status == workflow.StatusCompleted {
		now := time.Now().UTC()
		updates["completed_at"] = &now
	}

	if err := db.Model(&models.JobCard{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update status")
	}

	var out models.JobCard
	if err := db.Preload("Items").First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload job card")
	}
	return c.JSON(fiber.Map{
		"job_card":    out,
		"next_action": workflow.NextAction(out.Status, len(out.Items) > 0),
	})
}

// DELETE /api/jobcard/:id
// Correction path only; normal flow ends in the collected state instead.
func DeleteJobCard(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing job card id in path")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	res := db.Delete(&models.JobCard{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete job card")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "job card not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}

// GET /api/jobcard/:id/whatsapp
// Builds the status notification text and the wa.me deep link for the card's
// client. The link is handed to the operator; nothing is sent from here.
func GetJobCardWhatsApp(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing job card id in path")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	var card models.JobCard
	if err := db.Preload("Client").First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "job card not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	if card.Client == nil {
		return fiber.NewError(fiber.StatusBadRequest, "job card has no client")
	}

	message := workflow.StatusMessage(card.Status, card.Client.DisplayName(), card.VehicleReg, card.JobCardNumber)
	return c.JSON(fiber.Map{
		"message": message,
		"link":    workflow.WhatsAppLink(card.Client.PhoneNumber, message),
	})
}

// GET /api/jobcards/statuses
// The one shared status metadata table: label, colour and the recommended
// action per state, so clients don't re-declare their own maps.
func GetJobCardStatuses(c *fiber.Ctx) error {
	type statusInfo struct {
		Status workflow.Status  `json:"status"`
		Meta   workflow.Meta    `json:"meta"`
		Action *workflow.Action `json:"next_action"`
	}
	out := make([]statusInfo, 0, len(workflow.Statuses))
	for _, s := range workflow.Statuses {
		out = append(out, statusInfo{
			Status: s,
			Meta:   s.Meta(),
			Action: workflow.NextAction(s, true),
		})
	}
	return c.JSON(fiber.Map{"statuses": out})
}
