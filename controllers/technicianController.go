package controllers

import (
	"orion-backend/database"
	"orion-backend/middlewares"
	"orion-backend/models"
	"orion-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type TechnicianCreateDTO struct {
	Name        string `json:"name" validate:"required,min=1"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty"`
	Specialty   string `json:"specialty" validate:"omitempty"`
}

// POST /api/technician
func CreateTechnician(c *fiber.Ctx) error {
	var in TechnicianCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	tech := models.Technician{
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Specialty:   in.Specialty,
		Active:      true,
	}
	if err := db.Create(&tech).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create technician")
	}
	return c.Status(fiber.StatusCreated).JSON(tech)
}

// GET /api/technicians
func GetTechnicians(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tenant db unavailable")
	}

	var techs []models.Technician
	if err := db.Where("active = ?", true).Order("name").Find(&techs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{"technicians": techs})
}
