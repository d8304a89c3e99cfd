package database

import (
	"fmt"
	"log"
	"os"

	"orion-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "db"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		fmt.Println(err)
		panic("Could not connect to database")
	}
}

// AutoMigrate migrates the public (shared) schema: platform accounts and
// workshop registrations. Tenant tables live in per-tenant schemas, see
// MigrateTenantSchema.
func AutoMigrate() {
	DB.AutoMigrate(models.ContactPerson{}, models.Company{}, models.User{})
}
