package routes

import (
	"github.com/gofiber/fiber/v2"

	"orion-backend/controllers"
	"orion-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request tenant transaction (pins search_path and commits/rolls back)
	protected.Use(middlewares.TenantTx())

	// Clients
	protected.Post("/client", controllers.CreateClient)
	protected.Get("/clients", controllers.GetClients)
	protected.Get("/client/:id", controllers.GetClient)
	protected.Put("/client/:id", controllers.UpdateClient)

	// Technicians
	protected.Post("/technician", controllers.CreateTechnician)
	protected.Get("/technicians", controllers.GetTechnicians)

	// Job cards (status metadata route before :id so "statuses" doesn't match as an id)
	protected.Get("/jobcards/statuses", controllers.GetJobCardStatuses)
	protected.Post("/jobcard", controllers.CreateJobCard)
	protected.Get("/jobcards", controllers.GetJobCards)
	protected.Get("/jobcard/:id", controllers.GetJobCard)
	protected.Put("/jobcard/:id", controllers.UpdateJobCard)
	protected.Put("/jobcard/:id/status", controllers.UpdateJobCardStatus)
	protected.Delete("/jobcard/:id", controllers.DeleteJobCard)
	protected.Get("/jobcard/:id/whatsapp", controllers.GetJobCardWhatsApp)

	// Line items (total is recomputed inside the request TX)
	protected.Post("/jobcard/:id/items", controllers.AddLineItem)
	protected.Delete("/jobcard/:id/items/:itemID", controllers.RemoveLineItem)

	// Generated documents
	protected.Post("/jobcard/:id/quote", controllers.CreateQuote)
	protected.Post("/jobcard/:id/invoice", controllers.CreateInvoice)
	protected.Get("/quotes", controllers.GetQuotes)
	protected.Get("/invoices", controllers.GetInvoices)
}
