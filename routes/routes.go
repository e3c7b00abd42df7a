package routes

import (
	"github.com/gofiber/fiber/v2"

	"zaad-backend/controllers"
	"zaad-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/register", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then the per-request transaction (commits/rolls back around the handler)
	protected.Use(middlewares.RequestTx())

	// Current user
	protected.Get("/user", controllers.GetUser)

	// Companies
	protected.Post("/company", controllers.CreateCompany)
	protected.Get("/companies", controllers.GetCompanies)
	protected.Get("/company/:id", controllers.GetCompany)
	protected.Put("/company/:id", controllers.UpdateCompany)
	protected.Delete("/company/:id", middlewares.RequireAdmin(), controllers.DeleteCompany)

	// Documents & credentials
	protected.Post("/company/:id/documents", controllers.CreateCompanyDocument)
	protected.Post("/employee/:id/documents", controllers.CreateEmployeeDocument)
	protected.Delete("/documents/:id", controllers.DeleteDocument)
	protected.Get("/documents/expiring", controllers.GetExpiringDocuments)
	protected.Post("/company/:id/credentials", controllers.CreateCredential)
	protected.Get("/company/:id/credentials", controllers.GetCredentials)
	protected.Delete("/credentials/:id", controllers.DeleteCredential)

	// Employees / individuals
	protected.Post("/employee", controllers.CreateEmployee)
	protected.Get("/employees", controllers.GetEmployees)
	protected.Get("/employee/:id", controllers.GetEmployee)
	protected.Put("/employee/:id", controllers.UpdateEmployee)
	protected.Delete("/employee/:id", middlewares.RequireAdmin(), controllers.DeleteEmployee)

	// Records (transactions)
	protected.Post("/record", controllers.CreateRecord)
	protected.Post("/record/self-deposit", controllers.CreateSelfDeposit)
	protected.Get("/records", controllers.GetRecords)
	protected.Get("/record/:id", controllers.GetRecord)
	protected.Put("/record/:id", controllers.UpdateRecord)
	protected.Get("/record/:id/revisions", controllers.GetRecordRevisions)
	protected.Delete("/record/:id", controllers.DeleteRecord)

	// Invoices (numbered per suffix series)
	protected.Post("/invoice", controllers.CreateInvoice)
	protected.Get("/invoices", controllers.GetInvoices)
	protected.Get("/invoices/next-number", controllers.GetNextInvoiceNumber)
	protected.Get("/invoice/:id", controllers.GetInvoice)
	protected.Put("/invoice/:id", controllers.UpdateInvoice)
	protected.Delete("/invoice/:id", controllers.DeleteInvoice)

	// Accounts dashboards
	protected.Get("/accounts/summary", controllers.GetAccountsSummary)
	protected.Get("/accounts/balances", controllers.GetAccountBalances)
	protected.Get("/liabilities", controllers.GetLiabilities)
}
