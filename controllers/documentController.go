package controllers

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"zaad-backend/database"
	"zaad-backend/ledger"
	"zaad-backend/middlewares"
	"zaad-backend/models"
)

// defaultRenewalWindowDays is the fallback when DOC_RENEWAL_WINDOW_DAYS is
// unset. The window is deliberately a setting, not business logic.
const defaultRenewalWindowDays = 30

// expiryCutoff is the exclusive upper bound for the expiring list. It works
// from the start of today so the SQL filter and ledger.ClassifyDocument
// agree at the window boundary: a document expiring exactly at today+window
// is valid and must not be listed.
func expiryCutoff(now time.Time, window time.Duration) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.Add(window)
}

func renewalWindow() time.Duration {
	days := defaultRenewalWindowDays
	if v := os.Getenv("DOC_RENEWAL_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

type DocumentCreateDTO struct {
	Name       string `json:"name" validate:"required,min=1"`
	IssueDate  string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
}

// POST /api/company/:id/documents
func CreateCompanyDocument(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	return createDocument(c, &id, nil)
}

// POST /api/employee/:id/documents
func CreateEmployeeDocument(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	return createDocument(c, nil, &id)
}

func createDocument(c *fiber.Ctx, companyID, employeeID *string) error {
	var in DocumentCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	if companyID != nil {
		var company models.Company
		if err := db.First(&company, "id = ?", *companyID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "company not found")
		}
	}
	if employeeID != nil {
		var employee models.Employee
		if err := db.First(&employee, "id = ?", *employeeID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		}
	}

	expiry, err := time.Parse(ledger.DateLayout, in.ExpiryDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid expiry date")
	}
	var issue time.Time
	if in.IssueDate != "" {
		issue, _ = time.Parse(ledger.DateLayout, in.IssueDate)
	}

	doc := models.Document{
		CompanyId:  companyID,
		EmployeeId: employeeID,
		Name:       strings.TrimSpace(in.Name),
		IssueDate:  issue,
		ExpiryDate: expiry,
	}
	if err := db.Create(&doc).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create document")
	}

	doc.Status = string(ledger.ClassifyDocument(doc.ExpiryDate, time.Now(), renewalWindow()))
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// DELETE /api/documents/:id
func DeleteDocument(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.Document{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete document")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "document not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}

// GET /api/documents/expiring
// Lists documents already expired or inside the renewal window, soonest first.
func GetExpiringDocuments(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	window := renewalWindow()
	if v := strings.TrimSpace(c.Query("within")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			window = time.Duration(n) * 24 * time.Hour
		}
	}

	now := time.Now()
	cutoff := expiryCutoff(now, window)

	var docs []models.Document
	if err := db.Where("expiry_date < ?", cutoff).Order("expiry_date asc").Find(&docs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	for i := range docs {
		docs[i].Status = string(ledger.ClassifyDocument(docs[i].ExpiryDate, now, window))
	}

	return c.JSON(fiber.Map{
		"documents": docs,
		"message":   "success",
	})
}

type CredentialCreateDTO struct {
	Platform string `json:"platform" validate:"required,min=1"`
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"omitempty"`
}

// POST /api/company/:id/credentials
func CreateCredential(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing company id in path")
	}

	var in CredentialCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var company models.Company
	if err := db.First(&company, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "company not found")
	}

	cred := models.Credential{
		CompanyId: id,
		Platform:  strings.TrimSpace(in.Platform),
		Username:  strings.TrimSpace(in.Username),
		Password:  in.Password,
	}
	if err := db.Create(&cred).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create credential")
	}
	return c.Status(fiber.StatusCreated).JSON(cred)
}

// GET /api/company/:id/credentials
func GetCredentials(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var creds []models.Credential
	if err := db.Where("company_id = ?", c.Params("id")).Order("platform asc").Find(&creds).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"credentials": creds,
		"message":     "success",
	})
}

// DELETE /api/credentials/:id
func DeleteCredential(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.Credential{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete credential")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "credential not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
