package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zaad-backend/database"
	"zaad-backend/ledger"
	"zaad-backend/middlewares"
	"zaad-backend/models"
	"zaad-backend/utils"
)

type InvoiceCreateDTO struct {
	Number      int     `json:"number" validate:"omitempty,gt=0"`
	Suffix      string  `json:"suffix" validate:"omitempty,max=10"`
	CompanyId   *string `json:"company_id" validate:"omitempty,uuid4"`
	EmployeeId  *string `json:"employee_id" validate:"omitempty,uuid4"`
	ClientName  string  `json:"client_name"`
	Particulars string  `json:"particulars"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Remarks     string  `json:"remarks"`
}

type InvoiceUpdateDTO struct {
	CompanyId   *string  `json:"company_id" validate:"omitempty,uuid4"`
	EmployeeId  *string  `json:"employee_id" validate:"omitempty,uuid4"`
	ClientName  *string  `json:"client_name"`
	Particulars *string  `json:"particulars"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0"`
	Remarks     *string  `json:"remarks"`
}

// nextInvoiceNumber returns max(number)+1 within a suffix series.
func nextInvoiceNumber(db *gorm.DB, suffix string) (int, error) {
	var last int
	err := db.Model(&models.Invoice{}).Where("suffix = ?", suffix).
		Select("COALESCE(MAX(number), 0)").Scan(&last).Error
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}

// POST /api/invoice
// A zero number means "assign the next one in the suffix series".
func CreateInvoice(c *fiber.Ctx) error {
	var in InvoiceCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	number := in.Number
	if number == 0 {
		number, err = nextInvoiceNumber(db, in.Suffix)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not assign invoice number")
		}
	}

	var date time.Time
	if in.Date != "" {
		date, _ = time.Parse(ledger.DateLayout, in.Date)
	} else {
		date = time.Now()
	}

	invoice := models.Invoice{
		Number:      number,
		Suffix:      in.Suffix,
		CompanyId:   in.CompanyId,
		EmployeeId:  in.EmployeeId,
		ClientName:  in.ClientName,
		Particulars: in.Particulars,
		Amount:      in.Amount,
		Date:        date,
		Remarks:     in.Remarks,
	}
	if err := db.Create(&invoice).Error; err != nil {
		// The (suffix, number) unique index rejects duplicate numbers.
		return fiber.NewError(fiber.StatusBadRequest, "could not create invoice")
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GET /api/invoices
func GetInvoices(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	q := db.Model(&models.Invoice{})
	if suffix := strings.TrimSpace(c.Query("suffix")); suffix != "" {
		q = q.Where("suffix = ?", suffix)
	}
	if companyID := strings.TrimSpace(c.Query("company_id")); companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}

	var invoices []models.Invoice
	if err := q.Order("suffix asc, number desc").Find(&invoices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"invoices": invoices,
		"message":  "success",
	})
}

// GET /api/invoices/next-number?suffix=
func GetNextInvoiceNumber(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	suffix := strings.TrimSpace(c.Query("suffix"))
	number, err := nextInvoiceNumber(db, suffix)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"suffix": suffix,
		"number": number,
	})
}

// GET /api/invoice/:id
func GetInvoice(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var invoice models.Invoice
	if err := db.First(&invoice, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(invoice)
}

// PUT /api/invoice/:id
// Number and suffix are immutable once assigned; only descriptive fields move.
func UpdateInvoice(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing invoice id in path")
	}

	var in InvoiceUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var existing models.Invoice
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := db.Model(&models.Invoice{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update invoice")
		}
	}

	var out models.Invoice
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload invoice")
	}
	return c.JSON(out)
}

// DELETE /api/invoice/:id
func DeleteInvoice(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.Invoice{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete invoice")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
