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

type CompanyCreateDTO struct {
	Name      string `json:"name" validate:"required,min=1"`
	LicenseNo string `json:"license_no" validate:"omitempty"`
	Phone     string `json:"phone" validate:"omitempty"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address" validate:"omitempty"`
	Remarks   string `json:"remarks" validate:"omitempty"`
}

type CompanyUpdateDTO struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	LicenseNo *string `json:"license_no" validate:"omitempty"`
	Phone     *string `json:"phone" validate:"omitempty"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Address   *string `json:"address" validate:"omitempty"`
	Remarks   *string `json:"remarks" validate:"omitempty"`
}

// POST /api/company
func CreateCompany(c *fiber.Ctx) error {
	var in CompanyCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	company := models.Company{
		Name:      in.Name,
		LicenseNo: in.LicenseNo,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		Remarks:   in.Remarks,
	}
	if err := db.Create(&company).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create company")
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// GET /api/companies
func GetCompanies(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var companies []models.Company
	if err := db.Order("name asc").Find(&companies).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"companies": companies,
		"message":   "success",
	})
}

// GET /api/company/:id
// Returns the company with its documents (statuses derived), credentials,
// and the balance aggregated over its full record set.
func GetCompany(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing company id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var company models.Company
	if err := db.Preload("Documents").Preload("Credentials").Preload("Employees").
		First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "company not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	now := time.Now()
	window := renewalWindow()
	for i := range company.Documents {
		company.Documents[i].Status = string(ledger.ClassifyDocument(company.Documents[i].ExpiryDate, now, window))
	}

	// Balance must reflect the full record set, never a page.
	var records []models.Record
	if err := db.Where("company_id = ?", id).Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	key := ledger.EntityKey{Kind: ledger.ClientCompany, ID: id}
	balance := ledger.Balance(models.LedgerRecords(records), key)

	return c.JSON(fiber.Map{
		"company": company,
		"balance": utils.Round2(balance),
	})
}

// PUT /api/company/:id
func UpdateCompany(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing company id in path")
	}

	var in CompanyUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var existing models.Company
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "company not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := db.Model(&models.Company{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update company")
		}
	}

	var out models.Company
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload company")
	}
	return c.JSON(out)
}

// DELETE /api/company/:id
func DeleteCompany(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing company id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.Company{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete company")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "company not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
