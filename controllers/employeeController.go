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

type EmployeeCreateDTO struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Phone       string  `json:"phone" validate:"omitempty"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Nationality string  `json:"nationality" validate:"omitempty"`
	Designation string  `json:"designation" validate:"omitempty"`
	CompanyId   *string `json:"company_id" validate:"omitempty,uuid4"`
	Remarks     string  `json:"remarks" validate:"omitempty"`
}

type EmployeeUpdateDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Phone       *string `json:"phone" validate:"omitempty"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Nationality *string `json:"nationality" validate:"omitempty"`
	Designation *string `json:"designation" validate:"omitempty"`
	CompanyId   *string `json:"company_id" validate:"omitempty,uuid4"`
	Remarks     *string `json:"remarks" validate:"omitempty"`
}

// POST /api/employee
func CreateEmployee(c *fiber.Ctx) error {
	var in EmployeeCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	if in.CompanyId != nil {
		var company models.Company
		if err := db.First(&company, "id = ?", *in.CompanyId).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "company does not exist")
		}
	}

	employee := models.Employee{
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Nationality: in.Nationality,
		Designation: in.Designation,
		CompanyId:   in.CompanyId,
		Remarks:     in.Remarks,
	}
	if err := db.Create(&employee).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create employee")
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// GET /api/employees
func GetEmployees(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	q := db.Order("name asc")
	if companyID := strings.TrimSpace(c.Query("company_id")); companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}

	var employees []models.Employee
	if err := q.Find(&employees).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"employees": employees,
		"message":   "success",
	})
}

// GET /api/employee/:id
func GetEmployee(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing employee id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var employee models.Employee
	if err := db.Preload("Documents").First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	now := time.Now()
	window := renewalWindow()
	for i := range employee.Documents {
		employee.Documents[i].Status = string(ledger.ClassifyDocument(employee.Documents[i].ExpiryDate, now, window))
	}

	var records []models.Record
	if err := db.Where("employee_id = ?", id).Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	key := ledger.EntityKey{Kind: ledger.ClientEmployee, ID: id}
	balance := ledger.Balance(models.LedgerRecords(records), key)

	return c.JSON(fiber.Map{
		"employee": employee,
		"balance":  utils.Round2(balance),
	})
}

// PUT /api/employee/:id
func UpdateEmployee(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing employee id in path")
	}

	var in EmployeeUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var existing models.Employee
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := db.Model(&models.Employee{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update employee")
		}
	}

	var out models.Employee
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload employee")
	}
	return c.JSON(out)
}

// DELETE /api/employee/:id
func DeleteEmployee(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing employee id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.Employee{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete employee")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "employee not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
