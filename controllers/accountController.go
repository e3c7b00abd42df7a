package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zaad-backend/database"
	"zaad-backend/ledger"
	"zaad-backend/models"
	"zaad-backend/utils"
)

// GET /api/accounts/summary
// House-wide dashboard totals. month/year query params go through
// ledger.NormalizeFilter; the reduction always runs over the full
// (unpaginated) record set so totals reflect the truth, not a page.
func GetAccountsSummary(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	filter := ledger.NormalizeFilter(c.Query("month"), c.Query("year"))

	q := db.Model(&models.Record{})
	q = applyTemporalFilter(q, filter, time.Now())

	var records []models.Record
	if err := q.Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	summary := ledger.Aggregate(models.LedgerRecords(records))

	return c.JSON(fiber.Map{
		"filter":  filter,
		"summary": summary,
		"message": "success",
	})
}

// NamedBalance is an EntityBalance resolved to a display name for the lists.
type NamedBalance struct {
	Kind    string  `json:"kind"`
	Id      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// GET /api/accounts/balances
// Derives every entity balance from the full record set and buckets them
// into the debit (owes us) and credit (we owe) lists.
func GetAccountBalances(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var records []models.Record
	if err := db.Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	balances := ledger.EntityBalances(models.LedgerRecords(records))
	debtors, creditors := ledger.SplitBalances(balances)

	companyNames, employeeNames, err := entityNames(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	return c.JSON(fiber.Map{
		"over0balance":  resolveNames(debtors, companyNames, employeeNames),
		"under0balance": resolveNames(creditors, companyNames, employeeNames),
		"message":       "success",
	})
}

// entityNames loads id -> name maps for labelling aggregation output.
func entityNames(db *gorm.DB) (map[string]string, map[string]string, error) {
	var companies []models.Company
	if err := db.Select("id", "name").Find(&companies).Error; err != nil {
		return nil, nil, err
	}
	var employees []models.Employee
	if err := db.Select("id", "name").Find(&employees).Error; err != nil {
		return nil, nil, err
	}

	companyNames := make(map[string]string, len(companies))
	for _, co := range companies {
		companyNames[co.Id] = co.Name
	}
	employeeNames := make(map[string]string, len(employees))
	for _, e := range employees {
		employeeNames[e.Id] = e.Name
	}
	return companyNames, employeeNames, nil
}

func resolveNames(list []ledger.EntityBalance, companies, employees map[string]string) []NamedBalance {
	out := make([]NamedBalance, 0, len(list))
	for _, b := range list {
		name := ""
		switch b.Key.Kind {
		case ledger.ClientCompany:
			name = companies[b.Key.ID]
		case ledger.ClientEmployee:
			name = employees[b.Key.ID]
		}
		out = append(out, NamedBalance{
			Kind:    string(b.Key.Kind),
			Id:      b.Key.ID,
			Name:    name,
			Balance: utils.Round2(b.Balance),
		})
	}
	return out
}

// GET /api/liabilities
// Liability-method records as their own bucket: tracked, totalled, but with
// no netting against cash-equivalent balances.
func GetLiabilities(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	q := db.Model(&models.Record{}).Where("method = ?", string(ledger.MethodLiability))
	q = applyTemporalFilter(q, ledger.NormalizeFilter(c.Query("month"), c.Query("year")), time.Now())

	var records []models.Record
	if err := q.Order("date desc").Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	summary := ledger.Aggregate(models.LedgerRecords(records))
	totals := summary.Methods[ledger.MethodLiability]

	return c.JSON(fiber.Map{
		"records": records,
		"income":  utils.Round2(totals.Income),
		"expense": utils.Round2(totals.Expense),
		"message": "success",
	})
}
