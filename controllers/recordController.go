package controllers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"zaad-backend/database"
	"zaad-backend/ledger"
	"zaad-backend/middlewares"
	"zaad-backend/models"
	"zaad-backend/utils"
)

const recordsPageSize = 50

var validStatuses = map[string]bool{
	string(ledger.StatusAdvance):     true,
	string(ledger.StatusCredit):      true,
	string(ledger.StatusReadyCash):   true,
	string(ledger.StatusProfit):      true,
	string(ledger.StatusDebit):       true,
	string(ledger.StatusLiability):   true,
	string(ledger.StatusSelfDeposit): true,
}

func validMethod(m string) bool {
	for _, known := range ledger.Methods {
		if m == string(known) {
			return true
		}
	}
	return false
}

type RecordCreateDTO struct {
	Type       string  `json:"type" validate:"required,oneof=income expense"`
	Method     string  `json:"method"`
	Status     string  `json:"status"`
	Amount     string  `json:"amount"`
	ServiceFee string  `json:"service_fee"`
	CompanyId  *string `json:"company_id" validate:"omitempty,uuid4"`
	EmployeeId *string `json:"employee_id" validate:"omitempty,uuid4"`
	Self       bool    `json:"self"`
	OtherName  string  `json:"other_name"`
	Date       string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Particular string  `json:"particular"`
	InvoiceNo  string  `json:"invoice_no"`
	Suffix     string  `json:"suffix"`
	Number     string  `json:"number"`
	Remarks    string  `json:"remarks"`
}

// clientBranches counts the populated branches of the client union.
func (in *RecordCreateDTO) clientBranches() int {
	n := 0
	if in.CompanyId != nil && *in.CompanyId != "" {
		n++
	}
	if in.EmployeeId != nil && *in.EmployeeId != "" {
		n++
	}
	if in.Self {
		n++
	}
	if strings.TrimSpace(in.OtherName) != "" {
		n++
	}
	return n
}

// POST /api/record
// A status of "Profit" is the instant-profit variant: an income record with
// no expense leg, contributing straight to the profit figure.
func CreateRecord(c *fiber.Ctx) error {
	var in RecordCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	if strings.TrimSpace(in.Amount) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "MissingAmount")
	}
	if in.Method == "" {
		return fiber.NewError(fiber.StatusBadRequest, "MissingMethod")
	}
	if !validMethod(in.Method) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown method")
	}
	if in.Status != "" && !validStatuses[in.Status] {
		return fiber.NewError(fiber.StatusBadRequest, "unknown status")
	}
	switch in.clientBranches() {
	case 0:
		return fiber.NewError(fiber.StatusBadRequest, "MissingClient")
	case 1:
		// ok
	default:
		return fiber.NewError(fiber.StatusBadRequest, "more than one client reference")
	}
	if in.Status == string(ledger.StatusProfit) && in.Type != string(ledger.TypeIncome) {
		return fiber.NewError(fiber.StatusBadRequest, "instant profit must be an income record")
	}
	if in.ServiceFee != "" && in.Type != string(ledger.TypeExpense) {
		return fiber.NewError(fiber.StatusBadRequest, "service fee only applies to expense records")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	record := models.Record{
		Type:       in.Type,
		Method:     in.Method,
		Status:     in.Status,
		Amount:     utils.ParseAmount(in.Amount),
		ServiceFee: utils.ParseAmount(in.ServiceFee),
		CompanyId:  in.CompanyId,
		EmployeeId: in.EmployeeId,
		Self:       in.Self,
		OtherName:  in.OtherName,
		Date:       parseDateOrNow(in.Date),
		Particular: in.Particular,
		InvoiceNo:  in.InvoiceNo,
		Suffix:     in.Suffix,
		Number:     in.Number,
		Remarks:    in.Remarks,
	}

	if err := db.Create(&record).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create record")
	}

	log.Info().Str("record", record.Id).Str("type", record.Type).Msg("record created")
	return c.Status(fiber.StatusCreated).JSON(record)
}

type SelfDepositDTO struct {
	Amount  string `json:"amount" validate:"required"`
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Remarks string `json:"remarks"`
}

// POST /api/record/self-deposit
// Moves money between two house methods by writing a linked pair of
// records: an expense on the source method and an income on the target.
// Both legs carry the Self flag and Self Deposit status, so they feed
// method totals but never any entity balance.
func CreateSelfDeposit(c *fiber.Ctx) error {
	var in SelfDepositDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	if !validMethod(in.From) || !validMethod(in.To) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown method")
	}
	if in.From == in.To {
		return fiber.NewError(fiber.StatusBadRequest, "from and to methods must differ")
	}

	amount := utils.ParseAmount(in.Amount)
	date := parseDateOrNow(in.Date)
	transferID := uuid.NewString()

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	out := models.Record{
		Type:       string(ledger.TypeExpense),
		Method:     in.From,
		Status:     string(ledger.StatusSelfDeposit),
		Amount:     amount,
		Self:       true,
		Date:       date,
		Remarks:    in.Remarks,
		TransferId: transferID,
	}
	if err := db.Create(&out).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create transfer")
	}

	dep := models.Record{
		Type:       string(ledger.TypeIncome),
		Method:     in.To,
		Status:     string(ledger.StatusSelfDeposit),
		Amount:     amount,
		Self:       true,
		Date:       date,
		Remarks:    in.Remarks,
		TransferId: transferID,
	}
	if err := db.Create(&dep).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create transfer")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"transfer_id": transferID,
		"records":     []models.Record{out, dep},
	})
}

// GET /api/records
// Query params: month, year (see ledger.NormalizeFilter), type, method,
// company_id, employee_id, page. Pages are recordsPageSize rows, newest first.
func GetRecords(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	q := db.Model(&models.Record{})
	q = applyTemporalFilter(q, ledger.NormalizeFilter(c.Query("month"), c.Query("year")), time.Now())

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("type = ?", t)
	}
	if m := strings.TrimSpace(c.Query("method")); m != "" {
		q = q.Where("method = ?", m)
	}
	if companyID := strings.TrimSpace(c.Query("company_id")); companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}
	if employeeID := strings.TrimSpace(c.Query("employee_id")); employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	page := utils.ParseIntDefault(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}

	// Fetch one extra row to learn whether another page exists.
	var records []models.Record
	if err := q.Order("date desc, created_at desc").
		Offset((page - 1) * recordsPageSize).
		Limit(recordsPageSize + 1).
		Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	hasMore := len(records) > recordsPageSize
	if hasMore {
		records = records[:recordsPageSize]
	}

	return c.JSON(fiber.Map{
		"records":  records,
		"page":     page,
		"has_more": hasMore,
		"message":  "success",
	})
}

// applyTemporalFilter translates a normalized filter into SQL on the date column.
func applyTemporalFilter(q *gorm.DB, f ledger.Filter, now time.Time) *gorm.DB {
	switch f.Mode {
	case ledger.ModeMonth:
		q = q.Where("EXTRACT(MONTH FROM date) = ?", int(f.Month))
		if f.Year != 0 {
			q = q.Where("EXTRACT(YEAR FROM date) = ?", f.Year)
		}
	case ledger.ModeYear:
		q = q.Where("EXTRACT(YEAR FROM date) = ?", f.Year)
	case ledger.ModeCurrentMonth:
		q = q.Where("EXTRACT(MONTH FROM date) = ? AND EXTRACT(YEAR FROM date) = ?", int(now.Month()), now.Year())
	}
	return q
}

// GET /api/record/:id
func GetRecord(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var record models.Record
	if err := db.First(&record, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(record)
}

type RecordUpdateDTO struct {
	Method     *string `json:"method"`
	Status     *string `json:"status"`
	Amount     *string `json:"amount"`
	ServiceFee *string `json:"service_fee"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Particular *string `json:"particular"`
	InvoiceNo  *string `json:"invoice_no"`
	Suffix     *string `json:"suffix"`
	Number     *string `json:"number"`
	Remarks    *string `json:"remarks"`
}

// PUT /api/record/:id
// Snapshots the current row as a RecordRevision, then applies the sparse
// update and flags the record as edited.
func UpdateRecord(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing record id in path")
	}

	var in RecordUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	if in.Method != nil && !validMethod(*in.Method) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown method")
	}
	if in.Status != nil && *in.Status != "" && !validStatuses[*in.Status] {
		return fiber.NewError(fiber.StatusBadRequest, "unknown status")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var existing models.Record
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	// Snapshot before touching the row.
	snapshot, err := json.Marshal(existing)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not snapshot record")
	}
	var lastRev int
	db.Model(&models.RecordRevision{}).Where("record_id = ?", id).
		Select("COALESCE(MAX(revision_no), 0)").Scan(&lastRev)
	rev := models.RecordRevision{
		RecordId:   id,
		RevisionNo: lastRev + 1,
		Snapshot:   datatypes.JSON(snapshot),
	}
	if err := db.Create(&rev).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not store revision")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if in.Amount != nil {
		updates["amount"] = utils.ParseAmount(*in.Amount)
	}
	if in.ServiceFee != nil {
		updates["service_fee"] = utils.ParseAmount(*in.ServiceFee)
	}
	if in.Date != nil {
		updates["date"] = parseDateOrNow(*in.Date)
	}
	updates["edited"] = true

	if err := db.Model(&models.Record{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update record")
	}

	var out models.Record
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload record")
	}
	return c.JSON(out)
}

// GET /api/record/:id/revisions
func GetRecordRevisions(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var revs []models.RecordRevision
	if err := db.Where("record_id = ?", c.Params("id")).Order("revision_no asc").Find(&revs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"revisions": revs,
		"message":   "success",
	})
}

// DELETE /api/record/:id (hard delete)
func DeleteRecord(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.Record{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete record")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "record not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func parseDateOrNow(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse(ledger.DateLayout, s)
	if err != nil {
		return time.Now()
	}
	return t
}
