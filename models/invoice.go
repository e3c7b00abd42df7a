package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice is a numbered billing document. Numbers run per suffix series
// (e.g. "ZD" 1,2,3... and "ZX" 1,2,3... independently).
type Invoice struct {
	Id     string `json:"id" gorm:"primaryKey"`
	Number int    `json:"number" gorm:"not null;index:idx_invoices_suffix_number,unique,priority:2"`
	Suffix string `json:"suffix" gorm:"type:VARCHAR(10);index:idx_invoices_suffix_number,unique,priority:1"`

	CompanyId  *string `json:"company_id" gorm:"index"`
	EmployeeId *string `json:"employee_id" gorm:"index"`
	ClientName string  `json:"client_name"` // free-text fallback

	Particulars string    `json:"particulars"`
	Amount      float64   `json:"amount" gorm:"type:numeric(12,2)"`
	Date        time.Time `json:"date"`
	Remarks     string    `json:"remarks"`
	CreatedAt   time.Time `json:"created_at"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	invoice.Id = uuid.NewString()
	return
}
