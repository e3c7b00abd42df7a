package models

import "time"

// Document is a dated paper (license, visa, contract...) attached to exactly
// one of company or employee. Its status is never stored; controllers derive
// it from ExpiryDate on every read (see ledger.ClassifyDocument).
type Document struct {
	Id         uint      `json:"id" gorm:"primaryKey"`
	CompanyId  *string   `json:"company_id" gorm:"index"`
	EmployeeId *string   `json:"employee_id" gorm:"index"`
	Name       string    `json:"name" gorm:"not null"`
	IssueDate  time.Time `json:"issue_date"`
	ExpiryDate time.Time `json:"expiry_date" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`

	// Derived on read, never persisted.
	Status string `json:"status" gorm:"-"`
}
