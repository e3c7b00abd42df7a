package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is an individual counterparty; it may optionally belong to a company.
type Employee struct {
	Id          string  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Nationality string  `json:"nationality"`
	Designation string  `json:"designation"`
	CompanyId   *string `json:"company_id" gorm:"index"`
	Remarks     string  `json:"remarks"`

	Documents []Document `json:"documents,omitempty" gorm:"foreignKey:EmployeeId;constraint:OnDelete:CASCADE"`
}

func (employee *Employee) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	employee.Id = uuid.NewString()
	return
}
