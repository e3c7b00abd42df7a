package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	Id        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null;unique"`
	LicenseNo string `json:"license_no"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Remarks   string `json:"remarks"`

	Documents   []Document   `json:"documents,omitempty" gorm:"foreignKey:CompanyId;constraint:OnDelete:CASCADE"`
	Credentials []Credential `json:"credentials,omitempty" gorm:"foreignKey:CompanyId;constraint:OnDelete:CASCADE"`
	Employees   []Employee   `json:"employees,omitempty" gorm:"foreignKey:CompanyId"`
}

func (company *Company) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	company.Id = uuid.NewString()
	return
}
