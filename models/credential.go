package models

import "time"

// Credential is a stored platform login belonging to a company.
// Values are stored as entered; these are third-party portal logins the
// office re-uses, not authentication secrets for this system.
type Credential struct {
	Id        uint      `json:"id" gorm:"primaryKey"`
	CompanyId string    `json:"company_id" gorm:"not null;index"`
	Platform  string    `json:"platform" gorm:"not null"`
	Username  string    `json:"username" gorm:"not null"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
