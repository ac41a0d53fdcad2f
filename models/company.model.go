package models

import (
	"time"

	"gorm.io/gorm"
)

// Company groups learners under one contract; subjects are assigned per company.
type Company struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Code      string `json:"code" gorm:"size:20;unique"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`
}

// Enrollment ties a user to a company with a learning window. Requests outside
// the window are rejected before any progress or exam rule runs.
type Enrollment struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CompanyID uint      `json:"company_id" gorm:"index;not null"`
	StartsAt  time.Time `json:"starts_at" gorm:"not null"`
	EndsAt    time.Time `json:"ends_at" gorm:"not null"`
	Status    string    `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, EXPIRED
	IsDeleted bool      `gorm:"default:false"`
}
