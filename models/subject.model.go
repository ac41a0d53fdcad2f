package models

import "gorm.io/gorm"

// Subject is a block of ordered lessons with one subject-wide exam.
type Subject struct {
	gorm.Model
	CompanyID  uint   `json:"company_id" gorm:"index;not null"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
	IsDeleted  bool   `gorm:"default:false"`
}

// Lesson is a single video unit inside a subject. OrderIndex defines the
// sequence used by the unlock gate; ties within a subject are not expected.
type Lesson struct {
	gorm.Model
	SubjectID       uint    `json:"subject_id" gorm:"index;not null"`
	Title           string  `json:"title"`
	OrderIndex      int     `json:"order_index" gorm:"default:0"`
	VideoURL        string  `json:"video_url"`
	DurationSeconds float64 `json:"duration_seconds" gorm:"default:0"`
	IsActive        bool    `json:"is_active" gorm:"default:true"`
	IsDeleted       bool    `gorm:"default:false"`
}
