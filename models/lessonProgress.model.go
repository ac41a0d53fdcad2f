package models

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress is the per-user watch watermark for a lesson. MaxReachedSeconds
// never decreases; Status is COMPLETED exactly while ProgressPercent >= the
// unlock threshold.
type LessonProgress struct {
	gorm.Model
	UserID               uint       `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID             uint       `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	MaxReachedSeconds    float64    `json:"max_reached_seconds" gorm:"default:0"`
	VideoDurationSeconds float64    `json:"video_duration_seconds" gorm:"default:0"`
	ProgressPercent      float64    `json:"progress_percent" gorm:"default:0"`
	Status               string     `json:"status" gorm:"default:'IN_PROGRESS'"` // IN_PROGRESS, COMPLETED
	CompletedAt          *time.Time `json:"completed_at"`
	IsDeleted            bool       `gorm:"default:false"`
}
