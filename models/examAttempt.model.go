package models

import (
	"time"

	"gorm.io/gorm"
)

// ExamAttempt is one run of an exam for a user and scope. Exactly one of
// SubjectID / LessonID is set. QuestionIDs and Answers are stored as JSON
// arrays; the row becomes immutable once Status is SUBMITTED. The partial
// unique indexes make the schema itself refuse a second open attempt for the
// same user and scope.
type ExamAttempt struct {
	gorm.Model
	UserID              uint       `json:"user_id" gorm:"not null;index;uniqueIndex:idx_open_subject_attempt;uniqueIndex:idx_open_lesson_attempt"`
	SubjectID           *uint      `json:"subject_id" gorm:"index;uniqueIndex:idx_open_subject_attempt,where:status = 'IN_PROGRESS' AND is_deleted = false"`
	LessonID            *uint      `json:"lesson_id" gorm:"index;uniqueIndex:idx_open_lesson_attempt,where:status = 'IN_PROGRESS' AND is_deleted = false"`
	Cycle               int        `json:"cycle" gorm:"default:1"`
	AttemptIndexInCycle int        `json:"attempt_index_in_cycle" gorm:"default:1"`
	Status              string     `json:"status" gorm:"default:'IN_PROGRESS'"`  // IN_PROGRESS, SUBMITTED
	QuestionIDs         string     `json:"question_ids" gorm:"type:text"`        // JSON array of question IDs, fixed at creation
	Answers             string     `json:"answers" gorm:"type:text"`             // JSON array of {question_id, choice_index}
	Score               *float64   `json:"score"`
	Passed              *bool      `json:"passed"`
	StartedAt           time.Time  `json:"started_at"`
	SubmittedAt         *time.Time `json:"submitted_at"`
	IsDeleted           bool       `gorm:"default:false"`
}
