package models

import "gorm.io/gorm"

// Question belongs to a subject bank or to a single lesson bank. AnswerIndex is
// the 0-based index into the ordered choices and must never be serialized to
// learners.
type Question struct {
	gorm.Model
	SubjectID   *uint  `json:"subject_id" gorm:"index"`
	LessonID    *uint  `json:"lesson_id" gorm:"index"`
	Stem        string `json:"stem" gorm:"type:text"`
	AnswerIndex int    `json:"-" gorm:"not null"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}

// QuestionChoice is one option of a question, ordered by OrderIndex.
type QuestionChoice struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	ChoiceText string `json:"choice_text"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}
