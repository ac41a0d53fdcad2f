package models

import "gorm.io/gorm"

// QnaPost is a learner question on the Q&A board.
type QnaPost struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	LessonID  *uint  `json:"lesson_id" gorm:"index"`
	Title     string `json:"title"`
	Body      string `json:"body" gorm:"type:text"`
	Status    string `json:"status" gorm:"default:'OPEN'"` // OPEN, ANSWERED
	IsDeleted bool   `gorm:"default:false"`
}

// QnaAnswer is an admin reply to a QnaPost.
type QnaAnswer struct {
	gorm.Model
	PostID    uint   `json:"post_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Body      string `json:"body" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}
