package exam

import (
	"fmt"
	"testing"

	"github.com/SSub-jun/edu-platform-sub001/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory database so every connection of the pool
// sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Subject{},
		&models.Lesson{},
		&models.Question{},
		&models.QuestionChoice{},
		&models.LessonProgress{},
		&models.ExamAttempt{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestEngine(t *testing.T, cfg Config) (*Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewEngine(db, cfg), db
}

func seedLessons(t *testing.T, db *gorm.DB, subjectID uint, count int) []models.Lesson {
	t.Helper()
	lessons := make([]models.Lesson, count)
	for i := 0; i < count; i++ {
		lessons[i] = models.Lesson{
			SubjectID:       subjectID,
			Title:           fmt.Sprintf("Lesson %d", i+1),
			OrderIndex:      i + 1,
			DurationSeconds: 100,
			IsActive:        true,
		}
		if err := db.Create(&lessons[i]).Error; err != nil {
			t.Fatalf("failed to seed lesson: %v", err)
		}
	}
	return lessons
}

// seedSubjectQuestions creates count questions with 4 choices each. The
// correct choice is always index 0.
func seedSubjectQuestions(t *testing.T, db *gorm.DB, subjectID uint, count int) []models.Question {
	t.Helper()
	questions := make([]models.Question, count)
	for i := 0; i < count; i++ {
		questions[i] = models.Question{
			SubjectID:   &subjectID,
			Stem:        fmt.Sprintf("Question %d", i+1),
			AnswerIndex: 0,
			IsActive:    true,
		}
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("failed to seed question: %v", err)
		}
		for j := 0; j < 4; j++ {
			choice := models.QuestionChoice{
				QuestionID: questions[i].ID,
				ChoiceText: fmt.Sprintf("Choice %d", j+1),
				OrderIndex: j,
			}
			if err := db.Create(&choice).Error; err != nil {
				t.Fatalf("failed to seed choice: %v", err)
			}
		}
	}
	return questions
}

// completeLessons pushes the user past the unlock threshold on every lesson.
func completeLessons(t *testing.T, engine *Engine, userID uint, lessons []models.Lesson) {
	t.Helper()
	for _, lesson := range lessons {
		if _, err := engine.Tracker.ReportProgress(userID, lesson.ID, 95, 100); err != nil {
			t.Fatalf("failed to report progress for lesson %d: %v", lesson.ID, err)
		}
	}
}
