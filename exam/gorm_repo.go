package exam

import (
	"errors"

	"github.com/SSub-jun/edu-platform-sub001/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements every engine repository on a single GORM connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// lockForUpdate adds a row lock on dialects that support it. SQLite (used by
// the engine tests) rejects FOR UPDATE and serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func scopedAttempts(tx *gorm.DB, userID uint, scope Scope) *gorm.DB {
	q := tx.Model(&models.ExamAttempt{}).Where("user_id = ? AND is_deleted = ?", userID, false)
	if scope.SubjectID != nil {
		return q.Where("subject_id = ?", *scope.SubjectID)
	}
	return q.Where("lesson_id = ?", *scope.LessonID)
}

func (s *GormStore) ActiveBySubject(subjectID uint) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := s.db.Where("subject_id = ? AND is_active = ? AND is_deleted = ?", subjectID, true, false).
		Order("order_index asc").Find(&lessons).Error
	return lessons, err
}

func (s *GormStore) ByID(lessonID uint) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := s.db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lesson, nil
}

func (s *GormStore) ActiveByScope(scope Scope) ([]models.Question, error) {
	var questions []models.Question
	q := s.db.Where("is_active = ? AND is_deleted = ?", true, false)
	if scope.SubjectID != nil {
		q = q.Where("subject_id = ?", *scope.SubjectID)
	} else {
		q = q.Where("lesson_id = ?", *scope.LessonID)
	}
	err := q.Find(&questions).Error
	return questions, err
}

func (s *GormStore) ByIDs(ids []uint) ([]models.Question, error) {
	var questions []models.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := s.db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&questions).Error
	return questions, err
}

func (s *GormStore) ChoicesByQuestion(questionIDs []uint) (map[uint][]models.QuestionChoice, error) {
	out := make(map[uint][]models.QuestionChoice)
	if len(questionIDs) == 0 {
		return out, nil
	}
	var choices []models.QuestionChoice
	err := s.db.Where("question_id IN ? AND is_deleted = ?", questionIDs, false).
		Order("order_index asc").Find(&choices).Error
	if err != nil {
		return nil, err
	}
	for _, c := range choices {
		out[c.QuestionID] = append(out[c.QuestionID], c)
	}
	return out, nil
}

func (s *GormStore) GetForLessons(userID uint, lessonIDs []uint) (map[uint]models.LessonProgress, error) {
	out := make(map[uint]models.LessonProgress)
	if len(lessonIDs) == 0 {
		return out, nil
	}
	var rows []models.LessonProgress
	err := s.db.Where("user_id = ? AND lesson_id IN ? AND is_deleted = ?", userID, lessonIDs, false).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.LessonID] = row
	}
	return out, nil
}

func (s *GormStore) Apply(userID, lessonID uint, mutate func(p *models.LessonProgress)) (*models.LessonProgress, error) {
	var result models.LessonProgress
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var progress models.LessonProgress
		err := lockForUpdate(tx).
			Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).
			First(&progress).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			progress = models.LessonProgress{UserID: userID, LessonID: lessonID, Status: StatusInProgress}
		}

		mutate(&progress)

		if err := tx.Save(&progress).Error; err != nil {
			return err
		}
		result = progress
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *GormStore) AttemptByID(attemptID uint) (*models.ExamAttempt, error) {
	var attempt models.ExamAttempt
	err := s.db.Where("id = ? AND is_deleted = ?", attemptID, false).First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func (s *GormStore) ListByScope(userID uint, scope Scope) ([]models.ExamAttempt, error) {
	var attempts []models.ExamAttempt
	err := scopedAttempts(s.db, userID, scope).Order("created_at asc").Find(&attempts).Error
	return attempts, err
}

func (s *GormStore) CountByScope(userID uint, scope Scope) (int, error) {
	var count int64
	err := scopedAttempts(s.db, userID, scope).Count(&count).Error
	return int(count), err
}

func (s *GormStore) HasPassed(userID uint, scope Scope) (bool, error) {
	var count int64
	err := scopedAttempts(s.db, userID, scope).Where("passed = ?", true).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) HasInProgress(userID uint, scope Scope) (bool, error) {
	var count int64
	err := scopedAttempts(s.db, userID, scope).Where("status = ?", StatusInProgress).Count(&count).Error
	return count > 0, err
}

// scopeLockKey maps a scope to a lock key. Lesson ids are negated so a lesson
// exam never shares a lock with the subject exam of the same id.
func scopeLockKey(scope Scope) int32 {
	if scope.SubjectID != nil {
		return int32(*scope.SubjectID)
	}
	return -int32(*scope.LessonID)
}

func (s *GormStore) Create(attempt *models.ExamAttempt, maxAttempts int) error {
	scope := Scope{SubjectID: attempt.SubjectID, LessonID: attempt.LessonID}
	return s.db.Transaction(func(tx *gorm.DB) error {
		// A locking re-read alone cannot serialize two first-ever starts: with
		// zero existing rows there is nothing for FOR UPDATE to lock and both
		// transactions would pass the checks below. The advisory lock holds
		// until commit and serializes starts per (user, scope); the partial
		// unique index on open attempts backstops other dialects.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)",
				int32(attempt.UserID), scopeLockKey(scope)).Error; err != nil {
				return err
			}
		}

		var existing []models.ExamAttempt
		if err := scopedAttempts(tx, attempt.UserID, scope).Find(&existing).Error; err != nil {
			return err
		}
		for _, a := range existing {
			if a.Status == StatusInProgress {
				return notEligible("an attempt is already in progress for this exam")
			}
		}
		if len(existing) >= maxAttempts {
			return attemptLimitExceeded()
		}

		if err := tx.Create(attempt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return notEligible("an attempt is already in progress for this exam")
			}
			return err
		}
		return nil
	})
}

func (s *GormStore) Submit(attempt *models.ExamAttempt) (bool, error) {
	res := s.db.Model(&models.ExamAttempt{}).
		Where("id = ? AND status = ? AND is_deleted = ?", attempt.ID, StatusInProgress, false).
		Updates(map[string]interface{}{
			"status":       StatusSubmitted,
			"answers":      attempt.Answers,
			"score":        attempt.Score,
			"passed":       attempt.Passed,
			"submitted_at": attempt.SubmittedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
