package exam

import "github.com/SSub-jun/edu-platform-sub001/models"

// LessonRepo reads the lesson catalog. The engine never writes lessons.
type LessonRepo interface {
	// ActiveBySubject returns the active lessons of a subject ordered by
	// OrderIndex ascending.
	ActiveBySubject(subjectID uint) ([]models.Lesson, error)
	ByID(lessonID uint) (*models.Lesson, error)
}

// QuestionRepo reads the question catalog. The engine never writes questions.
type QuestionRepo interface {
	// ActiveByScope returns the active question bank for an exam scope.
	ActiveByScope(scope Scope) ([]models.Question, error)
	// ByIDs returns questions by id, including inactive ones, so that a stored
	// attempt can always be scored against the bank it was drawn from.
	ByIDs(ids []uint) ([]models.Question, error)
	// ChoicesByQuestion returns the ordered choices for each given question id.
	ChoicesByQuestion(questionIDs []uint) (map[uint][]models.QuestionChoice, error)
}

// ProgressRepo owns LessonProgress rows.
type ProgressRepo interface {
	// GetForLessons returns existing progress rows keyed by lesson id.
	GetForLessons(userID uint, lessonIDs []uint) (map[uint]models.LessonProgress, error)
	// Apply loads or creates the row for (user, lesson), runs mutate on it and
	// persists the result. Concurrent Apply calls for the same key are
	// serialized so a higher watermark is never lost.
	Apply(userID, lessonID uint, mutate func(p *models.LessonProgress)) (*models.LessonProgress, error)
}

// AttemptRepo owns ExamAttempt rows.
type AttemptRepo interface {
	AttemptByID(attemptID uint) (*models.ExamAttempt, error)
	ListByScope(userID uint, scope Scope) ([]models.ExamAttempt, error)
	CountByScope(userID uint, scope Scope) (int, error)
	HasPassed(userID uint, scope Scope) (bool, error)
	HasInProgress(userID uint, scope Scope) (bool, error)
	// Create inserts a new in-progress attempt after re-checking, inside one
	// transaction, that no other in-progress attempt exists for the same
	// (user, scope) and that the attempt count still admits one more.
	Create(attempt *models.ExamAttempt, maxAttempts int) error
	// Submit persists the terminal state of an attempt. It only touches rows
	// still in progress; a second submission reports zero rows updated and the
	// caller turns that into a duplicate-submission rejection.
	Submit(attempt *models.ExamAttempt) (updated bool, err error)
}
