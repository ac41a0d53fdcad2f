package exam

import "github.com/SSub-jun/edu-platform-sub001/models"

// LessonProgressView is the per-lesson detail inside a verdict.
type LessonProgressView struct {
	LessonID        uint    `json:"lesson_id"`
	Title           string  `json:"title"`
	OrderIndex      int     `json:"order_index"`
	ProgressPercent float64 `json:"progress_percent"`
	Completed       bool    `json:"completed"`
}

// Verdict is the composed eligibility answer for one (user, scope). Code is
// the domain code an ineligible verdict maps to; Reason is display text only.
type Verdict struct {
	Eligible          bool                 `json:"eligible"`
	Code              string               `json:"code,omitempty"`
	Reason            string               `json:"reason,omitempty"`
	RemainingAttempts int                  `json:"remaining_attempts"`
	Lessons           []LessonProgressView `json:"lessons"`
}

// Evaluator composes progress and attempt history into an eligibility verdict.
// Evaluate is read-only and safe to call repeatedly; Start re-runs it.
type Evaluator struct {
	cfg      Config
	lessons  LessonRepo
	progress ProgressRepo
	attempts AttemptRepo
}

func NewEvaluator(cfg Config, lessons LessonRepo, progress ProgressRepo, attempts AttemptRepo) *Evaluator {
	return &Evaluator{cfg: cfg, lessons: lessons, progress: progress, attempts: attempts}
}

// Evaluate returns whether the user may start an exam for scope right now.
func (e *Evaluator) Evaluate(userID uint, scope Scope) (*Verdict, error) {
	lessons, err := e.scopeLessons(scope)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return &Verdict{Eligible: false, Code: CodeNotEligible, Reason: "no active lessons in this exam scope", RemainingAttempts: 0}, nil
	}

	lessonIDs := make([]uint, len(lessons))
	for i, l := range lessons {
		lessonIDs[i] = l.ID
	}
	progressByLesson, err := e.progress.GetForLessons(userID, lessonIDs)
	if err != nil {
		return nil, err
	}

	views := make([]LessonProgressView, len(lessons))
	allCompleted := true
	for i, l := range lessons {
		percent := 0.0
		if p, ok := progressByLesson[l.ID]; ok {
			percent = p.ProgressPercent
		}
		completed := percent >= e.cfg.UnlockThreshold
		if !completed {
			allCompleted = false
		}
		views[i] = LessonProgressView{
			LessonID:        l.ID,
			Title:           l.Title,
			OrderIndex:      l.OrderIndex,
			ProgressPercent: percent,
			Completed:       completed,
		}
	}

	passed, err := e.attempts.HasPassed(userID, scope)
	if err != nil {
		return nil, err
	}
	if passed {
		return &Verdict{Eligible: false, Code: CodeNotEligible, Reason: "exam already passed", RemainingAttempts: 0, Lessons: views}, nil
	}

	used, err := e.attempts.CountByScope(userID, scope)
	if err != nil {
		return nil, err
	}
	if used >= e.cfg.AttemptsPerCycle*e.cfg.MaxCycles {
		return &Verdict{Eligible: false, Code: CodeAttemptLimitExceeded, Reason: "attempt limit exceeded", RemainingAttempts: 0, Lessons: views}, nil
	}

	remaining := e.cfg.AttemptsPerCycle - used%e.cfg.AttemptsPerCycle

	if !allCompleted {
		return &Verdict{
			Eligible:          false,
			Code:              CodeNotEligible,
			Reason:            "not every lesson has been completed",
			RemainingAttempts: remaining,
			Lessons:           views,
		}, nil
	}

	return &Verdict{Eligible: true, RemainingAttempts: remaining, Lessons: views}, nil
}

func (e *Evaluator) scopeLessons(scope Scope) ([]models.Lesson, error) {
	if scope.SubjectID != nil {
		return e.lessons.ActiveBySubject(*scope.SubjectID)
	}
	lesson, err := e.lessons.ByID(*scope.LessonID)
	if err != nil {
		return nil, err
	}
	if lesson == nil || !lesson.IsActive {
		return nil, nil
	}
	return []models.Lesson{*lesson}, nil
}
