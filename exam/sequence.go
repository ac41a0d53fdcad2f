package exam

import "github.com/SSub-jun/edu-platform-sub001/models"

// LessonRef identifies a lesson in unlock diagnostics.
type LessonRef struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
}

// UnlockResult is the gate's verdict for one lesson. BlockingLesson is set when
// locked and names the first lesson still to finish; it is UI messaging, not a
// security boundary.
type UnlockResult struct {
	Unlocked       bool       `json:"unlocked"`
	BlockingLesson *LessonRef `json:"blocking_lesson,omitempty"`
}

// Gate decides whether a lesson is reachable given the user's state on the
// lessons before it.
type Gate struct {
	cfg      Config
	progress ProgressRepo
	attempts AttemptRepo
}

func NewGate(cfg Config, progress ProgressRepo, attempts AttemptRepo) *Gate {
	return &Gate{cfg: cfg, progress: progress, attempts: attempts}
}

// IsUnlocked reports whether lesson is unlocked for the user. ordered is the
// active lesson list of the same subject sorted by OrderIndex ascending; the
// first lesson is always unlocked, any other needs the immediately preceding
// lesson completed past the threshold. With RequireExamPassToUnlock set the
// preceding lesson's own exam must additionally have been passed. A locked
// verdict names the earliest unfinished lesson, which may sit further back
// than the immediate predecessor.
func (g *Gate) IsUnlocked(userID uint, lesson models.Lesson, ordered []models.Lesson) (*UnlockResult, error) {
	pos := -1
	for i, l := range ordered {
		if l.ID == lesson.ID {
			pos = i
			break
		}
	}
	if pos <= 0 {
		// First in order, or not part of the ordered set at all; the active-set
		// membership check belongs to the enrollment layer.
		return &UnlockResult{Unlocked: true}, nil
	}

	lessonIDs := make([]uint, pos)
	for i, l := range ordered[:pos] {
		lessonIDs[i] = l.ID
	}
	progressByLesson, err := g.progress.GetForLessons(userID, lessonIDs)
	if err != nil {
		return nil, err
	}

	finished := func(l models.Lesson) (bool, error) {
		p, ok := progressByLesson[l.ID]
		if !ok || p.ProgressPercent < g.cfg.UnlockThreshold {
			return false, nil
		}
		if !g.cfg.RequireExamPassToUnlock {
			return true, nil
		}
		return g.attempts.HasPassed(userID, LessonScope(l.ID))
	}

	ok, err := finished(ordered[pos-1])
	if err != nil {
		return nil, err
	}
	if ok {
		return &UnlockResult{Unlocked: true}, nil
	}

	blocker := ordered[pos-1]
	for _, l := range ordered[:pos-1] {
		done, err := finished(l)
		if err != nil {
			return nil, err
		}
		if !done {
			blocker = l
			break
		}
	}

	return &UnlockResult{
		Unlocked: false,
		BlockingLesson: &LessonRef{
			ID:         blocker.ID,
			Title:      blocker.Title,
			OrderIndex: blocker.OrderIndex,
		},
	}, nil
}
