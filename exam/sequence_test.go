package exam

import (
	"testing"

	"github.com/SSub-jun/edu-platform-sub001/models"
)

func TestGateFirstLessonAlwaysUnlocked(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 3)

	result, err := engine.Gate.IsUnlocked(1, lessons[0], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if !result.Unlocked {
		t.Fatalf("first lesson must be unlocked with no progress at all")
	}
}

func TestGateBlocksUntilPreviousThreshold(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 3)

	result, err := engine.Gate.IsUnlocked(1, lessons[1], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if result.Unlocked {
		t.Fatalf("second lesson unlocked without any progress on the first")
	}
	if result.BlockingLesson == nil || result.BlockingLesson.ID != lessons[0].ID {
		t.Fatalf("expected lesson %d as the blocker, got %+v", lessons[0].ID, result.BlockingLesson)
	}

	// 85% is under the threshold, still blocked.
	if _, err := engine.Tracker.ReportProgress(1, lessons[0].ID, 85, 100); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	result, err = engine.Gate.IsUnlocked(1, lessons[1], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if result.Unlocked {
		t.Fatalf("second lesson unlocked at 85%% on the first")
	}

	if _, err := engine.Tracker.ReportProgress(1, lessons[0].ID, 95, 100); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	result, err = engine.Gate.IsUnlocked(1, lessons[1], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if !result.Unlocked {
		t.Fatalf("second lesson still locked after 95%% on the first")
	}

	// Third lesson stays locked until the second crosses the threshold too.
	result, err = engine.Gate.IsUnlocked(1, lessons[2], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if result.Unlocked {
		t.Fatalf("third lesson unlocked while the second has no progress")
	}
}

func TestGateNamesEarliestUnfinishedLesson(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 4)

	// Only lesson two is finished. Lesson four is locked and the diagnostic
	// should point at lesson one, the earliest unfinished lesson, not at the
	// immediate predecessor.
	if _, err := engine.Tracker.ReportProgress(1, lessons[1].ID, 95, 100); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	result, err := engine.Gate.IsUnlocked(1, lessons[3], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if result.Unlocked {
		t.Fatalf("fourth lesson unlocked with the third unfinished")
	}
	if result.BlockingLesson == nil || result.BlockingLesson.ID != lessons[0].ID {
		t.Fatalf("expected lesson %d as the blocker, got %+v", lessons[0].ID, result.BlockingLesson)
	}
}

func TestGateProgressOnlyIgnoresExamResults(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 2)

	if _, err := engine.Tracker.ReportProgress(1, lessons[0].ID, 95, 100); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	// No exam was ever taken; the default gate only looks at progress.
	result, err := engine.Gate.IsUnlocked(1, lessons[1], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if !result.Unlocked {
		t.Fatalf("progress-only gate blocked a lesson on exam state")
	}
}

func TestGateRequireExamPassVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RequireExamPassToUnlock = true
	engine, db := newTestEngine(t, cfg)
	lessons := seedLessons(t, db, 1, 2)

	if _, err := engine.Tracker.ReportProgress(1, lessons[0].ID, 95, 100); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	result, err := engine.Gate.IsUnlocked(1, lessons[1], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if result.Unlocked {
		t.Fatalf("strict gate unlocked a lesson before the previous exam was passed")
	}

	passed := true
	score := 80.0
	attempt := models.ExamAttempt{
		UserID:              1,
		LessonID:            &lessons[0].ID,
		Cycle:               1,
		AttemptIndexInCycle: 1,
		Status:              StatusSubmitted,
		Score:               &score,
		Passed:              &passed,
	}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatalf("failed to seed attempt: %v", err)
	}

	result, err = engine.Gate.IsUnlocked(1, lessons[1], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if !result.Unlocked {
		t.Fatalf("strict gate still locked after the previous exam was passed")
	}
}
