package exam

import "testing"

func TestEvaluateEmptyScope(t *testing.T) {
	engine, _ := newTestEngine(t, DefaultConfig())

	verdict, err := engine.Evaluator.Evaluate(1, SubjectScope(1))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if verdict.Eligible || verdict.RemainingAttempts != 0 {
		t.Fatalf("expected ineligible with no lessons, got %+v", verdict)
	}
}

func TestEvaluateIncompleteLessons(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 3)

	if _, err := engine.Tracker.ReportProgress(1, lessons[0].ID, 95, 100); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	verdict, err := engine.Evaluator.Evaluate(1, SubjectScope(1))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if verdict.Eligible {
		t.Fatalf("eligible with two lessons untouched")
	}
	if verdict.Code != CodeNotEligible {
		t.Fatalf("expected code %q, got %q", CodeNotEligible, verdict.Code)
	}
	if verdict.RemainingAttempts != 3 {
		t.Fatalf("expected 3 remaining attempts, got %d", verdict.RemainingAttempts)
	}
	if len(verdict.Lessons) != 3 {
		t.Fatalf("expected 3 lesson views, got %d", len(verdict.Lessons))
	}
	if !verdict.Lessons[0].Completed || verdict.Lessons[1].Completed {
		t.Fatalf("lesson completion flags wrong: %+v", verdict.Lessons)
	}
}

func TestEvaluateEligibleWhenAllCompleted(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 2)
	completeLessons(t, engine, 1, lessons)

	verdict, err := engine.Evaluator.Evaluate(1, SubjectScope(1))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if !verdict.Eligible {
		t.Fatalf("expected eligible, got reason %q", verdict.Reason)
	}
	if verdict.Code != "" {
		t.Fatalf("eligible verdict carries code %q", verdict.Code)
	}
	if verdict.RemainingAttempts != 3 {
		t.Fatalf("expected 3 remaining attempts, got %d", verdict.RemainingAttempts)
	}
}

func TestEvaluateRemainingAttemptsPerCycle(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 2)
	completeLessons(t, engine, 1, lessons)

	cases := []struct {
		failures  int
		remaining int
	}{
		{1, 2},
		{2, 1},
		{3, 3}, // a fresh cycle opens
		{5, 1},
	}
	for _, c := range cases {
		db.Exec("DELETE FROM exam_attempts")
		seedFailedAttempts(t, db, 1, 1, c.failures)

		verdict, err := engine.Evaluator.Evaluate(1, SubjectScope(1))
		if err != nil {
			t.Fatalf("evaluate failed after %d failures: %v", c.failures, err)
		}
		if !verdict.Eligible {
			t.Fatalf("expected eligible after %d failures, reason %q", c.failures, verdict.Reason)
		}
		if verdict.RemainingAttempts != c.remaining {
			t.Fatalf("after %d failures expected %d remaining, got %d", c.failures, c.remaining, verdict.RemainingAttempts)
		}
	}
}

func TestEvaluateAttemptLimit(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 2)
	completeLessons(t, engine, 1, lessons)
	seedFailedAttempts(t, db, 1, 1, 6)

	verdict, err := engine.Evaluator.Evaluate(1, SubjectScope(1))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if verdict.Eligible || verdict.RemainingAttempts != 0 {
		t.Fatalf("expected hard stop after six attempts, got %+v", verdict)
	}
	if verdict.Code != CodeAttemptLimitExceeded {
		t.Fatalf("expected code %q, got %q", CodeAttemptLimitExceeded, verdict.Code)
	}
}

func TestEvaluateAlreadyPassed(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 2)
	seedSubjectQuestions(t, db, 1, 15)
	completeLessons(t, engine, 1, lessons)

	start, err := engine.Machine.Start(1, SubjectScope(1))
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := engine.Machine.Submit(start.AttemptID, 1, answersFor(start, 10)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	verdict, err := engine.Evaluator.Evaluate(1, SubjectScope(1))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if verdict.Eligible || verdict.Reason != "exam already passed" {
		t.Fatalf("expected ineligible after passing, got %+v", verdict)
	}
}

func TestEvaluateInactiveLessonScope(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 1)

	db.Model(&lessons[0]).Update("is_active", false)

	verdict, err := engine.Evaluator.Evaluate(1, LessonScope(lessons[0].ID))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if verdict.Eligible || verdict.Reason != "no active lessons in this exam scope" {
		t.Fatalf("expected ineligible for an inactive lesson, got %+v", verdict)
	}
}
