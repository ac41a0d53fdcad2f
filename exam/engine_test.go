package exam

import "testing"

// TestSubjectExamEndToEnd walks the whole happy path: watch both lessons of a
// subject, unlock the second on the way, pass the subject exam, and get turned
// away on the next start.
func TestSubjectExamEndToEnd(t *testing.T) {
	engine, db := newTestEngine(t, DefaultConfig())
	lessons := seedLessons(t, db, 1, 2)
	seedSubjectQuestions(t, db, 1, 15)
	const userID = 7

	// Second lesson starts locked.
	unlock, err := engine.Gate.IsUnlocked(userID, lessons[1], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if unlock.Unlocked {
		t.Fatalf("second lesson unlocked before any progress")
	}

	// 95% on lesson one unlocks lesson two.
	if _, err := engine.Tracker.ReportProgress(userID, lessons[0].ID, 95, 100); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	unlock, err = engine.Gate.IsUnlocked(userID, lessons[1], lessons)
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if !unlock.Unlocked {
		t.Fatalf("second lesson still locked after finishing the first")
	}

	// Not eligible yet: lesson two is untouched.
	verdict, err := engine.Evaluator.Evaluate(userID, SubjectScope(1))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if verdict.Eligible {
		t.Fatalf("eligible with one lesson left")
	}

	if _, err := engine.Tracker.ReportProgress(userID, lessons[1].ID, 92, 100); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	verdict, err = engine.Evaluator.Evaluate(userID, SubjectScope(1))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if !verdict.Eligible || verdict.RemainingAttempts != 3 {
		t.Fatalf("expected eligible with 3 attempts, got %+v", verdict)
	}

	start, err := engine.Machine.Start(userID, SubjectScope(1))
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if len(start.Questions) != 10 {
		t.Fatalf("expected 10 drawn questions, got %d", len(start.Questions))
	}

	result, err := engine.Machine.Submit(start.AttemptID, userID, answersFor(start, 10))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 100 || !result.Passed {
		t.Fatalf("expected a perfect pass, got score %v passed %v", result.Score, result.Passed)
	}

	if _, err := engine.Machine.Start(userID, SubjectScope(1)); CodeOf(err) != CodeNotEligible {
		t.Fatalf("expected NOT_ELIGIBLE after passing, got %v", err)
	}

	history, err := engine.Attempts.ListByScope(userID, SubjectScope(1))
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 || history[0].Status != StatusSubmitted {
		t.Fatalf("expected one submitted attempt in history, got %d", len(history))
	}
}
