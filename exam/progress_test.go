package exam

import "testing"

func TestReportProgressKeepsWatermark(t *testing.T) {
	engine, _ := newTestEngine(t, DefaultConfig())

	p, err := engine.Tracker.ReportProgress(1, 10, 80, 100)
	if err != nil {
		t.Fatalf("first report failed: %v", err)
	}
	if p.MaxReachedSeconds != 80 {
		t.Fatalf("expected watermark 80, got %v", p.MaxReachedSeconds)
	}

	// A lower report must not pull the watermark back.
	p, err = engine.Tracker.ReportProgress(1, 10, 30, 100)
	if err != nil {
		t.Fatalf("second report failed: %v", err)
	}
	if p.MaxReachedSeconds != 80 {
		t.Fatalf("watermark regressed to %v after a lower report", p.MaxReachedSeconds)
	}
	if p.ProgressPercent != 80 {
		t.Fatalf("expected percent 80, got %v", p.ProgressPercent)
	}
}

func TestReportProgressClampsPercent(t *testing.T) {
	engine, _ := newTestEngine(t, DefaultConfig())

	p, err := engine.Tracker.ReportProgress(1, 10, 150, 100)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if p.ProgressPercent != 100 {
		t.Fatalf("expected percent clamped to 100, got %v", p.ProgressPercent)
	}

	p, err = engine.Tracker.ReportProgress(2, 10, -5, 100)
	if err != nil {
		t.Fatalf("negative report failed: %v", err)
	}
	if p.MaxReachedSeconds != 0 || p.ProgressPercent != 0 {
		t.Fatalf("expected negative input clamped to zero, got reached=%v percent=%v", p.MaxReachedSeconds, p.ProgressPercent)
	}
}

func TestReportProgressDefaultDuration(t *testing.T) {
	cfg := DefaultConfig()
	engine, _ := newTestEngine(t, cfg)

	p, err := engine.Tracker.ReportProgress(1, 10, 120, 0)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if p.VideoDurationSeconds != cfg.DefaultVideoDuration {
		t.Fatalf("expected fallback duration %v, got %v", cfg.DefaultVideoDuration, p.VideoDurationSeconds)
	}
	if p.ProgressPercent != 50 {
		t.Fatalf("expected percent 50 against fallback duration, got %v", p.ProgressPercent)
	}
}

func TestReportProgressCompletionIsSticky(t *testing.T) {
	engine, _ := newTestEngine(t, DefaultConfig())

	p, err := engine.Tracker.ReportProgress(1, 10, 95, 100)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if p.Status != StatusCompleted || p.CompletedAt == nil {
		t.Fatalf("expected completion at 95%%, got status %q", p.Status)
	}
	completedAt := *p.CompletedAt

	p, err = engine.Tracker.ReportProgress(1, 10, 98, 100)
	if err != nil {
		t.Fatalf("second report failed: %v", err)
	}
	if p.CompletedAt == nil || !p.CompletedAt.Equal(completedAt) {
		t.Fatalf("completion timestamp changed on a later report")
	}
}

func TestReportProgressReopensOnCorrectedDuration(t *testing.T) {
	engine, _ := newTestEngine(t, DefaultConfig())

	p, err := engine.Tracker.ReportProgress(1, 10, 95, 100)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if p.Status != StatusCompleted {
		t.Fatalf("expected COMPLETED, got %q", p.Status)
	}

	// The player sends the real duration later; 95 of 200 is below threshold.
	p, err = engine.Tracker.ReportProgress(1, 10, 95, 200)
	if err != nil {
		t.Fatalf("corrected report failed: %v", err)
	}
	if p.Status != StatusInProgress || p.CompletedAt != nil {
		t.Fatalf("expected lesson reopened after duration correction, got status %q", p.Status)
	}
	if p.ProgressPercent != 47.5 {
		t.Fatalf("expected percent 47.5, got %v", p.ProgressPercent)
	}
	if p.MaxReachedSeconds != 95 {
		t.Fatalf("watermark changed during duration correction: %v", p.MaxReachedSeconds)
	}
}
