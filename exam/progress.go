package exam

import (
	"time"

	"github.com/SSub-jun/edu-platform-sub001/models"
)

// Tracker records watch-time watermarks and derives completion.
type Tracker struct {
	cfg      Config
	progress ProgressRepo
}

func NewTracker(cfg Config, progress ProgressRepo) *Tracker {
	return &Tracker{cfg: cfg, progress: progress}
}

// ReportProgress applies one watch-time report for (user, lesson) and returns
// the updated row. The stored watermark never decreases: a report lower than a
// previous high-water mark is silently ignored. A nonzero duration overwrites
// the stored one (late or corrected metadata); with no duration ever reported
// the configured fallback is used.
func (t *Tracker) ReportProgress(userID, lessonID uint, maxReachedSeconds, videoDurationSeconds float64) (*models.LessonProgress, error) {
	if maxReachedSeconds < 0 {
		maxReachedSeconds = 0
	}
	return t.progress.Apply(userID, lessonID, func(p *models.LessonProgress) {
		if maxReachedSeconds > p.MaxReachedSeconds {
			p.MaxReachedSeconds = maxReachedSeconds
		}
		if videoDurationSeconds > 0 {
			p.VideoDurationSeconds = videoDurationSeconds
		}
		if p.VideoDurationSeconds <= 0 {
			p.VideoDurationSeconds = t.cfg.DefaultVideoDuration
		}

		p.ProgressPercent = percentOf(p.MaxReachedSeconds, p.VideoDurationSeconds)

		if p.ProgressPercent >= t.cfg.UnlockThreshold {
			p.Status = StatusCompleted
			if p.CompletedAt == nil {
				now := time.Now()
				p.CompletedAt = &now
			}
		} else {
			// Reachable when a corrected duration pushes the percent back
			// under the threshold; the watermark itself never regresses.
			p.Status = StatusInProgress
			p.CompletedAt = nil
		}
	})
}

func percentOf(reached, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	percent := reached / duration * 100
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}
