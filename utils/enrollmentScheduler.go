package utils

import (
	"log"
	"time"

	"github.com/SSub-jun/edu-platform-sub001/database"
	"github.com/SSub-jun/edu-platform-sub001/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeEnrollmentScheduler sets up the enrollment window scheduler
func InitializeEnrollmentScheduler() {
	log.Println("[ENROLLMENT-SCHEDULER] Initializing enrollment scheduler...")

	c := cron.New()

	// Run daily just after midnight to close lapsed learning windows
	c.AddFunc("10 0 * * *", func() {
		log.Println("[ENROLLMENT-SCHEDULER] Running daily enrollment window check...")
		ExpireEnrollments()
	})

	c.Start()
	log.Println("[ENROLLMENT-SCHEDULER] Enrollment scheduler started - runs daily at 00:10")
}

// ExpireEnrollments marks enrollments whose end day has passed as EXPIRED
func ExpireEnrollments() {
	db := database.Database.Db
	// An enrollment stays usable through the whole of its end day.
	cutoff := now.With(time.Now()).BeginningOfDay()

	result := db.Model(&models.Enrollment{}).
		Where("status = ? AND is_deleted = ? AND ends_at < ?", "ACTIVE", false, cutoff).
		Updates(map[string]interface{}{"status": "EXPIRED"})

	if result.Error != nil {
		log.Printf("[ENROLLMENT-SCHEDULER] Error expiring enrollments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[ENROLLMENT-SCHEDULER] Expired %d enrollments", result.RowsAffected)
	}
}
