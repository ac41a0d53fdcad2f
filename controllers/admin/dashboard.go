package adminController

import (
	"github.com/SSub-jun/edu-platform-sub001/database"
	"github.com/SSub-jun/edu-platform-sub001/middleware"
	"github.com/SSub-jun/edu-platform-sub001/models"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats returns platform-wide aggregates for the admin dashboard.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)

	var activeEnrollments int64
	db.Model(&models.Enrollment{}).Where("status = ? AND is_deleted = ?", "ACTIVE", false).Count(&activeEnrollments)

	var totalAttempts int64
	db.Model(&models.ExamAttempt{}).Where("is_deleted = ?", false).Count(&totalAttempts)

	var submittedAttempts int64
	db.Model(&models.ExamAttempt{}).Where("status = ? AND is_deleted = ?", "SUBMITTED", false).Count(&submittedAttempts)

	var passedAttempts int64
	db.Model(&models.ExamAttempt{}).Where("passed = ? AND is_deleted = ?", true, false).Count(&passedAttempts)

	passRate := float64(0)
	if submittedAttempts > 0 {
		passRate = float64(passedAttempts) / float64(submittedAttempts) * 100
	}

	var completedLessons int64
	db.Model(&models.LessonProgress{}).Where("status = ? AND is_deleted = ?", "COMPLETED", false).Count(&completedLessons)

	var openQuestions int64
	db.Model(&models.QnaPost{}).Where("status = ? AND is_deleted = ?", "OPEN", false).Count(&openQuestions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_users":        totalUsers,
		"active_enrollments": activeEnrollments,
		"total_attempts":     totalAttempts,
		"submitted_attempts": submittedAttempts,
		"passed_attempts":    passedAttempts,
		"pass_rate":          passRate,
		"completed_lessons":  completedLessons,
		"open_questions":     openQuestions,
	})
}
