package lessonController

import (
	"github.com/SSub-jun/edu-platform-sub001/database"
	"github.com/SSub-jun/edu-platform-sub001/exam"
	"github.com/SSub-jun/edu-platform-sub001/middleware"
	"github.com/SSub-jun/edu-platform-sub001/models"

	"github.com/gofiber/fiber/v2"
)

var engine *exam.Engine

// SetEngine injects the progress/exam engine. Called once from main.
func SetEngine(e *exam.Engine) {
	engine = e
}

// GetSubjects lists the active subjects of the caller's company.
func GetSubjects(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "No active enrollment found!", nil)
	}

	var subjects []models.Subject
	if err := database.Database.Db.
		Where("company_id = ? AND is_active = ? AND is_deleted = ?", companyID, true, false).
		Order("order_index asc").Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", subjects)
}

// GetLessons lists a subject's lessons with the caller's progress and unlock
// state for each.
func GetLessons(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	companyID, _ := c.Locals("companyId").(uint)
	subjectID := c.Locals("subjectID").(int)

	var subject models.Subject
	if err := database.Database.Db.
		Where("id = ? AND company_id = ? AND is_active = ? AND is_deleted = ?", subjectID, companyID, true, false).
		First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	lessons, err := engine.Lessons.ActiveBySubject(subject.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	lessonIDs := make([]uint, len(lessons))
	for i, l := range lessons {
		lessonIDs[i] = l.ID
	}
	progressByLesson, err := engine.Progress.GetForLessons(userID, lessonIDs)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	type LessonView struct {
		models.Lesson
		ProgressPercent float64            `json:"progress_percent"`
		Completed       bool               `json:"completed"`
		Unlock          *exam.UnlockResult `json:"unlock"`
	}

	views := make([]LessonView, len(lessons))
	for i, lesson := range lessons {
		unlock, err := engine.Gate.IsUnlocked(userID, lesson, lessons)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate lesson access!", nil)
		}
		views[i] = LessonView{Lesson: lesson, Unlock: unlock}
		if p, ok := progressByLesson[lesson.ID]; ok {
			views[i].ProgressPercent = p.ProgressPercent
			views[i].Completed = p.Status == exam.StatusCompleted
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"subject": subject,
		"lessons": views,
	})
}

// ReportProgress records a watch-time report for a lesson. Locked lessons are
// rejected here; the tracker itself accepts every report it is handed.
func ReportProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		MaxReachedSeconds    float64 `json:"max_reached_seconds" validate:"min=0"`
		VideoDurationSeconds float64 `json:"video_duration_seconds" validate:"min=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := engine.Lessons.ByID(uint(lessonID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}
	if lesson == nil || !lesson.IsActive {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	ordered, err := engine.Lessons.ActiveBySubject(lesson.SubjectID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}
	unlock, err := engine.Gate.IsUnlocked(userID, *lesson, ordered)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate lesson access!", nil)
	}
	if !unlock.Unlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Lesson is locked!", unlock)
	}

	progress, err := engine.Tracker.ReportProgress(userID, lesson.ID, reqData.MaxReachedSeconds, reqData.VideoDurationSeconds)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved!", fiber.Map{
		"lesson_id":        progress.LessonID,
		"progress_percent": progress.ProgressPercent,
		"status":           progress.Status,
		"completed_at":     progress.CompletedAt,
	})
}
