package examController

import (
	"log"

	"github.com/SSub-jun/edu-platform-sub001/database"
	"github.com/SSub-jun/edu-platform-sub001/exam"
	"github.com/SSub-jun/edu-platform-sub001/middleware"
	"github.com/SSub-jun/edu-platform-sub001/models"
	"github.com/SSub-jun/edu-platform-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

var engine *exam.Engine

// SetEngine injects the progress/exam engine. Called once from main.
func SetEngine(e *exam.Engine) {
	engine = e
}

// respondEngineError maps a domain rejection to its HTTP status. Anything
// without a domain code is an infrastructure fault and becomes a 500.
func respondEngineError(c *fiber.Ctx, err error) error {
	switch exam.CodeOf(err) {
	case exam.CodeNotEligible, exam.CodeAttemptLimitExceeded:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), fiber.Map{"code": exam.CodeOf(err)})
	case exam.CodeUnprocessable:
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), fiber.Map{"code": exam.CodeOf(err)})
	case exam.CodeNotFound:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), fiber.Map{"code": exam.CodeOf(err)})
	case exam.CodeDuplicateSubmission:
		return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), fiber.Map{"code": exam.CodeOf(err)})
	default:
		log.Printf("Exam engine error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}

func scopeFromLocals(c *fiber.Ctx) exam.Scope {
	return c.Locals("examScope").(exam.Scope)
}

// GetEligibility returns the caller's eligibility verdict for an exam scope.
func GetEligibility(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	verdict, err := engine.Evaluator.Evaluate(userID, scopeFromLocals(c))
	if err != nil {
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Eligibility evaluated!", verdict)
}

// StartExam creates a new in-progress attempt with a fresh question draw.
func StartExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	result, err := engine.Machine.Start(userID, scopeFromLocals(c))
	if err != nil {
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam started!", result)
}

// SubmitExam scores the answer set of an in-progress attempt and closes it.
func SubmitExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	attemptID := c.Locals("attemptID").(int)

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Answers []exam.Answer `json:"answers" validate:"required,min=1,dive"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := engine.Machine.Submit(uint(attemptID), userID, reqData.Answers)
	if err != nil {
		return respondEngineError(c, err)
	}

	if result.Passed {
		go notifyPassed(userID, uint(attemptID), result.Score)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam submitted!", result)
}

// notifyPassed sends the pass-result email. Best effort; failures are logged
// and never affect the submission.
func notifyPassed(userID, attemptID uint, score float64) {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		log.Printf("Error fetching user %d for result email: %v", userID, err)
		return
	}

	var attempt models.ExamAttempt
	if err := db.Where("id = ?", attemptID).First(&attempt).Error; err != nil {
		log.Printf("Error fetching attempt %d for result email: %v", attemptID, err)
		return
	}

	scopeName := "Lesson Exam"
	if attempt.SubjectID != nil {
		var subject models.Subject
		if err := db.Where("id = ?", *attempt.SubjectID).First(&subject).Error; err == nil {
			scopeName = subject.Title
		}
	} else if attempt.LessonID != nil {
		var lesson models.Lesson
		if err := db.Where("id = ?", *attempt.LessonID).First(&lesson).Error; err == nil {
			scopeName = lesson.Title
		}
	}

	if user.Email != "" {
		if err := utils.SendExamResultEmail(user.Email, user.Name, scopeName, score); err != nil {
			log.Printf("Error sending result email to %s: %v", user.Email, err)
		}
	}
}

// GetAttemptHistory lists the caller's attempts for a scope, oldest first.
// Stored answers are not echoed back.
func GetAttemptHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	attempts, err := engine.Attempts.ListByScope(userID, scopeFromLocals(c))
	if err != nil {
		return respondEngineError(c, err)
	}

	type AttemptView struct {
		ID                  uint     `json:"id"`
		Cycle               int      `json:"cycle"`
		AttemptIndexInCycle int      `json:"attempt_index_in_cycle"`
		Status              string   `json:"status"`
		Score               *float64 `json:"score"`
		Passed              *bool    `json:"passed"`
		StartedAt           string   `json:"started_at"`
		SubmittedAt         *string  `json:"submitted_at"`
	}

	views := make([]AttemptView, len(attempts))
	for i, a := range attempts {
		views[i] = AttemptView{
			ID:                  a.ID,
			Cycle:               a.Cycle,
			AttemptIndexInCycle: a.AttemptIndexInCycle,
			Status:              a.Status,
			Score:               a.Score,
			Passed:              a.Passed,
			StartedAt:           a.StartedAt.Format("2006-01-02 15:04:05"),
		}
		if a.SubmittedAt != nil {
			formatted := a.SubmittedAt.Format("2006-01-02 15:04:05")
			views[i].SubmittedAt = &formatted
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt history fetched!", views)
}
