package examRoutes

import (
	examControllers "github.com/SSub-jun/edu-platform-sub001/controllers/exam"
	"github.com/SSub-jun/edu-platform-sub001/middleware"
	examValidators "github.com/SSub-jun/edu-platform-sub001/validators/exam"

	"github.com/gofiber/fiber/v2"
)

// SetupExamRoutes sets up eligibility, start, submit and history for both exam
// scopes. Subject exams and lesson exams share the same state machine.
func SetupExamRoutes(app *fiber.App) {
	examGroup := app.Group("/exam", middleware.JWTMiddleware, middleware.RequireActiveEnrollment)

	for _, kind := range []string{"subject", "lesson"} {
		scoped := examGroup.Group("/" + kind)
		scoped.Get("/:id/eligibility", examValidators.ScopeFromPath(kind), examControllers.GetEligibility)
		scoped.Post("/:id/start", examValidators.ScopeFromPath(kind), examControllers.StartExam)
		scoped.Get("/:id/attempts", examValidators.ScopeFromPath(kind), examControllers.GetAttemptHistory)
	}

	examGroup.Post("/attempt/:attempt_id/submit", examValidators.SubmitExam(), examControllers.SubmitExam)
}
