package lessonRoutes

import (
	lessonControllers "github.com/SSub-jun/edu-platform-sub001/controllers/lesson"
	"github.com/SSub-jun/edu-platform-sub001/middleware"
	lessonValidators "github.com/SSub-jun/edu-platform-sub001/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

// SetupLessonRoutes sets up subject listing, lesson listing and progress
// reporting. All routes require an authenticated user inside an active
// learning window.
func SetupLessonRoutes(app *fiber.App) {
	subjectGroup := app.Group("/subject", middleware.JWTMiddleware, middleware.RequireActiveEnrollment)
	subjectGroup.Get("/list", lessonControllers.GetSubjects)
	subjectGroup.Get("/:id/lessons", lessonValidators.GetLessons(), lessonControllers.GetLessons)

	lessonGroup := app.Group("/lesson", middleware.JWTMiddleware, middleware.RequireActiveEnrollment)
	lessonGroup.Post("/:id/progress", lessonValidators.ReportProgress(), lessonControllers.ReportProgress)
}
