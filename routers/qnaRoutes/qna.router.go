package qnaRoutes

import (
	qnaControllers "github.com/SSub-jun/edu-platform-sub001/controllers/qna"
	"github.com/SSub-jun/edu-platform-sub001/middleware"
	qnaValidators "github.com/SSub-jun/edu-platform-sub001/validators/qna"

	"github.com/gofiber/fiber/v2"
)

func SetupQnaRoutes(app *fiber.App) {
	qnaGroup := app.Group("/qna")

	qnaGroup.Post("/question", middleware.JWTMiddleware, qnaValidators.CreateQuestion(), qnaControllers.CreateQuestion)
	qnaGroup.Get("/questions", middleware.JWTMiddleware, qnaControllers.MyQuestions)
	qnaGroup.Post("/question/:id/answer", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), qnaValidators.AnswerQuestion(), qnaControllers.AnswerQuestion)
}
