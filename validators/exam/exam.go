package examValidator

import (
	"strconv"
	"strings"

	"github.com/SSub-jun/edu-platform-sub001/exam"
	"github.com/SSub-jun/edu-platform-sub001/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ScopeFromPath resolves the exam scope from the route: subject exams arrive
// on /exam/subject/:id/..., lesson exams on /exam/lesson/:id/....
func ScopeFromPath(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Scope ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Scope ID!", nil)
		}

		switch kind {
		case "subject":
			c.Locals("examScope", exam.SubjectScope(uint(id)))
		case "lesson":
			c.Locals("examScope", exam.LessonScope(uint(id)))
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam scope!", nil)
		}

		return c.Next()
	}
}

func SubmitExam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		attemptIDStr := strings.TrimSpace(c.Params("attempt_id"))
		if attemptIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Attempt ID is required!", nil)
		}

		attemptID, err := strconv.Atoi(attemptIDStr)
		if err != nil || attemptID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Attempt ID!", nil)
		}

		reqData := new(struct {
			Answers []exam.Answer `json:"answers" validate:"required,min=1,dive"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "At least one answer is required!",
			})
		}

		c.Locals("attemptID", attemptID)
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
