package lessonValidator

import (
	"strconv"
	"strings"

	"github.com/SSub-jun/edu-platform-sub001/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjectIDStr := strings.TrimSpace(c.Params("id"))
		if subjectIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Subject ID is required!", nil)
		}

		subjectID, err := strconv.Atoi(subjectIDStr)
		if err != nil || subjectID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Subject ID!", nil)
		}

		c.Locals("subjectID", subjectID)
		return c.Next()
	}
}

func ReportProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonIDStr := strings.TrimSpace(c.Params("id"))
		if lessonIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		lessonID, err := strconv.Atoi(lessonIDStr)
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(struct {
			MaxReachedSeconds    float64 `json:"max_reached_seconds" validate:"min=0"`
			VideoDurationSeconds float64 `json:"video_duration_seconds" validate:"min=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"max_reached_seconds": "Watch time must not be negative!",
			})
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
