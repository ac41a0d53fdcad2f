package qnaValidator

import (
	"strconv"
	"strings"

	"github.com/SSub-jun/edu-platform-sub001/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title" validate:"required,min=3"`
			Body     string `json:"body" validate:"required,min=5"`
			LessonID *uint  `json:"lesson_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQnaPost", reqData)
		return c.Next()
	}
}

func AnswerQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		postIDStr := strings.TrimSpace(c.Params("id"))
		if postIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question ID is required!", nil)
		}

		postID, err := strconv.Atoi(postIDStr)
		if err != nil || postID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		reqData := new(struct {
			Body string `json:"body" validate:"required,min=2"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"body": "Answer body is required!",
			})
		}

		c.Locals("postID", postID)
		c.Locals("validatedQnaAnswer", reqData)
		return c.Next()
	}
}
