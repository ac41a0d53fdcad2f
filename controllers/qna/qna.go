package qnaController

import (
	"github.com/SSub-jun/edu-platform-sub001/database"
	"github.com/SSub-jun/edu-platform-sub001/middleware"
	"github.com/SSub-jun/edu-platform-sub001/models"

	"github.com/gofiber/fiber/v2"
)

func CreateQuestion(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Get validated data
	reqData, ok := c.Locals("validatedQnaPost").(*struct {
		Title    string `json:"title" validate:"required,min=3"`
		Body     string `json:"body" validate:"required,min=5"`
		LessonID *uint  `json:"lesson_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	post := models.QnaPost{
		UserID:   userId,
		LessonID: reqData.LessonID,
		Title:    reqData.Title,
		Body:     reqData.Body,
		Status:   "OPEN",
	}

	if err := database.Database.Db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question posted successfully!", post)
}

func MyQuestions(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var posts []models.QnaPost
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").
		Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	// Attach answers per post
	type PostWithAnswers struct {
		models.QnaPost
		Answers []models.QnaAnswer `json:"answers"`
	}

	result := make([]PostWithAnswers, len(posts))
	for i, post := range posts {
		result[i] = PostWithAnswers{QnaPost: post}
		database.Database.Db.
			Where("post_id = ? AND is_deleted = ?", post.ID, false).
			Order("created_at asc").
			Find(&result[i].Answers)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", result)
}

// AnswerQuestion lets an admin reply to a post and marks it answered.
func AnswerQuestion(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	postID := c.Locals("postID").(int)

	reqData, ok := c.Locals("validatedQnaAnswer").(*struct {
		Body string `json:"body" validate:"required,min=2"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var post models.QnaPost
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	answer := models.QnaAnswer{
		PostID: post.ID,
		UserID: userId,
		Body:   reqData.Body,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&answer).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save answer!", nil)
	}
	if err := tx.Model(&post).Update("status", "ANSWERED").Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer posted successfully!", answer)
}
