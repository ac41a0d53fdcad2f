package middleware

import (
	"time"

	"github.com/SSub-jun/edu-platform-sub001/database"
	"github.com/SSub-jun/edu-platform-sub001/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// RequireActiveEnrollment resolves the caller's enrollment and rejects the
// request when there is none or when today falls outside the learning window.
// Window edges count as inside: the window runs from the beginning of the
// start day to the end of the end day. Downstream handlers read the company id
// from locals; the progress and exam rules never re-derive this check.
func RequireActiveEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollment models.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, "ACTIVE", false).
		Order("created_at desc").First(&enrollment).Error
	if err != nil {
		return JsonResponse(c, fiber.StatusForbidden, false, "No active enrollment found!", nil)
	}

	today := time.Now()
	windowStart := now.With(enrollment.StartsAt).BeginningOfDay()
	windowEnd := now.With(enrollment.EndsAt).EndOfDay()
	if today.Before(windowStart) || today.After(windowEnd) {
		return JsonResponse(c, fiber.StatusForbidden, false, "Learning period is not active!", nil)
	}

	c.Locals("companyId", enrollment.CompanyID)
	c.Locals("enrollmentId", enrollment.ID)
	return c.Next()
}
