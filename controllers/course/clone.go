package controllers

import (
	"github.com/fishperson113/letslearn-backend/database"
	"github.com/fishperson113/letslearn-backend/middleware"
	"github.com/fishperson113/letslearn-backend/services"

	"github.com/gofiber/fiber/v2"
)

// CloneCourse copies a whole course graph under a new caller-chosen id.
// Meetings are skipped; everything else is deep-copied with fresh ids.
func CloneCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sourceID := c.Params("id")

	reqData, ok := c.Locals("validatedClone").(*struct {
		NewCourseID  string  `json:"newCourseId"`
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		ThumbnailURL *string `json:"thumbnailUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	cloner := services.NewCourseCloneService(database.Database.Db)
	result, err := cloner.Clone(c.Context(), sourceID, services.CloneRequest{
		NewCourseID:  reqData.NewCourseID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		ThumbnailURL: reqData.ThumbnailURL,
	}, userId)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course cloned successfully!", result)
}
