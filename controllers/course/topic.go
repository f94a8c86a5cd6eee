package controllers

import (
	"encoding/json"
	"strings"

	"github.com/fishperson113/letslearn-backend/database"
	"github.com/fishperson113/letslearn-backend/middleware"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"
	"github.com/fishperson113/letslearn-backend/services"
	"github.com/fishperson113/letslearn-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func topicService() *services.TopicService {
	return services.NewTopicService(database.Database.Db, utils.NewMeetingClient())
}

// courseForSection walks section -> course for ownership checks.
func courseForSection(sectionID string) (*courseModels.Course, error) {
	var section courseModels.Section
	if err := database.Database.Db.First(&section, "id = ?", sectionID).Error; err != nil {
		return nil, err
	}
	var course courseModels.Course
	if err := database.Database.Db.First(&course, "id = ?", section.CourseID).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// courseForTopic walks topic -> section -> course for ownership checks.
func courseForTopic(topicID string) (*courseModels.Course, error) {
	var topic courseModels.Topic
	if err := database.Database.Db.First(&topic, "id = ?", topicID).Error; err != nil {
		return nil, err
	}
	return courseForSection(topic.SectionID)
}

// CreateTopic creates a topic of any supported type inside a section. The
// type-specific payload travels as raw JSON and is dispatched by the service.
func CreateTopic(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID := strings.TrimSpace(c.Params("id"))

	reqData, ok := c.Locals("validatedTopic").(*struct {
		Title   string          `json:"title"`
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := courseForSection(sectionID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}
	if !canManageCourse(database.Database.Db, course, userId) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	envelope, err := topicService().CreateTopic(c.Context(), sectionID, reqData.Title, reqData.Type, reqData.Payload)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", envelope)
}

// GetTopic returns a topic with its variant data
func GetTopic(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := strings.TrimSpace(c.Params("id"))

	envelope, err := topicService().GetTopicByID(c.Context(), topicID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic fetched successfully!", envelope)
}

// UpdateTopic merge-patches a topic and its variant data
func UpdateTopic(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := strings.TrimSpace(c.Params("id"))

	reqData, ok := c.Locals("validatedTopicUpdate").(*struct {
		Title   *string         `json:"title"`
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := courseForTopic(topicID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}
	if !canManageCourse(database.Database.Db, course, userId) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	envelope, err := topicService().UpdateTopic(c.Context(), topicID, reqData.Title, reqData.Type, reqData.Payload)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", envelope)
}

// DeleteTopic removes a topic; deleting an absent topic is not an error
func DeleteTopic(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := strings.TrimSpace(c.Params("id"))

	course, err := courseForTopic(topicID)
	if err == nil {
		if !canManageCourse(database.Database.Db, course, userId) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
		}
	}

	deleted, err := topicService().DeleteTopic(c.Context(), topicID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic delete processed!", fiber.Map{
		"deleted": deleted,
	})
}
