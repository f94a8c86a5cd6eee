package controllers

import (
	"encoding/json"
	"log"

	"github.com/fishperson113/letslearn-backend/database"
	"github.com/fishperson113/letslearn-backend/middleware"
	"github.com/fishperson113/letslearn-backend/models"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateComment posts a comment (or a reply) on a course page.
func CreateComment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, "id = ? AND is_deleted = ?", userId, false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedComment").(*struct {
		CourseID string `json:"courseId"`
		ParentID *uint  `json:"parentId"`
		Content  string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.First(&course, "id = ?", reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.ParentID != nil {
		var parent models.Comment
		if err := database.Database.Db.
			First(&parent, "id = ? AND course_id = ?", *reqData.ParentID, reqData.CourseID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent comment not found!", nil)
		}
		if parent.ParentID != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Replies cannot be nested further!", nil)
		}
	}

	comment := models.Comment{
		UserID:   userId,
		CourseID: reqData.CourseID,
		ParentID: reqData.ParentID,
		Content:  reqData.Content,
	}

	if err := database.Database.Db.Create(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create comment!", nil)
	}

	// notify the course creator about comments from other users
	if course.CreatorID != userId {
		payload, _ := json.Marshal(fiber.Map{"courseId": course.ID, "commentId": comment.ID})
		notification := models.Notification{
			UserID:  course.CreatorID,
			Type:    models.NotificationComment,
			Title:   "New comment",
			Body:    user.Name + " commented on " + course.Title,
			Payload: datatypes.JSON(payload),
		}
		if err := database.Database.Db.Create(&notification).Error; err != nil {
			log.Printf("[COMMENT] failed to create notification: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment created successfully!", comment)
}

// GetCourseComments lists a course's comments, newest threads first.
func GetCourseComments(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Params("id")

	var course courseModels.Course
	if err := database.Database.Db.First(&course, "id = ?", courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var comments []models.Comment
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", comments)
}

// DeleteComment soft-deletes a comment. The author or the course creator may delete.
func DeleteComment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	commentID := c.Params("id")

	var comment models.Comment
	if err := database.Database.Db.First(&comment, "id = ? AND is_deleted = ?", commentID, false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	allowed := comment.UserID == userId
	if !allowed {
		var course courseModels.Course
		if err := database.Database.Db.First(&course, "id = ?", comment.CourseID).Error; err == nil {
			allowed = course.CreatorID == userId
		}
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	if err := database.Database.Db.Model(&comment).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}
