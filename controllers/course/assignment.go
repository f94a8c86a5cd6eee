package controllers

import (
	"strings"
	"time"

	"github.com/fishperson113/letslearn-backend/database"
	"github.com/fishperson113/letslearn-backend/middleware"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"
	"github.com/fishperson113/letslearn-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// assignmentForTopic loads the assignment variant and its owning course.
func assignmentForTopic(topicID string) (*courseModels.TopicAssignment, *courseModels.Course, error) {
	var assignment courseModels.TopicAssignment
	if err := database.Database.Db.First(&assignment, "topic_id = ?", topicID).Error; err != nil {
		return nil, nil, err
	}
	course, err := courseForTopic(topicID)
	if err != nil {
		return nil, nil, err
	}
	return &assignment, course, nil
}

// SubmitAssignment accepts a multipart submission with an optional note and
// up to the assignment's file limit of uploaded files.
func SubmitAssignment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := strings.TrimSpace(c.Params("id"))

	assignment, course, err := assignmentForTopic(topicID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	if !isEnrolled(database.Database.Db, userId, course.ID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	now := time.Now()
	if assignment.Open != nil && now.Before(*assignment.Open) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Assignment is not open yet!", nil)
	}
	if assignment.Close != nil && now.After(*assignment.Close) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Assignment is closed!", nil)
	}

	var previous int64
	database.Database.Db.Model(&courseModels.AssignmentResponse{}).
		Where("topic_id = ? AND user_id = ?", topicID, userId).
		Count(&previous)
	if previous > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already submitted!", nil)
	}

	note := c.FormValue("note")

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid multipart form!", nil)
	}
	files := form.File["files"]

	if len(files) > assignment.MaximumFile {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Too many files submitted!", nil)
	}
	maxBytes := int64(assignment.MaximumFileSize) * 1024 * 1024
	for _, file := range files {
		if file.Size > maxBytes {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File exceeds the size limit!", nil)
		}
	}

	response := courseModels.AssignmentResponse{
		ID:          uuid.NewString(),
		TopicID:     topicID,
		UserID:      userId,
		Note:        note,
		SubmittedAt: now,
	}

	for _, file := range files {
		savedPath, err := utils.SaveUploadedFile(file, "./uploads")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
		}
		url := utils.GetFileURL(savedPath)
		response.Files = append(response.Files, courseModels.FileAttachment{
			ID:          uuid.NewString(),
			Name:        file.Filename,
			DisplayURL:  url,
			DownloadURL: url,
		})
	}

	if err := database.Database.Db.Create(&response).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", response)
}

// GetMySubmission returns the current user's submission for an assignment.
func GetMySubmission(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := strings.TrimSpace(c.Params("id"))

	var response courseModels.AssignmentResponse
	if err := database.Database.Db.Preload("Files").
		Where("topic_id = ? AND user_id = ?", topicID, userId).
		First(&response).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission fetched successfully!", response)
}

// ListSubmissions returns all submissions of an assignment to its course managers.
func ListSubmissions(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := strings.TrimSpace(c.Params("id"))

	_, course, err := assignmentForTopic(topicID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}
	if !canManageCourse(database.Database.Db, course, userId) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var responses []courseModels.AssignmentResponse
	if err := database.Database.Db.Preload("Files").
		Where("topic_id = ?", topicID).
		Order("submitted_at ASC").
		Find(&responses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", responses)
}

// GradeSubmission records a grade on a student's submission.
func GradeSubmission(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	submissionID := strings.TrimSpace(c.Params("id"))

	reqData, ok := c.Locals("validatedGrade").(*struct {
		Grade float64 `json:"grade"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var response courseModels.AssignmentResponse
	if err := database.Database.Db.First(&response, "id = ?", submissionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	course, err := courseForTopic(response.TopicID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if !canManageCourse(database.Database.Db, course, userId) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	now := time.Now()
	if err := database.Database.Db.Model(&response).Updates(map[string]interface{}{
		"grade":     reqData.Grade,
		"graded_at": now,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	response.Grade = &reqData.Grade
	response.GradedAt = &now

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", response)
}
