package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/fishperson113/letslearn-backend/database"
	"github.com/fishperson113/letslearn-backend/middleware"
	"github.com/fishperson113/letslearn-backend/models"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"
	"github.com/fishperson113/letslearn-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnrollCourse enrolls the current user into a published course.
func EnrollCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, "id = ? AND is_deleted = ?", userId, false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	courseID := c.Params("id")

	var course courseModels.Course
	if err := database.Database.Db.First(&course, "id = ?", courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is not published!", nil)
	}

	if course.CreatorID == userId {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot enroll in your own course!", nil)
	}

	var existing int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userId, courseID).
		Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:     userId,
		CourseID:   courseID,
		Status:     courseModels.EnrollmentActive,
		EnrolledAt: time.Now(),
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Course{}).
			Where("id = ?", courseID).
			UpdateColumn("total_joined", gorm.Expr("total_joined + ?", 1)).Error
	})
	if err != nil {
		// unique index guards the duplicate race
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	payload, _ := json.Marshal(fiber.Map{"courseId": courseID, "userId": userId})
	notification := models.Notification{
		UserID:  course.CreatorID,
		Type:    models.NotificationEnrollment,
		Title:   "New enrollment",
		Body:    user.Name + " enrolled in " + course.Title,
		Payload: datatypes.JSON(payload),
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("[ENROLL] failed to create notification: %v", err)
	}

	go func(email, name, title string) {
		if err := utils.SendEnrollmentEmail(email, name, title); err != nil {
			log.Printf("[ENROLL] failed to send enrollment email: %v", err)
		}
	}(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

// UnenrollCourse marks the enrollment dropped and decrements the counter.
func UnenrollCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Params("id")

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND status = ?", userId, courseID, courseModels.EnrollmentActive).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&enrollment).Update("status", courseModels.EnrollmentDropped).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Course{}).
			Where("id = ? AND total_joined > 0", courseID).
			UpdateColumn("total_joined", gorm.Expr("total_joined - ?", 1)).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unenrolled successfully!", nil)
}

// GetMyEnrollments lists the current user's enrollments with course info.
func GetMyEnrollments(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("enrolled_at DESC").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	courseIDs := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}

	var courses []courseModels.Course
	if len(courseIDs) > 0 {
		database.Database.Db.Where("id IN ?", courseIDs).Find(&courses)
	}
	byID := make(map[string]courseModels.Course, len(courses))
	for _, crs := range courses {
		byID[crs.ID] = crs
	}

	type enrollmentView struct {
		courseModels.Enrollment
		Course courseModels.Course `json:"course"`
	}
	response := make([]enrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		response = append(response, enrollmentView{Enrollment: e, Course: byID[e.CourseID]})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}

// isEnrolled reports an active enrollment for user in course.
func isEnrolled(db *gorm.DB, userID uint, courseID string) bool {
	var count int64
	db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, courseModels.EnrollmentActive).
		Count(&count)
	return count > 0
}
