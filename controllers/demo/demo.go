package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/fishperson113/letslearn-backend/database"
	"github.com/fishperson113/letslearn-backend/middleware"
	"github.com/fishperson113/letslearn-backend/models"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/gofiber/fiber/v2"
)

const courseStatsCacheKey = "demo:course-stats"

type courseStats struct {
	TotalCourses     int64     `json:"total_courses"`
	PublishedCourses int64     `json:"published_courses"`
	TotalUsers       int64     `json:"total_users"`
	TotalEnrollments int64     `json:"total_enrollments"`
	TotalTopics      int64     `json:"total_topics"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// GetCourseStats serves platform-wide counters, cached in Redis for a minute.
// When Redis is unavailable the numbers come straight from the database.
func GetCourseStats(c *fiber.Ctx) error {
	if database.Redis != nil {
		cached, err := database.Redis.Get(c.Context(), courseStatsCacheKey).Result()
		if err == nil {
			var stats courseStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return middleware.JsonResponse(c, fiber.StatusOK, true, "Course stats fetched successfully!", fiber.Map{
					"stats":  stats,
					"cached": true,
				})
			}
		}
	}

	db := database.Database.Db
	stats := courseStats{GeneratedAt: time.Now()}
	db.Model(&courseModels.Course{}).Count(&stats.TotalCourses)
	db.Model(&courseModels.Course{}).Where("is_published = ?", true).Count(&stats.PublishedCourses)
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&stats.TotalUsers)
	db.Model(&courseModels.Enrollment{}).Where("status = ?", courseModels.EnrollmentActive).Count(&stats.TotalEnrollments)
	db.Model(&courseModels.Topic{}).Count(&stats.TotalTopics)

	if database.Redis != nil {
		raw, _ := json.Marshal(stats)
		if err := database.Redis.Set(c.Context(), courseStatsCacheKey, raw, 60*time.Second).Err(); err != nil {
			log.Printf("[DEMO] failed to cache course stats: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course stats fetched successfully!", fiber.Map{
		"stats":  stats,
		"cached": false,
	})
}
