package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fishperson113/letslearn-backend/database"
	"github.com/fishperson113/letslearn-backend/models"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
)

// InitializeGradeReminderScheduler sets up the assignment grading reminder scheduler
func InitializeGradeReminderScheduler() {
	log.Println("[GRADE-SCHEDULER] Initializing grade reminder scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind creators about assignments waiting to be graded
	c.AddFunc("0 9 * * *", func() {
		log.Println("[GRADE-SCHEDULER] Running daily grading reminder check...")
		ProcessGradeReminders()
	})

	c.Start()
	log.Println("[GRADE-SCHEDULER] Grade reminder scheduler started - runs daily at 9 AM")
}

// ProcessGradeReminders notifies course creators about assignments whose
// grading reminder has come due
func ProcessGradeReminders() {
	db := database.Database.Db
	now := time.Now()

	var dueAssignments []courseModels.TopicAssignment
	if err := db.
		Where("remind_to_grade IS NOT NULL AND remind_to_grade <= ? AND reminder_sent = false", now).
		Find(&dueAssignments).Error; err != nil {
		log.Printf("[GRADE-SCHEDULER] Error fetching due assignments: %v", err)
		return
	}

	log.Printf("[GRADE-SCHEDULER] Found %d assignments due for a grading reminder", len(dueAssignments))

	for _, assignment := range dueAssignments {
		var topic courseModels.Topic
		if err := db.First(&topic, "id = ?", assignment.TopicID).Error; err != nil {
			log.Printf("[GRADE-SCHEDULER] Error fetching topic %s: %v", assignment.TopicID, err)
			continue
		}

		var section courseModels.Section
		if err := db.First(&section, "id = ?", topic.SectionID).Error; err != nil {
			log.Printf("[GRADE-SCHEDULER] Error fetching section %s: %v", topic.SectionID, err)
			continue
		}

		var c courseModels.Course
		if err := db.First(&c, "id = ?", section.CourseID).Error; err != nil {
			log.Printf("[GRADE-SCHEDULER] Error fetching course %s: %v", section.CourseID, err)
			continue
		}

		var creator models.User
		if err := db.Where("id = ? AND is_deleted = false", c.CreatorID).First(&creator).Error; err != nil {
			log.Printf("[GRADE-SCHEDULER] Error fetching creator %d: %v", c.CreatorID, err)
			continue
		}

		var pending int64
		db.Model(&courseModels.AssignmentResponse{}).
			Where("topic_id = ? AND grade IS NULL", topic.ID).
			Count(&pending)

		payload, _ := json.Marshal(map[string]interface{}{
			"course_id":           c.ID,
			"topic_id":            topic.ID,
			"pending_submissions": pending,
		})
		notification := models.Notification{
			UserID:  creator.ID,
			Type:    models.NotificationGradeReminder,
			Title:   "Grading reminder: " + topic.Title,
			Body:    fmt.Sprintf("%d submissions are waiting to be graded in %s.", pending, c.Title),
			Payload: datatypes.JSON(payload),
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("[GRADE-SCHEDULER] Error creating notification for user %d: %v", creator.ID, err)
			continue
		}

		SendGradeReminderEmail(creator.Email, creator.Name, topic.Title, c.Title, int(pending))

		if err := db.Model(&courseModels.TopicAssignment{}).
			Where("id = ?", assignment.ID).
			Update("reminder_sent", true).Error; err != nil {
			log.Printf("[GRADE-SCHEDULER] Error marking reminder sent for assignment %s: %v", assignment.ID, err)
		}
	}
}
