package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification types.
const (
	NotificationEnrollment    = "ENROLLMENT"
	NotificationComment       = "COMMENT"
	NotificationMessage       = "MESSAGE"
	NotificationGradeReminder = "GRADE_REMINDER"
)

// Notification is a per-user inbox entry. Payload carries type-specific
// context (course id, topic id, sender id) as JSON.
type Notification struct {
	gorm.Model
	UserID  uint           `json:"user_id" gorm:"index;not null"`
	Type    string         `json:"type" gorm:"not null"`
	Title   string         `json:"title"`
	Body    string         `json:"body"`
	Payload datatypes.JSON `json:"payload"`
	IsRead  bool           `json:"is_read" gorm:"default:false"`
}
