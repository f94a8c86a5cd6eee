package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses.
const (
	EnrollmentActive    = "ENROLLED"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentDropped   = "DROPPED"
)

// Enrollment tracks a user's membership in a course.
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"index:idx_enrollment_user_course,unique;not null"`
	CourseID    string     `json:"course_id" gorm:"index:idx_enrollment_user_course,unique;not null"`
	Status      string     `json:"status" gorm:"default:'ENROLLED'"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
