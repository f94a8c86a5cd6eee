package models

import "gorm.io/gorm"

// Comment is a threaded comment on a course page. ParentID is nil for
// top-level comments.
type Comment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  string `json:"course_id" gorm:"index;not null"`
	ParentID  *uint  `json:"parent_id" gorm:"index"`
	Content   string `json:"content" gorm:"type:text"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
