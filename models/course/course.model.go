package course

import "time"

// Course is the top-level learning unit. Its ID is chosen by the creator
// (a short course code), not generated; both ID and Title must be unique.
// The unique keys are the real guard against concurrent duplicate inserts,
// the service-level pre-checks only exist for a fast error message.
type Course struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatorID    uint      `json:"creator_id" gorm:"index;not null"`
	Title        string    `json:"title" gorm:"uniqueIndex;not null"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	TotalJoined  int       `json:"total_joined" gorm:"default:0"`
	IsPublished  bool      `json:"is_published" gorm:"default:false"`

	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// Section groups topics inside a course, ordered by Position.
type Section struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CourseID    string    `json:"course_id" gorm:"index;not null"`
	Position    int       `json:"position" gorm:"default:0"`
	Title       string    `json:"title"`
	Description string    `json:"description"`

	Topics []Topic `json:"topics,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}
