package course

import "time"

// TopicAssignment is an "assignment" topic. Template files are attached by
// the course creator and are separate from student response files.
type TopicAssignment struct {
	ID              string     `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	TopicID         string     `json:"topic_id" gorm:"uniqueIndex;not null"`
	Topic           Topic      `json:"-" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
	Description     string     `json:"description"`
	Open            *time.Time `json:"open"`
	Close           *time.Time `json:"close"`
	MaximumFile     int        `json:"maximum_file" gorm:"default:1"`
	MaximumFileSize int        `json:"maximum_file_size" gorm:"default:5"` // megabytes
	RemindToGrade   *time.Time `json:"remind_to_grade"`
	ReminderSent    bool       `json:"reminder_sent" gorm:"default:false"`

	TemplateFiles []FileAttachment `json:"template_files,omitempty" gorm:"foreignKey:TopicAssignmentID;constraint:OnDelete:CASCADE"`
}

// AssignmentResponse is one student's submission to an assignment topic.
type AssignmentResponse struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	TopicID     string     `json:"topic_id" gorm:"index;not null"`
	UserID      uint       `json:"user_id" gorm:"index;not null"`
	Note        string     `json:"note"`
	SubmittedAt time.Time  `json:"submitted_at"`
	Grade       *float64   `json:"grade"`
	GradedAt    *time.Time `json:"graded_at"`

	Files []FileAttachment `json:"files,omitempty" gorm:"foreignKey:AssignmentResponseID;constraint:OnDelete:CASCADE"`
}

// FileAttachment belongs to exactly one owner: a student response, an
// assignment template set, or a file topic. At most one of the three owner
// keys is non-null at a time.
type FileAttachment struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	DisplayURL  string    `json:"display_url"`
	DownloadURL string    `json:"download_url"`

	AssignmentResponseID *string `json:"assignment_response_id" gorm:"index"`
	TopicAssignmentID    *string `json:"topic_assignment_id" gorm:"index"`
	TopicFileID          *string `json:"topic_file_id" gorm:"index"`
}
