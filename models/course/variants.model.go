package course

import "time"

// TopicPage holds free-form page content for a "page" topic.
type TopicPage struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	TopicID     string    `json:"topic_id" gorm:"uniqueIndex;not null"`
	Topic       Topic     `json:"-" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
	Description string    `json:"description"`
	Content     string    `json:"content" gorm:"type:text"`
}

// TopicFile is a "file" topic: a description plus at most one attachment.
type TopicFile struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	TopicID     string    `json:"topic_id" gorm:"uniqueIndex;not null"`
	Topic       Topic     `json:"-" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
	Description string    `json:"description"`

	File *FileAttachment `json:"file,omitempty" gorm:"foreignKey:TopicFileID;constraint:OnDelete:CASCADE"`
}

// TopicLink is a "link" topic pointing at an external URL.
type TopicLink struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	TopicID     string    `json:"topic_id" gorm:"uniqueIndex;not null"`
	Topic       Topic     `json:"-" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
}

// TopicMeeting is a live, time-bound event. Meetings are never cloned with a
// course; JoinURL comes from the external meeting provider and may be empty
// when the provider was unreachable at creation time.
type TopicMeeting struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	TopicID     string     `json:"topic_id" gorm:"uniqueIndex;not null"`
	Topic       Topic      `json:"-" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
	Description string     `json:"description"`
	Open        *time.Time `json:"open"`
	Close       *time.Time `json:"close"`
	JoinURL     string     `json:"join_url"`
}
