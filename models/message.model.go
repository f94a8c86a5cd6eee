package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is a direct-message thread between two users. UserOneID is
// always the smaller id so a pair maps to exactly one row.
type Conversation struct {
	gorm.Model
	UserOneID     uint       `json:"user_one_id" gorm:"index:idx_conversation_pair,unique;not null"`
	UserTwoID     uint       `json:"user_two_id" gorm:"index:idx_conversation_pair,unique;not null"`
	LastMessageAt *time.Time `json:"last_message_at"`
}

// ChatMessage is one message inside a conversation.
type ChatMessage struct {
	gorm.Model
	ConversationID uint   `json:"conversation_id" gorm:"index;not null"`
	SenderID       uint   `json:"sender_id" gorm:"index;not null"`
	Content        string `json:"content" gorm:"type:text"`
	IsRead         bool   `json:"is_read" gorm:"default:false"`
}
