package models

import (
	"time"
)

// ChatMessage is one line of a user's Cosmo guide transcript.
type ChatMessage struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string    `json:"userId" gorm:"type:uuid;not null;index"`
	Content       string    `json:"content" gorm:"not null"`
	IsUserMessage bool      `json:"isUser"`
	SessionID     string    `json:"sessionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (ChatMessage) TableName() string {
	return "cosmo_chat_messages"
}
