package models

import "time"

const (
	ChatRoleUser = "user"
	ChatRoleAI   = "ai"
)

// ChatMessage is a single turn in a chat session. Timestamp is in unix milliseconds.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// Valid reports whether the message has a known role
func (m ChatMessage) Valid() bool {
	return m.Role == ChatRoleUser || m.Role == ChatRoleAI
}

type ChatSession struct {
	ID        string        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    *string       `gorm:"size:64;index" json:"userId"`
	Messages  []ChatMessage `gorm:"serializer:json" json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
}
