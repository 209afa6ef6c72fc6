package models

import (
	"time"
)

// Message represents one chat message between two users. Sender and receiver
// are usernames; the pair of them scopes a conversation.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ExternalID string    `json:"external_id" gorm:"index"`
	Sender     string    `json:"sender" gorm:"index;not null"`
	Receiver   string    `json:"receiver" gorm:"index;not null"`
	Body       string    `json:"body" gorm:"not null"`
	SentAt     time.Time `json:"sent_at" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
}

// Clock returns the HH:MM display form of the send time.
func (m *Message) Clock() string {
	return m.SentAt.Format("15:04")
}
