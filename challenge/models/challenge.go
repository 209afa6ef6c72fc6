package models

import (
	"time"
)

// Challenge is a paired-prompt exercise: a shared description plus one
// prompt half per participant. Static reference data.
type Challenge struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Description string `json:"description" gorm:"not null"`
	Prompt1     string `json:"prompt1" gorm:"not null"`
	Prompt2     string `json:"prompt2" gorm:"not null"`
}

// PromptFor returns the prompt half for participant 1 or 2.
func (c *Challenge) PromptFor(participant int) string {
	if participant == 2 {
		return c.Prompt2
	}
	return c.Prompt1
}

// Answer is one participant's submission for a challenge. Append-only;
// answers are stored and displayed, never executed.
type Answer struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Username    string     `json:"username" gorm:"index;not null"`
	Body        string     `json:"body" gorm:"not null"`
	ChallengeID uint       `json:"challenge_id" gorm:"index;not null"`
	Challenge   *Challenge `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
}
