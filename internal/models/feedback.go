package models

import "time"

// GuestAuthor is recorded when an unauthenticated visitor submits feedback.
const GuestAuthor = "Guest"

// Feedback is write-once: any visitor may submit, nobody edits or deletes.
type Feedback struct {
	ID      string    `json:"id" gorm:"primaryKey;size:36"`
	User    string    `json:"user" gorm:"not null;size:100"`
	Message string    `json:"message" gorm:"type:text;not null" validate:"required,min=1,max=2000"`
	Date    time.Time `json:"date" gorm:"not null;index"`

	CreatedAt time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
