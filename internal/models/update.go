package models

import (
	"time"

	"gorm.io/gorm"
)

// UpdatePost is an admin-authored announcement. Posts are immutable once
// published; the only mutation is an admin delete.
type UpdatePost struct {
	ID      string    `json:"id" gorm:"primaryKey;size:36"`
	Title   string    `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Content string    `json:"content" gorm:"type:text;not null" validate:"required,max=5000"`
	Date    time.Time `json:"date" gorm:"not null;index"`
	Author  string    `json:"author" gorm:"not null;size:100" validate:"required,max=100"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (UpdatePost) TableName() string {
	return "update_posts"
}
