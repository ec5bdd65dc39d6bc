// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment represents a comment attached to exactly one post.
type Comment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatorID string    `gorm:"not null;index" json:"creator_id"`
	PostID    string    `gorm:"not null;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
