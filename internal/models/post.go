// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents an authored post in the Quill application. Titles carry a
// store-enforced unique index; CreatorID references the owning user.
type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"unique;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatorID string    `gorm:"not null;index" json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}
