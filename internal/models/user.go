// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account in the Quill application. The ID is an
// opaque UUID assigned at registration and never changes afterwards; the
// username carries a store-enforced unique index.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Posts        []Post    `gorm:"foreignKey:CreatorID" json:"posts,omitempty"`
}
