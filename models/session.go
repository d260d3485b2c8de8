package models

import (
	"time"

	"gorm.io/gorm"
)

// Session maps an opaque bearer token to a user for a bounded window.
// A session is valid only while the row exists, the expiry is in the
// future, and the owning user still exists.
type Session struct {
	gorm.Model
	Token     string    `gorm:"not null;unique;index" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
