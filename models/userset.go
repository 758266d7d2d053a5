package models

import "time"

// UserSet records that a user marked a set as a favorite. Users are opaque
// client-generated strings, not rows in a users table; duplicates per
// (user, set) are permitted and collapsed on read.
type UserSet struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;size:100;index" json:"user"`
	SetID     uint      `gorm:"not null;index" json:"-"`
	Set       *Set      `gorm:"foreignKey:SetID" json:"set,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
