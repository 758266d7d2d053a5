package models

import (
	"time"

	"gorm.io/gorm"
)

// Set is a named collection of flashcards shared between users.
type Set struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	PublicID    string `gorm:"size:100;uniqueIndex" json:"id"`
	Title       string `gorm:"not null;size:200" json:"title"`
	Description string `gorm:"size:1000" json:"description"`
	Creator     string `gorm:"size:100;index" json:"creator"`
	Private     bool   `gorm:"default:false" json:"private"`

	// CardCount mirrors the number of Card rows referencing this set. It is
	// only ever changed through an atomic column expression, never by a
	// caller-side read-modify-write.
	CardCount int `gorm:"not null;default:0" json:"card_count"`

	ImageData []byte `json:"-"`
	Image     string `gorm:"-" json:"image,omitempty"`

	Cards []Card `gorm:"foreignKey:SetID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Set) AfterFind(tx *gorm.DB) error {
	if len(s.ImageData) > 0 {
		s.Image = "/sets/" + s.PublicID + "/image"
	}
	return nil
}
