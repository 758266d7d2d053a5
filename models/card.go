package models

import (
	"time"

	"gorm.io/gorm"
)

// Card is a single question/answer pair belonging to exactly one Set.
// SetID is fixed at creation; cards never move between sets.
type Card struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PublicID string `gorm:"size:100;uniqueIndex" json:"id"`
	SetID    uint   `gorm:"not null;index" json:"-"`
	Set      *Set   `gorm:"foreignKey:SetID" json:"set,omitempty"`
	Question string `gorm:"not null;size:1000" json:"question"`
	Answer   string `gorm:"not null;size:1000" json:"answer"`

	ImageData []byte `json:"-"`
	Image     string `gorm:"-" json:"image,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Card) AfterFind(tx *gorm.DB) error {
	if len(c.ImageData) > 0 {
		c.Image = "/cards/" + c.PublicID + "/image"
	}
	return nil
}
