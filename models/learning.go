package models

import "time"

// Learning is the immutable outcome of one completed study session. Rows are
// append-only; no code path updates or merges them.
type Learning struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"not null;size:100;index" json:"user"`
	SetID        uint      `gorm:"not null;index" json:"-"`
	Set          *Set      `gorm:"foreignKey:SetID" json:"set,omitempty"`
	CardsTotal   int       `gorm:"not null" json:"cards_total"`
	CardsCorrect int       `gorm:"not null" json:"cards_correct"`
	CardsWrong   int       `gorm:"not null" json:"cards_wrong"`
	Score        float64   `gorm:"not null" json:"score"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
