// Package learn runs study sessions: it samples a bounded, non-repeating
// subset of a set's cards and turns raw answer tallies into score records.
package learn

import (
	"math/rand/v2"

	"gorm.io/gorm"

	"github.com/flashdeck/flashdeck-api/apperr"
	"github.com/flashdeck/flashdeck-api/models"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SampleCards returns up to limit cards of the set in uniformly random order.
// A card never appears twice; a set smaller than limit comes back whole. The
// stored rows are read-only to this path.
func (s *Service) SampleCards(setID uint, limit int) ([]models.Card, error) {
	if limit < 0 {
		return nil, apperr.Validationf("limit must not be negative")
	}

	cards := []models.Card{}
	err := s.db.Select("id", "public_id", "question", "answer", "image_data").
		Where("set_id = ?", setID).Find(&cards).Error
	if err != nil {
		return nil, apperr.Dependencyf("load cards of set %d: %v", setID, err)
	}
	return sample(cards, limit), nil
}

// sample shuffles cards in place with Fisher-Yates and keeps the first limit
// elements.
func sample(cards []models.Card, limit int) []models.Card {
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	if limit < len(cards) {
		cards = cards[:limit]
	}
	return cards
}
