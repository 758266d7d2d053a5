// Package catalog owns sets and cards, keeps the denormalized cards-per-set
// counter consistent, and cascades set deletion across dependent records.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
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

// CreateSet stores a new set with a fresh public id and a card count of zero.
func (s *Service) CreateSet(title, description string, image []byte, creator string, private bool) (*models.Set, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.Validationf("set title is required")
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, apperr.Dependencyf("generate set id: %v", err)
	}

	set := models.Set{
		PublicID:    publicID,
		Title:       title,
		Description: description,
		Creator:     creator,
		Private:     private,
		ImageData:   image,
	}
	if err := s.db.Create(&set).Error; err != nil {
		return nil, apperr.Dependencyf("create set: %v", err)
	}
	return &set, nil
}

func (s *Service) GetSet(publicID string) (*models.Set, error) {
	var set models.Set
	if err := s.db.Where("public_id = ?", publicID).First(&set).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("set %s", publicID)
		}
		return nil, apperr.Dependencyf("read set %s: %v", publicID, err)
	}
	return &set, nil
}

// ListPublicSets returns the display projection of every non-private set.
// Order is whatever the store yields; callers must not depend on it.
func (s *Service) ListPublicSets() ([]models.Set, error) {
	sets := []models.Set{}
	if err := s.db.Where("private = ?", false).Find(&sets).Error; err != nil {
		return nil, apperr.Dependencyf("list public sets: %v", err)
	}
	return sets, nil
}

// DeleteSet removes a set together with its favorites and cards. The deletes
// run in one transaction so a partial cascade never commits; each step only
// removes what exists, so a retried delete cannot trip over prior progress.
func (s *Service) DeleteSet(publicID string) error {
	set, err := s.GetSet(publicID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := clearFavorites(tx, set.ID); err != nil {
			return err
		}
		if err := tx.Where("set_id = ?", set.ID).Delete(&models.Card{}).Error; err != nil {
			return fmt.Errorf("delete cards of set %s: %w", publicID, err)
		}
		if err := tx.Delete(&models.Set{}, set.ID).Error; err != nil {
			return fmt.Errorf("delete set %s: %w", publicID, err)
		}
		return nil
	})
	if err != nil {
		return apperr.Dependencyf("%v", err)
	}
	return nil
}

// AddCard inserts a card and bumps the owning set's counter in the same
// transaction. The increment is an SQL expression, so concurrent adds
// serialize in the store instead of racing on a stale read.
func (s *Service) AddCard(setPublicID, question, answer string, image []byte) (*models.Card, error) {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return nil, apperr.Validationf("card question and answer are required")
	}

	set, err := s.GetSet(setPublicID)
	if err != nil {
		return nil, err
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, apperr.Dependencyf("generate card id: %v", err)
	}

	card := models.Card{
		PublicID:  publicID,
		SetID:     set.ID,
		Question:  question,
		Answer:    answer,
		ImageData: image,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&card).Error; err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		res := tx.Model(&models.Set{}).Where("id = ?", set.ID).
			UpdateColumn("card_count", gorm.Expr("card_count + ?", 1))
		if res.Error != nil {
			return fmt.Errorf("increment card count of set %s: %w", setPublicID, res.Error)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Dependencyf("%v", err)
	}
	return &card, nil
}

func (s *Service) GetCard(publicID string) (*models.Card, error) {
	var card models.Card
	if err := s.db.Where("public_id = ?", publicID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("card %s", publicID)
		}
		return nil, apperr.Dependencyf("read card %s: %v", publicID, err)
	}
	return &card, nil
}

// ListCards returns every card of the set with the owning set preloaded for
// display context.
func (s *Service) ListCards(setPublicID string) ([]models.Card, error) {
	set, err := s.GetSet(setPublicID)
	if err != nil {
		return nil, err
	}

	cards := []models.Card{}
	if err := s.db.Preload("Set").Where("set_id = ?", set.ID).Find(&cards).Error; err != nil {
		return nil, apperr.Dependencyf("list cards of set %s: %v", setPublicID, err)
	}
	return cards, nil
}
