package learn

import (
	"github.com/flashdeck/flashdeck-api/apperr"
	"github.com/flashdeck/flashdeck-api/models"
)

// RecordLearning computes the session score and appends one immutable record.
// A zero or negative total is rejected outright so the score is never a
// silent NaN or Infinity, and tallies beyond the total are rejected to keep
// the score inside [0,100].
func (s *Service) RecordLearning(user string, setID uint, total, correct, wrong int) (*models.Learning, error) {
	switch {
	case user == "":
		return nil, apperr.Validationf("user is required")
	case total <= 0:
		return nil, apperr.Validationf("cards_total must be positive")
	case correct < 0 || wrong < 0:
		return nil, apperr.Validationf("tallies must not be negative")
	case correct > total || wrong > total:
		return nil, apperr.Validationf("tallies must not exceed cards_total")
	}

	rec := models.Learning{
		UserID:       user,
		SetID:        setID,
		CardsTotal:   total,
		CardsCorrect: correct,
		CardsWrong:   wrong,
		Score:        float64(correct) / float64(total) * 100,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, apperr.Dependencyf("create learning record: %v", err)
	}
	return &rec, nil
}

// ListLearnings returns the user's full history with the studied set
// preloaded, unordered.
func (s *Service) ListLearnings(user string) ([]models.Learning, error) {
	recs := []models.Learning{}
	if err := s.db.Preload("Set").Where("user_id = ?", user).Find(&recs).Error; err != nil {
		return nil, apperr.Dependencyf("list learnings of %s: %v", user, err)
	}
	return recs, nil
}
