package catalog

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/flashdeck/flashdeck-api/apperr"
	"github.com/flashdeck/flashdeck-api/models"
)

// AddFavorite records that a user favorited a set. There is no uniqueness
// check; favoriting the same set twice just adds another row.
func (s *Service) AddFavorite(user, setPublicID string) (*models.UserSet, error) {
	if user == "" {
		return nil, apperr.Validationf("user is required")
	}

	set, err := s.GetSet(setPublicID)
	if err != nil {
		return nil, err
	}

	fav := models.UserSet{
		UserID: user,
		SetID:  set.ID,
	}
	if err := s.db.Create(&fav).Error; err != nil {
		return nil, apperr.Dependencyf("create favorite: %v", err)
	}
	fav.Set = set
	return &fav, nil
}

// ListFavorites returns the set projection for the user's favorites.
// Duplicate entries for the same set collapse to one.
func (s *Service) ListFavorites(user string) ([]models.Set, error) {
	favs := []models.UserSet{}
	if err := s.db.Preload("Set").Where("user_id = ?", user).Find(&favs).Error; err != nil {
		return nil, apperr.Dependencyf("list favorites of %s: %v", user, err)
	}

	sets := []models.Set{}
	seen := map[uint]bool{}
	for _, fav := range favs {
		if fav.Set == nil || seen[fav.SetID] {
			continue
		}
		seen[fav.SetID] = true
		sets = append(sets, *fav.Set)
	}
	return sets, nil
}

// clearFavorites deletes every favorite referencing the set. Deleting zero
// rows is a success, which keeps a retried cascade from failing on work a
// previous attempt already did.
func clearFavorites(tx *gorm.DB, setID uint) error {
	if err := tx.Where("set_id = ?", setID).Delete(&models.UserSet{}).Error; err != nil {
		return fmt.Errorf("delete favorites of set %d: %w", setID, err)
	}
	return nil
}
