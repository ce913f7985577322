package repositories

import (
	"errors"

	"gorm.io/gorm"

	"local-guide/models"
)

var ErrAlreadyFavorited = errors.New("already favorited")

type IFavoriteRepository interface {
	Create(userID string, itemID string) error
	Delete(userID string, itemID string) error
	CountByItem(itemID string) (int64, error)
}

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) IFavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts the (user, item) pair and lets the unique index reject
// duplicates. No existence pre-check: that would race against concurrent
// inserts of the same pair.
func (r *FavoriteRepository) Create(userID string, itemID string) error {
	favorite := models.Favorite{UserID: userID, ItemID: itemID}
	if err := r.db.Create(&favorite).Error; err != nil {
		if IsDuplicateKey(err) {
			return ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

// Delete removes the pair if present. Deleting an absent favorite is not
// an error.
func (r *FavoriteRepository) Delete(userID string, itemID string) error {
	return r.db.
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.Favorite{}).Error
}

func (r *FavoriteRepository) CountByItem(itemID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("item_id = ?", itemID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
