package repositories

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"local-guide/models"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrDuplicateReview = errors.New("duplicate review")
)

type IReviewRepository interface {
	CreateWithRatingRecompute(review models.Review) (*models.Review, error)
	FindByItem(itemID string) ([]models.Review, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) IReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateWithRatingRecompute inserts the review and recomputes the item's
// denormalized mean rating in one transaction. Any failure rolls the whole
// thing back, so a review can never exist without the matching aggregate.
func (r *ReviewRepository) CreateWithRatingRecompute(review models.Review) (*models.Review, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, "id = ?", review.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		var existing int64
		err := tx.Model(&models.Review{}).
			Where("user_id = ? AND item_id = ?", review.UserID, review.ItemID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateReview
		}

		if err := tx.Create(&review).Error; err != nil {
			if IsDuplicateKey(err) {
				return ErrDuplicateReview
			}
			return err
		}

		var ratings []int
		err = tx.Model(&models.Review{}).
			Where("item_id = ?", review.ItemID).
			Pluck("rating", &ratings).Error
		if err != nil {
			return err
		}

		rating := averageRating(ratings)
		return tx.Model(&models.Item{}).
			Where("id = ?", review.ItemID).
			Update("rating", rating).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) FindByItem(itemID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("item_id = ?", itemID).Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// averageRating renders the mean rounded to one decimal place, or nil when
// there are no ratings at all.
func averageRating(ratings []int) *string {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	rounded := math.Round(mean*10) / 10
	formatted := fmt.Sprintf("%.1f", rounded)
	return &formatted
}
