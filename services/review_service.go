package services

import (
	"local-guide/models"
	"local-guide/repositories"
)

type IReviewService interface {
	Submit(itemID string, userID string, rating int, comment string) (*models.Review, error)
	FindByItem(itemID string) ([]models.Review, error)
}

type ReviewService struct {
	repository repositories.IReviewRepository
}

func NewReviewService(repository repositories.IReviewRepository) IReviewService {
	return &ReviewService{repository: repository}
}

// Submit records a review and refreshes the item's mean rating; the two
// writes happen in one transaction inside the repository.
func (s *ReviewService) Submit(itemID string, userID string, rating int, comment string) (*models.Review, error) {
	review := models.Review{
		Rating:  rating,
		Comment: comment,
		UserID:  userID,
		ItemID:  itemID,
	}
	return s.repository.CreateWithRatingRecompute(review)
}

func (s *ReviewService) FindByItem(itemID string) ([]models.Review, error) {
	return s.repository.FindByItem(itemID)
}
