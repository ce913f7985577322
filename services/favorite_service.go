package services

import (
	"log"

	"local-guide/repositories"
)

// Broadcaster pushes favorite-count changes to connected clients. The
// realtime hub implements it; tests substitute a fake.
type Broadcaster interface {
	BroadcastFavoritesUpdated(itemID string, newCount int64)
}

type IFavoriteService interface {
	Add(itemID string, userID string) error
	Remove(itemID string, userID string) error
}

type FavoriteService struct {
	repository  repositories.IFavoriteRepository
	broadcaster Broadcaster
}

func NewFavoriteService(repository repositories.IFavoriteRepository, broadcaster Broadcaster) IFavoriteService {
	return &FavoriteService{repository: repository, broadcaster: broadcaster}
}

// Add favorites the item for the user. Duplicates surface as
// repositories.ErrAlreadyFavorited straight from the unique constraint.
// The broadcast count is read after the insert committed, so clients never
// see a count the store doesn't hold.
func (s *FavoriteService) Add(itemID string, userID string) error {
	if err := s.repository.Create(userID, itemID); err != nil {
		return err
	}
	s.publishCount(itemID)
	return nil
}

// Remove unfavorites the item. Removing an absent favorite succeeds; the
// count is re-published either way.
func (s *FavoriteService) Remove(itemID string, userID string) error {
	if err := s.repository.Delete(userID, itemID); err != nil {
		return err
	}
	s.publishCount(itemID)
	return nil
}

func (s *FavoriteService) publishCount(itemID string) {
	count, err := s.repository.CountByItem(itemID)
	if err != nil {
		log.Printf("Failed to count favorites for item %s: %v", itemID, err)
		return
	}
	s.broadcaster.BroadcastFavoritesUpdated(itemID, count)
}
