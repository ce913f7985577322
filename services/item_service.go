package services

import (
	"local-guide/models"
	"local-guide/repositories"
)

type IItemService interface {
	FindAllWithFavorites(userID *string) ([]models.ItemWithFavorites, error)
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAllWithFavorites(userID *string) ([]models.ItemWithFavorites, error) {
	return s.repository.FindAllWithFavorites(userID)
}
