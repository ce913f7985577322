package repositories

import (
	"gorm.io/gorm"

	"local-guide/models"
)

type IItemRepository interface {
	FindAllWithFavorites(userID *string) ([]models.ItemWithFavorites, error)
	FindById(itemID string) (*models.Item, error)
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

// FindAllWithFavorites returns every item ordered by name, joined with its
// favorite count and, when a caller identity is supplied, whether that
// caller has favorited it.
func (r *ItemRepository) FindAllWithFavorites(userID *string) ([]models.ItemWithFavorites, error) {
	var items []models.Item
	if err := r.db.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}

	type favoriteCount struct {
		ItemID string
		Total  int64
	}
	var counts []favoriteCount
	err := r.db.Model(&models.Favorite{}).
		Select("item_id, count(*) as total").
		Group("item_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	countByItem := make(map[string]int64, len(counts))
	for _, c := range counts {
		countByItem[c.ItemID] = c.Total
	}

	favoritedByCaller := make(map[string]bool)
	if userID != nil {
		var itemIDs []string
		err := r.db.Model(&models.Favorite{}).
			Where("user_id = ?", *userID).
			Pluck("item_id", &itemIDs).Error
		if err != nil {
			return nil, err
		}
		for _, id := range itemIDs {
			favoritedByCaller[id] = true
		}
	}

	results := make([]models.ItemWithFavorites, 0, len(items))
	for _, item := range items {
		results = append(results, models.ItemWithFavorites{
			Item:              item,
			FavoriteCount:     countByItem[item.ID],
			IsFavoritedByUser: favoritedByCaller[item.ID],
		})
	}
	return results, nil
}

func (r *ItemRepository) FindById(itemID string) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}
