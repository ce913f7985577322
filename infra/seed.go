package infra

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"local-guide/models"
)

// SeedItems bulk-loads the catalog from a JSON array of item records.
// Existing rows are updated in place; the derived rating column is left
// untouched so re-seeding never clobbers review aggregates.
func SeedItems(db *gorm.DB, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var items []models.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(items) == 0 {
		log.Printf("Seed file %s contains no items", path)
		return 0, nil
	}

	for i, item := range items {
		if item.ID == "" || item.Name == "" || item.Location == "" {
			return 0, fmt.Errorf("seed item %d is missing id, name or location", i)
		}
		if !validItemType(item.Type) {
			return 0, fmt.Errorf("seed item %q has unknown type %q", item.ID, item.Type)
		}
	}

	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "type", "description", "location", "photos",
			"reviews_or_advice", "price", "known_for", "opening_hours",
			"contact_info", "check_in_out", "historic_significance",
			"admission_fee", "getting_there", "amenities", "features",
			"updated_at",
		}),
	}).Create(&items).Error
	if err != nil {
		return 0, fmt.Errorf("seed items: %w", err)
	}

	log.Printf("Seeded %d catalog items from %s", len(items), path)
	return len(items), nil
}

// CleanupRatings resets the denormalized rating to null for items that
// have no reviews, so a stale seed value can never masquerade as an
// aggregate.
func CleanupRatings(db *gorm.DB) (int64, error) {
	result := db.Model(&models.Item{}).
		Where("rating IS NOT NULL").
		Where("id NOT IN (?)", db.Model(&models.Review{}).Select("item_id")).
		Update("rating", nil)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func validItemType(t string) bool {
	for _, known := range models.ItemTypes {
		if t == known {
			return true
		}
	}
	return false
}
