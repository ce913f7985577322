package models

import "time"

// Favorite marks an item as bookmarked by a user. The composite unique
// index is the only duplicate guard: inserts race against it directly
// instead of doing a check-then-insert.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;index;uniqueIndex:idx_favorite_user_item" json:"userId"`
	ItemID    string    `gorm:"not null;index;uniqueIndex:idx_favorite_user_item" json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`
}
