package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a single user's 1-5 star rating of an item, at most one per
// (user, item) pair. Reviews are never updated or deleted through the API.
type Review struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	UserID    string    `gorm:"not null;index;uniqueIndex:idx_review_user_item" json:"userId"`
	ItemID    string    `gorm:"not null;index;uniqueIndex:idx_review_user_item" json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
