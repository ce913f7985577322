package models

import "time"

// ItemTypes is the fixed set of place categories the catalog accepts.
var ItemTypes = []string{
	"restaurant",
	"cafe",
	"hotel",
	"bed & breakfast",
	"3-star hotel",
	"5-star hotel",
	"bar",
	"park",
	"church/monastery",
	"museum",
	"train station",
	"bridge",
	"famous person",
	"movie/theatre",
	"market",
}

// Item is a single catalog entry. IDs are supplied by the seed dataset,
// not generated. Rating is derived from reviews: always
// round(mean(rating), 1) rendered with one decimal, nil when the item has
// no reviews. Only the rating aggregator writes it.
type Item struct {
	ID                   string    `gorm:"primaryKey" json:"id"`
	Name                 string    `gorm:"size:256;not null" json:"name"`
	Type                 string    `gorm:"not null" json:"type"`
	Description          string    `json:"description,omitempty"`
	Location             string    `gorm:"not null" json:"location"`
	Photos               []string  `gorm:"serializer:json" json:"photos"`
	ReviewsOrAdvice      string    `json:"reviewsOrAdvice,omitempty"`
	Rating               *string   `gorm:"size:4" json:"rating"`
	Price                string    `gorm:"size:50" json:"price,omitempty"`
	KnownFor             string    `json:"knownFor,omitempty"`
	OpeningHours         string    `json:"openingHours,omitempty"`
	ContactInfo          string    `json:"contactInfo,omitempty"`
	CheckInOut           string    `json:"checkInOut,omitempty"`
	HistoricSignificance string    `json:"historicSignificance,omitempty"`
	AdmissionFee         string    `json:"admissionFee,omitempty"`
	GettingThere         string    `json:"gettingThere,omitempty"`
	Amenities            []string  `gorm:"serializer:json" json:"amenities,omitempty"`
	Features             []string  `gorm:"serializer:json" json:"features,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`

	Reviews []Review `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

// ItemWithFavorites is the list-endpoint projection: the item columns plus
// the aggregate favorite count and, for authenticated callers, whether the
// caller has favorited it.
type ItemWithFavorites struct {
	Item
	FavoriteCount     int64 `json:"favoriteCount"`
	IsFavoritedByUser bool  `json:"isFavoritedByUser"`
}
