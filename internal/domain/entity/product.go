package entity

import (
	"slices"
	"time"
)

// Product is an item sold by a store.
// Likes always equals len(LikedBy); both are maintained together by the like/unlike flow.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	StoreID     string    `json:"store_id"`
	Likes       int       `json:"likes"`
	LikedBy     []string  `json:"liked_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsLikedBy reports whether userID is in the product's liker set.
func (p *Product) IsLikedBy(userID string) bool {
	return slices.Contains(p.LikedBy, userID)
}
