package entity

import "time"

// Store is a shop owned by exactly one user.
// Rating and ReviewsCount are derived from the store's reviews and are only written by the review flow.
type Store struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Logo         *string   `json:"logo"`
	CoverImage   *string   `json:"cover_image"`
	OwnerID      string    `json:"owner_id"`
	Rating       float64   `json:"rating"`        // round(mean(review ratings), 1); 0 without reviews.
	ReviewsCount int       `json:"reviews_count"` // Number of reviews for this store.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether userID owns the store.
func (s *Store) IsOwnedBy(userID string) bool {
	return s != nil && s.OwnerID == userID
}

// NearbyStore is a store annotated with its great-circle distance from a query point.
type NearbyStore struct {
	*Store
	DistanceKm float64 `json:"distance_km"`
}
