package entity

import "time"

// Service is a bookable offering of a store. Unlike products it has no like mechanism.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    *string   `json:"duration"` // Free-form, e.g. "2 hours".
	Category    string    `json:"category"`
	Image       *string   `json:"image"`
	StoreID     string    `json:"store_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
