package entity

import (
	"math"
	"time"
)

// Review is a rating left by a user on a store. At most one per (store, user).
type Review struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"` // Author's full name at the time of writing.
	Rating    int       `json:"rating"`    // 1..5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary aggregates every review rating of a store.
type RatingSummary struct {
	Sum   int
	Count int
}

// Average returns the mean rating rounded to one decimal place, or 0 when there are no reviews.
func (r RatingSummary) Average() float64 {
	if r.Count == 0 {
		return 0
	}

	avg := float64(r.Sum) / float64(r.Count)

	return math.Round(avg*10) / 10
}
