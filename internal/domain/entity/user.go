// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account on the marketplace. Any user may open stores, buy, review and message.
type User struct {
	ID           string    `json:"id"`             // Generated UUID string.
	Username     string    `json:"username"`       // Globally unique handle.
	Email        string    `json:"email"`          // Globally unique login identifier.
	FullName     string    `json:"full_name"`      // Display name, copied onto reviews.
	Phone        *string   `json:"phone"`          // Optional contact number.
	Avatar       *string   `json:"avatar"`         // Data URL of the uploaded avatar, if any.
	IsStoreOwner bool      `json:"is_store_owner"` // Set once the user opens a store; never cleared.
	PasswordHash string    `json:"-"`              // bcrypt hash, never serialized outward.
	CreatedAt    time.Time `json:"created_at"`
}
