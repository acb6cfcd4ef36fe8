// Package registrations implements storage and business rules for workshop
// registrations: one registration per (email, workshop slug), field
// validation, newest-first listing.
package registrations

import "time"

type Registration struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	Course       string    `json:"course"`
	Year         string    `json:"year"`
	WorkshopSlug *string   `json:"workshop_slug"`
	CreatedAt    time.Time `json:"created_at"`
}
