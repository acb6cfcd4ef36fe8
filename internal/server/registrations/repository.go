package registrations

import "context"

type Repository interface {
	// Insert stores a registration and returns its generated id.
	Insert(ctx context.Context, r *Registration) (int64, error)
	// ExistsForWorkshop reports whether the email already registered for the
	// workshop slug.
	ExistsForWorkshop(ctx context.Context, email, workshopSlug string) (bool, error)
	// List returns all registrations, newest first.
	List(ctx context.Context) ([]Registration, error)
}
