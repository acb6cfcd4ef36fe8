// Package api implements the HTTP client for the LocalAddons backend REST
// API and the workshop registration service. All calls are JSON over HTTP
// with bearer-token authorization where required; responses are decoded into
// the shapes in internal/client/models and failures are mapped to typed
// errors (see errors.go).
package api

import (
	"context"

	"github.com/localaddons/addons/internal/client/models"
)

// Client is the remote API surface the store layer depends on.
//
// The token is passed per call: stores own session state, the client owns
// transport. Methods that take a token require it to be non-empty; checking
// for its presence before calling is the caller's job.
type Client interface {
	// Auth.
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error)
	UpdateProfile(ctx context.Context, token string, data models.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, token, newPassword, confirmPassword string) error
	InitiatePasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, resetToken, newPassword, confirmPassword string) error

	// Catalog.
	Workshops(ctx context.Context, token, technology string, page int) (*models.PaginatedWorkshops, error)
	WorkshopBySlug(ctx context.Context, token, slug string) (*models.Workshop, error)
	EnrolledWorkshops(ctx context.Context, token string, page int) (*models.PaginatedWorkshops, error)
	Enroll(ctx context.Context, token string, workshopID int64) error
	Unenroll(ctx context.Context, token string, workshopID int64) error
	Technologies(ctx context.Context) ([]models.Technology, error)
	Explore(ctx context.Context) ([]models.ExploreCategory, error)

	// Cart.
	Cart(ctx context.Context, token string) (*models.Cart, error)
	CartAdd(ctx context.Context, token string, productID int64) error
	CartRemove(ctx context.Context, token string, productID int64) error
	CartClear(ctx context.Context, token string) error
	Checkout(ctx context.Context, token string, amount float64, paymentMethod string) (*CheckoutResult, error)

	// Registration service.
	SubmitRegistration(ctx context.Context, reg models.Registration) (int64, error)
}

// CheckoutResult is the response to a checkout initiation. The backend owns
// the payment flow; the client only follows PaymentURL.
type CheckoutResult struct {
	PaymentURL string `json:"payment_url"`
	OrderID    string `json:"order_id,omitempty"`
}
