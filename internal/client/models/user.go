// Package models defines the wire shapes consumed from the LocalAddons
// backend API, plus a few derivations shared by the store layer.
package models

// User is the account profile as returned by the backend. It is replaced
// wholesale on login/register/profile-update and cleared on logout.
type User struct {
	ID             int64   `json:"id"`
	Avatar         *string `json:"avatar"`
	Username       string  `json:"username"`
	Name           *string `json:"name"`
	Email          string  `json:"email"`
	Bio            *string `json:"bio"`
	Mobile         string  `json:"mobile"`
	EmailVerified  bool    `json:"email_verified"`
	MobileVerified bool    `json:"mobile_verified"`
	IsActive       bool    `json:"is_active"`
	UserType       string  `json:"user_type"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// Token carries the opaque bearer token with an embedded expiry claim.
type Token struct {
	AccessToken string `json:"access_token"`
}

// AuthResponse is the body of a successful login/register call.
type AuthResponse struct {
	User  User  `json:"user"`
	Token Token `json:"token"`
}

// LoginCredentials identify a user by email or mobile. Empty fields are
// omitted from the request payload.
type LoginCredentials struct {
	Email    string `json:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Password string `json:"password"`
}

// RegisterCredentials are the account-creation payload.
type RegisterCredentials struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"cnf_password"`
	CaptchaToken    string `json:"captcha_token,omitempty"`
	Course          string `json:"course,omitempty"`
	Year            string `json:"year,omitempty"`
}

// ProfileUpdate is the PATCH payload for the profile endpoint.
type ProfileUpdate struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
}
