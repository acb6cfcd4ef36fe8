package models

// Registration is the payload submitted to the workshop registration
// service. WorkshopSlug is optional; when set, the service enforces at most
// one registration per (email, workshop slug) pair.
type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	Course       string `json:"course"`
	Year         string `json:"year"`
	WorkshopSlug string `json:"workshopSlug,omitempty"`
}
