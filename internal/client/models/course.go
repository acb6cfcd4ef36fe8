package models

import "strings"

type CurriculumItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Highlights  string `json:"highlights"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
	Course      int64  `json:"course"`
}

type Rating struct {
	ID           int64   `json:"id"`
	UserAvatar   *string `json:"user_avatar"`
	UserName     *string `json:"user_name"`
	UserUsername string  `json:"user_username"`
	Rating       float64 `json:"rating"`
	Review       string  `json:"review"`
	IsVerified   bool    `json:"is_verified"`
}

type Instructor struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Technology struct {
	ID          int64   `json:"id"`
	Icon        *string `json:"icon"`
	Sector      string  `json:"sector"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	Description string  `json:"description"`
}

// Workshop is the full course overview returned by the catalog endpoints.
// The backend treats workshops as courses; the slug is the stable external
// identifier.
type Workshop struct {
	ID                int64            `json:"id"`
	Curriculum        []CurriculumItem `json:"curriculum"`
	Icon              *string          `json:"icon"`
	Ratings           []Rating         `json:"ratings"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Slug              string           `json:"slug"`
	DiscountedPrice   float64          `json:"discounted_price"`
	OriginalPrice     *float64         `json:"original_price"`
	Language          string           `json:"language"`
	Level             string           `json:"level"`
	Thumbnail         string           `json:"thumbnail"`
	Video             *string          `json:"video"`
	Duration          string           `json:"duration"`
	Prerequisites     string           `json:"prerequisites"`
	Objectives        string           `json:"objectives"`
	StudentCount      int64            `json:"student_count"`
	AvgRating         float64          `json:"avg_rating"`
	ReviewCount       int64            `json:"review_count"`
	Published         bool             `json:"published"`
	OpenForEnrollment bool             `json:"open_for_enrollment"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
	Instructor        Instructor       `json:"instructor"`
	Technologies      []Technology     `json:"technologies"`
	IsEnrolled        bool             `json:"is_enrolled"`
}

// HasValidVideo reports whether the workshop carries a non-empty intro video.
func (w *Workshop) HasValidVideo() bool {
	return w.Video != nil && strings.TrimSpace(*w.Video) != ""
}

// PaginatedWorkshops is the list envelope used by the catalog endpoints.
type PaginatedWorkshops struct {
	Count    int64      `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []Workshop `json:"results"`
}

// Pagination is the slice of the envelope the stores retain.
type Pagination struct {
	Count    int64
	Next     *string
	Previous *string
}
