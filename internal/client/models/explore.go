package models

import "strings"

// ExploreCourse is the compact course card returned by the explore endpoint.
type ExploreCourse struct {
	ID                int64        `json:"id"`
	Slug              string       `json:"slug"`
	Title             string       `json:"title"`
	Thumbnail         string       `json:"thumbnail"`
	DiscountedPrice   float64      `json:"discounted_price"`
	Icon              *string      `json:"icon"`
	Level             string       `json:"level"`
	StudentCount      int64        `json:"student_count"`
	AvgRating         float64      `json:"avg_rating"`
	ReviewCount       int64        `json:"review_count"`
	OpenForEnrollment bool         `json:"open_for_enrollment"`
	Duration          string       `json:"duration"`
	OriginalPrice     *float64     `json:"original_price"`
	Description       *string      `json:"description,omitempty"`
	ShortDescription  *string      `json:"short_description,omitempty"`
	FullDescription   *string      `json:"full_description,omitempty"`
	Technologies      []Technology `json:"technologies,omitempty"`
	IsEnrolled        bool         `json:"is_enrolled,omitempty"`
}

// ExploreCategory groups courses by technology. A course may appear under
// multiple categories.
type ExploreCategory struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Sector      string          `json:"sector"`
	Description string          `json:"description"`
	Icon        *string         `json:"icon"`
	Courses     []ExploreCourse `json:"courses"`
}

const maxCardDescriptionLen = 150

// CourseDescription returns the best available description for a course
// card, in priority order full > description > short, truncated for card
// display, with a technology-based fallback when none is set.
func CourseDescription(c *ExploreCourse) string {
	for _, d := range []*string{c.FullDescription, c.Description, c.ShortDescription} {
		if d == nil {
			continue
		}
		s := strings.TrimSpace(*d)
		if s == "" {
			continue
		}
		if len(s) > maxCardDescriptionLen {
			return s[:maxCardDescriptionLen] + "..."
		}
		return s
	}

	names := make([]string, 0, 2)
	for _, t := range c.Technologies {
		names = append(names, t.Name)
		if len(names) == 2 {
			break
		}
	}
	if len(names) > 0 {
		return "Learn the fundamentals and advanced concepts of " + strings.Join(names, " and ") +
			". Build practical projects and gain hands-on experience."
	}
	return "Learn the fundamentals and advanced concepts of this technology. " +
		"Build practical projects and gain hands-on experience."
}
