package models

// Course is the compact course snapshot embedded in cart items.
type Course struct {
	ID                int64            `json:"id"`
	Slug              string           `json:"slug"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Level             string           `json:"level"`
	Thumbnail         string           `json:"thumbnail,omitempty"`
	Instructor        CourseInstructor `json:"instructor"`
	Duration          string           `json:"duration"`
	DiscountedPrice   float64          `json:"discounted_price"`
	OriginalPrice     *float64         `json:"original_price"`
	AvgRating         float64          `json:"avg_rating,omitempty"`
	IsEnrolled        bool             `json:"is_enrolled"`
	OpenForEnrollment bool             `json:"open_for_enrollment"`
}

type CourseInstructor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CartItem struct {
	ID        int64  `json:"id"`
	Product   Course `json:"product"`
	Quantity  int64  `json:"quantity"`
	AddedAt   string `json:"added_at"`
	UpdatedAt string `json:"updated_at"`
}

// Cart is the server-owned cart snapshot. The client never mutates the item
// list locally; after every mutation the whole cart is refetched from the
// server of record.
type Cart struct {
	ID         int64      `json:"id"`
	User       int64      `json:"user"`
	Items      []CartItem `json:"items"`
	TotalItems int64      `json:"total_items"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

// Contains reports whether the cart holds an item for the given course id.
func (c *Cart) Contains(courseID int64) bool {
	if c == nil {
		return false
	}
	for _, item := range c.Items {
		if item.Product.ID == courseID {
			return true
		}
	}
	return false
}
