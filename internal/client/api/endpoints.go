package api

import "fmt"

// endpoints builds request URLs from the API base. Paths mirror the backend
// v1 routes.
type endpoints struct {
	base string
}

func (e endpoints) login() string          { return e.base + "/v1/users/login/" }
func (e endpoints) register() string       { return e.base + "/v1/users/register/" }
func (e endpoints) profile() string        { return e.base + "/v1/users/@me/" }
func (e endpoints) changePassword() string { return e.base + "/v1/users/@me/change-password/" }
func (e endpoints) resetInitiate() string  { return e.base + "/v1/users/reset-password/initiate/" }
func (e endpoints) resetComplete() string  { return e.base + "/v1/users/reset-password/complete/" }
func (e endpoints) technologies() string   { return e.base + "/v1/technologies/" }
func (e endpoints) explore() string        { return e.base + "/v1/technologies/explore/" }
func (e endpoints) workshops() string      { return e.base + "/v1/courses/" }
func (e endpoints) enrolled() string       { return e.base + "/v1/courses/enrolled/" }
func (e endpoints) cart() string           { return e.base + "/v1/cart/" }
func (e endpoints) cartAdd() string        { return e.base + "/v1/cart/add/" }
func (e endpoints) cartRemove() string     { return e.base + "/v1/cart/remove/" }
func (e endpoints) cartClear() string      { return e.base + "/v1/cart/clear/" }
func (e endpoints) cartCheckout() string   { return e.base + "/v1/cart/checkout/" }

func (e endpoints) workshop(slug string) string {
	return fmt.Sprintf("%s/v1/courses/%s/", e.base, slug)
}

func (e endpoints) enroll(id int64) string {
	return fmt.Sprintf("%s/v1/courses/%d/enroll/", e.base, id)
}

func (e endpoints) unenroll(id int64) string {
	return fmt.Sprintf("%s/v1/courses/%d/unenroll/", e.base, id)
}
