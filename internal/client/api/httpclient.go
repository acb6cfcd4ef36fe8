package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/localaddons/addons/internal/client/models"
	"github.com/localaddons/addons/internal/common"
)

const defaultTimeout = 12 * time.Second

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	ep      endpoints
	regBase string
	http    *http.Client
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client (used in tests and for
// custom transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// New constructs an HTTPClient. baseURL is the backend API root (".../api");
// registrationURL is the root of the registration service.
func New(baseURL, registrationURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		ep:      endpoints{base: baseURL},
		regBase: registrationURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs a JSON request. A non-nil in is encoded as the body; a non-nil
// out receives the decoded 2xx response body. Non-2xx statuses are mapped
// via mapStatus.
func (c *HTTPClient) do(ctx context.Context, method, rawURL, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// mapStatus turns a non-2xx response into a typed error. 400 bodies are
// first tried as a field-to-messages map (the backend's validation shape).
func mapStatus(code int, body []byte) error {
	switch {
	case code == http.StatusBadRequest:
		if ve := parseValidationBody(body); ve != nil {
			return ve
		}
		return &StatusError{Code: code, Message: parseMessage(body)}
	case code == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case code == http.StatusNotFound:
		return common.ErrNotFound
	case code >= 500:
		return common.ErrServerUnavailable
	default:
		return &StatusError{Code: code, Message: parseMessage(body)}
	}
}

// parseValidationBody decodes a field-to-messages map, keeping the first
// message per field. Returns nil when the body is not in that shape.
func parseValidationBody(body []byte) *ValidationError {
	var raw map[string][]string
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}
	fields := make(map[string]string, len(raw))
	for field, messages := range raw {
		if len(messages) > 0 {
			fields[field] = messages[0]
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func parseMessage(body []byte) string {
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}

func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.ep.login(), "", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.ep.register(), "", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, data models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPatch, c.ep.profile(), token, data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	payload := map[string]string{
		"new_password":     newPassword,
		"confirm_password": confirmPassword,
	}
	return c.do(ctx, http.MethodPost, c.ep.changePassword(), token, payload, nil)
}

func (c *HTTPClient) InitiatePasswordReset(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, c.ep.resetInitiate(), "", payload, nil)
}

func (c *HTTPClient) CompletePasswordReset(ctx context.Context, resetToken, newPassword, confirmPassword string) error {
	payload := map[string]string{
		"token":            resetToken,
		"new_password":     newPassword,
		"confirm_password": confirmPassword,
	}
	return c.do(ctx, http.MethodPost, c.ep.resetComplete(), "", payload, nil)
}

func (c *HTTPClient) Workshops(ctx context.Context, token, technology string, page int) (*models.PaginatedWorkshops, error) {
	u := c.ep.workshops()
	params := url.Values{}
	if technology != "" {
		params.Set("technology", technology)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var resp models.PaginatedWorkshops
	if err := c.do(ctx, http.MethodGet, u, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) WorkshopBySlug(ctx context.Context, token, slug string) (*models.Workshop, error) {
	var w models.Workshop
	if err := c.do(ctx, http.MethodGet, c.ep.workshop(slug), token, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *HTTPClient) EnrolledWorkshops(ctx context.Context, token string, page int) (*models.PaginatedWorkshops, error) {
	u := c.ep.enrolled()
	if page > 1 {
		u += "?page=" + strconv.Itoa(page)
	}

	var resp models.PaginatedWorkshops
	if err := c.do(ctx, http.MethodGet, u, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Enroll(ctx context.Context, token string, workshopID int64) error {
	return c.do(ctx, http.MethodPost, c.ep.enroll(workshopID), token, nil, nil)
}

func (c *HTTPClient) Unenroll(ctx context.Context, token string, workshopID int64) error {
	return c.do(ctx, http.MethodDelete, c.ep.unenroll(workshopID), token, nil, nil)
}

func (c *HTTPClient) Technologies(ctx context.Context) ([]models.Technology, error) {
	var techs []models.Technology
	if err := c.do(ctx, http.MethodGet, c.ep.technologies(), "", nil, &techs); err != nil {
		return nil, err
	}
	return techs, nil
}

func (c *HTTPClient) Explore(ctx context.Context) ([]models.ExploreCategory, error) {
	var categories []models.ExploreCategory
	if err := c.do(ctx, http.MethodGet, c.ep.explore(), "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) Cart(ctx context.Context, token string) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, c.ep.cart(), token, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// enrollmentClosedMessage is the backend's message for an add-to-cart attempt
// on a course whose enrollment window has closed.
const enrollmentClosedMessage = "Enrollment for this course is closed"

func (c *HTTPClient) CartAdd(ctx context.Context, token string, productID int64) error {
	payload := map[string]int64{"product_id": productID}
	err := c.do(ctx, http.MethodPost, c.ep.cartAdd(), token, payload, nil)
	if err == nil {
		return nil
	}

	// Translate the backend's domain signals into sentinels once, here,
	// so no caller ever matches on message strings.
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusBadRequest && se.Message == enrollmentClosedMessage {
		return common.ErrEnrollmentClosed
	}
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrEnrollmentNotActive
	}
	return err
}

func (c *HTTPClient) CartRemove(ctx context.Context, token string, productID int64) error {
	payload := map[string]int64{"product_id": productID}
	return c.do(ctx, http.MethodDelete, c.ep.cartRemove(), token, payload, nil)
}

func (c *HTTPClient) CartClear(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, c.ep.cartClear(), token, nil, nil)
}

func (c *HTTPClient) Checkout(ctx context.Context, token string, amount float64, paymentMethod string) (*CheckoutResult, error) {
	payload := map[string]any{
		"amount":         amount,
		"payment_method": paymentMethod,
	}
	var result CheckoutResult
	if err := c.do(ctx, http.MethodPost, c.ep.cartCheckout(), token, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) SubmitRegistration(ctx context.Context, reg models.Registration) (int64, error) {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, c.regBase+"/api/registrations", "", reg, &resp)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusConflict {
			return 0, common.ErrAlreadyRegistered
		}
		return 0, err
	}
	return resp.ID, nil
}
