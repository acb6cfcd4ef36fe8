package stores

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/localaddons/addons/internal/client/api"
	"github.com/localaddons/addons/internal/client/models"
	"github.com/localaddons/addons/internal/client/storage"
	"github.com/localaddons/addons/internal/common"
	"github.com/localaddons/addons/internal/logging"
)

// persistedCart is the durable subset of the cart store's state; loading and
// error fields are transient.
type persistedCart struct {
	Cart *models.Cart `json:"cart"`
}

// CheckoutBlockedError reports cart items whose enrollment window has
// closed; they must be removed before checkout can proceed.
type CheckoutBlockedError struct {
	Titles []string
}

func (e *CheckoutBlockedError) Error() string {
	return "courses not available for enrollment: " + strings.Join(e.Titles, ", ")
}

// CartStore is the server-backed shopping cart. Consistency strategy: never
// trust a local optimistic update: after every successful mutation the
// whole cart is refetched from the server of record. Overlapping mutations
// are not mutually excluded; the last refetch to resolve wins.
type CartStore struct {
	notifier
	api   api.Client
	store storage.Repository
	auth  TokenProvider
	log   logging.Logger

	mu        sync.RWMutex
	cart      *models.Cart
	isLoading bool
	lastError string
}

func NewCartStore(ctx context.Context, client api.Client, store storage.Repository, auth TokenProvider, log logging.Logger) *CartStore {
	s := &CartStore{api: client, store: store, auth: auth, log: log}
	s.rehydrate(ctx)
	return s
}

func (s *CartStore) rehydrate(ctx context.Context) {
	data, err := s.store.Get(ctx, common.CartStorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to load persisted cart state", "error", err)
		return
	}
	if data == nil {
		return
	}

	var p persistedCart
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn(ctx, "discarding corrupt persisted cart state", "error", err)
		_ = s.store.Delete(ctx, common.CartStorageKey)
		return
	}

	s.mu.Lock()
	s.cart = p.Cart
	s.mu.Unlock()
}

func (s *CartStore) persist(ctx context.Context) {
	s.mu.RLock()
	p := persistedCart{Cart: s.cart}
	s.mu.RUnlock()

	data, err := json.Marshal(p)
	if err != nil {
		s.log.Error(ctx, "failed to encode cart state", "error", err)
		return
	}
	if err := s.store.Set(ctx, common.CartStorageKey, data); err != nil {
		s.log.Error(ctx, "failed to persist cart state", "error", err)
	}
}

// AddToCart adds a course and refetches the authoritative cart. Fails with
// ErrAuthRequired before any network call when no token is present. Domain
// failures surface as common.ErrEnrollmentClosed / ErrEnrollmentNotActive so
// callers can open the matching modal.
func (s *CartStore) AddToCart(ctx context.Context, courseID int64) error {
	token := s.auth.Token()
	if token == "" {
		return common.ErrAuthRequired
	}

	s.begin()
	defer s.finish()

	if err := s.api.CartAdd(ctx, token, courseID); err != nil {
		s.fail(ctx, err, "failed to add to cart")
		return err
	}
	return s.refetch(ctx, token)
}

// RemoveFromCart deletes by course id and refetches the authoritative cart.
func (s *CartStore) RemoveFromCart(ctx context.Context, courseID int64) error {
	token := s.auth.Token()
	if token == "" {
		return common.ErrAuthRequired
	}

	s.begin()
	defer s.finish()

	if err := s.api.CartRemove(ctx, token, courseID); err != nil {
		s.fail(ctx, err, "failed to remove from cart")
		return err
	}
	return s.refetch(ctx, token)
}

// ClearCart deletes the server-side cart. The local cart is set to nil
// directly: empty is terminal, so no refetch is needed.
func (s *CartStore) ClearCart(ctx context.Context) error {
	token := s.auth.Token()
	if token == "" {
		s.setCart(ctx, nil)
		return nil
	}

	s.begin()
	defer s.finish()

	if err := s.api.CartClear(ctx, token); err != nil {
		s.fail(ctx, err, "failed to clear cart")
		return err
	}
	s.setCart(ctx, nil)
	return nil
}

// GetCart fetches the cart. Without a token the cart is nil and no network
// call is made. A 401 is treated as "no cart" rather than a hard failure:
// the session may have lapsed server-side without the client noticing yet.
func (s *CartStore) GetCart(ctx context.Context) error {
	token := s.auth.Token()
	if token == "" {
		s.setCart(ctx, nil)
		return nil
	}

	s.begin()
	defer s.finish()
	return s.refetch(ctx, token)
}

// refetch replaces local state with the server's cart. Shared by GetCart and
// the trailing refetch of every mutation.
func (s *CartStore) refetch(ctx context.Context, token string) error {
	cart, err := s.api.Cart(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.setCart(ctx, nil)
			return nil
		}
		s.fail(ctx, err, "failed to fetch cart")
		return err
	}
	s.setCart(ctx, cart)
	return nil
}

// Reset drops the in-memory cart without touching the server. Used on
// logout, after the persisted snapshot has already been removed.
func (s *CartStore) Reset() {
	s.mu.Lock()
	s.cart = nil
	s.lastError = ""
	s.mu.Unlock()
	s.notify()
}

// Checkout initiates payment for the whole cart. Every item must be open for
// enrollment; the amount is computed once with the canonical pricing rule
// for the given tier. Returns the payment URL to follow.
func (s *CartStore) Checkout(ctx context.Context, tier models.PriceTier) (string, error) {
	token := s.auth.Token()
	if token == "" {
		return "", common.ErrAuthRequired
	}

	s.mu.RLock()
	cart := s.cart
	s.mu.RUnlock()

	if cart == nil || len(cart.Items) == 0 {
		return "", errors.New("cart is empty")
	}

	var blocked []string
	for _, item := range cart.Items {
		if !item.Product.OpenForEnrollment {
			blocked = append(blocked, item.Product.Title)
		}
	}
	if len(blocked) > 0 {
		return "", &CheckoutBlockedError{Titles: blocked}
	}

	s.begin()
	defer s.finish()

	result, err := s.api.Checkout(ctx, token, cart.TotalPrice(tier), "razorpay")
	if err != nil {
		s.fail(ctx, err, "checkout failed")
		return "", err
	}
	if result.PaymentURL == "" {
		err := errors.New("no payment URL received from server")
		s.fail(ctx, err, "checkout failed")
		return "", err
	}
	return result.PaymentURL, nil
}

// IsInCart reports whether some cart item carries the course id. False for a
// nil cart.
func (s *CartStore) IsInCart(courseID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Contains(courseID)
}

// TotalItems returns the server-reported item count; it is not recomputed
// client-side.
func (s *CartStore) TotalItems() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.TotalItems
}

// TotalPrice reduces over item price × quantity with the canonical pricing
// rule for the tier.
func (s *CartStore) TotalPrice(tier models.PriceTier) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.TotalPrice(tier)
}

// Cart returns the current cart snapshot (may be nil).
func (s *CartStore) Cart() *models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart
}

func (s *CartStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// Err returns the message of the last failed action, or "" after a
// successful one.
func (s *CartStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *CartStore) begin() {
	s.mu.Lock()
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()
	s.notify()
}

func (s *CartStore) finish() {
	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
	s.notify()
}

func (s *CartStore) fail(ctx context.Context, err error, msg string) {
	s.log.Error(ctx, msg, "error", err)
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
	s.notify()
}

func (s *CartStore) setCart(ctx context.Context, cart *models.Cart) {
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
	s.persist(ctx)
	s.notify()
}
