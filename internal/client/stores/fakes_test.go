package stores

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/localaddons/addons/internal/client/api"
	"github.com/localaddons/addons/internal/client/models"
	"github.com/localaddons/addons/internal/logging"
)

func strPtr(s string) *string { return &s }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memStore is a map-backed storage.Repository for tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	return nil
}

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// staticToken is a fixed TokenProvider.
type staticToken string

func (t staticToken) Token() string { return string(t) }

// fakeClient implements api.Client with per-method function fields; unset
// methods return zero values.
type fakeClient struct {
	loginFn         func(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
	registerFn      func(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error)
	updateProfileFn func(ctx context.Context, token string, data models.ProfileUpdate) (*models.User, error)
	changePassFn    func(ctx context.Context, token, newPassword, confirmPassword string) error
	initResetFn     func(ctx context.Context, email string) error
	completeResetFn func(ctx context.Context, resetToken, newPassword, confirmPassword string) error

	workshopsFn    func(ctx context.Context, token, technology string, page int) (*models.PaginatedWorkshops, error)
	workshopFn     func(ctx context.Context, token, slug string) (*models.Workshop, error)
	enrolledFn     func(ctx context.Context, token string, page int) (*models.PaginatedWorkshops, error)
	enrollFn       func(ctx context.Context, token string, workshopID int64) error
	unenrollFn     func(ctx context.Context, token string, workshopID int64) error
	technologiesFn func(ctx context.Context) ([]models.Technology, error)
	exploreFn      func(ctx context.Context) ([]models.ExploreCategory, error)

	cartFn       func(ctx context.Context, token string) (*models.Cart, error)
	cartAddFn    func(ctx context.Context, token string, productID int64) error
	cartRemoveFn func(ctx context.Context, token string, productID int64) error
	cartClearFn  func(ctx context.Context, token string) error
	checkoutFn   func(ctx context.Context, token string, amount float64, paymentMethod string) (*api.CheckoutResult, error)

	submitRegFn func(ctx context.Context, reg models.Registration) (int64, error)
}

func (f *fakeClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	if f.loginFn == nil {
		return nil, nil
	}
	return f.loginFn(ctx, creds)
}

func (f *fakeClient) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error) {
	if f.registerFn == nil {
		return nil, nil
	}
	return f.registerFn(ctx, creds)
}

func (f *fakeClient) UpdateProfile(ctx context.Context, token string, data models.ProfileUpdate) (*models.User, error) {
	if f.updateProfileFn == nil {
		return nil, nil
	}
	return f.updateProfileFn(ctx, token, data)
}

func (f *fakeClient) ChangePassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	if f.changePassFn == nil {
		return nil
	}
	return f.changePassFn(ctx, token, newPassword, confirmPassword)
}

func (f *fakeClient) InitiatePasswordReset(ctx context.Context, email string) error {
	if f.initResetFn == nil {
		return nil
	}
	return f.initResetFn(ctx, email)
}

func (f *fakeClient) CompletePasswordReset(ctx context.Context, resetToken, newPassword, confirmPassword string) error {
	if f.completeResetFn == nil {
		return nil
	}
	return f.completeResetFn(ctx, resetToken, newPassword, confirmPassword)
}

func (f *fakeClient) Workshops(ctx context.Context, token, technology string, page int) (*models.PaginatedWorkshops, error) {
	if f.workshopsFn == nil {
		return &models.PaginatedWorkshops{}, nil
	}
	return f.workshopsFn(ctx, token, technology, page)
}

func (f *fakeClient) WorkshopBySlug(ctx context.Context, token, slug string) (*models.Workshop, error) {
	if f.workshopFn == nil {
		return nil, nil
	}
	return f.workshopFn(ctx, token, slug)
}

func (f *fakeClient) EnrolledWorkshops(ctx context.Context, token string, page int) (*models.PaginatedWorkshops, error) {
	if f.enrolledFn == nil {
		return &models.PaginatedWorkshops{}, nil
	}
	return f.enrolledFn(ctx, token, page)
}

func (f *fakeClient) Enroll(ctx context.Context, token string, workshopID int64) error {
	if f.enrollFn == nil {
		return nil
	}
	return f.enrollFn(ctx, token, workshopID)
}

func (f *fakeClient) Unenroll(ctx context.Context, token string, workshopID int64) error {
	if f.unenrollFn == nil {
		return nil
	}
	return f.unenrollFn(ctx, token, workshopID)
}

func (f *fakeClient) Technologies(ctx context.Context) ([]models.Technology, error) {
	if f.technologiesFn == nil {
		return nil, nil
	}
	return f.technologiesFn(ctx)
}

func (f *fakeClient) Explore(ctx context.Context) ([]models.ExploreCategory, error) {
	if f.exploreFn == nil {
		return nil, nil
	}
	return f.exploreFn(ctx)
}

func (f *fakeClient) Cart(ctx context.Context, token string) (*models.Cart, error) {
	if f.cartFn == nil {
		return &models.Cart{}, nil
	}
	return f.cartFn(ctx, token)
}

func (f *fakeClient) CartAdd(ctx context.Context, token string, productID int64) error {
	if f.cartAddFn == nil {
		return nil
	}
	return f.cartAddFn(ctx, token, productID)
}

func (f *fakeClient) CartRemove(ctx context.Context, token string, productID int64) error {
	if f.cartRemoveFn == nil {
		return nil
	}
	return f.cartRemoveFn(ctx, token, productID)
}

func (f *fakeClient) CartClear(ctx context.Context, token string) error {
	if f.cartClearFn == nil {
		return nil
	}
	return f.cartClearFn(ctx, token)
}

func (f *fakeClient) Checkout(ctx context.Context, token string, amount float64, paymentMethod string) (*api.CheckoutResult, error) {
	if f.checkoutFn == nil {
		return &api.CheckoutResult{}, nil
	}
	return f.checkoutFn(ctx, token, amount, paymentMethod)
}

func (f *fakeClient) SubmitRegistration(ctx context.Context, reg models.Registration) (int64, error) {
	if f.submitRegFn == nil {
		return 0, nil
	}
	return f.submitRegFn(ctx, reg)
}
