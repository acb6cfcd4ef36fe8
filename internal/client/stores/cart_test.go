package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localaddons/addons/internal/client/api"
	"github.com/localaddons/addons/internal/client/models"
	"github.com/localaddons/addons/internal/common"
)

func cartWith(items ...models.CartItem) *models.Cart {
	return &models.Cart{ID: 1, User: 1, Items: items, TotalItems: int64(len(items))}
}

func TestAddToCart_RequiresToken(t *testing.T) {
	ctx := context.Background()
	called := false
	client := &fakeClient{
		cartAddFn: func(ctx context.Context, token string, productID int64) error {
			called = true
			return nil
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken(""), testLogger())

	err := s.AddToCart(ctx, 5)
	assert.ErrorIs(t, err, common.ErrAuthRequired)
	assert.False(t, called, "no network call without a token")
}

func TestAddToCart_RefetchesAuthoritativeCart(t *testing.T) {
	ctx := context.Background()
	server := cartWith(models.CartItem{Product: models.Course{ID: 5, Title: "Go"}, Quantity: 1})
	client := &fakeClient{
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			return server, nil
		},
	}
	store := newMemStore()
	s := NewCartStore(ctx, client, store, staticToken("tok"), testLogger())

	require.NoError(t, s.AddToCart(ctx, 5))

	assert.True(t, s.IsInCart(5))
	assert.Equal(t, int64(1), s.TotalItems())
	assert.True(t, store.has(common.CartStorageKey))
	assert.Empty(t, s.Err())
	assert.False(t, s.IsLoading())
}

func TestAddToCart_FailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		cartAddFn: func(ctx context.Context, token string, productID int64) error {
			return common.ErrEnrollmentClosed
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken("tok"), testLogger())

	err := s.AddToCart(ctx, 5)
	assert.ErrorIs(t, err, common.ErrEnrollmentClosed)
	assert.NotEmpty(t, s.Err())
	assert.Nil(t, s.Cart())
}

func TestRemoveFromCart_Refetches(t *testing.T) {
	ctx := context.Background()
	var removed int64
	client := &fakeClient{
		cartRemoveFn: func(ctx context.Context, token string, productID int64) error {
			removed = productID
			return nil
		},
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			return cartWith(), nil
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken("tok"), testLogger())

	require.NoError(t, s.RemoveFromCart(ctx, 5))
	assert.Equal(t, int64(5), removed)
	assert.False(t, s.IsInCart(5))
}

func TestGetCart_NoTokenMeansNilCart(t *testing.T) {
	ctx := context.Background()
	called := false
	client := &fakeClient{
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			called = true
			return nil, nil
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken(""), testLogger())

	require.NoError(t, s.GetCart(ctx))
	assert.Nil(t, s.Cart())
	assert.False(t, called)
}

func TestGetCart_UnauthorizedIsNotAFailure(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			return nil, common.ErrUnauthorized
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken("tok"), testLogger())

	require.NoError(t, s.GetCart(ctx))
	assert.Nil(t, s.Cart())
	assert.Empty(t, s.Err())
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	cleared := false
	client := &fakeClient{
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			return cartWith(models.CartItem{Product: models.Course{ID: 5}, Quantity: 1}), nil
		},
		cartClearFn: func(ctx context.Context, token string) error {
			cleared = true
			return nil
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken("tok"), testLogger())
	require.NoError(t, s.GetCart(ctx))
	require.True(t, s.IsInCart(5))

	require.NoError(t, s.ClearCart(ctx))
	assert.True(t, cleared)
	assert.Nil(t, s.Cart())
}

func TestRehydrateCart(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.Set(ctx, common.CartStorageKey,
		[]byte(`{"cart":{"id":1,"items":[{"product":{"id":9,"title":"Go"},"quantity":1}],"total_items":1}}`)))

	s := NewCartStore(ctx, &fakeClient{}, store, staticToken("tok"), testLogger())

	assert.True(t, s.IsInCart(9))
	assert.Equal(t, int64(1), s.TotalItems())
}

func TestCheckout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	s := NewCartStore(ctx, &fakeClient{}, newMemStore(), staticToken("tok"), testLogger())

	_, err := s.Checkout(ctx, models.TierStandard)
	require.Error(t, err)
}

func TestCheckout_RequiresToken(t *testing.T) {
	ctx := context.Background()
	s := NewCartStore(ctx, &fakeClient{}, newMemStore(), staticToken(""), testLogger())

	_, err := s.Checkout(ctx, models.TierStandard)
	assert.ErrorIs(t, err, common.ErrAuthRequired)
}

func TestCheckout_BlockedByClosedEnrollment(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			return cartWith(
				models.CartItem{Product: models.Course{ID: 1, Title: "Open", OpenForEnrollment: true}, Quantity: 1},
				models.CartItem{Product: models.Course{ID: 2, Title: "Closed"}, Quantity: 1},
			), nil
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken("tok"), testLogger())
	require.NoError(t, s.GetCart(ctx))

	_, err := s.Checkout(ctx, models.TierStandard)
	var blocked *CheckoutBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, []string{"Closed"}, blocked.Titles)
}

func TestCheckout_AmountUsesTierPricing(t *testing.T) {
	ctx := context.Background()
	orig := 4999.0
	var gotAmount float64
	var gotMethod string
	client := &fakeClient{
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			return cartWith(models.CartItem{
				Product:  models.Course{ID: 1, Title: "Go", DiscountedPrice: 999, OriginalPrice: &orig, OpenForEnrollment: true},
				Quantity: 1,
			}), nil
		},
		checkoutFn: func(ctx context.Context, token string, amount float64, paymentMethod string) (*api.CheckoutResult, error) {
			gotAmount = amount
			gotMethod = paymentMethod
			return &api.CheckoutResult{PaymentURL: "https://pay.example.com/x"}, nil
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken("tok"), testLogger())
	require.NoError(t, s.GetCart(ctx))

	url, err := s.Checkout(ctx, models.TierInstitutional)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/x", url)
	assert.Equal(t, 999.0, gotAmount)
	assert.Equal(t, "razorpay", gotMethod)
}

func TestCheckout_MissingPaymentURL(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			return cartWith(models.CartItem{
				Product:  models.Course{ID: 1, Title: "Go", OpenForEnrollment: true},
				Quantity: 1,
			}), nil
		},
		checkoutFn: func(ctx context.Context, token string, amount float64, paymentMethod string) (*api.CheckoutResult, error) {
			return &api.CheckoutResult{}, nil
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken("tok"), testLogger())
	require.NoError(t, s.GetCart(ctx))

	_, err := s.Checkout(ctx, models.TierStandard)
	require.Error(t, err)
	assert.NotEmpty(t, s.Err())
}

func TestReset_DropsInMemoryCartOnly(t *testing.T) {
	ctx := context.Background()
	cleared := false
	client := &fakeClient{
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			return cartWith(models.CartItem{Product: models.Course{ID: 5}, Quantity: 1}), nil
		},
		cartClearFn: func(ctx context.Context, token string) error {
			cleared = true
			return nil
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken("tok"), testLogger())
	require.NoError(t, s.GetCart(ctx))

	s.Reset()
	assert.Nil(t, s.Cart())
	assert.False(t, cleared, "Reset must not call the server")
}

func TestCartFail_ErrClearedByNextAction(t *testing.T) {
	ctx := context.Background()
	failing := true
	client := &fakeClient{
		cartAddFn: func(ctx context.Context, token string, productID int64) error {
			if failing {
				return errors.New("boom")
			}
			return nil
		},
		cartFn: func(ctx context.Context, token string) (*models.Cart, error) {
			return cartWith(), nil
		},
	}
	s := NewCartStore(ctx, client, newMemStore(), staticToken("tok"), testLogger())

	require.Error(t, s.AddToCart(ctx, 1))
	assert.NotEmpty(t, s.Err())

	failing = false
	require.NoError(t, s.AddToCart(ctx, 1))
	assert.Empty(t, s.Err())
}
