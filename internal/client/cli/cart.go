package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/localaddons/addons/internal/client/stores"
	"github.com/localaddons/addons/internal/common"
)

func (a *App) Cart(ctx context.Context) error {
	if err := a.cart.GetCart(ctx); err != nil {
		fmt.Fprintf(a.out, "Failed to fetch cart: %s\n", err)
		return err
	}

	cart := a.cart.Cart()
	if cart == nil || len(cart.Items) == 0 {
		fmt.Fprintln(a.out, "Cart is empty")
		return nil
	}

	tier := a.auth.PriceTier()
	for _, item := range cart.Items {
		fmt.Fprintf(a.out, "  #%d %s ×%d - %.0f\n",
			item.Product.ID, item.Product.Title, item.Quantity, item.Product.EffectivePrice(tier))
	}
	fmt.Fprintf(a.out, "  items: %d  total: %.0f\n", a.cart.TotalItems(), a.cart.TotalPrice(tier))
	return nil
}

// Add puts a course in the cart. Domain failures open the matching modal
// instead of printing a generic error.
func (a *App) Add(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	err = a.cart.AddToCart(ctx, id)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Added to cart")
		return nil
	case errors.Is(err, common.ErrAuthRequired):
		a.modals.OpenAuth(stores.ModalData{CourseID: id})
		return err
	case errors.Is(err, common.ErrEnrollmentClosed):
		a.modals.OpenEnrollmentClosed(stores.ModalData{CourseID: id, CourseName: courseTitle(a, id)})
		return err
	case errors.Is(err, common.ErrEnrollmentNotActive):
		fmt.Fprintln(a.out, "Enrollment is not active for this course")
		return err
	default:
		fmt.Fprintf(a.out, "Failed to add to cart: %s\n", err)
		return err
	}
}

// courseTitle resolves a course id to its title from whatever catalog data
// is already cached; "" when unknown.
func courseTitle(a *App, id int64) string {
	ws, _ := a.workshops.Workshops()
	for _, w := range ws {
		if w.ID == id {
			return w.Title
		}
	}
	if w := a.workshops.Current(); w != nil && w.ID == id {
		return w.Title
	}
	return ""
}

func (a *App) Remove(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := a.cart.RemoveFromCart(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Failed to remove from cart: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Removed from cart")
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	if err := a.cart.ClearCart(ctx); err != nil {
		fmt.Fprintf(a.out, "Failed to clear cart: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Cart cleared")
	return nil
}

func (a *App) Checkout(ctx context.Context) error {
	url, err := a.cart.Checkout(ctx, a.auth.PriceTier())
	if err != nil {
		var blocked *stores.CheckoutBlockedError
		if errors.As(err, &blocked) {
			fmt.Fprintf(a.out, "Remove these courses before checking out: %v\n", blocked.Titles)
			return err
		}
		fmt.Fprintf(a.out, "Checkout failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Complete your payment at: %s\n", url)
	return nil
}
