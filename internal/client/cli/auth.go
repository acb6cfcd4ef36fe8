package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/localaddons/addons/internal/client/api"
	"github.com/localaddons/addons/internal/client/models"
)

// printValidation renders field-keyed validation messages the way a form
// would: one line per field.
func (a *App) printValidation(ve *api.ValidationError) {
	for field, msg := range ve.Fields {
		fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
	}
}

func (a *App) reportErr(err error, action string) {
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintf(a.out, "%s failed:\n", action)
		a.printValidation(ve)
		return
	}
	fmt.Fprintf(a.out, "%s failed: %s\n", action, err)
}

func (a *App) Login(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Enter email or mobile", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	creds := models.LoginCredentials{Password: password}
	if strings.Contains(identifier, "@") {
		creds.Email = identifier
	} else {
		creds.Mobile = identifier
	}

	if err := a.auth.Login(ctx, creds); err != nil {
		a.reportErr(err, "Login")
		return err
	}

	fmt.Fprintln(a.out, "Login successful")

	// Reconcile the rehydrated cart against the server now that we have a
	// session.
	_ = a.cart.GetCart(ctx)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	mobile, err := GetSimpleText(a.reader, "Enter mobile", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Choose a password")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	creds := models.RegisterCredentials{
		Username:        username,
		Email:           email,
		Mobile:          mobile,
		Password:        password,
		ConfirmPassword: confirm,
	}

	if err := a.auth.Register(ctx, creds); err != nil {
		a.reportErr(err, "Registration")
		return err
	}

	fmt.Fprintln(a.out, "Registration successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.cart.Reset()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	u := a.auth.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "Username: %s\nEmail: %s\nMobile: %s\n", u.Username, u.Email, u.Mobile)
	if u.Name != nil {
		fmt.Fprintf(a.out, "Name: %s\n", *u.Name)
	}
	if u.Bio != nil {
		fmt.Fprintf(a.out, "Bio: %s\n", *u.Bio)
	}
	return nil
}

func (a *App) EditProfile(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return err
	}
	bio, err := GetSimpleText(a.reader, "Bio", a.out)
	if err != nil {
		return err
	}

	data := models.ProfileUpdate{Username: username, Name: name, Bio: bio}
	if err := a.auth.UpdateProfile(ctx, data); err != nil {
		a.reportErr(err, "Profile update")
		return err
	}

	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

func (a *App) Password(ctx context.Context) error {
	newPassword, err := GetPassword(a.out, "New password")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	if err := a.auth.UpdatePassword(ctx, newPassword, confirm); err != nil {
		a.reportErr(err, "Password update")
		return err
	}

	fmt.Fprintln(a.out, "Password updated")
	return nil
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter account email", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.InitiatePasswordReset(ctx, email); err != nil {
		a.reportErr(err, "Password reset")
		return err
	}

	a.modals.OpenSuccess("Reset initiated", "Check your inbox for the reset token")
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	token, err := GetSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}
	newPassword, err := GetPassword(a.out, "New password")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	if err := a.auth.CompletePasswordReset(ctx, token, newPassword, confirm); err != nil {
		a.reportErr(err, "Password reset")
		return err
	}

	a.modals.OpenSuccess("Password reset", "You can now log in with your new password")
	return nil
}
