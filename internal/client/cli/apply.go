package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/localaddons/addons/internal/client/models"
	"github.com/localaddons/addons/internal/common"
)

// Apply submits a workshop registration to the registration service. This
// flow is open to anonymous users; the service enforces one registration per
// email and workshop.
func (a *App) Apply(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	mobile, err := GetSimpleText(a.reader, "Mobile", a.out)
	if err != nil {
		return err
	}
	course, err := GetSimpleText(a.reader, "Course of study", a.out)
	if err != nil {
		return err
	}
	year, err := GetSimpleText(a.reader, "Year", a.out)
	if err != nil {
		return err
	}
	slug, err := GetSimpleText(a.reader, "Workshop slug (optional)", a.out)
	if err != nil {
		return err
	}

	reg := models.Registration{
		Name:         name,
		Email:        email,
		Mobile:       mobile,
		Course:       course,
		Year:         year,
		WorkshopSlug: slug,
	}

	id, err := a.client.SubmitRegistration(ctx, reg)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyRegistered) {
			fmt.Fprintln(a.out, "You are already registered for this workshop")
			return err
		}
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	a.modals.OpenSuccess("Registration submitted", fmt.Sprintf("Your registration id is %d", id))
	return nil
}
