package registrations

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/localaddons/addons/internal/common"
	"github.com/localaddons/addons/internal/logging"
)

// Input is an unvalidated registration submission.
type Input struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	Course       string `json:"course"`
	Year         string `json:"year"`
	WorkshopSlug string `json:"workshopSlug"`
}

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRe = regexp.MustCompile(`^\d{10,}$`)
)

// Service validates, sanitizes and stores registrations.
type Service struct {
	repo Repository
	log  logging.Logger
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// validate checks the submission fields. The returned error wraps
// common.ErrInvalidInput and names the first failing field.
func validate(in Input) error {
	switch {
	case len(strings.TrimSpace(in.Name)) < 2:
		return fmt.Errorf("%w: name", common.ErrInvalidInput)
	case !emailRe.MatchString(strings.TrimSpace(in.Email)):
		return fmt.Errorf("%w: email", common.ErrInvalidInput)
	case !mobileRe.MatchString(strings.TrimSpace(in.Mobile)):
		return fmt.Errorf("%w: mobile", common.ErrInvalidInput)
	case len(strings.TrimSpace(in.Course)) < 2:
		return fmt.Errorf("%w: course", common.ErrInvalidInput)
	case strings.TrimSpace(in.Year) == "":
		return fmt.Errorf("%w: year", common.ErrInvalidInput)
	}
	return nil
}

// sanitize trims all fields and lowercases the email.
func sanitize(in Input) Input {
	return Input{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Mobile:       strings.TrimSpace(in.Mobile),
		Course:       strings.TrimSpace(in.Course),
		Year:         strings.TrimSpace(in.Year),
		WorkshopSlug: strings.TrimSpace(in.WorkshopSlug),
	}
}

// Create validates and stores a registration, returning its id. A second
// registration for the same (email, workshop slug) pair fails with
// common.ErrAlreadyRegistered, via the pre-check or, under a race, via the
// unique key.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	if err := validate(in); err != nil {
		return 0, err
	}
	in = sanitize(in)

	reg := &Registration{
		Name:   in.Name,
		Email:  in.Email,
		Mobile: in.Mobile,
		Course: in.Course,
		Year:   in.Year,
	}
	if in.WorkshopSlug != "" {
		exists, err := s.repo.ExistsForWorkshop(ctx, in.Email, in.WorkshopSlug)
		if err != nil {
			return 0, err
		}
		if exists {
			return 0, common.ErrAlreadyRegistered
		}
		reg.WorkshopSlug = &in.WorkshopSlug
	}

	id, err := s.repo.Insert(ctx, reg)
	if err != nil {
		return 0, err
	}

	s.log.Info(ctx, "registration stored", "id", id, "workshop", in.WorkshopSlug)
	return id, nil
}

// List returns all registrations, newest first.
func (s *Service) List(ctx context.Context) ([]Registration, error) {
	return s.repo.List(ctx)
}
