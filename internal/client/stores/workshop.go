package stores

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/localaddons/addons/internal/client/api"
	"github.com/localaddons/addons/internal/client/models"
	"github.com/localaddons/addons/internal/common"
	"github.com/localaddons/addons/internal/logging"
)

// WorkshopStore is a read-only catalog cache: available workshops, the
// user's enrolled workshops, the currently viewed workshop, and the
// technology list. Each slice carries its own loading/error pair and follows
// the same fetch pattern: set loading, fetch, on success replace the slice
// and clear its error, on failure clear the slice and set a descriptive
// error, and always clear loading last.
type WorkshopStore struct {
	notifier
	api  api.Client
	auth TokenProvider
	log  logging.Logger

	mu sync.RWMutex

	workshops           []models.Workshop
	workshopsPagination *models.Pagination
	workshopsLoading    bool
	workshopsError      string

	enrolled           []models.Workshop
	enrolledPagination *models.Pagination
	enrolledLoading    bool
	enrolledError      string

	current        *models.Workshop
	currentLoading bool
	currentError   string

	technologies        []models.Technology
	technologiesLoading bool
	technologiesError   string
}

func NewWorkshopStore(client api.Client, auth TokenProvider, log logging.Logger) *WorkshopStore {
	return &WorkshopStore{api: client, auth: auth, log: log}
}

// describeError maps typed fetch failures to the human-readable messages the
// UI shows. forbidden and notFound are endpoint-specific.
func describeError(err error, forbidden, notFound string) string {
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		return "Authentication required. Please log in."
	case errors.Is(err, common.ErrNotFound):
		return notFound
	case errors.Is(err, common.ErrServerUnavailable):
		return "Server error. Please try again later."
	}
	var se *api.StatusError
	if errors.As(err, &se) && se.Code == http.StatusForbidden {
		return forbidden
	}
	return err.Error()
}

// FetchWorkshops loads the available-workshops page, optionally filtered by
// technology slug. The token is attached only when present; the catalog is
// public.
func (s *WorkshopStore) FetchWorkshops(ctx context.Context, technology string, page int) error {
	s.mu.Lock()
	s.workshopsLoading = true
	s.workshopsError = ""
	s.mu.Unlock()
	s.notify()

	resp, err := s.api.Workshops(ctx, s.auth.Token(), technology, page)

	s.mu.Lock()
	if err != nil {
		s.workshops = nil
		s.workshopsPagination = nil
		s.workshopsError = describeError(err,
			"Access denied. You may not have permission to view workshops.",
			"Workshops not found.")
	} else {
		s.workshops = resp.Results
		s.workshopsPagination = &models.Pagination{Count: resp.Count, Next: resp.Next, Previous: resp.Previous}
		s.workshopsError = ""
	}
	s.workshopsLoading = false
	s.mu.Unlock()

	s.notify()
	if err != nil {
		s.log.Error(ctx, "failed to fetch workshops", "error", err)
	}
	return err
}

// FetchTechnologies loads the technology list.
func (s *WorkshopStore) FetchTechnologies(ctx context.Context) error {
	s.mu.Lock()
	s.technologiesLoading = true
	s.technologiesError = ""
	s.mu.Unlock()
	s.notify()

	techs, err := s.api.Technologies(ctx)

	s.mu.Lock()
	if err != nil {
		s.technologies = nil
		s.technologiesError = describeError(err,
			"Access denied.",
			"Technologies not found.")
	} else {
		s.technologies = techs
		s.technologiesError = ""
	}
	s.technologiesLoading = false
	s.mu.Unlock()

	s.notify()
	return err
}

// FetchEnrolledWorkshops loads the authenticated user's enrollment list.
func (s *WorkshopStore) FetchEnrolledWorkshops(ctx context.Context, page int) error {
	s.mu.Lock()
	s.enrolledLoading = true
	s.enrolledError = ""
	s.mu.Unlock()
	s.notify()

	resp, err := s.api.EnrolledWorkshops(ctx, s.auth.Token(), page)

	s.mu.Lock()
	if err != nil {
		s.enrolled = nil
		s.enrolledPagination = nil
		s.enrolledError = describeError(err,
			"Access denied. You may not have permission to view enrolled workshops.",
			"Enrolled workshops not found.")
	} else {
		s.enrolled = resp.Results
		s.enrolledPagination = &models.Pagination{Count: resp.Count, Next: resp.Next, Previous: resp.Previous}
		s.enrolledError = ""
	}
	s.enrolledLoading = false
	s.mu.Unlock()

	s.notify()
	return err
}

// FetchWorkshopBySlug loads a single workshop by its stable slug.
func (s *WorkshopStore) FetchWorkshopBySlug(ctx context.Context, slug string) error {
	s.mu.Lock()
	s.currentLoading = true
	s.currentError = ""
	s.mu.Unlock()
	s.notify()

	w, err := s.api.WorkshopBySlug(ctx, s.auth.Token(), slug)

	s.mu.Lock()
	if err != nil {
		s.current = nil
		s.currentError = describeError(err,
			"Access denied. You may need to log in.",
			"Workshop \""+slug+"\" not found")
	} else {
		s.current = w
		s.currentError = ""
	}
	s.currentLoading = false
	s.mu.Unlock()

	s.notify()
	return err
}

// Enroll enrolls into a workshop and refreshes the enrollment list.
func (s *WorkshopStore) Enroll(ctx context.Context, workshopID int64) error {
	if err := s.api.Enroll(ctx, s.auth.Token(), workshopID); err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Code == http.StatusConflict {
			return errors.New("you are already enrolled in this workshop")
		}
		return err
	}
	return s.FetchEnrolledWorkshops(ctx, 0)
}

// Unenroll leaves a workshop and refreshes the enrollment list.
func (s *WorkshopStore) Unenroll(ctx context.Context, workshopID int64) error {
	if err := s.api.Unenroll(ctx, s.auth.Token(), workshopID); err != nil {
		return err
	}
	return s.FetchEnrolledWorkshops(ctx, 0)
}

func (s *WorkshopStore) Workshops() ([]models.Workshop, *models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workshops, s.workshopsPagination
}

func (s *WorkshopStore) Enrolled() ([]models.Workshop, *models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enrolled, s.enrolledPagination
}

func (s *WorkshopStore) Current() *models.Workshop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *WorkshopStore) Technologies() []models.Technology {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.technologies
}

// Errs returns the per-slice error messages, in the order workshops,
// enrolled, current, technologies.
func (s *WorkshopStore) Errs() (string, string, string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workshopsError, s.enrolledError, s.currentError, s.technologiesError
}

// Loading reports whether any slice is being fetched.
func (s *WorkshopStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workshopsLoading || s.enrolledLoading || s.currentLoading || s.technologiesLoading
}
