package stores

import (
	"context"
	"strings"
	"sync"

	"github.com/localaddons/addons/internal/client/api"
	"github.com/localaddons/addons/internal/client/models"
	"github.com/localaddons/addons/internal/logging"
)

// ExploreStore caches the explore catalog (courses grouped by technology
// category) and filters it client-side by technology slug and sector. The
// filtered result is a pure derivation of the cached data plus the two
// selections, recomputed on every change.
type ExploreStore struct {
	notifier
	api api.Client
	log logging.Logger

	mu sync.RWMutex

	categories []models.ExploreCategory
	loading    bool
	lastError  string

	selectedTechnology string
	selectedSector     string

	filtered []models.ExploreCourse
	sectors  []string
}

func NewExploreStore(client api.Client, log logging.Logger) *ExploreStore {
	return &ExploreStore{api: client, log: log}
}

// FetchExploreData loads the category tree and recomputes derived state.
func (s *ExploreStore) FetchExploreData(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
	s.notify()

	categories, err := s.api.Explore(ctx)

	s.mu.Lock()
	if err != nil {
		s.categories = nil
		s.filtered = nil
		s.sectors = nil
		s.lastError = describeError(err, "Access denied.", "Explore data not found.")
	} else {
		s.categories = categories
		s.sectors = distinctSectors(categories)
		s.filtered = s.filterLocked()
		s.lastError = ""
	}
	s.loading = false
	s.mu.Unlock()

	s.notify()
	if err != nil {
		s.log.Error(ctx, "failed to fetch explore data", "error", err)
	}
	return err
}

// SetSelectedTechnology sets the technology-slug filter ("" clears it) and
// recomputes the filtered courses.
func (s *ExploreStore) SetSelectedTechnology(slug string) {
	s.mu.Lock()
	s.selectedTechnology = slug
	s.filtered = s.filterLocked()
	s.mu.Unlock()
	s.notify()
}

// SetSelectedSector sets the sector filter ("" clears it) and recomputes the
// filtered courses.
func (s *ExploreStore) SetSelectedSector(sector string) {
	s.mu.Lock()
	s.selectedSector = sector
	s.filtered = s.filterLocked()
	s.mu.Unlock()
	s.notify()
}

// filterLocked derives the filtered course set: categories matching the
// selected technology slug (exact) and sector (case-insensitive substring),
// flattened and de-duplicated by course id. A course under two matching
// categories appears once; course identity is stable, so last-write-wins on
// the value is fine.
func (s *ExploreStore) filterLocked() []models.ExploreCourse {
	if len(s.categories) == 0 {
		return nil
	}

	seen := make(map[int64]int)
	var result []models.ExploreCourse

	for _, category := range s.categories {
		if s.selectedTechnology != "" && category.Slug != s.selectedTechnology {
			continue
		}
		if s.selectedSector != "" &&
			!strings.Contains(strings.ToLower(s.selectedSector), strings.ToLower(category.Sector)) {
			continue
		}
		for _, course := range category.Courses {
			if idx, ok := seen[course.ID]; ok {
				result[idx] = course
				continue
			}
			seen[course.ID] = len(result)
			result = append(result, course)
		}
	}
	return result
}

func distinctSectors(categories []models.ExploreCategory) []string {
	seen := make(map[string]struct{})
	var sectors []string
	for _, c := range categories {
		sector := strings.TrimSpace(c.Sector)
		if sector == "" {
			continue
		}
		if _, ok := seen[sector]; ok {
			continue
		}
		seen[sector] = struct{}{}
		sectors = append(sectors, sector)
	}
	return sectors
}

func (s *ExploreStore) Categories() []models.ExploreCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// FilteredCourses returns the current derivation.
func (s *ExploreStore) FilteredCourses() []models.ExploreCourse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered
}

// Sectors lists the distinct sectors present in the fetched data.
func (s *ExploreStore) Sectors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sectors
}

func (s *ExploreStore) Selected() (technology, sector string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedTechnology, s.selectedSector
}

func (s *ExploreStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ExploreStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}
