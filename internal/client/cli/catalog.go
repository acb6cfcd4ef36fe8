package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/localaddons/addons/internal/client/models"
)

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id argument")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func (a *App) printWorkshopList(ws []models.Workshop, pg *models.Pagination) {
	for _, w := range ws {
		open := "closed"
		if w.OpenForEnrollment {
			open = "open"
		}
		fmt.Fprintf(a.out, "  #%d %s (%s) - %.0f [%s]\n", w.ID, w.Title, w.Slug, w.DiscountedPrice, open)
	}
	if pg != nil {
		fmt.Fprintf(a.out, "  total: %d\n", pg.Count)
	}
}

// Workshops lists the catalog, optionally filtered: workshops [technology] [page].
func (a *App) Workshops(ctx context.Context, args []string) error {
	technology := ""
	page := 0
	if len(args) > 0 {
		technology = args[0]
	}
	if len(args) > 1 {
		page, _ = strconv.Atoi(args[1])
	}

	if err := a.workshops.FetchWorkshops(ctx, technology, page); err != nil {
		msg, _, _, _ := a.workshops.Errs()
		fmt.Fprintln(a.out, msg)
		return err
	}

	ws, pg := a.workshops.Workshops()
	a.printWorkshopList(ws, pg)
	return nil
}

// Workshop shows one workshop by slug.
func (a *App) Workshop(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "usage: workshop <slug>")
		return nil
	}

	if err := a.workshops.FetchWorkshopBySlug(ctx, args[0]); err != nil {
		_, _, msg, _ := a.workshops.Errs()
		fmt.Fprintln(a.out, msg)
		return err
	}

	w := a.workshops.Current()
	fmt.Fprintf(a.out, "#%d %s\n%s\nLevel: %s  Duration: %s  Rating: %.1f (%d reviews)\n",
		w.ID, w.Title, w.Description, w.Level, w.Duration, w.AvgRating, w.ReviewCount)
	fmt.Fprintf(a.out, "Price: %.0f", w.DiscountedPrice)
	if w.OriginalPrice != nil {
		fmt.Fprintf(a.out, " (list %.0f)", *w.OriginalPrice)
	}
	fmt.Fprintln(a.out)
	if w.HasValidVideo() {
		fmt.Fprintf(a.out, "Intro video: %s\n", *w.Video)
	}
	if !w.OpenForEnrollment {
		fmt.Fprintln(a.out, "Enrollment is currently closed")
	}
	for _, item := range w.Curriculum {
		fmt.Fprintf(a.out, "  - %s (%d min)\n", item.Title, item.Duration)
	}
	return nil
}

func (a *App) Enrolled(ctx context.Context) error {
	if err := a.workshops.FetchEnrolledWorkshops(ctx, 0); err != nil {
		_, msg, _, _ := a.workshops.Errs()
		fmt.Fprintln(a.out, msg)
		return err
	}
	ws, pg := a.workshops.Enrolled()
	a.printWorkshopList(ws, pg)
	return nil
}

func (a *App) Enroll(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if err := a.workshops.Enroll(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Enroll failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Enrolled")
	return nil
}

func (a *App) Unenroll(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if err := a.workshops.Unenroll(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Unenroll failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Unenrolled")
	return nil
}

// Explore fetches the category tree and lists the (unfiltered) course set.
func (a *App) Explore(ctx context.Context) error {
	if err := a.explore.FetchExploreData(ctx); err != nil {
		fmt.Fprintln(a.out, a.explore.Err())
		return err
	}

	fmt.Fprintf(a.out, "Sectors: %v\n", a.explore.Sectors())
	a.printExploreCourses(a.explore.FilteredCourses())
	return nil
}

// Filter applies technology/sector filters: filter [technology] [sector].
// With no arguments the filters are cleared.
func (a *App) Filter(ctx context.Context, args []string) error {
	technology := ""
	sector := ""
	if len(args) > 0 {
		technology = args[0]
	}
	if len(args) > 1 {
		sector = args[1]
	}

	a.explore.SetSelectedTechnology(technology)
	a.explore.SetSelectedSector(sector)
	a.printExploreCourses(a.explore.FilteredCourses())
	return nil
}

func (a *App) printExploreCourses(courses []models.ExploreCourse) {
	if len(courses) == 0 {
		fmt.Fprintln(a.out, "  no courses match")
		return
	}
	for _, c := range courses {
		fmt.Fprintf(a.out, "  #%d %s (%s) - %.0f\n    %s\n",
			c.ID, c.Title, c.Slug, c.DiscountedPrice, models.CourseDescription(&c))
	}
}
