package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"github.com/localaddons/addons/internal/client/api"
	"github.com/localaddons/addons/internal/client/config"
	"github.com/localaddons/addons/internal/client/storage"
	"github.com/localaddons/addons/internal/client/stores"
	"github.com/localaddons/addons/internal/logging"
)

// App wires config, the local state database, the API client and the stores
// together, and carries the I/O the REPL commands use.
type App struct {
	config *config.Config
	log    logging.Logger
	client api.Client

	auth      *stores.AuthStore
	cart      *stores.CartStore
	workshops *stores.WorkshopStore
	explore   *stores.ExploreStore
	modals    *stores.ModalStore

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	repo := storage.NewSQLiteRepository(db)
	client := api.New(c.APIBaseURL, c.RegistrationURL,
		api.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}))

	auth := stores.NewAuthStore(ctx, client, repo, log)
	cart := stores.NewCartStore(ctx, client, repo, auth, log)

	a := &App{
		config:    c,
		log:       log,
		client:    client,
		auth:      auth,
		cart:      cart,
		workshops: stores.NewWorkshopStore(client, auth, log),
		explore:   stores.NewExploreStore(client, log),
		modals:    stores.NewModalStore(),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	// The REPL is the modal surface: render whichever modal a command
	// opened as soon as it opens.
	a.modals.Subscribe(a.renderModal)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// renderModal prints the active modal. The store guarantees at most one is
// open; the REPL shows it once and dismisses it.
func (a *App) renderModal() {
	kind, data := a.modals.Active()
	if kind == stores.ModalNone {
		return
	}

	switch kind {
	case stores.ModalAuth:
		fmt.Fprintf(a.out, "[%s] Please log in to continue", kind)
		if data.CourseName != "" {
			fmt.Fprintf(a.out, " with %q", data.CourseName)
		}
		fmt.Fprintln(a.out)
	case stores.ModalEnrollment:
		fmt.Fprintf(a.out, "[%s] Apply for %q (use the 'apply' command)\n", kind, data.CourseName)
	case stores.ModalEnrollmentClosed:
		fmt.Fprintf(a.out, "[%s] Enrollment for %q is closed\n", kind, data.CourseName)
	case stores.ModalSuccess:
		fmt.Fprintf(a.out, "[%s] %s: %s\n", kind, data.Title, data.Message)
	case stores.ModalForgotPassword:
		fmt.Fprintf(a.out, "[%s] Use the 'forgot' command to reset your password\n", kind)
	}

	a.modals.Close()
}
