package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/prepwyse/prepwyse/internal/client/backend"
	"github.com/prepwyse/prepwyse/internal/client/config"
	"github.com/prepwyse/prepwyse/internal/client/prefs"
	"github.com/prepwyse/prepwyse/internal/client/repositories/kv"
	"github.com/prepwyse/prepwyse/internal/client/session"
	"github.com/prepwyse/prepwyse/internal/client/storage"
	"github.com/prepwyse/prepwyse/internal/logging"
)

// ANSI prompt colors per theme: the CLI's rendition of the root document
// class a browser build would toggle.
var themePrompts = map[prefs.Theme]string{
	prefs.ThemeEgyptianNight: "\033[34m",
	prefs.ThemeChaiSpice:     "\033[33m",
}

// App bundles everything the REPL needs: the two stores, input/output
// streams, and the current prompt color.
type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Store
	prefs   *prefs.Store

	reader      *bufio.Reader
	out         io.Writer
	promptColor string
}

// NewApp opens the local database, applies migrations, and wires the session
// and preference stores on top of it.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	repo := kv.NewSQLiteRepository(db)

	signingKey := []byte(c.SigningKey)
	authBackend := backend.NewDemoBackend(c.BackendLatency, signingKey, c.TokenValidity)

	app := &App{
		config: c,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	app.session = session.New(authBackend, repo, signingKey, log)
	app.prefs = prefs.New(repo, prefs.ApplierFunc(app.applyTheme), log)

	return app, nil
}

// applyTheme is the prefs.Applier hook: it swaps the prompt color.
func (a *App) applyTheme(theme prefs.Theme) {
	a.promptColor = themePrompts[theme]
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if p := a.session.Profile(); p != nil {
		return fmt.Sprintf("(%s)", p.Email)
	}
	return ""
}

// Run initializes both stores from persisted state and enters the REPL,
// blocking until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.prefs.Initialize(ctx); err != nil {
		fmt.Fprintf(a.out, "warning: theme preference unavailable: %v\n", err)
	}
	if err := a.session.Initialize(ctx); err != nil {
		fmt.Fprintf(a.out, "warning: saved session unavailable: %v\n", err)
	}
	if p := a.session.Profile(); p != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", p.DisplayName)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}
