package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepwyse/prepwyse/internal/client/backend"
	"github.com/prepwyse/prepwyse/internal/client/prefs"
	"github.com/prepwyse/prepwyse/internal/client/repositories/kv"
	"github.com/prepwyse/prepwyse/internal/client/session"
	"github.com/prepwyse/prepwyse/internal/client/storage"
	"github.com/prepwyse/prepwyse/internal/logging"
)

// newTestApp wires a real App over an in-memory database and a zero-latency
// demo backend. Input comes from the script, output goes to the returned
// buffer.
func newTestApp(t *testing.T, script string) (*App, *bytes.Buffer) {
	t.Helper()

	dsn := fmt.Sprintf("file:cliapp_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := storage.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	repo := kv.NewSQLiteRepository(db)
	signingKey := []byte("cli-test-key")
	authBackend := backend.NewDemoBackend(0, signingKey, time.Hour)

	var out bytes.Buffer
	app := &App{
		db:     db,
		reader: bufio.NewReader(strings.NewReader(script)),
		out:    &out,
	}
	app.session = session.New(authBackend, repo, signingKey, log)
	app.prefs = prefs.New(repo, prefs.ApplierFunc(app.applyTheme), log)
	return app, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte(pw), nil }
}

func TestApp_LoginThenProfile(t *testing.T) {
	app, out := newTestApp(t, "arjun@prepwyse.in\n")
	stubPassword(t, "whatever")
	ctx := context.Background()

	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome, Arjun Sharma!")

	require.NoError(t, app.ShowProfile(ctx))
	assert.Contains(t, out.String(), "Arjun Sharma <arjun@prepwyse.in>")
	assert.Contains(t, out.String(), "coins: 100")
}

func TestApp_LoginRejectsEmptyCredentials(t *testing.T) {
	app, out := newTestApp(t, "\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	err := app.Login(ctx)
	assert.Error(t, err)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "invalid email or password")
}

func TestApp_RegisterValidationErrorsArePrinted(t *testing.T) {
	// Email is malformed and password is too short.
	app, out := newTestApp(t, "not-an-email\nPriya\nstudent\n")
	stubPassword(t, "short")
	ctx := context.Background()

	err := app.Register(ctx)
	assert.Error(t, err)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "valid email")
}

func TestApp_LogoutWhenNotLoggedIn(t *testing.T) {
	app, out := newTestApp(t, "")
	require.NoError(t, app.Logout(context.Background()))
	assert.Contains(t, out.String(), "Not logged in")
}

func TestApp_CoinsUpdateRoundTrip(t *testing.T) {
	app, out := newTestApp(t, "arjun@prepwyse.in\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, app.Login(ctx))
	require.NoError(t, app.SetCoins(ctx, []string{"250"}))

	assert.Contains(t, out.String(), "Coin balance is now 250")
	assert.Equal(t, 250, app.session.Profile().CoinBalance)
}

func TestApp_CommandsRequireLogin(t *testing.T) {
	app, out := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.SetCoins(ctx, []string{"10"}))
	require.NoError(t, app.Topics(ctx, []string{"Physics"}))
	require.NoError(t, app.Achievements(ctx))

	assert.Contains(t, out.String(), "Please login first")
	assert.Nil(t, app.session.Profile())
}

func TestApp_ThemeSwitchUpdatesPrompt(t *testing.T) {
	app, out := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.prefs.Initialize(ctx))
	assert.Equal(t, themePrompts[prefs.ThemeEgyptianNight], app.promptColor)

	require.NoError(t, app.Theme(ctx, []string{"chai-spice"}))
	assert.Equal(t, themePrompts[prefs.ThemeChaiSpice], app.promptColor)
	assert.Contains(t, out.String(), "Theme is now chai-spice")
}

func TestApp_ThemeUnknownNameIsRejected(t *testing.T) {
	app, out := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.prefs.Initialize(ctx))
	require.NoError(t, app.Theme(ctx, []string{"neon-dawn"}))

	assert.Contains(t, out.String(), "Unknown theme: neon-dawn")
	assert.Equal(t, prefs.DefaultTheme, app.prefs.Theme())
}

func TestApp_StatusShowsEmailWhenLoggedIn(t *testing.T) {
	app, _ := newTestApp(t, "arjun@prepwyse.in\n")
	stubPassword(t, "pw")

	assert.Equal(t, "", app.getStatus())
	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "(arjun@prepwyse.in)", app.getStatus())
}
