package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeExec records every dispatched command so tests can assert on routing
// without wiring real stores.
type fakeExec struct {
	loggedIn bool
	calls    []string
	args     map[string][]string
}

func newFakeExec(loggedIn bool) *fakeExec {
	return &fakeExec{loggedIn: loggedIn, args: make(map[string][]string)}
}

func (f *fakeExec) record(name string, args ...string) {
	f.calls = append(f.calls, name)
	f.args[name] = args
}

func (f *fakeExec) isLoggedIn() bool                    { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error  { f.record("register"); return nil }
func (f *fakeExec) Login(ctx context.Context) error     { f.record("login"); return nil }
func (f *fakeExec) Logout(ctx context.Context) error    { f.record("logout"); return nil }
func (f *fakeExec) ShowProfile(ctx context.Context) error {
	f.record("profile")
	return nil
}
func (f *fakeExec) SetCoins(ctx context.Context, args []string) error {
	f.record("coins", args...)
	return nil
}
func (f *fakeExec) SetStreak(ctx context.Context, args []string) error {
	f.record("streak", args...)
	return nil
}
func (f *fakeExec) SetBoard(ctx context.Context, args []string) error {
	f.record("board", args...)
	return nil
}
func (f *fakeExec) CompleteProfile(ctx context.Context) error { f.record("complete"); return nil }
func (f *fakeExec) Theme(ctx context.Context, args []string) error {
	f.record("theme", args...)
	return nil
}
func (f *fakeExec) Topics(ctx context.Context, args []string) error {
	f.record("topics", args...)
	return nil
}
func (f *fakeExec) Achievements(ctx context.Context) error { f.record("achievements"); return nil }
func (f *fakeExec) Leaderboard(ctx context.Context, args []string) error {
	f.record("leaderboard", args...)
	return nil
}
func (f *fakeExec) Challenge(ctx context.Context) error { f.record("challenge"); return nil }
func (f *fakeExec) Packs(ctx context.Context) error     { f.record("packs"); return nil }

func runScript(t *testing.T, exec execIface, script string) string {
	t.Helper()
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner, &out)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantCall string
		wantArgs []string
	}{
		{"register", "register\n", "register", nil},
		{"login", "login\n", "login", nil},
		{"logout", "logout\n", "logout", nil},
		{"profile", "profile\n", "profile", nil},
		{"whoami alias", "whoami\n", "profile", nil},
		{"coins", "coins 250\n", "coins", []string{"250"}},
		{"streak", "streak 3 9\n", "streak", []string{"3", "9"}},
		{"board", "board State Board\n", "board", []string{"State", "Board"}},
		{"complete", "complete\n", "complete", nil},
		{"theme", "theme chai-spice\n", "theme", []string{"chai-spice"}},
		{"topics", "topics Physics waves\n", "topics", []string{"Physics", "waves"}},
		{"achievements", "achievements\n", "achievements", nil},
		{"leaderboard", "leaderboard monthly\n", "leaderboard", []string{"monthly"}},
		{"challenge", "challenge\n", "challenge", nil},
		{"packs", "packs\n", "packs", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := newFakeExec(true)
			runScript(t, exec, tt.script)

			assert.Equal(t, []string{tt.wantCall}, exec.calls)
			if tt.wantArgs != nil {
				assert.Equal(t, tt.wantArgs, exec.args[tt.wantCall])
			}
		})
	}
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	exec := newFakeExec(false)
	out := runScript(t, exec, "bogus\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Unknown command: bogus")
}

func TestRunREPL_BlankLinesAreSkipped(t *testing.T) {
	exec := newFakeExec(true)
	runScript(t, exec, "\n   \nprofile\n")

	assert.Equal(t, []string{"profile"}, exec.calls)
}

func TestRunREPL_ExitStopsLoop(t *testing.T) {
	exec := newFakeExec(true)
	out := runScript(t, exec, "exit\nprofile\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_HelpVariesByLoginState(t *testing.T) {
	loggedOut := runScript(t, newFakeExec(false), "help\n")
	assert.Contains(t, loggedOut, "register, login")
	assert.NotContains(t, loggedOut, "coins")

	loggedIn := runScript(t, newFakeExec(true), "help\n")
	assert.Contains(t, loggedIn, "coins <n>")
	assert.Contains(t, loggedIn, "logout")
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader("exit\n"))
	runREPL(context.Background(), newFakeExec(true), func() string { return "(arjun@prepwyse.in)" }, scanner, &out)

	assert.Contains(t, out.String(), "pw (arjun@prepwyse.in)> ")
}
