package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	SetCoins(ctx context.Context, args []string) error
	SetStreak(ctx context.Context, args []string) error
	SetBoard(ctx context.Context, args []string) error
	CompleteProfile(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	Topics(ctx context.Context, args []string) error
	Achievements(ctx context.Context) error
	Leaderboard(ctx context.Context, args []string) error
	Challenge(ctx context.Context) error
	Packs(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PrepWyse CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "pw %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: profile, coins <n>, streak <current> <longest>, board <name>, complete, theme [name], topics <subject> [query], achievements, leaderboard [weekly|monthly], challenge, packs, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, theme [name], exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile", "whoami":
			_ = a.ShowProfile(ctx)

		case "coins":
			_ = a.SetCoins(ctx, args)

		case "streak":
			_ = a.SetStreak(ctx, args)

		case "board":
			_ = a.SetBoard(ctx, args)

		case "complete":
			_ = a.CompleteProfile(ctx)

		case "theme":
			_ = a.Theme(ctx, args)

		case "topics":
			_ = a.Topics(ctx, args)

		case "achievements":
			_ = a.Achievements(ctx)

		case "leaderboard":
			_ = a.Leaderboard(ctx, args)

		case "challenge":
			_ = a.Challenge(ctx)

		case "packs":
			_ = a.Packs(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
