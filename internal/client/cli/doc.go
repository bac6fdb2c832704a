// Package cli provides the interactive PrepWyse command-line client.
//
// It wires configuration, local storage, the auth backend, and the session
// and preference stores into an interactive REPL. The REPL is a thin
// consumer: it formats state and forwards user actions to the stores, which
// own all mutation and persistence.
//
// Key commands:
//   - login / register / logout - session lifecycle
//   - profile, coins, streak, board, complete - view and update the profile
//   - theme - view or switch the UI theme
//   - topics, achievements, leaderboard, challenge, packs - catalog views
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
