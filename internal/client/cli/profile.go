package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/prepwyse/prepwyse/internal/client/session"
)

func (a *App) requireLogin() bool {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Please login first")
		return false
	}
	return true
}

// ShowProfile prints the active profile.
func (a *App) ShowProfile(ctx context.Context) error {
	p := a.session.Profile()
	if p == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", p.DisplayName, p.Email)
	fmt.Fprintf(a.out, "  role: %s  grade: %d  board: %s\n", p.Role, p.Grade, p.EducationBoard)
	fmt.Fprintf(a.out, "  plan: %s  coins: %d\n", p.SubscriptionTier, p.CoinBalance)
	fmt.Fprintf(a.out, "  streak: %d day(s), longest %d\n", p.StudyStreak.Current, p.StudyStreak.Longest)
	if !p.ProfileComplete {
		fmt.Fprintln(a.out, "  profile incomplete - run 'complete' once you have filled it in")
	}
	return nil
}

// SetCoins updates the coin balance: coins <n>
func (a *App) SetCoins(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: coins <n>")
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "not a number: %s\n", args[0])
		return err
	}

	if err := a.session.Update(ctx, session.SetCoinBalance(n)); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Coin balance is now %d\n", a.session.Profile().CoinBalance)
	return nil
}

// SetStreak updates both streak counters: streak <current> <longest>
func (a *App) SetStreak(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: streak <current> <longest>")
		return nil
	}

	current, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "not a number: %s\n", args[0])
		return err
	}
	longest, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(a.out, "not a number: %s\n", args[1])
		return err
	}

	if err := a.session.Update(ctx, session.SetStreak(current, longest)); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	s := a.session.Profile().StudyStreak
	fmt.Fprintf(a.out, "Streak is now %d day(s), longest %d\n", s.Current, s.Longest)
	return nil
}

// SetBoard updates the education board: board <name>
func (a *App) SetBoard(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: board <name>")
		return nil
	}

	board := strings.Join(args, " ")
	if err := a.session.Update(ctx, session.SetEducationBoard(board)); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Education board is now %s\n", board)
	return nil
}

// CompleteProfile marks onboarding as done.
func (a *App) CompleteProfile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	if err := a.session.Update(ctx, session.SetProfileComplete(true)); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Profile marked complete")
	return nil
}
