package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/prepwyse/prepwyse/internal/client/catalog"
)

// Topics lists syllabus topics for the active profile's grade:
// topics <subject> [query]
func (a *App) Topics(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: topics <subject> [query]")
		fmt.Fprint(a.out, "Subjects:")
		for _, s := range catalog.SubjectsForGrade(a.session.Profile().Grade) {
			fmt.Fprintf(a.out, " %q", s.Name)
		}
		fmt.Fprintln(a.out)
		return nil
	}

	grade := a.session.Profile().Grade
	subject := args[0]
	query := strings.Join(args[1:], " ")

	topics := catalog.FilterTopics(grade, subject, query)
	if len(topics) == 0 {
		fmt.Fprintln(a.out, "No topics found")
		return nil
	}

	fmt.Fprintf(a.out, "%s (grade %d):\n", subject, grade)
	for i, topic := range topics {
		fmt.Fprintf(a.out, "  %2d. %s\n", i+1, topic)
	}
	return nil
}

// Achievements prints the badge grid with unlock state.
func (a *App) Achievements(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	for _, ach := range catalog.Achievements("") {
		state := "locked"
		if ach.Unlocked() {
			state = "unlocked " + ach.UnlockedAt
		}
		fmt.Fprintf(a.out, "%s %-20s %-45s [%d/%d] %s\n",
			ach.Icon, ach.Title, ach.Description, ach.Progress, ach.Requirement, state)
	}
	return nil
}

// Leaderboard prints a ranked board: leaderboard [weekly|monthly]
func (a *App) Leaderboard(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	period := catalog.PeriodWeekly
	if len(args) > 0 {
		period = catalog.LeaderboardPeriod(args[0])
	}

	for _, e := range catalog.LeaderboardFor(period) {
		marker := "  "
		if e.IsCurrentUser {
			marker = "->"
		}
		fmt.Fprintf(a.out, "%s %2d. %-15s %6d XP  %d-day streak\n", marker, e.Rank, e.Name, e.XP, e.Streak)
	}
	return nil
}

// Challenge prints today's daily challenge card.
func (a *App) Challenge(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	c := catalog.TodaysChallenge()
	fmt.Fprintf(a.out, "%s - %s\n", c.Title, c.Description)
	fmt.Fprintf(a.out, "  progress %d/%d, reward %d coins + %d XP, expires %s\n",
		c.Progress, c.Target, c.RewardCoins, c.RewardXP, c.ExpiresAt)
	return nil
}

// Packs prints the coin purchase table. Purchasing is simulated elsewhere;
// the CLI only shows the offer.
func (a *App) Packs(ctx context.Context) error {
	for _, p := range catalog.CoinPacks() {
		tag := ""
		if p.Popular {
			tag = " (popular)"
		}
		fmt.Fprintf(a.out, "%s: %d coins for Rs %d, %s%s\n", p.ID, p.Coins, p.PriceRs, p.Label, tag)
	}
	return nil
}
