package catalog

import "sort"

// AchievementCategory groups achievements in the grid view.
type AchievementCategory string

const (
	CategoryStreak  AchievementCategory = "streak"
	CategoryQuiz    AchievementCategory = "quiz"
	CategoryMastery AchievementCategory = "mastery"
	CategorySocial  AchievementCategory = "social"
	CategorySpecial AchievementCategory = "special"
)

// Achievement is one badge in the gamification grid. UnlockedAt is empty
// while the badge is still locked.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    AchievementCategory
	Requirement int
	Progress    int
	UnlockedAt  string
}

// Unlocked reports whether the badge has been earned.
func (a Achievement) Unlocked() bool { return a.UnlockedAt != "" }

// DailyChallenge is today's rotating challenge card.
type DailyChallenge struct {
	ID          string
	Title       string
	Description string
	Target      int
	Progress    int
	RewardCoins int
	RewardXP    int
	ExpiresAt   string
	Completed   bool
}

// LeaderboardEntry is one row of a leaderboard.
type LeaderboardEntry struct {
	Rank          int
	ID            string
	Name          string
	XP            int
	Streak        int
	IsCurrentUser bool
}

// LeaderboardPeriod selects which board to show.
type LeaderboardPeriod string

const (
	PeriodWeekly  LeaderboardPeriod = "weekly"
	PeriodMonthly LeaderboardPeriod = "monthly"
)

var achievements = []Achievement{
	{ID: "1", Title: "First Steps", Description: "Complete your first quiz", Icon: "🎯", Category: CategoryQuiz, Requirement: 1, Progress: 1, UnlockedAt: "2024-11-15"},
	{ID: "2", Title: "Quiz Enthusiast", Description: "Complete 10 quizzes", Icon: "📝", Category: CategoryQuiz, Requirement: 10, Progress: 10, UnlockedAt: "2024-12-01"},
	{ID: "3", Title: "Century Maker", Description: "Complete 100 quizzes", Icon: "💯", Category: CategoryQuiz, Requirement: 100, Progress: 45},
	{ID: "4", Title: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥", Category: CategoryStreak, Requirement: 7, Progress: 7, UnlockedAt: "2024-12-10"},
	{ID: "5", Title: "Fortnight Fighter", Description: "Maintain a 14-day streak", Icon: "⚡", Category: CategoryStreak, Requirement: 14, Progress: 12},
	{ID: "6", Title: "Month Master", Description: "Maintain a 30-day streak", Icon: "🏆", Category: CategoryStreak, Requirement: 30, Progress: 12},
	{ID: "7", Title: "Perfect Score", Description: "Score 100% on any quiz", Icon: "⭐", Category: CategoryQuiz, Requirement: 1, Progress: 1, UnlockedAt: "2024-12-05"},
	{ID: "8", Title: "Subject Expert", Description: "Master all topics in a subject", Icon: "🎓", Category: CategoryMastery, Requirement: 1, Progress: 0},
	{ID: "9", Title: "Social Learner", Description: "Join a study group", Icon: "👥", Category: CategorySocial, Requirement: 1, Progress: 0},
	{ID: "10", Title: "Challenge Champion", Description: "Complete 10 daily challenges", Icon: "🏅", Category: CategorySpecial, Requirement: 10, Progress: 10, UnlockedAt: "2024-12-20"},
	{ID: "11", Title: "Early Bird", Description: "Study before 7 AM", Icon: "🌅", Category: CategorySpecial, Requirement: 1, Progress: 0},
	{ID: "12", Title: "Night Owl", Description: "Study after 10 PM", Icon: "🦉", Category: CategorySpecial, Requirement: 1, Progress: 1, UnlockedAt: "2024-12-22"},
}

var dailyChallenge = DailyChallenge{
	ID:          "dc_2024_12_24",
	Title:       "Quiz Master",
	Description: "Complete 3 quizzes today",
	Target:      3,
	Progress:    1,
	RewardCoins: 15,
	RewardXP:    50,
	ExpiresAt:   "2024-12-25T00:00:00",
}

var weeklyLeaderboard = []LeaderboardEntry{
	{Rank: 1, ID: "1", Name: "Priya Mehta", XP: 2850, Streak: 21},
	{Rank: 2, ID: "2", Name: "Rahul Singh", XP: 2720, Streak: 18},
	{Rank: 3, ID: "3", Name: "Ananya Gupta", XP: 2580, Streak: 15},
	{Rank: 4, ID: "4", Name: "Vikram Reddy", XP: 2450, Streak: 14},
	{Rank: 5, ID: "5", Name: "Kavya Nair", XP: 2320, Streak: 12},
	{Rank: 6, ID: "current", Name: "Arjun Sharma", XP: 2180, Streak: 12, IsCurrentUser: true},
	{Rank: 7, ID: "7", Name: "Sneha Kapoor", XP: 2050, Streak: 10},
	{Rank: 8, ID: "8", Name: "Rohan Joshi", XP: 1920, Streak: 9},
	{Rank: 9, ID: "9", Name: "Meera Iyer", XP: 1850, Streak: 8},
	{Rank: 10, ID: "10", Name: "Aditya Patel", XP: 1780, Streak: 7},
}

var monthlyLeaderboard = []LeaderboardEntry{
	{Rank: 1, ID: "1", Name: "Rahul Singh", XP: 12500, Streak: 28},
	{Rank: 2, ID: "2", Name: "Priya Mehta", XP: 11800, Streak: 25},
	{Rank: 3, ID: "3", Name: "Vikram Reddy", XP: 10950, Streak: 22},
	{Rank: 4, ID: "4", Name: "Ananya Gupta", XP: 10200, Streak: 20},
	{Rank: 5, ID: "current", Name: "Arjun Sharma", XP: 9850, Streak: 18, IsCurrentUser: true},
	{Rank: 6, ID: "6", Name: "Kavya Nair", XP: 9500, Streak: 17},
	{Rank: 7, ID: "7", Name: "Sneha Kapoor", XP: 9100, Streak: 15},
	{Rank: 8, ID: "8", Name: "Rohan Joshi", XP: 8750, Streak: 14},
	{Rank: 9, ID: "9", Name: "Meera Iyer", XP: 8400, Streak: 12},
	{Rank: 10, ID: "10", Name: "Aditya Patel", XP: 8100, Streak: 11},
}

// Achievements returns every badge, optionally filtered by category.
func Achievements(category AchievementCategory) []Achievement {
	if category == "" {
		return append([]Achievement(nil), achievements...)
	}
	out := make([]Achievement, 0, len(achievements))
	for _, a := range achievements {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// UnlockedAchievements returns only earned badges, newest unlock first.
func UnlockedAchievements() []Achievement {
	out := make([]Achievement, 0, len(achievements))
	for _, a := range achievements {
		if a.Unlocked() {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnlockedAt > out[j].UnlockedAt })
	return out
}

// TodaysChallenge returns the current daily challenge card.
func TodaysChallenge() DailyChallenge {
	return dailyChallenge
}

// LeaderboardFor returns the board for the given period, ranked ascending.
// An unknown period falls back to the weekly board.
func LeaderboardFor(period LeaderboardPeriod) []LeaderboardEntry {
	switch period {
	case PeriodMonthly:
		return append([]LeaderboardEntry(nil), monthlyLeaderboard...)
	default:
		return append([]LeaderboardEntry(nil), weeklyLeaderboard...)
	}
}

// CurrentUserRank finds the highlighted row of a board, if present.
func CurrentUserRank(period LeaderboardPeriod) (LeaderboardEntry, bool) {
	for _, e := range LeaderboardFor(period) {
		if e.IsCurrentUser {
			return e, true
		}
	}
	return LeaderboardEntry{}, false
}
