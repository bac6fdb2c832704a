// Package models defines the client-side domain entities: the user profile
// held by the session store and the input payloads of the auth flows.
package models

// Role is the closed set of account roles. There is no hierarchy.
type Role string

const (
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
	RoleAdmin   Role = "admin"
)

// Grade is the school grade of a student account.
type Grade int

const (
	Grade11 Grade = 11
	Grade12 Grade = 12
)

// SubscriptionTier gates access to paid features elsewhere in the UI.
type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

// Education boards offered by the registration UI. The profile field itself
// is free-form and not enforced against this list.
var EducationBoards = []string{"CBSE", "ICSE", "State"}

// StudyStreak is a pair of activity counters attached to a profile.
type StudyStreak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Clamp restores the invariant Longest >= Current. Every write path through
// the session store applies it, so a persisted streak can never report a
// longest run shorter than the current one.
func (s *StudyStreak) Clamp() {
	if s.Longest < s.Current {
		s.Longest = s.Current
	}
}

// UserProfile is the session entity: exactly one is resident at a time while
// a user is logged in. All mutation flows through the session store.
type UserProfile struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	DisplayName      string           `json:"display_name"`
	Role             Role             `json:"role"`
	CoinBalance      int              `json:"coin_balance"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier"`
	EducationBoard   string           `json:"education_board"`
	Grade            Grade            `json:"grade"`
	StudyStreak      StudyStreak      `json:"study_streak"`
	AvatarURL        string           `json:"avatar_url,omitempty"`
	ProfileComplete  bool             `json:"profile_complete"`
}

// Clone returns a deep copy so callers can hand profiles out without
// exposing the store's internal state to mutation.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
