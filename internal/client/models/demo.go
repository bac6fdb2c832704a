package models

// Demo account returned by the demo backend for any accepted login,
// re-bound to the email the user typed.
const (
	DemoProfileID   = "demo123"
	DemoDisplayName = "Arjun Sharma"
)

// NewDemoProfile fabricates the stock demo profile bound to the given email.
func NewDemoProfile(email string) *UserProfile {
	return &UserProfile{
		ID:               DemoProfileID,
		Email:            email,
		DisplayName:      DemoDisplayName,
		Role:             RoleStudent,
		CoinBalance:      100,
		SubscriptionTier: TierFree,
		EducationBoard:   "CBSE",
		Grade:            Grade12,
		StudyStreak:      StudyStreak{Current: 7, Longest: 14},
		ProfileComplete:  true,
	}
}

// NewRegisteredProfile seeds a fresh profile from registration data:
// starting coin balance, zero streak, profile not yet completed.
func NewRegisteredProfile(id string, data RegistrationData) *UserProfile {
	return &UserProfile{
		ID:               id,
		Email:            data.Email,
		DisplayName:      data.DisplayName,
		Role:             data.Role,
		CoinBalance:      100,
		SubscriptionTier: TierFree,
		Grade:            Grade12,
		StudyStreak:      StudyStreak{},
		ProfileComplete:  false,
	}
}
