package session

import (
	"fmt"

	"github.com/prepwyse/prepwyse/internal/client/models"
)

// ProfileUpdate is a typed mutation of a single profile field. Updates run
// against a copy of the active profile, so a rejected input leaves the store
// untouched.
type ProfileUpdate func(p *models.UserProfile) error

// SetCoinBalance replaces the virtual-currency counter. The balance can
// never go negative; spend rules live with the features that charge coins.
func SetCoinBalance(n int) ProfileUpdate {
	return func(p *models.UserProfile) error {
		if n < 0 {
			return fmt.Errorf("coin balance cannot be negative: %d", n)
		}
		p.CoinBalance = n
		return nil
	}
}

// SetStreak replaces both streak counters. The store clamps
// longest = max(longest, current) after every update, so callers may pass a
// stale longest without breaking the invariant.
func SetStreak(current, longest int) ProfileUpdate {
	return func(p *models.UserProfile) error {
		if current < 0 || longest < 0 {
			return fmt.Errorf("streak counters cannot be negative: %d/%d", current, longest)
		}
		p.StudyStreak = models.StudyStreak{Current: current, Longest: longest}
		return nil
	}
}

// SetDisplayName replaces the display name.
func SetDisplayName(name string) ProfileUpdate {
	return func(p *models.UserProfile) error {
		if name == "" {
			return fmt.Errorf("display name cannot be empty")
		}
		p.DisplayName = name
		return nil
	}
}

// SetEducationBoard replaces the education board. The value is free-form;
// the registration UI constrains it, the store does not.
func SetEducationBoard(board string) ProfileUpdate {
	return func(p *models.UserProfile) error {
		p.EducationBoard = board
		return nil
	}
}

// SetGrade replaces the school grade.
func SetGrade(g models.Grade) ProfileUpdate {
	return func(p *models.UserProfile) error {
		if g != models.Grade11 && g != models.Grade12 {
			return fmt.Errorf("unsupported grade: %d", g)
		}
		p.Grade = g
		return nil
	}
}

// SetSubscriptionTier replaces the subscription tier.
func SetSubscriptionTier(tier models.SubscriptionTier) ProfileUpdate {
	return func(p *models.UserProfile) error {
		if tier != models.TierFree && tier != models.TierPro {
			return fmt.Errorf("unsupported subscription tier: %q", tier)
		}
		p.SubscriptionTier = tier
		return nil
	}
}

// SetAvatarURL replaces the optional avatar URL; empty clears it.
func SetAvatarURL(url string) ProfileUpdate {
	return func(p *models.UserProfile) error {
		p.AvatarURL = url
		return nil
	}
}

// SetProfileComplete flips the onboarding-complete flag.
func SetProfileComplete(done bool) ProfileUpdate {
	return func(p *models.UserProfile) error {
		p.ProfileComplete = done
		return nil
	}
}
