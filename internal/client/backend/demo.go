package backend

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prepwyse/prepwyse/internal/client/models"
	"github.com/prepwyse/prepwyse/internal/common"
	"github.com/prepwyse/prepwyse/internal/validatex"
)

// DemoBackend is the reference auth stub: it sleeps for a fixed simulated
// latency, accepts any non-empty credentials, and binds the stock demo
// profile to whatever email the user typed. Registration seeds a fresh
// profile from the supplied data.
type DemoBackend struct {
	latency       time.Duration
	signingKey    []byte
	tokenValidity time.Duration
	now           func() time.Time
}

// NewDemoBackend constructs the stub. latency is the simulated round-trip
// applied to every call; tokens are signed with signingKey and valid for
// tokenValidity.
func NewDemoBackend(latency time.Duration, signingKey []byte, tokenValidity time.Duration) *DemoBackend {
	return &DemoBackend{
		latency:       latency,
		signingKey:    signingKey,
		tokenValidity: tokenValidity,
		now:           time.Now,
	}
}

// simulateLatency waits out the configured delay, returning early if the
// context is canceled first.
func (b *DemoBackend) simulateLatency(ctx context.Context) error {
	if b.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login accepts any non-empty email/password pair. Empty credentials are
// rejected as invalid; everything else yields the demo profile bound to the
// given email plus a fresh session token.
func (b *DemoBackend) Login(ctx context.Context, email, password string) (*models.UserProfile, string, error) {
	if email == "" || password == "" {
		return nil, "", common.ErrInvalidCredentials
	}

	if err := b.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	profile := models.NewDemoProfile(email)
	token, err := GenerateToken(profile.ID, b.signingKey, b.tokenValidity)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

// Register validates the registration input locally, then fabricates a new
// profile seeded with defaults and the supplied fields.
func (b *DemoBackend) Register(ctx context.Context, data models.RegistrationData) (*models.UserProfile, string, error) {
	if err := validatex.Check(data); err != nil {
		return nil, "", err
	}

	if err := b.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	profile := models.NewRegisteredProfile(uuid.NewString(), data)
	token, err := GenerateToken(profile.ID, b.signingKey, b.tokenValidity)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}
