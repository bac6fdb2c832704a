// Package backend defines the auth collaborators the session store talks to.
//
// The session store never fabricates profiles itself: it hands credentials to
// a Backend and stores whatever comes back. Two implementations ship with the
// client: DemoBackend (the stand-in used by the product demo, accepts any
// non-empty credentials) and LocalBackend (an in-memory account registry that
// actually verifies passwords).
package backend

import (
	"context"

	"github.com/prepwyse/prepwyse/internal/client/models"
)

// Backend authenticates credentials and provisions accounts. Both calls are
// treated as fallible, latent-cost external calls: they honor context
// cancellation and may fail with common.ErrInvalidCredentials,
// common.ErrEmailTaken, or a validation error.
//
// On success each call returns the resulting profile together with a signed
// session token the caller persists alongside it.
type Backend interface {
	Login(ctx context.Context, email, password string) (*models.UserProfile, string, error)
	Register(ctx context.Context, data models.RegistrationData) (*models.UserProfile, string, error)
}
