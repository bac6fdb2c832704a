package backend

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prepwyse/prepwyse/internal/client/models"
	"github.com/prepwyse/prepwyse/internal/common"
	"github.com/prepwyse/prepwyse/internal/validatex"
)

type account struct {
	profile      *models.UserProfile
	passwordHash []byte
}

// LocalBackend is an in-memory account registry that behaves the way a real
// remote collaborator would: registration rejects duplicate emails, login
// verifies the password against a bcrypt hash and fails with
// common.ErrInvalidCredentials on mismatch or unknown email.
type LocalBackend struct {
	mu            sync.Mutex
	accounts      map[string]*account
	signingKey    []byte
	tokenValidity time.Duration
}

func NewLocalBackend(signingKey []byte, tokenValidity time.Duration) *LocalBackend {
	return &LocalBackend{
		accounts:      make(map[string]*account),
		signingKey:    signingKey,
		tokenValidity: tokenValidity,
	}
}

func (b *LocalBackend) Login(ctx context.Context, email, password string) (*models.UserProfile, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	b.mu.Lock()
	acc, ok := b.accounts[email]
	b.mu.Unlock()

	if !ok {
		return nil, "", common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := GenerateToken(acc.profile.ID, b.signingKey, b.tokenValidity)
	if err != nil {
		return nil, "", err
	}
	return acc.profile.Clone(), token, nil
}

func (b *LocalBackend) Register(ctx context.Context, data models.RegistrationData) (*models.UserProfile, string, error) {
	if err := validatex.Check(data); err != nil {
		return nil, "", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	profile := models.NewRegisteredProfile(uuid.NewString(), data)

	b.mu.Lock()
	if _, exists := b.accounts[data.Email]; exists {
		b.mu.Unlock()
		return nil, "", common.ErrEmailTaken
	}
	b.accounts[data.Email] = &account{profile: profile, passwordHash: hash}
	b.mu.Unlock()

	token, err := GenerateToken(profile.ID, b.signingKey, b.tokenValidity)
	if err != nil {
		return nil, "", err
	}
	return profile.Clone(), token, nil
}
