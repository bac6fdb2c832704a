package backend

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepwyse/prepwyse/internal/client/models"
	"github.com/prepwyse/prepwyse/internal/common"
)

func validRegistration() models.RegistrationData {
	return models.RegistrationData{
		Email:       "rohan@school.in",
		Password:    "correct-horse",
		DisplayName: "Rohan Gupta",
		Role:        models.RoleStudent,
	}
}

func TestLocalBackend_RegisterThenLogin(t *testing.T) {
	b := NewLocalBackend(testKey, time.Hour)
	ctx := context.Background()

	registered, _, err := b.Register(ctx, validRegistration())
	require.NoError(t, err)

	loggedIn, token, err := b.Login(ctx, "rohan@school.in", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
	assert.Equal(t, registered.Email, loggedIn.Email)
	assert.NotEmpty(t, token)
}

func TestLocalBackend_Login_WrongPassword(t *testing.T) {
	b := NewLocalBackend(testKey, time.Hour)
	ctx := context.Background()

	_, _, err := b.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, _, err = b.Login(ctx, "rohan@school.in", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLocalBackend_Login_UnknownEmail(t *testing.T) {
	b := NewLocalBackend(testKey, time.Hour)

	_, _, err := b.Login(context.Background(), "nobody@school.in", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLocalBackend_Register_DuplicateEmail(t *testing.T) {
	b := NewLocalBackend(testKey, time.Hour)
	ctx := context.Background()

	_, _, err := b.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, _, err = b.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestLocalBackend_ReturnsClones(t *testing.T) {
	b := NewLocalBackend(testKey, time.Hour)
	ctx := context.Background()

	p1, _, err := b.Register(ctx, validRegistration())
	require.NoError(t, err)
	p1.CoinBalance = -500

	p2, _, err := b.Login(ctx, "rohan@school.in", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, 100, p2.CoinBalance, "stored account must not alias returned profiles")
}
