package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepwyse/prepwyse/internal/client/models"
	"github.com/prepwyse/prepwyse/internal/common"
	"github.com/prepwyse/prepwyse/internal/validatex"
)

var testKey = []byte("unit-test-signing-key")

func newDemo() *DemoBackend {
	return NewDemoBackend(0, testKey, time.Hour)
}

func TestDemoBackend_Login_AcceptsAnyNonEmptyCredentials(t *testing.T) {
	b := newDemo()

	profile, token, err := b.Login(context.Background(), "someone@school.in", "whatever")
	require.NoError(t, err)

	assert.Equal(t, "someone@school.in", profile.Email)
	assert.Equal(t, models.DemoDisplayName, profile.DisplayName)
	assert.Equal(t, 100, profile.CoinBalance)

	userID, err := VerifyToken(token, testKey)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, userID)
}

func TestDemoBackend_Login_RejectsEmptyCredentials(t *testing.T) {
	b := newDemo()

	_, _, err := b.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, _, err = b.Login(context.Background(), "a@b.com", "")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestDemoBackend_Login_HonorsContextCancellation(t *testing.T) {
	b := NewDemoBackend(time.Minute, testKey, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := b.Login(ctx, "a@b.com", "pw")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDemoBackend_Register_SeedsProfileFromData(t *testing.T) {
	b := newDemo()

	data := models.RegistrationData{
		Email:       "priya@school.in",
		Password:    "longenough",
		DisplayName: "Priya Patel",
		Role:        models.RoleParent,
	}
	profile, token, err := b.Register(context.Background(), data)
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, data.Email, profile.Email)
	assert.Equal(t, data.DisplayName, profile.DisplayName)
	assert.Equal(t, models.RoleParent, profile.Role)
	assert.Equal(t, models.StudyStreak{}, profile.StudyStreak)
	assert.NotEmpty(t, token)
}

func TestDemoBackend_Register_ValidatesInput(t *testing.T) {
	b := newDemo()

	_, _, err := b.Register(context.Background(), models.RegistrationData{
		Email:       "",
		Password:    "short",
		DisplayName: "X",
		Role:        models.RoleStudent,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validatex.ErrValidation))

	var verr *validatex.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

func TestDemoBackend_Register_RejectsAdminRole(t *testing.T) {
	b := newDemo()

	_, _, err := b.Register(context.Background(), models.RegistrationData{
		Email:       "a@b.com",
		Password:    "longenough",
		DisplayName: "A",
		Role:        models.RoleAdmin,
	})
	assert.True(t, errors.Is(err, validatex.ErrValidation))
}
