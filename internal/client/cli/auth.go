package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepwyse/prepwyse/internal/client/models"
	"github.com/prepwyse/prepwyse/internal/common"
	"github.com/prepwyse/prepwyse/internal/validatex"
)

// Login prompts for credentials and asks the session store to authenticate.
// Failures are printed, not returned as state: the store guarantees nothing
// changed.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Fprintln(a.out, "Login failed: invalid email or password")
		case errors.Is(err, common.ErrStorageUnavailable):
			fmt.Fprintln(a.out, "Logged in, but the session could not be saved and will not survive a restart")
		default:
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
			return err
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.Profile().DisplayName)
	return nil
}

// Register collects signup fields and asks the session store to provision
// and log in a new account.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	role, err := GetSimpleText(a.reader, "Role (student/parent)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	data := models.RegistrationData{
		Email:       email,
		Password:    password,
		DisplayName: name,
		Role:        models.Role(role),
	}

	if err := a.session.Register(ctx, data); err != nil {
		var verr *validatex.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr.Fields {
				fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
			}
		} else {
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", name)
	return nil
}

// Logout clears the active session. Calling it while logged out just says so.
func (a *App) Logout(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "warning: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}
