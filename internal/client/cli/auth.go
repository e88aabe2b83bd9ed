package cli

import (
	"context"
	"fmt"
)

// getEmail and getPassword are indirections used to facilitate testing.
var getEmail = ReadEmail
var getPassword = ReadPassword

func (a *App) credentials() (string, string, error) {
	email, err := getEmail(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// Signup prompts for an email and password, creates the account and
// starts a session for it.
func (a *App) Signup(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.authService.Signup(ctx, email, password); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Account created. Logged in as", email)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.authService.Login(ctx, email, password); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Logged in as", email)
	return nil
}

// Logout ends the session. Buffers and history are kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(context.Context) error {
	fmt.Fprintln(a.out, a.status())
	return nil
}
