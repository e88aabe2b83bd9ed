// Package services contains application services for the toneflow client.
// This file defines the credential store: signup, login, logout and the
// persisted session. Credentials are demonstration grade and kept in plain
// text in the local key-value store.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
	"github.com/dmitrijs2005/toneflow/internal/client/repositories/kv"
	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/logging"
)

// AuthService defines identity operations for the CLI.
//
// Contract:
//   - Signup: fails with common.ErrCredential if the email is taken;
//     otherwise stores the user and starts a session for it.
//   - Login: requires an exact email and password match; the current
//     session is left untouched on failure.
//   - Logout: ends the session; user records are kept.
//   - Restore: loads the persisted session at startup. A missing or
//     unparseable value means logged out.
//   - Current: the active session or nil.
type AuthService interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.Session, error)
	Current() *models.Session
}

type authService struct {
	store kv.Store
	log   logging.Logger

	mu      sync.RWMutex
	session *models.Session
}

// NewAuthService constructs an AuthService over store.
func NewAuthService(store kv.Store, log logging.Logger) AuthService {
	return &authService{store: store, log: log}
}

func validateCredentials(email, password string) error {
	if common.IsBlank(email) || common.IsBlank(password) {
		return fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}
	return nil
}

// decodeUsers parses the users list. Corruption yields an empty list.
func (a *authService) decodeUsers(ctx context.Context, raw string, ok bool) []models.User {
	if !ok || raw == "" {
		return nil
	}
	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		a.log.Warn(ctx, "users list unreadable, treating as empty",
			"key", common.KeyUsers, "error", fmt.Errorf("%w: %v", common.ErrPersistenceCorruption, err))
		return nil
	}
	return users
}

func (a *authService) Signup(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	err := kv.Update(ctx, a.store, common.KeyUsers, func(raw string, ok bool) (string, error) {
		users := a.decodeUsers(ctx, raw, ok)
		for _, u := range users {
			if u.Email == email {
				return "", fmt.Errorf("%w: user with this email already exists", common.ErrCredential)
			}
		}
		users = append(users, models.User{Email: email, Password: password})
		b, err := json.Marshal(users)
		if err != nil {
			return "", err
		}
		return string(b), nil
	})
	if err != nil {
		return err
	}

	if err := a.startSession(ctx, email); err != nil {
		return err
	}
	a.log.Info(ctx, "user signed up", "email", email)
	return nil
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	raw, ok, err := a.store.Get(ctx, common.KeyUsers)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	for _, u := range a.decodeUsers(ctx, raw, ok) {
		if u.Email == email && u.Password == password {
			if err := a.startSession(ctx, email); err != nil {
				return err
			}
			a.log.Info(ctx, "user logged in", "email", email)
			return nil
		}
	}
	return fmt.Errorf("%w: invalid email or password", common.ErrCredential)
}

func (a *authService) startSession(ctx context.Context, email string) error {
	s := &models.Session{Email: email}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := a.store.Set(ctx, common.KeyCurrentUser, string(b)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	a.setSession(s)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Remove(ctx, common.KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.setSession(nil)
	return nil
}

// Restore does not check that the session's email still exists in the
// users list.
func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	raw, ok, err := a.store.Get(ctx, common.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		a.setSession(nil)
		return nil, nil
	}

	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil || strings.TrimSpace(s.Email) == "" {
		a.log.Warn(ctx, "stored session unreadable, logging out",
			"key", common.KeyCurrentUser, "error", fmt.Errorf("%w: %q", common.ErrPersistenceCorruption, raw))
		if err := a.store.Remove(ctx, common.KeyCurrentUser); err != nil {
			a.log.Error(ctx, "failed to remove corrupt session", "error", err)
		}
		a.setSession(nil)
		return nil, nil
	}

	a.setSession(&s)
	return a.Current(), nil
}

func (a *authService) setSession(s *models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = s
}

// Current returns a copy of the active session, or nil.
func (a *authService) Current() *models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return nil
	}
	s := *a.session
	return &s
}
