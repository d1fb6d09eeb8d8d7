// Package auth is a mock authentication provider: an in-memory user
// directory with bcrypt hashes and opaque session tokens. It performs
// no real credential verification against any external system and must
// never be mistaken for one.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmailTaken is returned on signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
)

type account struct {
	user         domain.User
	passwordHash []byte
}

// Service handles signup/signin flows and session token lookup. It
// also issues anonymous sessions, so every request carries a session
// token whether or not a user is signed in.
type Service struct {
	tokens      *tokenManager
	accessTTL   time.Duration
	anonTTL     time.Duration
	passwordMin int

	mu    sync.RWMutex
	users map[string]*account // keyed by lowercased email
	byUID map[string]*account
}

// New creates a Service with sane defaults.
func New() *Service {
	return &Service{
		tokens:      newTokenManager(),
		accessTTL:   48 * time.Hour,
		anonTTL:     3 * time.Hour,
		passwordMin: 8,
		users:       make(map[string]*account),
		byUID:       make(map[string]*account),
	}
}

// SignUp registers a new user and returns it.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, errors.New("email required")
	}
	password = strings.TrimSpace(password)
	if err := validatePassword(password, s.passwordMin); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		return nil, ErrEmailTaken
	}
	acc := &account{
		user: domain.User{
			UID:         uuid.NewString(),
			Email:       email,
			DisplayName: strings.TrimSpace(displayName),
		},
		passwordHash: hashed,
	}
	s.users[email] = acc
	s.byUID[acc.user.UID] = acc

	user := acc.user
	return &user, nil
}

// SignIn validates credentials and returns the user plus a session token.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	s.mu.RLock()
	acc, ok := s.users[email]
	s.mu.RUnlock()
	if !ok {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(acc.user.UID, s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	user := acc.user
	return &user, token, nil
}

// SignOut revokes the session token; unknown tokens are ignored.
func (s *Service) SignOut(ctx context.Context, token string) {
	s.tokens.Revoke(token)
}

// Anonymous issues a session token bound to no user. Anonymous
// sessions carry a shorter lifetime than signed-in ones.
func (s *Service) Anonymous(ctx context.Context) (string, error) {
	return s.tokens.Issue("", s.anonTTL)
}

// Session resolves a session token. A valid anonymous token yields a
// nil user; unknown or expired tokens yield ErrInvalidToken.
func (s *Service) Session(ctx context.Context, token string) (*domain.User, error) {
	meta, ok := s.tokens.Validate(token)
	if !ok {
		return nil, ErrInvalidToken
	}
	if meta.UID == "" {
		return nil, nil
	}
	s.mu.RLock()
	acc, found := s.byUID[meta.UID]
	s.mu.RUnlock()
	if !found {
		return nil, ErrInvalidToken
	}
	user := acc.user
	return &user, nil
}

// UpdateProfile replaces the display name of the token's user.
func (s *Service) UpdateProfile(ctx context.Context, token, displayName string) (*domain.User, error) {
	meta, ok := s.tokens.Validate(token)
	if !ok {
		return nil, ErrInvalidToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, found := s.byUID[meta.UID]
	if !found {
		return nil, ErrInvalidToken
	}
	acc.user.DisplayName = strings.TrimSpace(displayName)
	user := acc.user
	return &user, nil
}

// AccessTTLSeconds exposes the session token lifetime in seconds.
func (s *Service) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}

func validatePassword(p string, min int) error {
	trimmed := strings.TrimSpace(p)
	if len(trimmed) < min {
		return fmt.Errorf("password must be at least %d characters", min)
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range trimmed {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("password must contain at least 1 uppercase letter, 1 lowercase letter, and 1 number")
	}
	return nil
}
