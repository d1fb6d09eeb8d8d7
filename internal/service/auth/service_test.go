package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	svc := New()

	user, err := svc.SignUp(ctx, "User@Example.com", "Abcdefg1", "Jamie")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if user.UID == "" || user.Email != "user@example.com" || user.DisplayName != "Jamie" {
		t.Fatalf("unexpected user %+v", user)
	}

	signedIn, token, err := svc.SignIn(ctx, "user@example.com", "Abcdefg1")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if token == "" || signedIn.UID != user.UID {
		t.Fatalf("unexpected session user=%+v token=%q", signedIn, token)
	}

	looked, err := svc.Session(ctx, token)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if looked.UID != user.UID {
		t.Fatalf("unexpected user %+v", looked)
	}
}

func TestAnonymousSession(t *testing.T) {
	ctx := context.Background()
	svc := New()

	token, err := svc.Anonymous(ctx)
	if err != nil {
		t.Fatalf("Anonymous: %v", err)
	}
	user, err := svc.Session(ctx, token)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user for anonymous session, got %+v", user)
	}

	svc.SignOut(ctx, token)
	if _, err := svc.Session(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after signout, got %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	ctx := context.Background()
	svc := New()

	if _, err := svc.SignUp(ctx, "", "Abcdefg1", ""); err == nil {
		t.Fatalf("expected email validation error")
	}
	if _, err := svc.SignUp(ctx, "a@b.com", "short", ""); err == nil {
		t.Fatalf("expected password length error")
	}
	if _, err := svc.SignUp(ctx, "a@b.com", "alllowercase1", ""); err == nil {
		t.Fatalf("expected password complexity error")
	}
	if _, err := svc.SignUp(ctx, "a@b.com", "Abcdefg1", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if _, err := svc.SignUp(ctx, "a@b.com", "Abcdefg1", ""); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignInInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := New()
	if _, err := svc.SignUp(ctx, "a@b.com", "Abcdefg1", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, _, err := svc.SignIn(ctx, "a@b.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.SignIn(ctx, "missing@b.com", "Abcdefg1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignOutRevokesToken(t *testing.T) {
	ctx := context.Background()
	svc := New()
	if _, err := svc.SignUp(ctx, "a@b.com", "Abcdefg1", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	_, token, err := svc.SignIn(ctx, "a@b.com", "Abcdefg1")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	svc.SignOut(ctx, token)
	if _, err := svc.Session(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after signout, got %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := New()
	token, err := svc.tokens.Issue("uid", -time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Session(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := New()
	if _, err := svc.SignUp(ctx, "a@b.com", "Abcdefg1", "Old Name"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	_, token, err := svc.SignIn(ctx, "a@b.com", "Abcdefg1")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, token, "New Name")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.DisplayName != "New Name" {
		t.Fatalf("unexpected user %+v", updated)
	}

	looked, err := svc.Session(ctx, token)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if looked.DisplayName != "New Name" {
		t.Fatalf("expected persisted display name, got %+v", looked)
	}
}
