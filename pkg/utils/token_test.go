package utils

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndVerifySessionToken(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	subject := "8a5f0f0e-7c3b-4a56-9a4e-2f9a1a6d7b10"

	tok, expiresAt, err := GenerateSessionToken(subject, secret, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	// expiry must land in the configured window
	want := time.Now().Add(7 * 24 * time.Hour)
	if d := expiresAt.Sub(want); d < -time.Minute || d > time.Minute {
		t.Fatalf("expiresAt out of window: got %v want ~%v", expiresAt, want)
	}

	got, err := VerifySessionToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifySessionToken error: %v", err)
	}
	if got != subject {
		t.Fatalf("subject mismatch: got %q want %q", got, subject)
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, _, err := GenerateSessionToken("u1", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	_, err = VerifySessionToken(tok, secret)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := GenerateSessionToken("u2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	_, err = VerifySessionToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestVerifySessionToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := VerifySessionToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}
