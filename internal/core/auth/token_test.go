package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	c := NewTokenCodec("test-secret", "blog-api", 30*time.Minute)

	token, err := c.Issue("42", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := c.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "42" {
		t.Fatalf("expected subject 42, got %q", subject)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	c := NewTokenCodec("test-secret", "blog-api", 30*time.Minute)

	token, err := c.Issue("42", time.Nanosecond)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := c.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenCodec_Tampered(t *testing.T) {
	c := NewTokenCodec("test-secret", "blog-api", 30*time.Minute)

	token, err := c.Issue("42", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flipping any single character must invalidate the token.
	for _, i := range []int{0, len(token) / 2, len(token) - 1} {
		altered := []byte(token)
		if altered[i] == 'A' {
			altered[i] = 'B'
		} else {
			altered[i] = 'A'
		}
		if _, err := c.Verify(string(altered)); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for altered token at %d, got %v", i, err)
		}
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec("secret-one", "blog-api", time.Hour)
	verifier := NewTokenCodec("secret-two", "blog-api", time.Hour)

	token, err := issuer.Issue("7", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	c := NewTokenCodec("test-secret", "blog-api", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := c.Verify(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestTokenCodec_DefaultTTLFallback(t *testing.T) {
	c := NewTokenCodec("test-secret", "blog-api", 0)
	if c.DefaultTTL() != defaultAccessTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultAccessTokenTTL, c.DefaultTTL())
	}
}
