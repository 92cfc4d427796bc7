package security

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)
	principal := Principal{
		ID:         3,
		FirstName:  "Alan",
		Username:   "alan@example.com",
		Password:   "$2a$10$hash",
		Functional: true,
		Authority:  "ROLE_USER",
	}

	token, err := codec.Issue(principal)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	parsed, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if parsed.ID != principal.ID {
		t.Errorf("Expected id %d, got %d", principal.ID, parsed.ID)
	}
	if parsed.Username != principal.Username {
		t.Errorf("Expected username %q, got %q", principal.Username, parsed.Username)
	}
	if parsed.Authority != principal.Authority {
		t.Errorf("Expected authority %q, got %q", principal.Authority, parsed.Authority)
	}
	if parsed.Password != "" {
		t.Error("Password hash must never travel in the token")
	}
	if !parsed.Functional {
		t.Error("Parsed principal should be functional")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenCodec("secret-a", time.Hour)
	verifier := NewTokenCodec("secret-b", time.Hour)

	token, err := issuer.Issue(Principal{ID: 1, Authority: "ROLE_USER"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Parse(token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	codec := NewTokenCodec("test-secret", -time.Minute)

	token, err := codec.Issue(Principal{ID: 1, Authority: "ROLE_USER"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := codec.Parse(token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	if _, err := codec.Parse("not-a-token"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}
