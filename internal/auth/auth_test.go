package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u1", Name: "Jin", Admin: true}, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "u1" || !claims.Admin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u1"}, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseToken("other", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckPassword(hash, "hunter2"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := CheckPassword(hash, "hunter3"); err == nil {
		t.Fatal("expected mismatch error")
	}
}
