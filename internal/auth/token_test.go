package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.GenerateToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatal("token already expired")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("username = %q, want admin", claims.Username)
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 60).GenerateToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewTokenManager("secret-b", 60).ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := ComparePassword(hashed, "password"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := ComparePassword(hashed, "wrong"); err == nil {
		t.Fatal("wrong password must not verify")
	}
}
