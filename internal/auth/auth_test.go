package auth_test

import (
	"testing"
	"time"

	"agenda-api/internal/auth"
	"agenda-api/internal/model"
)

const secret = "test-secret"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("testpass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "testpass123" {
		t.Fatal("hash equals plaintext")
	}
	if !auth.CheckPassword(hash, "testpass123") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrongpassword") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundtrip(t *testing.T) {
	tok, err := auth.MakeToken("user-1", model.RoleProfessional, secret, 15*time.Minute)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	claims, err := auth.ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("uid mismatch: %s", claims.UserID)
	}
	if claims.Role != model.RoleProfessional {
		t.Errorf("role mismatch: %d", claims.Role)
	}

	// expiry should land near the requested ttl
	diff := time.Until(claims.ExpiresAt.Time)
	if diff < 14*time.Minute || diff > 16*time.Minute {
		t.Errorf("expected ~15min expiry, got %v", diff)
	}
}

func TestTokenRejection(t *testing.T) {
	tok, _ := auth.MakeToken("uid", model.RoleClient, secret, 15*time.Minute)

	if _, err := auth.ParseToken(tok, "wrong-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
	if _, err := auth.ParseToken("not.a.token", secret); err == nil {
		t.Error("expected error for garbage token")
	}

	expired, _ := auth.MakeToken("uid", model.RoleClient, secret, -time.Minute)
	if _, err := auth.ParseToken(expired, secret); err == nil {
		t.Error("expected error for expired token")
	}
}
