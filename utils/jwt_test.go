package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := "unit-test-secret"
	tok, err := GenerateToken(42, "admin", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token not valid")
	}
	if claims.UserID != 42 || claims.Role != "admin" {
		t.Fatalf("claims = %d/%s, want 42/admin", claims.UserID, claims.Role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	secret := "unit-test-secret"
	tok, err := GenerateToken(42, "customer", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var claims Claims
	_, err = jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err == nil {
		t.Fatal("expected expired token to fail parsing")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tok, err := GenerateToken(1, "customer", "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var claims Claims
	_, err = jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Fatal("expected signature mismatch")
	}
}
