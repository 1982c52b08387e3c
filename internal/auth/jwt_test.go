package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/clubhouse/internal/auth"
)

const testSecret = "a-long-enough-secret-for-signing-test-tokens"
const testUserID = "1"
const testRole = auth.RoleAdmin

func TestNewTokenManager(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		_, err := auth.NewTokenManager("", time.Hour)
		if !errors.Is(err, auth.ErrMissingSecret) {
			t.Fatalf("expected ErrMissingSecret, got %v", err)
		}
	})

	t.Run("DefaultTTL", func(t *testing.T) {
		m, err := auth.NewTokenManager(testSecret, 0)
		if err != nil {
			t.Fatalf("NewTokenManager failed: %v", err)
		}
		if m.TTL() != 12*time.Hour {
			t.Errorf("expected default TTL of 12h, got %s", m.TTL())
		}
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	m, err := auth.NewTokenManager(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := m.GenerateJWT(testUserID, testRole, 5*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := m.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. want %s, got %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("wrong Role. want %s, got %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := m.GenerateJWT(testUserID, testRole, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = m.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should reject an expired token")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("wrong error for expired token. want %v, got %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		other, err := auth.NewTokenManager("a-different-secret-entirely", time.Hour)
		if err != nil {
			t.Fatalf("NewTokenManager failed: %v", err)
		}
		tokenStr, err := other.GenerateJWT(testUserID, testRole, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = m.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should reject a token signed with another secret")
		}
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("wrong error for invalid signature: %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := m.ValidateJWT("not-a-token"); err == nil {
			t.Fatal("ValidateJWT should reject garbage")
		}
	})
}
