package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256-signing"

func TestGenerateAndValidateToken(t *testing.T) {
	a := NewAuthService(testSecret, time.Hour)
	token, expiresAt, err := a.GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if time.Until(expiresAt) < 59*time.Minute {
		t.Errorf("expiresAt = %v, want about an hour from now", expiresAt)
	}

	userID, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if userID != 7 {
		t.Errorf("ValidateToken() = %d, want 7", userID)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewAuthService(testSecret, time.Hour).GenerateToken(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService("another-secret-that-is-also-long-enough-xx", time.Hour).ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, _, err := NewAuthService(testSecret, -time.Minute).GenerateToken(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService(testSecret, time.Hour).ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestValidateTokenRejectsNonNumericSubject(t *testing.T) {
	claims := jwt.MapClaims{"sub": "alice", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService(testSecret, time.Hour).ValidateToken(token); err == nil {
		t.Error("expected validation to fail for a non-numeric subject")
	}
}

func TestPasswordHashing(t *testing.T) {
	a := NewAuthService(testSecret, time.Hour)
	hash, err := a.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if err := a.CompareHashAndPassword(hash, "s3cret"); err != nil {
		t.Errorf("CompareHashAndPassword() with the right password: %v", err)
	}
	if err := a.CompareHashAndPassword(hash, "wrong"); err == nil {
		t.Error("CompareHashAndPassword() accepted a wrong password")
	}
}
