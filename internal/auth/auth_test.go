package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key", time.Hour)

	token, err := manager.Generate()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	if err := manager.Validate(token); err != nil {
		t.Errorf("failed to validate freshly generated token: %v", err)
	}
}

func TestJWTValidateRejects(t *testing.T) {
	manager := NewJWTManager("test-secret-key", time.Hour)

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage token",
			token: func() string { return "not.a.token" },
		},
		{
			name:  "empty token",
			token: func() string { return "" },
		},
		{
			name: "wrong secret",
			token: func() string {
				other := NewJWTManager("different-secret", time.Hour)
				token, err := other.Generate()
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
				return token
			},
		},
		{
			name: "expired token",
			token: func() string {
				expired := NewJWTManager("test-secret-key", -time.Hour)
				token, err := expired.Generate()
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := manager.Validate(tt.token())
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestAccessKeyRoundTrip(t *testing.T) {
	hash, err := HashAccessKey("correct horse battery")
	if err != nil {
		t.Fatalf("failed to hash access key: %v", err)
	}

	if err := VerifyAccessKey(hash, "correct horse battery"); err != nil {
		t.Errorf("failed to verify correct key: %v", err)
	}
	if err := VerifyAccessKey(hash, "wrong key entirely"); !errors.Is(err, ErrInvalidAccessKey) {
		t.Errorf("Verify error = %v, want ErrInvalidAccessKey", err)
	}
}

func TestHashAccessKeyRejectsWeakKeys(t *testing.T) {
	if _, err := HashAccessKey("short"); !errors.Is(err, ErrWeakAccessKey) {
		t.Errorf("HashAccessKey error = %v, want ErrWeakAccessKey", err)
	}
}
