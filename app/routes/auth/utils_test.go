package auth

import (
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q, want %q", claims.Username, "admin")
	}
	if claims.ID == "" {
		t.Error("expected a session id in the claims")
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT("admin")
	if err != nil {
		t.Fatal(err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateJWT(tampered); err == nil {
		t.Error("expected an error for a tampered signature")
	}
}
