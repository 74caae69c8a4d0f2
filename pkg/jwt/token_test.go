package jwt

import (
	"testing"
	"time"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	token, err := Generate("user-1", "rahul@example.com", "admin", "secret", time.Hour)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := Parse(token, "secret")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.Subject != "user-1" || claims.Email != "rahul@example.com" || claims.Role != "admin" {
		t.Errorf("claims = %+v, round trip lost data", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Generate("user-1", "rahul@example.com", "user", "secret", time.Hour)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := Parse(token, "other-secret"); err == nil {
		t.Fatal("token signed with a different secret was accepted")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := Generate("user-1", "rahul@example.com", "user", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := Parse(token, "secret"); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-token", "secret"); err == nil {
		t.Fatal("malformed token was accepted")
	}
}
