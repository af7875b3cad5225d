package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "provider", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	userID, role, err := ExtractIdentityFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIdentityFromToken returned error: %v", err)
	}
	if userID != "user-1" || role != "provider" {
		t.Fatalf("extracted identity = (%s, %s), want (user-1, provider)", userID, role)
	}
}

func TestTamperedTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "customer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, _, err := ExtractIdentityFromToken(tampered); err == nil {
		t.Fatalf("tampered token accepted")
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "customer", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, _, err := ExtractIdentityFromToken(token); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Fatalf("hash of identical input differs")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Fatalf("hash of different input collides")
	}
}
