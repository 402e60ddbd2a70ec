package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNewHMACStrategy_DefaultTTL(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
	if strategy.now == nil {
		t.Fatal("expected default clock")
	}
}

func TestHMACStrategy_IssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if strings.ContainsAny(token, "+/=") {
		t.Fatalf("expected url-safe token, got %q", token)
	}
	accountID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if accountID != 42 {
		t.Fatalf("unexpected account id: %d", accountID)
	}
}

func TestHMACStrategy_RejectsForeignSecret(t *testing.T) {
	token, err := NewHMACStrategy("one", Options{}).IssueToken(1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := NewHMACStrategy("two", Options{}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseMalformed(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	valid := time.Now().Add(time.Minute).Unix()

	forge := func(payload string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", payload, strategy.sign(payload))))
	}

	cases := map[string]string{
		"not base64":    "not base64!",
		"two parts":     base64.RawURLEncoding.EncodeToString([]byte("only:two")),
		"bad signature": base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("7:%d:tampered", valid))),
		"bad id":        forge(fmt.Sprintf("abc:%d", valid)),
		"bad expiry":    forge("10:not-a-number"),
		"expired":       forge(fmt.Sprintf("10:%d", time.Now().Add(-time.Minute).Unix())),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestHMACStrategy_ExpiresWithClock(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute, Now: func() time.Time { return now }})
	token, err := strategy.IssueToken(3)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	now = now.Add(30 * time.Second)
	if _, err := strategy.ParseToken(token); err != nil {
		t.Fatalf("expected token to be valid, got %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token, got %v", err)
	}
}

func TestHMACStrategy_Name(t *testing.T) {
	if name := NewHMACStrategy("secret", Options{}).Name(); name != "hmac" {
		t.Fatalf("unexpected name: %s", name)
	}
}
