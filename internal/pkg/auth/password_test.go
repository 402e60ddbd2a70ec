package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_Cost(t *testing.T) {
	if hasher := NewBcryptHasher(0); hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected default cost: %d", hasher.cost)
	}
	if hasher := NewBcryptHasher(bcrypt.MinCost); hasher.cost != bcrypt.MinCost {
		t.Fatalf("unexpected custom cost: %d", hasher.cost)
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("p@ss")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "" || hash == "p@ss" {
		t.Fatalf("expected opaque hash, got %q", hash)
	}
	if err := hasher.Compare(hash, "p@ss"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected compare error for wrong password")
	}
}

func TestBcryptHasher_HashErrors(t *testing.T) {
	hasher := &BcryptHasher{cost: bcrypt.MaxCost + 1}
	if _, err := hasher.Hash("password"); err == nil {
		t.Fatal("expected hash error for invalid cost")
	}

	hasher = NewBcryptHasher(bcrypt.MinCost)
	if _, err := hasher.Hash(strings.Repeat("x", 73)); err == nil {
		t.Fatal("expected hash error for password longer than 72 bytes")
	}
}
