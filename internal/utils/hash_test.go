// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_ProducesBcryptHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "s3cret" {
		t.Fatal("hash must not equal the plain password")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != PasswordHashCost {
		t.Errorf("expected cost %d, got %d", PasswordHashCost, cost)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("same")
	h2, _ := HashPassword("same")

	if h1 == h2 {
		t.Error("two hashes of the same password must differ")
	}
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ComparePassword(hash, "correct horse"); err != nil {
		t.Errorf("expected match, got %v", err)
	}

	if err := ComparePassword(hash, "battery staple"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-hash", "whatever")

	if err == nil {
		t.Fatal("expected error for malformed hash")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Error("malformed hash must not be reported as a mismatch")
	}
}
