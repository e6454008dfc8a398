package services

import (
	"strings"
	"testing"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !strings.Contains(hash, ".") {
		t.Errorf("hash should contain the key.salt separator, got %q", hash)
	}

	if !VerifyPassword("correct horse battery staple", hash) {
		t.Error("correct password should verify")
	}
	if VerifyPassword("wrong password", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password should differ by salt")
	}
	if !VerifyPassword("secret123", h1) || !VerifyPassword("secret123", h2) {
		t.Error("both salted hashes should verify the original password")
	}
}

func TestVerifyPasswordMalformedStored(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	cases := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"no separator", "deadbeef"},
		{"bad hex key", "zzzz.00112233445566778899aabbccddeeff"},
		{"bad hex salt", "deadbeef.zzzz"},
		{"truncated key", hash[2:]},
		{"extra separator", hash + ".extra"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Must report no-match, never panic, even when the stored
			// key length does not match the derived key length.
			if VerifyPassword("secret123", tc.stored) {
				t.Errorf("malformed stored value %q should not verify", tc.stored)
			}
		})
	}
}
