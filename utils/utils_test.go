package utils

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	for _, length := range []int{1, 6, 32, 64} {
		got, err := RandomString(length)
		if err != nil {
			t.Fatalf("RandomString(%d) failed: %v", length, err)
		}
		if len(got) != length {
			t.Errorf("RandomString(%d) length = %d", length, len(got))
		}
		if strings.ContainsAny(got, "+/=") {
			t.Errorf("RandomString(%d) = %q, contains non-URL-safe characters", length, got)
		}
	}

	a, _ := RandomString(32)
	b, _ := RandomString(32)
	if a == b {
		t.Error("two random strings are identical")
	}

	if _, err := RandomString(0); err == nil {
		t.Error("expected error for zero length")
	}
}

func TestRandomStringFrom(t *testing.T) {
	const charset = "0123456789"
	got, err := RandomStringFrom(charset, 20)
	if err != nil {
		t.Fatalf("RandomStringFrom failed: %v", err)
	}
	if len(got) != 20 {
		t.Errorf("length = %d, want 20", len(got))
	}
	for _, r := range got {
		if !strings.ContainsRune(charset, r) {
			t.Errorf("character %q not in charset", r)
		}
	}

	if _, err := RandomStringFrom("", 5); err == nil {
		t.Error("expected error for empty charset")
	}
}

func TestIsUUIDv4(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid v4", "9b2b1b3e-1f7a-4f7e-8b2a-3c4d5e6f7a8b", true},
		{"valid v4 uppercase", "9B2B1B3E-1F7A-4F7E-8B2A-3C4D5E6F7A8B", true},
		{"v1 uuid", "f47ac10b-58cc-1372-a567-0e02b2c3d479", false},
		{"wrong variant", "9b2b1b3e-1f7a-4f7e-0b2a-3c4d5e6f7a8b", false},
		{"compact form rejected", "9b2b1b3e1f7a4f7e8b2a3c4d5e6f7a8b", false},
		{"braced form rejected", "{9b2b1b3e-1f7a-4f7e-8b2a-3c4d5e6f7a8b}", false},
		{"not a uuid", "hello", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUUIDv4(tt.in); got != tt.want {
				t.Errorf("IsUUIDv4(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
