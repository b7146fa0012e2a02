package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// RandomString generates a URL-safe random string of the given length,
// suitable for one-off secrets and reset codes.
func RandomString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %v", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(raw)
	return encoded[:length], nil
}

// RandomStringFrom generates a random string of the given length drawing
// each character uniformly from charset.
func RandomStringFrom(charset string, length int) (string, error) {
	if charset == "" {
		return "", fmt.Errorf("charset must not be empty")
	}
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	var b strings.Builder
	b.Grow(length)
	max := big.NewInt(int64(len(charset)))
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %v", err)
		}
		b.WriteByte(charset[idx.Int64()])
	}
	return b.String(), nil
}

// IsUUIDv4 reports whether s is a canonical hyphenated UUID version 4.
func IsUUIDv4(s string) bool {
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	// uuid.Parse accepts braced, URN and compact forms; the legacy check
	// only admits the canonical 36-character spelling.
	if !strings.EqualFold(s, u.String()) {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}
