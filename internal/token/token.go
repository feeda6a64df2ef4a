// Package token produces opaque random identifiers used across the platform:
// QR tokens printed on physical tables and session tokens naming live table
// sessions. Both come from the same unique-token allocator, parameterized by
// an existence probe and byte length, so global uniqueness is handled in one
// place instead of per entity type.
package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// Default byte lengths. A 16-byte token already makes accidental collisions
// negligible; session tokens get 24 bytes since they double as bearer
// credentials shared between diners.
const (
	QRTokenBytes      = 16
	SessionTokenBytes = 24
)

// ExistsFunc reports whether a candidate token is already in use. Probe
// errors abort generation and are returned unchanged to the caller.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Generate returns a hex-encoded token of byteLen random bytes.
// crypto/rand is assumed available; a read failure is unrecoverable and
// panics rather than returning a weaker token.
func Generate(byteLen int) string {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		panic("token: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GenerateUnique returns the first generated token for which exists reports
// false. The loop is unbounded by contract; with byteLen >= 16 the expected
// iteration count is 1, so the only realistic exit paths are the first
// candidate or a probe error.
func GenerateUnique(ctx context.Context, exists ExistsFunc, byteLen int) (string, error) {
	for {
		candidate := Generate(byteLen)
		used, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}
}
