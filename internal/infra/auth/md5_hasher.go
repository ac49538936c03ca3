// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/md5" //nolint:gosec // Digest compatibility with the existing employee table.
	"encoding/hex"

	"brigade/internal/domain/service"
)

// md5Hasher is a concrete implementation of the PasswordHasher interface
// using an MD5 hex digest. The digest is deterministic so stored tokens can
// be compared by exact equality, which the login and password-edit flows
// rely on. The legacy employee table already holds MD5 digests, so the
// algorithm cannot change without a migration.
type md5Hasher struct{}

// NewMD5Hasher is the constructor for md5Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewMD5Hasher() service.PasswordHasher {
	return &md5Hasher{}
}

// Digest produces the lowercase hex MD5 digest of a raw password.
func (h *md5Hasher) Digest(raw string) string {
	sum := md5.Sum([]byte(raw)) //nolint:gosec

	return hex.EncodeToString(sum[:])
}

// Check compares a raw password against a stored digest. The comparison is
// exact and case-sensitive on the opaque token.
func (h *md5Hasher) Check(raw, stored string) bool {
	return h.Digest(raw) == stored
}
