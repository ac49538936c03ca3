// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password digesting and verification.
// Implementations must be pure and deterministic: the same raw password always
// yields the same fixed-length opaque token, so stored digests can be compared
// by exact equality.
type PasswordHasher interface {
	// Digest produces the opaque token for a raw password.
	Digest(raw string) string

	// Check compares a raw password against a stored token.
	Check(raw, stored string) bool
}
