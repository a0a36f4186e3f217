// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes and verifies account passwords with a salted adaptive algorithm.
// Implementations are safe for concurrent use.
type PasswordHasher interface {
	// Hash generates a salted, algorithm-tagged hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash using the algorithm's own comparison.
	Verify(password, hash string) bool
}
