// Package service defines the domain-facing contracts for infrastructure
// collaborators such as hashing, tokens, OTP issuing and mail dispatch.
package service

// PasswordHasher hashes plaintext passwords and compares them against stored
// hashes. Only the hash-and-compare contract matters to the domain.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
