// Package crypto provides password hashing for the authentication flow.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and verifies password digests. Stored digests are
// self-describing (algorithm parameters and salt travel with the hash), so
// parameters can be tuned without invalidating existing accounts.
type PasswordHasher interface {
	// Hash derives a digest from the plain-text password and encodes it
	// together with its salt and parameters.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded digest. A
	// malformed digest is an error, not a mismatch.
	Verify(password, encoded string) (bool, error)
}
