// Package authutil provides password hashing helpers.
package authutil

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the work factor for stored password hashes.
const BcryptCost = 12

// dummyHash is compared against on lookups for accounts that do not exist,
// so the "no such user" and "wrong password" paths cost the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("invtrack.dummy.compare"), BcryptCost)

// HashPassword hashes a plaintext password for storage. The plaintext is
// never persisted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CompareDummy burns a bcrypt comparison without revealing anything.
// Callers invoke it on the missing-user path of a credential check.
func CompareDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
