package utils

import (
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// HashPassword produces a salted bcrypt hash; every call salts fresh, so
// the same password never hashes to the same string twice.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err // Return error if hashing fails
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. A
// malformed hash is just a mismatch, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
