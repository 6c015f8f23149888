package utils

import "golang.org/x/crypto/bcrypt"

// HashPIN hashes an unlock PIN with bcrypt. The stored value is a salted
// one-way hash; the plaintext PIN is never persisted.
func HashPIN(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPIN compares a candidate PIN against its stored bcrypt hash.
func CheckPIN(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
