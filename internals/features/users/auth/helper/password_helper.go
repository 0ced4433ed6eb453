package helper

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword membuat bcrypt hash dari password plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash membandingkan hash tersimpan dengan kandidat password.
// bcrypt sudah constant-time di dalamnya.
func CheckPasswordHash(hashed, candidate string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(candidate))
}
