package common

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

func Password2Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func ValidatePasswordAndHash(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateAdminPassword checks a login attempt against the configured shared secret.
// When ADMIN_PASSWORD_HASH is set it wins and is verified with bcrypt; the plain
// variant uses a constant-time compare.
func ValidateAdminPassword(password string) bool {
	if AdminPasswordHash != "" {
		return ValidatePasswordAndHash(password, AdminPasswordHash)
	}
	if AdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(AdminPassword)) == 1
}

// GenerateToken mints an unpredictable URL-safe session token from crypto/rand.
func GenerateToken() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}
