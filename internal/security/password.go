// Package security wraps the argon2 password hashing primitive.
package security

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword derives an encoded argon2id hash from a plaintext password.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()

	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded hash.
func VerifyPassword(password, hash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(hash))
}
