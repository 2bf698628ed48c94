// Package apikey generates and verifies partner API keys. The plain key is
// returned to the caller exactly once at provisioning time; only the bcrypt
// hash is stored.
package apikey

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("api key hashing failed")
	ErrKeyMismatch   = errors.New("api key mismatch")
	ErrInvalidKey    = errors.New("invalid api key")
)

const keyBytes = 32

func Generate() (string, error) {
	buf := make([]byte, keyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func Hash(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

func Compare(hash, key string) error {
	if hash == "" || key == "" {
		return ErrInvalidKey
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrKeyMismatch
		}
		return err
	}
	return nil
}
