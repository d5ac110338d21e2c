package util

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"unicode"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength   = 16
	hashLength   = 32
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4

	minPasswordLength = 8
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooWeak  = errors.New("password must include a letter and a number")
)

// Credential is an argon2id password hash with its salt, stored as the
// user_account password_hash and password_salt columns.
type Credential struct {
	Hash []byte
	Salt []byte
}

func CheckPasswordStrength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrPasswordTooShort
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrPasswordTooWeak
	}
	return nil
}

func NewCredential(password string) (Credential, error) {
	if password == "" {
		return Credential{}, errors.New("password cannot be empty")
	}
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return Credential{}, err
	}
	return Credential{Hash: derive(password, salt), Salt: salt}, nil
}

func (c Credential) Matches(password string) bool {
	if password == "" || len(c.Salt) == 0 || len(c.Hash) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(derive(password, c.Salt), c.Hash) == 1
}

func derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, hashLength)
}
