// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"vinyl/config"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/service"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 25
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// The password must satisfy the strength policy; bcrypt handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt hash failed")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
// bcrypt's comparison is constant-time; the plaintext is never compared directly.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the registration complexity policy:
// 8-25 characters, at least one digit, one uppercase letter and one symbol,
// and no whitespace anywhere.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := len([]rune(password))
	if length < passwordMinLength || length > passwordMaxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password length must be between 8 and 25 characters")
	}

	var hasDigit, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return domainerrors.ErrPasswordStrength.WrapMessage("password must not contain whitespace")
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if !hasDigit {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one digit")
	}
	if !hasUpper {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one uppercase letter")
	}
	if !hasSymbol {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one symbol")
	}

	return nil
}
