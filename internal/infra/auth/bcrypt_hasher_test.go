package auth

import (
	"testing"

	"vinyl/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	return &bcryptHasher{cost: 4} // Minimum cost keeps the test suite fast.
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	strongPassword := "StrongPass123!"
	hash, err := hasher.Hash(strongPassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, strongPassword, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(strongPassword, hash))
}

func TestBcryptHasher_HashWithWeakPassword(t *testing.T) {
	hasher := newTestHasher()

	// Weak passwords that should fail the strength policy
	weakPasswords := []string{
		"Ab1!",                          // Too short
		"Abcdefghijklmnopqrstuvwxyz1!A", // Too long
		"Password!!",                    // No digit
		"password123!",                  // No uppercase
		"Password123",                   // No symbol
		"Pass word123!",                 // Contains whitespace
	}

	for _, weakPassword := range weakPasswords {
		_, err := hasher.Hash(weakPassword)
		assert.Error(t, err, "Expected error for weak password: %s", weakPassword)
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Valid$Phrase2024",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	invalidPasswords := []string{
		"",
		"Short1!",
		"nouppercase1!",
		"NODIGITSHERE!",
		"NoSymbols123",
		"Has Space123!",
		"Tab\tInside123!",
	}

	for _, password := range invalidPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.Error(t, err, "Expected error for invalid password: %s", password)
	}
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})
	assert.NotNil(t, hasher)
}
