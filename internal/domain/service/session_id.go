package service

// SessionIDGenerator produces opaque random identifiers for sessions and
// CSRF tokens. Abstracted so use cases never touch the entropy source.
type SessionIDGenerator interface {
	Generate() (string, error)
}
