// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vinyl/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Roles carries whatever the client claimed; the service never honors it
// and always provisions a regular account.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	ProfileImage string
	Roles        []string
}

// LoginInput defines the data required to log in. UserAgent and IPAddress
// describe the client and are bound to the issued session.
type LoginInput struct {
	Username  string
	Password  string
	UserAgent string
	IPAddress string
}

// LogoutInput identifies the credentials to revoke on logout.
type LogoutInput struct {
	AccessToken string
	SessionID   string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued credentials after a successful login.
type LoginOutput struct {
	AccessToken string
	Session     *entity.Session
	User        *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
