// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including social edges.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by email. Comparison is case-insensitive.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user record. Social edges referencing the user
	// are removed by the database through cascading foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddFollow inserts the directed follow edge follower->target. Both sides
	// of the relation live in one join row, so the edge is atomic by design.
	// Inserting an existing edge is a no-op.
	AddFollow(ctx context.Context, followerID, targetID uuid.UUID) error

	// RemoveFollow deletes the follow edge follower->target. Removing an
	// absent edge is a no-op.
	RemoveFollow(ctx context.Context, followerID, targetID uuid.UUID) error

	// HasFollow reports whether the follow edge follower->target exists.
	HasFollow(ctx context.Context, followerID, targetID uuid.UUID) (bool, error)
}
