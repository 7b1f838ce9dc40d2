// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Social edges are stored as ID sets:
// an edge A->B in Following must always be mirrored by A in B's Followers.
type User struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Username     string      // Unique login name.
	Email        string      // Unique contact email, compared case-insensitively.
	PasswordHash string      // bcrypt hash; the plaintext never reaches persistence.
	Admin        bool        // Grants ROLE_ADMIN claims when true.
	ProfileImage string      // Reference to the user's profile image, may be empty.
	Following    []uuid.UUID // IDs of users this user follows.
	Followers    []uuid.UUID // IDs of users following this user.
	Favorites    []uuid.UUID // IDs of albums this user marked as favorite.
	CreatedAt    time.Time   // Timestamp of when this account was created.
	UpdatedAt    time.Time   // Timestamp of the last modification to this account.
}

// Roles derives the role claims for this user. Every account carries RoleUser;
// RoleAdmin is added only when the stored admin flag is set.
func (u *User) Roles() Roles {
	roles := Roles{RoleUser}
	if u.Admin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// IsFollowing reports whether this user currently follows the given user ID.
func (u *User) IsFollowing(targetID uuid.UUID) bool {
	for _, id := range u.Following {
		if id == targetID {
			return true
		}
	}

	return false
}

// HasFavorite reports whether the given album ID is in this user's favorite set.
func (u *User) HasFavorite(albumID uuid.UUID) bool {
	for _, id := range u.Favorites {
		if id == albumID {
			return true
		}
	}

	return false
}
