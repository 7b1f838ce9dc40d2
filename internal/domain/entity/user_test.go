package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_Roles(t *testing.T) {
	regular := &User{Username: "listener"}
	assert.Equal(t, []string{"ROLE_USER"}, regular.Roles().ToStrings())

	admin := &User{Username: "curator", Admin: true}
	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, admin.Roles().ToStrings())
	assert.True(t, admin.Roles().Contains(RoleAdmin))
	assert.False(t, regular.Roles().Contains(RoleAdmin))
}

func TestUser_IsFollowing(t *testing.T) {
	target := uuid.New()
	user := &User{Following: []uuid.UUID{uuid.New(), target}}

	assert.True(t, user.IsFollowing(target))
	assert.False(t, user.IsFollowing(uuid.New()))
	assert.False(t, (&User{}).IsFollowing(target))
}

func TestUser_HasFavorite(t *testing.T) {
	album := uuid.New()
	user := &User{Favorites: []uuid.UUID{album}}

	assert.True(t, user.HasFavorite(album))
	assert.False(t, user.HasFavorite(uuid.New()))
}
