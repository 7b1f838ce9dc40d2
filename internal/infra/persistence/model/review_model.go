package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The rating bounds are also
// enforced by a database check constraint as a second line of defense.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlbumID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_reviews_album_author"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_reviews_album_author"`
	Content   string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// BearerTokenModel mirrors the 'bearer_tokens' table, the revocation ledger
// for issued access tokens.
type BearerTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BearerTokenModel) TableName() string {
	return "bearer_tokens"
}
