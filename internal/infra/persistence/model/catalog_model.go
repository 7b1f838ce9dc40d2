package model

import (
	"time"

	"github.com/google/uuid"
)

// ArtistModel mirrors the 'artists' table.
type ArtistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	Bio       string    `gorm:"type:text"`
	Image     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Albums []AlbumModel `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ArtistModel) TableName() string {
	return "artists"
}

// AlbumModel mirrors the 'albums' table. AverageRating is derived from the
// album's current reviews and rewritten on every review mutation.
type AlbumModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ArtistID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(200);not null;uniqueIndex:ux_albums_artist_title"`
	ReleaseYear   int
	Cover         string  `gorm:"type:varchar(255)"`
	AverageRating float64 `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Reviews []ReviewModel `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AlbumModel) TableName() string {
	return "albums"
}

// FavoriteModel mirrors the 'album_favorites' join table. As with follows,
// one row carries both sides of the user<->album favorite relation.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AlbumID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "album_favorites"
}
