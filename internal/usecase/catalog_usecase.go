package usecase

import (
	"context"

	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines the interface for read-only catalog browsing.
type CatalogUsecase interface {
	GetArtist(ctx context.Context, artistID uuid.UUID) (*entity.Artist, error)
	ListArtists(ctx context.Context) ([]*entity.Artist, error)
	GetAlbum(ctx context.Context, albumID uuid.UUID) (*entity.Album, error)
	ListAlbums(ctx context.Context) ([]*entity.Album, error)
	ListAlbumsByArtist(ctx context.Context, artistID uuid.UUID) ([]*entity.Album, error)
}
