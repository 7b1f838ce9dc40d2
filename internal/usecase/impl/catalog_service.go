package impl

import (
	"context"
	"log/slog"

	"vinyl/internal/domain/entity"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/repository"
	"vinyl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. Pure reads, no
// transactions needed.
type catalogService struct {
	artistRepo repository.ArtistRepository
	albumRepo  repository.AlbumRepository
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ArtistRepo repository.ArtistRepository
	AlbumRepo  repository.AlbumRepository
	Logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		artistRepo: params.ArtistRepo,
		albumRepo:  params.AlbumRepo,
		logger:     params.Logger,
	}
}

// GetArtist returns a single artist by ID.
func (srv *catalogService) GetArtist(ctx context.Context, artistID uuid.UUID) (*entity.Artist, error) {
	artist, err := srv.artistRepo.FindByID(ctx, artistID)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return nil, domainerrors.ErrArtistNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load artist")
	}

	return artist, nil
}

// ListArtists returns all artists.
func (srv *catalogService) ListArtists(ctx context.Context) ([]*entity.Artist, error) {
	return srv.artistRepo.List(ctx)
}

// GetAlbum returns a single album by ID.
func (srv *catalogService) GetAlbum(ctx context.Context, albumID uuid.UUID) (*entity.Album, error) {
	album, err := srv.albumRepo.FindByID(ctx, albumID)
	if errors.Is(err, repository.ErrAlbumNotFound) {
		return nil, domainerrors.ErrAlbumNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load album")
	}

	return album, nil
}

// ListAlbums returns all albums.
func (srv *catalogService) ListAlbums(ctx context.Context) ([]*entity.Album, error) {
	return srv.albumRepo.List(ctx)
}

// ListAlbumsByArtist returns all albums of one artist.
func (srv *catalogService) ListAlbumsByArtist(ctx context.Context, artistID uuid.UUID) ([]*entity.Album, error) {
	if _, err := srv.artistRepo.FindByID(ctx, artistID); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, domainerrors.ErrArtistNotFound
		}

		return nil, errors.Wrap(err, "failed to load artist")
	}

	return srv.albumRepo.ListByArtist(ctx, artistID)
}
