package repository

import (
	"context"
	"errors"

	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlbumNotFound is returned when an album lookup yields no record.
var ErrAlbumNotFound = errors.New("album not found")

// AlbumRepository defines the operations for album persistence, including
// the user<->album favorite relation and the derived average rating.
type AlbumRepository interface {
	// FindByID retrieves a single album by its unique ID, including its favorite set.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Album, error)

	// List retrieves all albums ordered by title.
	List(ctx context.Context) ([]*entity.Album, error)

	// ListByArtist retrieves all albums of one artist.
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]*entity.Album, error)

	// UpdateAverageRating overwrites the album's derived average rating.
	UpdateAverageRating(ctx context.Context, albumID uuid.UUID, average float64) error

	// AddFavorite inserts the favorite edge user->album. Both sides of the
	// relation live in one join row. Inserting an existing edge is a no-op.
	AddFavorite(ctx context.Context, userID, albumID uuid.UUID) error

	// RemoveFavorite deletes the favorite edge user->album. Removing an
	// absent edge is a no-op.
	RemoveFavorite(ctx context.Context, userID, albumID uuid.UUID) error

	// HasFavorite reports whether the favorite edge user->album exists.
	HasFavorite(ctx context.Context, userID, albumID uuid.UUID) (bool, error)

	// ListFavoriteAlbumIDsByUser returns the IDs of every album the user favorited.
	ListFavoriteAlbumIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// RemoveFavoritesByUser removes the user from the favorite set of every album.
	RemoveFavoritesByUser(ctx context.Context, userID uuid.UUID) error
}
