package repository

import (
	"context"
	"errors"

	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrArtistNotFound is returned when an artist lookup yields no record.
var ErrArtistNotFound = errors.New("artist not found")

// ArtistRepository defines read operations over the artist catalog.
type ArtistRepository interface {
	// FindByID retrieves a single artist by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error)

	// List retrieves all artists ordered by name.
	List(ctx context.Context) ([]*entity.Artist, error)
}
