// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vinyl/internal/domain/entity"
	"vinyl/internal/domain/repository"
	"vinyl/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// artistRepository implements the repository.ArtistRepository interface.
type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository is the constructor for artistRepository.
func NewArtistRepository(db *gorm.DB) repository.ArtistRepository {
	return &artistRepository{
		db: db,
	}
}

// FindByID retrieves a single artist by their unique ID.
func (repo *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	var artistM model.ArtistModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&artistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtistNotFound
		}

		return nil, errors.Wrap(err, "failed to find artist by id")
	}

	return toArtistDomain(&artistM), nil
}

// List retrieves all artists ordered by name.
func (repo *artistRepository) List(ctx context.Context) ([]*entity.Artist, error) {
	var artistModels []model.ArtistModel

	if err := repo.db.WithContext(ctx).
		Order("name asc").
		Find(&artistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list artists")
	}

	artists := make([]*entity.Artist, 0, len(artistModels))
	for i := range artistModels {
		artists = append(artists, toArtistDomain(&artistModels[i]))
	}

	return artists, nil
}

// toArtistDomain converts a GORM ArtistModel to a domain Artist entity.
func toArtistDomain(data *model.ArtistModel) *entity.Artist {
	if data == nil {
		return nil
	}

	return &entity.Artist{
		ID:        data.ID,
		Name:      data.Name,
		Bio:       data.Bio,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
