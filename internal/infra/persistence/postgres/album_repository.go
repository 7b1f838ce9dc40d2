// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vinyl/internal/domain/entity"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/repository"
	"vinyl/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// albumRepository implements the repository.AlbumRepository interface.
type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository is the constructor for albumRepository.
func NewAlbumRepository(db *gorm.DB) repository.AlbumRepository {
	return &albumRepository{
		db: db,
	}
}

// FindByID retrieves a single album by its unique ID, including its favorite set.
func (repo *albumRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Album, error) {
	var albumM model.AlbumModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&albumM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlbumNotFound
		}

		return nil, errors.Wrap(err, "failed to find album by id")
	}

	album := toAlbumDomain(&albumM)

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("album_id = ?", id).
		Pluck("user_id", &album.FavoritedBy).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load favorite set")
	}

	return album, nil
}

// List retrieves all albums ordered by title.
func (repo *albumRepository) List(ctx context.Context) ([]*entity.Album, error) {
	var albumModels []model.AlbumModel

	if err := repo.db.WithContext(ctx).
		Order("title asc").
		Find(&albumModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list albums")
	}

	albums := make([]*entity.Album, 0, len(albumModels))
	for i := range albumModels {
		albums = append(albums, toAlbumDomain(&albumModels[i]))
	}

	return albums, nil
}

// ListByArtist retrieves all albums of one artist.
func (repo *albumRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]*entity.Album, error) {
	var albumModels []model.AlbumModel

	if err := repo.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("release_year asc").
		Find(&albumModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list albums by artist")
	}

	albums := make([]*entity.Album, 0, len(albumModels))
	for i := range albumModels {
		albums = append(albums, toAlbumDomain(&albumModels[i]))
	}

	return albums, nil
}

// UpdateAverageRating overwrites the album's derived average rating.
func (repo *albumRepository) UpdateAverageRating(ctx context.Context, albumID uuid.UUID, average float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlbumModel{}).
		Where("id = ?", albumID).
		Update("average_rating", average)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update average rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlbumNotFound
	}

	return nil
}

// AddFavorite inserts the favorite edge user->album; existing edges are a no-op.
func (repo *albumRepository) AddFavorite(ctx context.Context, userID, albumID uuid.UUID) error {
	edge := &model.FavoriteModel{UserID: userID, AlbumID: albumID}

	if err := repo.db.WithContext(ctx).Create(edge).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Already a favorite; idempotent by contract.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAlbumNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite edge")
	}

	return nil
}

// RemoveFavorite deletes the favorite edge user->album; absent edges are a no-op.
func (repo *albumRepository) RemoveFavorite(ctx context.Context, userID, albumID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND album_id = ?", userID, albumID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite edge")
	}

	return nil
}

// HasFavorite reports whether the favorite edge user->album exists.
func (repo *albumRepository) HasFavorite(ctx context.Context, userID, albumID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND album_id = ?", userID, albumID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count favorite edges")
	}

	return count > 0, nil
}

// ListFavoriteAlbumIDsByUser returns the IDs of every album the user favorited.
func (repo *albumRepository) ListFavoriteAlbumIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var albumIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Pluck("album_id", &albumIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorite album ids")
	}

	return albumIDs, nil
}

// RemoveFavoritesByUser removes the user from the favorite set of every album.
func (repo *albumRepository) RemoveFavoritesByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite edges for user")
	}

	return nil
}

// toAlbumDomain converts a GORM AlbumModel to a domain Album entity.
func toAlbumDomain(data *model.AlbumModel) *entity.Album {
	if data == nil {
		return nil
	}

	return &entity.Album{
		ID:            data.ID,
		ArtistID:      data.ArtistID,
		Title:         data.Title,
		ReleaseYear:   data.ReleaseYear,
		Cover:         data.Cover,
		AverageRating: data.AverageRating,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
