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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, including social edges.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return repo.loadWithEdges(ctx, &userM)
}

// FindByUsername retrieves a single user by their unique username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return repo.loadWithEdges(ctx, &userM)
}

// FindByEmail retrieves a single user by email, compared case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return repo.loadWithEdges(ctx, &userM)
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes a user record. Follow edges, reviews and token records are
// removed by the database's cascading foreign keys.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? OR followee_id = ?", id, id).
		Delete(&model.FollowModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete follow edges")
	}

	result = repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddFollow inserts the directed follow edge follower->target.
// The edge is a single join row, so inserting it is atomic; re-inserting an
// existing edge is treated as a no-op.
func (repo *userRepository) AddFollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	edge := &model.FollowModel{FollowerID: followerID, FolloweeID: targetID}

	if err := repo.db.WithContext(ctx).Create(edge).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Already following; idempotent by contract.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow edge")
	}

	return nil
}

// RemoveFollow deletes the follow edge follower->target; absent edges are a no-op.
func (repo *userRepository) RemoveFollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, targetID).
		Delete(&model.FollowModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete follow edge")
	}

	return nil
}

// HasFollow reports whether the follow edge follower->target exists.
func (repo *userRepository) HasFollow(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, targetID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count follow edges")
	}

	return count > 0, nil
}

// loadWithEdges attaches the user's follow edges and favorite album IDs to
// the mapped domain entity.
func (repo *userRepository) loadWithEdges(ctx context.Context, userM *model.UserModel) (*entity.User, error) {
	user := toUserDomain(userM)

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ?", userM.ID).
		Pluck("followee_id", &user.Following).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load following edges")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("followee_id = ?", userM.ID).
		Pluck("follower_id", &user.Followers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load follower edges")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userM.ID).
		Pluck("album_id", &user.Favorites).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load favorite albums")
	}

	return user, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Admin:        data.Admin,
		ProfileImage: data.ProfileImage,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Admin:        data.Admin,
		ProfileImage: data.ProfileImage,
	}
}
