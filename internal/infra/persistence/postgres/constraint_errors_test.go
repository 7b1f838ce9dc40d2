package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func pgError(code, message string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, Message: message}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	duplicateFollow := pgError("23505", `duplicate key value violates unique constraint "user_follows_pkey"`)

	assert.True(t, isUniqueConstraintViolation(duplicateFollow))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(duplicateFollow, "failed to create follow edge")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))

	assert.False(t, isUniqueConstraintViolation(pgError("23503", "violates foreign key constraint")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset by peer")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	missingTarget := pgError("23503", `insert or update on table "user_follows" violates foreign key constraint`)

	assert.True(t, isForeignKeyConstraintViolation(missingTarget))
	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(missingTarget, "failed to create follow edge")))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.False(t, isForeignKeyConstraintViolation(pgError("23505", "duplicate key value")))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection reset by peer")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(pgError("23502", `null value in column "username"`)))
	assert.False(t, isNotNullConstraintViolation(pgError("23505", "duplicate key value")))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(pgError("23514", `violates check constraint "reviews_rating_check"`)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(pgError("23503", "violates foreign key constraint")))
}
