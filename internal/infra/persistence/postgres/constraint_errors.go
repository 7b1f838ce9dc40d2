package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// The *gorm.DB handed to the repositories is opened without the
// TranslateError option, so constraint violations reach this layer as raw
// *pgconn.PgError values. The helpers below match the driver error by
// SQLSTATE and keep the gorm sentinels as a fallback in case translation is
// switched on upstream.
func pgSQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgSQLState(err) == "23505" // unique_violation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return pgSQLState(err) == "23503" // foreign_key_violation
}

func isNotNullConstraintViolation(err error) bool {
	return pgSQLState(err) == "23502" // not_null_violation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return pgSQLState(err) == "23514" // check_violation
}
