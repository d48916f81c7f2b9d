package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL error codes we care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgUndefinedFunction   = "42883"
)

// pgError unwraps the pgx error carrying SQLSTATE and constraint details.
func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

// violatedConstraint returns the name of the violated constraint when the
// driver exposes it, falling back to scanning the message. Used to tell an
// email collision from a nickname collision when an insert races past the
// pre-checks.
func violatedConstraint(err error) string {
	if pgErr, ok := pgError(err); ok && pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}

	msg := err.Error()
	for _, name := range []string{"uni_users_email", "users_email_key", "uni_users_nickname", "users_nickname_key"} {
		if strings.Contains(msg, name) {
			return name
		}
	}

	return ""
}

func isEmailConstraint(name string) bool {
	return strings.Contains(name, "email")
}

func isNicknameConstraint(name string) bool {
	return strings.Contains(name, "nickname")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgForeignKeyViolation
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

// isUndefinedFunction reports whether the error means a SQL function does not
// exist. similarity() raises this when the pg_trgm extension is missing.
func isUndefinedFunction(err error) bool {
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgUndefinedFunction
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "does not exist") && strings.Contains(errMsg, "function")
}
