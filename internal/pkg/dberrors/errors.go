package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// ConstraintViolation returns the constraint name when err is a PostgreSQL
// foreign key or check violation.
func ConstraintViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	if pgErr.Code == foreignKeyViolation || pgErr.Code == checkViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
