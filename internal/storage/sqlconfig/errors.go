package sqlconfig

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when no row matches an id/owner pair.
	ErrNotFound = errors.New("record not found")
	// ErrUniqueViolation is returned when a write collides with a unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
)

const pqUniqueViolation = pq.ErrorCode("23505")

// translateError maps driver errors onto the package sentinels. Other errors pass through.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrUniqueViolation
	}
	return err
}
