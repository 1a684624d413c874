package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// ErrDuplicateKey marks writes rejected by a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

const pqUniqueViolation = "23505"

type duplicateKeyError struct {
	err error
}

func (e *duplicateKeyError) Error() string {
	return "duplicate key error: " + e.err.Error()
}

func (e *duplicateKeyError) Unwrap() error { return e.err }

func (e *duplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// IsDuplicateKey reports whether err comes from a unique constraint in either supported driver.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, ErrDuplicateKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func storeError(op, table string, err error) error {
	if IsDuplicateKey(err) {
		return &duplicateKeyError{err: err}
	}
	return fmt.Errorf("%s %s: %w", op, table, err)
}
