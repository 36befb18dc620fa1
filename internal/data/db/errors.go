package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrDuplicate        = errors.New("duplicate value violates a unique constraint")
	ErrMissingReference = errors.New("referenced row does not exist")
	ErrCheckViolation   = errors.New("value violates a check constraint")
)

// Postgres SQLSTATE codes for integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Classify maps driver constraint errors onto the package sentinels while
// keeping the driver error in the chain. Other errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if sentinel := constraintSentinel(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

func constraintSentinel(err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) {
		switch se.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrDuplicate
		case sqlite3.ErrConstraintForeignKey:
			return ErrMissingReference
		case sqlite3.ErrConstraintCheck:
			return ErrCheckViolation
		}
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return ErrMissingReference
		case pgCheckViolation:
			return ErrCheckViolation
		}
	}
	return nil
}
