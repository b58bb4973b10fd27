package storage

import (
	"context"
	"errors"

	"shortener-service/internal/domain/alias"
)

var (
	ErrAliasNotFound = errors.New("alias not found")
	// ErrAliasExists is returned when the unique index on alias rejects an insert.
	ErrAliasExists = errors.New("alias already exists")
	// ErrConstraintViolation covers every other integrity failure, e.g. a NOT NULL column.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Storage is the alias store. Implementations enforce alias uniqueness themselves,
// so exactly one of two racing SaveAlias calls for the same alias succeeds.
//
//go:generate go run github.com/vektra/mockery/v3
type Storage interface {
	SaveAlias(ctx context.Context, alias, originalURL string) (int64, error)
	AliasByName(ctx context.Context, alias string) (alias.Record, error)
	Aliases(ctx context.Context) ([]alias.Record, error)
	DeleteAlias(ctx context.Context, id int64) error
	Close() error
}
