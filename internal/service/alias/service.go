// Package alias implements the shortening service: validating and storing new
// aliases, resolving them for redirects, listing and deleting them.
package alias

import (
	"context"
	"fmt"
	"log/slog"

	domain "shortener-service/internal/domain/alias"
)

// Storage is the subset of the alias store the service relies on.
type Storage interface {
	SaveAlias(ctx context.Context, alias, originalURL string) (int64, error)
	AliasByName(ctx context.Context, alias string) (domain.Record, error)
	Aliases(ctx context.Context) ([]domain.Record, error)
	DeleteAlias(ctx context.Context, id int64) error
}

// Resolver looks aliases up for redirects. It may serve from a cache; existence
// checks before writes and deletes always go to Storage.
type Resolver interface {
	ResolveAlias(ctx context.Context, alias string) (domain.Record, error)
}

type Service struct {
	log       *slog.Logger
	storage   Storage
	resolver  Resolver
	validator *Validator
	generator *Generator
	attempts  int
}

type Option func(*Service)

// WithResolver serves ForwardedURL from r instead of Storage.
func WithResolver(r Resolver) Option {
	return func(s *Service) {
		s.resolver = r
	}
}

type storageResolver struct {
	storage Storage
}

func (r storageResolver) ResolveAlias(ctx context.Context, alias string) (domain.Record, error) {
	return r.storage.AliasByName(ctx, alias)
}

// New creates a shortening service. maxAliasSize bounds both custom and generated
// aliases; attempts bounds how many generated aliases are tried per request.
func New(log *slog.Logger, storage Storage, maxAliasSize, attempts int, opts ...Option) (*Service, error) {
	const op = "alias.New"

	generator, err := NewGenerator(log, storage, maxAliasSize, attempts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithGenerator(log, storage, NewValidator(maxAliasSize, storage), generator, attempts, opts...), nil
}

// NewWithGenerator wires a service from prepared parts.
func NewWithGenerator(log *slog.Logger, storage Storage, validator *Validator, generator *Generator, attempts int, opts ...Option) *Service {
	if attempts < 1 {
		attempts = 1
	}

	s := &Service{
		log:       log,
		storage:   storage,
		resolver:  storageResolver{storage: storage},
		validator: validator,
		generator: generator,
		attempts:  attempts,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
