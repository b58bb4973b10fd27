package instrumented

import (
	"context"
	"errors"
	"time"

	"shortener-service/internal/domain/alias"
	"shortener-service/internal/lib/metrics"
	"shortener-service/internal/storage"
)

// Storage records operation counts and latencies for the wrapped storage.
type Storage struct {
	next storage.Storage
}

func New(next storage.Storage) *Storage {
	return &Storage{next: next}
}

func (s *Storage) SaveAlias(ctx context.Context, aliasName, originalURL string) (int64, error) {
	const op = "SaveAlias"
	start := time.Now()
	id, err := s.next.SaveAlias(ctx, aliasName, originalURL)
	s.recordMetrics(op, err, start)
	return id, err
}

func (s *Storage) AliasByName(ctx context.Context, aliasName string) (alias.Record, error) {
	const op = "AliasByName"
	start := time.Now()
	rec, err := s.next.AliasByName(ctx, aliasName)
	s.recordMetrics(op, err, start)
	return rec, err
}

func (s *Storage) Aliases(ctx context.Context) ([]alias.Record, error) {
	const op = "Aliases"
	start := time.Now()
	records, err := s.next.Aliases(ctx)
	s.recordMetrics(op, err, start)
	return records, err
}

func (s *Storage) DeleteAlias(ctx context.Context, id int64) error {
	const op = "DeleteAlias"
	start := time.Now()
	err := s.next.DeleteAlias(ctx, id)
	s.recordMetrics(op, err, start)
	return err
}

func (s *Storage) Close() error {
	return s.next.Close()
}

func (s *Storage) recordMetrics(operation string, err error, start time.Time) {
	duration := time.Since(start).Seconds()
	metrics.StorageOperationsTotal.WithLabelValues(operation, status(err)).Inc()
	metrics.StorageOperationDuration.WithLabelValues(operation).Observe(duration)
}

func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, storage.ErrAliasNotFound):
		return "not_found"
	case errors.Is(err, storage.ErrAliasExists):
		return "conflict"
	default:
		return "error"
	}
}

var _ storage.Storage = (*Storage)(nil)
