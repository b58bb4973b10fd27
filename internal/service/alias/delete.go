package alias

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "shortener-service/internal/domain/alias"
	"shortener-service/internal/lib/metrics"
	"shortener-service/internal/storage"
)

// DeleteStoredAlias removes alias. Deleting an alias that is not stored fails with
// a KindNoSuchAlias error.
func (s *Service) DeleteStoredAlias(ctx context.Context, alias string) error {
	const op = "alias.Service.DeleteStoredAlias"

	record, err := s.storage.AliasByName(ctx, alias)
	if errors.Is(err, storage.ErrAliasNotFound) {
		return domain.NoSuchAlias(alias)
	}
	if err != nil {
		return domain.Internal("failed to get alias", fmt.Errorf("%s: %w", op, err))
	}

	err = s.storage.DeleteAlias(ctx, record.ID)
	if errors.Is(err, storage.ErrAliasNotFound) {
		// Deleted concurrently between the lookup and the delete.
		return domain.NoSuchAlias(alias)
	}
	if err != nil {
		return domain.Internal("failed to delete alias", fmt.Errorf("%s: %w", op, err))
	}

	metrics.AliasesDeletedTotal.Inc()
	s.log.Info("alias deleted", slog.String("op", op), slog.String("alias", alias))

	return nil
}
