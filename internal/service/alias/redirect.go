package alias

import (
	"context"
	"errors"
	"fmt"

	domain "shortener-service/internal/domain/alias"
	"shortener-service/internal/storage"
)

// ForwardedURL returns the original URL stored under alias.
func (s *Service) ForwardedURL(ctx context.Context, alias string) (string, error) {
	const op = "alias.Service.ForwardedURL"

	record, err := s.resolver.ResolveAlias(ctx, alias)
	if errors.Is(err, storage.ErrAliasNotFound) {
		return "", domain.NoSuchAlias(alias)
	}
	if err != nil {
		return "", domain.Internal("failed to get alias", fmt.Errorf("%s: %w", op, err))
	}

	return record.OriginalURL, nil
}
