package alias

import (
	"context"
	"fmt"

	domain "shortener-service/internal/domain/alias"
)

// StoredURLs lists every stored alias in insertion order, with short URLs relative to baseURL.
func (s *Service) StoredURLs(ctx context.Context, baseURL string) ([]domain.StoredAlias, error) {
	const op = "alias.Service.StoredURLs"

	records, err := s.storage.Aliases(ctx)
	if err != nil {
		return nil, domain.Internal("failed to list aliases", fmt.Errorf("%s: %w", op, err))
	}

	stored := make([]domain.StoredAlias, 0, len(records))
	for _, record := range records {
		stored = append(stored, record.Display(baseURL))
	}

	return stored, nil
}
