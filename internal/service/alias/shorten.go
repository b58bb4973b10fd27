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

const (
	sourceCustom    = "custom"
	sourceGenerated = "generated"
)

// Shorten validates req, stores it under its custom alias or a generated one and
// returns the short URL relative to baseURL.
func (s *Service) Shorten(ctx context.Context, req *domain.ShortenRequest, baseURL string) (domain.ShortenResponse, error) {
	const op = "alias.Service.Shorten"

	log := s.log.With(slog.String("op", op))

	result, err := s.validator.Validate(ctx, req)
	if err != nil {
		return domain.ShortenResponse{}, domain.Internal("failed to validate request", fmt.Errorf("%s: %w", op, err))
	}

	if !result.Valid() {
		metrics.ValidationFailuresTotal.Inc()
		log.Info("shorten request rejected", slog.Any("reasons", result.Errors))

		return domain.ShortenResponse{}, domain.ValidationFailed(result.Errors)
	}

	fullURL := req.FullURL.String()

	var alias string
	if req.CustomAlias != nil {
		alias, err = s.saveCustom(ctx, *req.CustomAlias, fullURL)
	} else {
		alias, err = s.saveGenerated(ctx, fullURL)
	}
	if err != nil {
		return domain.ShortenResponse{}, err
	}

	log.Info("alias created", slog.String("alias", alias))

	return domain.ShortenResponse{ShortURL: domain.ShortURL(baseURL, alias)}, nil
}

func (s *Service) saveCustom(ctx context.Context, alias, fullURL string) (string, error) {
	const op = "alias.Service.saveCustom"

	_, err := s.storage.SaveAlias(ctx, alias, fullURL)
	if errors.Is(err, storage.ErrAliasExists) {
		// Lost the race against a concurrent request for the same alias.
		metrics.ValidationFailuresTotal.Inc()
		return "", domain.ValidationFailed([]string{fmt.Sprintf(msgAliasTaken, alias)})
	}
	if err != nil {
		return "", domain.Internal("failed to save alias", fmt.Errorf("%s: %w", op, err))
	}

	metrics.AliasesCreatedTotal.WithLabelValues(sourceCustom).Inc()

	return alias, nil
}

// saveGenerated draws at most s.attempts candidates in total, counting both
// candidates found taken by the lookup and those rejected by the save.
func (s *Service) saveGenerated(ctx context.Context, fullURL string) (string, error) {
	const op = "alias.Service.saveGenerated"

	for remaining := s.attempts; remaining > 0; {
		alias, used, err := s.generator.GenerateWithin(ctx, remaining)
		remaining -= used
		if errors.Is(err, ErrAliasSpaceExhausted) {
			break
		}
		if err != nil {
			return "", domain.Internal("failed to generate alias", fmt.Errorf("%s: %w", op, err))
		}

		_, err = s.storage.SaveAlias(ctx, alias, fullURL)
		if errors.Is(err, storage.ErrAliasExists) {
			metrics.AliasCollisionsTotal.Inc()
			continue
		}
		if err != nil {
			return "", domain.Internal("failed to save alias", fmt.Errorf("%s: %w", op, err))
		}

		metrics.AliasesCreatedTotal.WithLabelValues(sourceGenerated).Inc()

		return alias, nil
	}

	return "", domain.Internal(ErrAliasSpaceExhausted.Error(),
		fmt.Errorf("%s: %w after %d attempts", op, ErrAliasSpaceExhausted, s.attempts))
}
