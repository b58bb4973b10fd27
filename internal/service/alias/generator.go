package alias

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shortener-service/internal/lib/metrics"
	"shortener-service/internal/lib/random"
	"shortener-service/internal/storage"
)

// MinGeneratedAliasSize is the shortest alias the generator produces.
const MinGeneratedAliasSize = 6

// ErrAliasSpaceExhausted means every attempt produced an alias that was already taken.
var ErrAliasSpaceExhausted = errors.New("could not allocate a free alias")

// RandomSource yields candidate aliases.
type RandomSource interface {
	String() (string, error)
}

// Generator produces random aliases that are not yet stored, giving up after
// a fixed number of attempts.
type Generator struct {
	log      *slog.Logger
	source   RandomSource
	provider AliasProvider
	attempts int
}

// NewGenerator builds a generator of aliases between MinGeneratedAliasSize and maxAliasSize long.
func NewGenerator(log *slog.Logger, provider AliasProvider, maxAliasSize, attempts int) (*Generator, error) {
	const op = "alias.NewGenerator"

	if maxAliasSize < MinGeneratedAliasSize {
		return nil, fmt.Errorf("%s: max alias size %d is below the minimum %d", op, maxAliasSize, MinGeneratedAliasSize)
	}

	source, err := random.NewSource(MinGeneratedAliasSize, maxAliasSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewGeneratorWithSource(log, provider, source, attempts), nil
}

// NewGeneratorWithSource builds a generator drawing candidates from source.
func NewGeneratorWithSource(log *slog.Logger, provider AliasProvider, source RandomSource, attempts int) *Generator {
	if attempts < 1 {
		attempts = 1
	}

	return &Generator{
		log:      log,
		source:   source,
		provider: provider,
		attempts: attempts,
	}
}

// Generate returns an alias that was free at the time of the check.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	alias, _, err := g.GenerateWithin(ctx, g.attempts)
	return alias, err
}

// GenerateWithin is Generate with an explicit candidate budget. It also reports how
// many candidates it drew, so callers retrying on save conflicts can share one budget.
func (g *Generator) GenerateWithin(ctx context.Context, budget int) (string, int, error) {
	const op = "alias.Generator.Generate"

	for attempt := 1; attempt <= budget; attempt++ {
		candidate, err := g.source.String()
		if err != nil {
			return "", attempt, fmt.Errorf("%s: %w", op, err)
		}

		_, err = g.provider.AliasByName(ctx, candidate)
		if errors.Is(err, storage.ErrAliasNotFound) {
			return candidate, attempt, nil
		}
		if err != nil {
			return "", attempt, fmt.Errorf("%s: %w", op, err)
		}

		metrics.AliasCollisionsTotal.Inc()
		g.log.Debug("generated alias already taken",
			slog.String("op", op),
			slog.String("alias", candidate),
			slog.Int("attempt", attempt),
		)
	}

	return "", budget, fmt.Errorf("%s: %w after %d attempts", op, ErrAliasSpaceExhausted, budget)
}
