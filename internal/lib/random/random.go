package random

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/jaevor/go-nanoid"
)

// Alphanumeric is the alphabet of generated strings.
const Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789"

// Source produces cryptographically secure alphanumeric strings whose length is
// drawn uniformly from [minSize, maxSize].
type Source struct {
	minSize    int
	generators []func() string
}

// NewSource prepares one generator per possible length.
func NewSource(minSize, maxSize int) (*Source, error) {
	if minSize < 1 || maxSize < minSize {
		return nil, fmt.Errorf("invalid size range [%d, %d]", minSize, maxSize)
	}

	generators := make([]func() string, 0, maxSize-minSize+1)
	for size := minSize; size <= maxSize; size++ {
		gen, err := nanoid.CustomASCII(Alphanumeric, size)
		if err != nil {
			return nil, fmt.Errorf("failed to create generator of size %d: %w", size, err)
		}
		generators = append(generators, gen)
	}

	return &Source{
		minSize:    minSize,
		generators: generators,
	}, nil
}

// String returns a new random string.
func (s *Source) String() (string, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.generators))))
	if err != nil {
		return "", fmt.Errorf("failed to pick length: %w", err)
	}

	return s.generators[idx.Int64()](), nil
}

// MinSize and MaxSize report the length bounds of the source.
func (s *Source) MinSize() int { return s.minSize }

func (s *Source) MaxSize() int { return s.minSize + len(s.generators) - 1 }
