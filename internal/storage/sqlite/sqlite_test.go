package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"shortener-service/internal/storage"
	"shortener-service/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.New(filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.MigrateUp("migrations"))

	return s
}

func TestStorage_MigrateUpIsIdempotent(t *testing.T) {
	s := newStorage(t)

	require.NoError(t, s.MigrateUp("migrations"))
}

func TestStorage_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	id, err := s.SaveAlias(ctx, "my-alias", "http://example.com")
	require.NoError(t, err)
	assert.Positive(t, id)

	rec, err := s.AliasByName(ctx, "my-alias")
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "my-alias", rec.Alias)
	assert.Equal(t, "http://example.com", rec.OriginalURL)
}

func TestStorage_AliasByName_NotFound(t *testing.T) {
	s := newStorage(t)

	_, err := s.AliasByName(context.Background(), "missing")
	require.ErrorIs(t, err, storage.ErrAliasNotFound)
}

func TestStorage_AliasIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	_, err := s.SaveAlias(ctx, "Abc123", "http://upper.example.com")
	require.NoError(t, err)
	_, err = s.SaveAlias(ctx, "abc123", "http://lower.example.com")
	require.NoError(t, err)

	rec, err := s.AliasByName(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "http://lower.example.com", rec.OriginalURL)
}

func TestStorage_DuplicateAliasRejected(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	_, err := s.SaveAlias(ctx, "dup", "http://one.example.com")
	require.NoError(t, err)

	_, err = s.SaveAlias(ctx, "dup", "http://two.example.com")
	require.ErrorIs(t, err, storage.ErrAliasExists)

	rec, err := s.AliasByName(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "http://one.example.com", rec.OriginalURL)
}

func TestStorage_SameURLUnderTwoAliases(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	_, err := s.SaveAlias(ctx, "first", "http://example.com")
	require.NoError(t, err)
	_, err = s.SaveAlias(ctx, "second", "http://example.com")
	require.NoError(t, err)
}

func TestStorage_ConcurrentSaveHasOneWinner(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	const writers = 8

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		wins   int
		losses int
	)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := s.SaveAlias(ctx, "race", "http://example.com")

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
				return
			}
			assert.ErrorIs(t, err, storage.ErrAliasExists)
			losses++
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, writers-1, losses)
}

func TestStorage_AliasesInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	empty, err := s.Aliases(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"b2", "a1", "c3"} {
		_, err = s.SaveAlias(ctx, name, "http://"+name+".example.com")
		require.NoError(t, err)
	}

	records, err := s.Aliases(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "b2", records[0].Alias)
	assert.Equal(t, "a1", records[1].Alias)
	assert.Equal(t, "c3", records[2].Alias)
}

func TestStorage_DeleteAlias(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	id, err := s.SaveAlias(ctx, "del-me", "http://x.example.com")
	require.NoError(t, err)

	require.NoError(t, s.DeleteAlias(ctx, id))

	_, err = s.AliasByName(ctx, "del-me")
	require.ErrorIs(t, err, storage.ErrAliasNotFound)

	err = s.DeleteAlias(ctx, id)
	require.ErrorIs(t, err, storage.ErrAliasNotFound)
}

func TestStorage_IDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	first, err := s.SaveAlias(ctx, "one", "http://example.com")
	require.NoError(t, err)
	require.NoError(t, s.DeleteAlias(ctx, first))

	second, err := s.SaveAlias(ctx, "one", "http://example.com")
	require.NoError(t, err)
	assert.Greater(t, second, first)
}
