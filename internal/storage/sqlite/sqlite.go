package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shortener-service/internal/domain/alias"
	"shortener-service/internal/storage"
	"shortener-service/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

// New initializes a new SQLite storage with the given file path.
func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", storagePath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// MigrateUp applies the embedded sqlite migrations, recording them in table.
func (s *Storage) MigrateUp(table string) error {
	const op = "storage.sqlite.MigrateUp"

	src, err := iofs.New(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{MigrationsTable: table})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// m is not closed: closing it would close s.db as well.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveAlias(ctx context.Context, aliasName, originalURL string) (int64, error) {
	const op = "storage.sqlite.SaveAlias"

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO aliases(alias, original_url) VALUES(?, ?)",
		aliasName, originalURL,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, translate(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) AliasByName(ctx context.Context, aliasName string) (alias.Record, error) {
	const op = "storage.sqlite.AliasByName"

	var rec alias.Record

	err := s.db.QueryRowContext(ctx,
		"SELECT id, alias, original_url FROM aliases WHERE alias = ?",
		aliasName,
	).Scan(&rec.ID, &rec.Alias, &rec.OriginalURL)
	if errors.Is(err, sql.ErrNoRows) {
		return alias.Record{}, storage.ErrAliasNotFound
	}
	if err != nil {
		return alias.Record{}, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

func (s *Storage) Aliases(ctx context.Context) ([]alias.Record, error) {
	const op = "storage.sqlite.Aliases"

	rows, err := s.db.QueryContext(ctx, "SELECT id, alias, original_url FROM aliases ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	records := make([]alias.Record, 0)
	for rows.Next() {
		var rec alias.Record
		if err = rows.Scan(&rec.ID, &rec.Alias, &rec.OriginalURL); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) DeleteAlias(ctx context.Context, id int64) error {
	const op = "storage.sqlite.DeleteAlias"

	res, err := s.db.ExecContext(ctx, "DELETE FROM aliases WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return storage.ErrAliasNotFound
	}

	return nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

func translate(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return err
	}

	if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %v", storage.ErrAliasExists, err)
	}

	return fmt.Errorf("%w: %v", storage.ErrConstraintViolation, err)
}
