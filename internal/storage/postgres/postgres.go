package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shortener-service/internal/domain/alias"
	"shortener-service/internal/storage"
	"shortener-service/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation  = "23505"
	codeNotNullViolation = "23502"
)

type Storage struct {
	db *sql.DB
}

// New opens a PostgreSQL connection pool for the given DSN.
func New(dsn string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// NewWithDB wraps an already opened database handle.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// MigrateUp applies the embedded postgres migrations, recording them in table.
func (s *Storage) MigrateUp(table string) error {
	const op = "storage.postgres.MigrateUp"

	src, err := iofs.New(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	driver, err := migratepg.WithInstance(s.db, &migratepg.Config{MigrationsTable: table})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// m is not closed: closing it would close s.db as well.
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveAlias(ctx context.Context, aliasName, originalURL string) (int64, error) {
	const op = "storage.postgres.SaveAlias"

	var id int64

	err := s.db.QueryRowContext(ctx,
		"INSERT INTO aliases (alias, original_url) VALUES ($1, $2) RETURNING id",
		aliasName, originalURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, translate(err))
	}

	return id, nil
}

func (s *Storage) AliasByName(ctx context.Context, aliasName string) (alias.Record, error) {
	const op = "storage.postgres.AliasByName"

	var rec alias.Record

	err := s.db.QueryRowContext(ctx,
		"SELECT id, alias, original_url FROM aliases WHERE alias = $1",
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
	const op = "storage.postgres.Aliases"

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
	const op = "storage.postgres.DeleteAlias"

	res, err := s.db.ExecContext(ctx, "DELETE FROM aliases WHERE id = $1", id)
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

func (s *Storage) Close() error {
	return s.db.Close()
}

func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %v", storage.ErrAliasExists, err)
	case codeNotNullViolation:
		return fmt.Errorf("%w: %v", storage.ErrConstraintViolation, err)
	}

	if pqErr.Code.Class() == "23" {
		return fmt.Errorf("%w: %v", storage.ErrConstraintViolation, err)
	}

	return err
}
