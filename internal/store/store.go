// Package store opens the backing database, applies schema migrations and
// wires up the repositories. One *sql.DB is opened per process and passed
// down explicitly; there is no package-level connection state.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/cryptox"
	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/migrations"
	"github.com/dmitrijs2005/recipekeeper/internal/models"
	"github.com/dmitrijs2005/recipekeeper/internal/repositories/recipes"
	"github.com/dmitrijs2005/recipekeeper/internal/repositories/users"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store bundles the open database handle and the repositories built on it.
type Store struct {
	db      *sql.DB
	logger  logging.Logger
	Users   users.Repository
	Recipes recipes.Repository

	newUsers func(dbx.DBTX) users.Repository
}

// Open connects to the store identified by dsn, runs pending migrations and
// returns the repository bundle. A dsn starting with postgres:// or
// postgresql:// selects the Postgres backend; anything else is treated as a
// SQLite file path or URI.
func Open(ctx context.Context, dsn string, logger logging.Logger) (*Store, error) {
	driver, dialect, dir := "sqlite", "sqlite3", "sqlite"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver, dialect, dir = "pgx", "postgres", "postgres"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	if err := runMigrations(ctx, db, dialect, dir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if driver == "pgx" {
		s.Users = users.NewPostgresRepository(db)
		s.Recipes = recipes.NewPostgresRepository(db)
		s.newUsers = func(tx dbx.DBTX) users.Repository { return users.NewPostgresRepository(tx) }
	} else {
		s.Users = users.NewSQLiteRepository(db)
		s.Recipes = recipes.NewSQLiteRepository(db)
		s.newUsers = func(tx dbx.DBTX) users.Repository { return users.NewSQLiteRepository(tx) }
	}

	logger.Info(ctx, "store opened", "dialect", dialect)
	return s, nil
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, dir)
}

// EnsureAdmin bootstraps the privileged account. It does nothing unless a
// password was explicitly configured; an existing admin account is left
// untouched.
func (s *Store) EnsureAdmin(ctx context.Context, password []byte) error {
	if len(password) == 0 {
		return nil
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newUsers(tx)

		exists, err := repo.UsernameExists(ctx, models.AdminUsername)
		if err != nil {
			return err
		}
		if exists {
			s.logger.Info(ctx, "admin account already present, leaving as is")
			return nil
		}

		hash, err := cryptox.HashPassword(password)
		if err != nil {
			return err
		}

		if _, err := repo.Create(ctx, models.AdminUsername, hash); err != nil {
			return err
		}
		s.logger.Info(ctx, "admin account bootstrapped")
		return nil
	})
}

// DB exposes the underlying handle for callers that need raw access (tests).
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
