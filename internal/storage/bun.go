package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// ErrDriverUnsupported reports a driver Open does not know how to dial.
var ErrDriverUnsupported = errors.New("storage: unsupported driver")

// Open dials driver/dsn and wraps the connection with the matching bun
// dialect. SQLite connections are pinned to a single open connection so
// shared in-memory databases stay consistent.
func Open(driver, dsn string) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		sqlDB, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("storage: open sqlite: %w", err)
		}
		db := bun.NewDB(sqlDB, sqlitedialect.New())
		db.SetMaxOpenConns(1)
		return db, nil
	case "postgres":
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("storage: open postgres: %w", err)
		}
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrDriverUnsupported, driver)
	}
}

// CreateTables creates the tables backing models when they do not exist.
func CreateTables(ctx context.Context, db bun.IDB, models ...any) error {
	if db == nil {
		return errors.New("storage: database not configured")
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}
	return nil
}

// SelectAll lifts the page size go-repository-bun applies to List by
// default. A zero limit leaves the LIMIT clause out of the query.
func SelectAll() repository.SelectCriteria {
	return repository.SelectPaginate(0, 0)
}
