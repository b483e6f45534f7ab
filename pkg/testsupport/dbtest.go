package testsupport

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

var dbCounter atomic.Int64

// NewBunDB returns a bun handle over a private in-memory sqlite database with
// the tables for models created. The database is closed on test cleanup.
func NewBunDB(t testing.TB, models ...any) *bun.DB {
	t.Helper()

	name := fmt.Sprintf("file:editor_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	sqlDB, err := sql.Open("sqlite3", name)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx := context.Background()
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table %T: %v", model, err)
		}
	}
	return db
}
