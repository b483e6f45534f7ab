package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/uptrace/bun"
)

type widgetRecord struct {
	bun.BaseModel `bun:"table:storage_test_widgets"`

	ID   int64  `bun:",pk,autoincrement"`
	Name string `bun:"name,notnull"`
}

func TestOpenSQLiteAndCreateTables(t *testing.T) {
	ctx := context.Background()
	db, err := Open("sqlite", "file:storage_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := CreateTables(ctx, db, (*widgetRecord)(nil)); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}
	if err := CreateTables(ctx, db, (*widgetRecord)(nil)); err != nil {
		t.Fatalf("CreateTables should be idempotent: %v", err)
	}
	if _, err := db.NewInsert().Model(&widgetRecord{Name: "a"}).Exec(ctx); err != nil {
		t.Fatalf("insert: %v", err)
	}
	count, err := db.NewSelect().Model((*widgetRecord)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "dsn"); !errors.Is(err, ErrDriverUnsupported) {
		t.Fatalf("expected ErrDriverUnsupported, got %v", err)
	}
}
