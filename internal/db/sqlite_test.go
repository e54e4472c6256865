// internal/db/sqlite_test.go
package db

import (
	"context"
	"errors"
	"testing"
)

func openMemory(t *testing.T, pageSize int) *SQLiteDriver {
	t.Helper()
	d := &SQLiteDriver{}
	if err := d.Connect(ConnectParams{Database: ":memory:", PageSize: pageSize}); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestSQLiteDriver(t *testing.T) {
	d := openMemory(t, 0)
	if err := d.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if d.Type() != SQLite {
		t.Errorf("Type() = %s", d.Type())
	}
}

func TestSQLiteExecuteBatches(t *testing.T) {
	ctx := context.Background()
	d := openMemory(t, 2)

	res, err := d.Execute(ctx, "CREATE TABLE t (id INTEGER, name TEXT)")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if res.IsSelect || len(res.Batches) != 0 {
		t.Errorf("DDL returned rows: %+v", res)
	}

	res, err = d.Execute(ctx, "INSERT INTO t VALUES (1, 'a'), (2, 'b'), (3, NULL)")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if res.RowsAffected != 3 {
		t.Errorf("RowsAffected = %d, want 3", res.RowsAffected)
	}

	res, err = d.Execute(ctx, "SELECT id, name FROM t ORDER BY id")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(res.Batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(res.Batches))
	}
	if res.RowCount() != 3 {
		t.Errorf("RowCount() = %d, want 3", res.RowCount())
	}
	rows := res.Rows()
	if rows[2][1] != "NULL" {
		t.Errorf("null formatted as %q", rows[2][1])
	}
}

func TestSQLiteExecuteError(t *testing.T) {
	d := openMemory(t, 0)
	_, err := d.Execute(context.Background(), "SELECT * FROM missing")
	if err == nil {
		t.Fatal("expected error")
	}
	var qe *QueryError
	if !errors.As(err, &qe) {
		t.Errorf("error %T is not a QueryError", err)
	}
}

func TestSQLiteExecuteCanceled(t *testing.T) {
	d := openMemory(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.Execute(ctx, "SELECT 1"); err == nil {
		t.Fatal("expected error on canceled context")
	}
}

func TestExecuteNotConnected(t *testing.T) {
	d := &SQLiteDriver{}
	_, err := d.Execute(context.Background(), "SELECT 1")
	var ce *ConnectionError
	if !errors.As(err, &ce) {
		t.Errorf("error = %v, want ConnectionError", err)
	}
}

func TestIsSelectLike(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"SELECT 1", true},
		{"  select 1", true},
		{"WITH x AS (SELECT 1) SELECT * FROM x", true},
		{"PRAGMA table_info(t)", true},
		{"INSERT INTO t VALUES (1)", false},
		{"CREATE TABLE t (id int)", false},
	}
	for _, tt := range tests {
		if got := isSelectLike(tt.query); got != tt.want {
			t.Errorf("isSelectLike(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestNewDriver(t *testing.T) {
	for _, typ := range []DriverType{Postgres, MySQL, SQLite} {
		d, err := NewDriver(typ)
		if err != nil {
			t.Fatalf("NewDriver(%s): %v", typ, err)
		}
		if d.Type() != typ {
			t.Errorf("NewDriver(%s).Type() = %s", typ, d.Type())
		}
	}
	if _, err := NewDriver("oracle"); err == nil {
		t.Error("expected error for unknown driver")
	}
}
