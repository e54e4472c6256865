package history

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStoreAt(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStoreAt: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreAddList(t *testing.T) {
	s := newTestStore(t)
	base := time.Now().Add(-time.Hour)

	for i, q := range []string{"SELECT 1;", "SELECT 2;", "DROP TABLE x;"} {
		e := &Entry{
			SessionID:   "s1",
			ProfileName: "local",
			Query:       q,
			ExecutedAt:  base.Add(time.Duration(i) * time.Minute),
			Status:      StatusSuccess,
		}
		if err := s.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if e.ID == 0 {
			t.Fatal("Add did not set ID")
		}
	}
	if err := s.Add(&Entry{ProfileName: "other", Query: "SELECT 3;", Status: StatusError, ErrorMessage: "boom"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries, err := s.List("local", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Query != "DROP TABLE x;" || entries[0].SessionID != "s1" {
		t.Errorf("newest entry = %+v", entries[0])
	}

	page, err := s.List("local", 1, 1)
	if err != nil || len(page) != 1 || page[0].Query != "SELECT 2;" {
		t.Errorf("List page = %+v, %v", page, err)
	}

	n, err := s.Count("local")
	if err != nil || n != 3 {
		t.Errorf("Count = %d, %v", n, err)
	}
}

func TestStoreSearchDelete(t *testing.T) {
	s := newTestStore(t)
	a := &Entry{ProfileName: "p", Query: "SELECT * FROM users;", Status: StatusSuccess}
	b := &Entry{ProfileName: "p", Query: "SELECT * FROM orders;", Status: StatusSuccess}
	s.Add(a)
	s.Add(b)

	found, err := s.Search("p", "users", 10)
	if err != nil || len(found) != 1 || found[0].ID != a.ID {
		t.Fatalf("Search = %+v, %v", found, err)
	}

	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := s.GetByID(a.ID)
	if err != nil || got != nil {
		t.Errorf("GetByID after delete = %+v, %v", got, err)
	}
	got, err = s.GetByID(b.ID)
	if err != nil || got == nil || got.Query != b.Query {
		t.Errorf("GetByID = %+v, %v", got, err)
	}
}

func TestStoreLimit(t *testing.T) {
	s := newTestStore(t)
	s.SetLimit(2)
	for i := 0; i < 4; i++ {
		s.Add(&Entry{ProfileName: "p", Query: "q", ExecutedAt: time.Now().Add(time.Duration(i) * time.Second), Status: StatusSuccess})
	}
	if n, _ := s.Count("p"); n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

func TestStoreCleanup(t *testing.T) {
	s := newTestStore(t)
	s.Add(&Entry{ProfileName: "p", Query: "old", ExecutedAt: time.Now().Add(-100 * 24 * time.Hour), Status: StatusSuccess})
	s.Add(&Entry{ProfileName: "p", Query: "new", Status: StatusSuccess})

	if err := s.cleanup(time.Now()); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	entries, _ := s.List("p", 10, 0)
	if len(entries) != 1 || entries[0].Query != "new" {
		t.Errorf("entries after cleanup = %+v", entries)
	}
}

func TestQueryPreview(t *testing.T) {
	e := Entry{Query: "SELECT *\n  FROM   users"}
	if got := e.QueryPreview(100); got != "SELECT * FROM users" {
		t.Errorf("QueryPreview = %q", got)
	}
	if got := e.QueryPreview(10); got != "SELECT ..." {
		t.Errorf("QueryPreview(10) = %q", got)
	}
}
