package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nhath/sqlterm/internal/db"
)

type stubEngine struct {
	result *db.ResultSet
	err    error
	block  bool
	calls  []string
}

func (e *stubEngine) Execute(ctx context.Context, sql string) (*db.ResultSet, error) {
	e.calls = append(e.calls, sql)
	if e.block {
		<-ctx.Done()
		return nil, errors.New("interrupted")
	}
	return e.result, e.err
}

func rows(n int) *db.ResultSet {
	b := db.Batch{}
	for _i := 0; _i < n; _i++ {
		b.Rows = append(b.Rows, []string{"x", "y"})
	}
	return &db.ResultSet{Columns: []string{"a", "b"}, Batches: []db.Batch{b, b}, IsSelect: true}
}

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(context.Background(), NewState(Options{}), time.Second)
}

func typeKeys(d *Dispatcher, s string) *Submission {
	var sub *Submission
	for _, r := range s {
		k := Char(r)
		if r == '\n' {
			k = Key{Kind: KeyEnter}
		}
		if _, got := d.HandleKey(k); got != nil {
			sub = got
		}
	}
	return sub
}

func TestBrowsingKeys(t *testing.T) {
	d := newTestDispatcher()
	s := d.State

	if s.Mode != Browsing {
		t.Fatalf("initial mode = %s", s.Mode)
	}
	if a, _ := d.HandleKey(Char('2')); a != Continue || s.Tabs.Index != 2 {
		t.Errorf("digit 2: action %v, tab %d", a, s.Tabs.Index)
	}
	d.HandleKey(Char('7'))
	if s.Tabs.Index != 2 {
		t.Errorf("out of range digit changed tab to %d", s.Tabs.Index)
	}
	d.HandleKey(Char('x'))
	if s.Mode != Browsing {
		t.Errorf("unbound key changed mode")
	}
	d.HandleKey(Char('e'))
	if s.Mode != Editing {
		t.Fatalf("'e' did not enter editing")
	}
	d.HandleKey(Key{Kind: KeyEsc})
	if s.Mode != Browsing {
		t.Fatalf("esc did not return to browsing")
	}
	if a, _ := d.HandleKey(Char('q')); a != Exit {
		t.Errorf("'q' action = %v, want Exit", a)
	}
}

func TestEditingTypesIntoEditor(t *testing.T) {
	d := newTestDispatcher()
	d.HandleKey(Char('e'))
	typeKeys(d, "qe1")
	if got := d.State.Editor.Text(); got != "qe1" {
		t.Errorf("text = %q, want %q", got, "qe1")
	}
	if d.State.Mode != Editing || d.State.Tabs.Index != 0 {
		t.Errorf("editing keys leaked into browsing commands")
	}
	d.HandleKey(Key{Kind: KeyBackspace})
	d.HandleKey(Key{Kind: KeyTab})
	if got := d.State.Editor.Text(); got != "qe\t" {
		t.Errorf("text = %q", got)
	}
}

func TestSubmitSuccess(t *testing.T) {
	d := newTestDispatcher()
	e := &stubEngine{result: rows(3)}
	d.HandleKey(Char('e'))

	if sub := typeKeys(d, "SELECT a\n"); sub != nil {
		t.Fatal("submitted before ';'")
	}
	sub := typeKeys(d, "FROM t;\n")
	if sub == nil {
		t.Fatal("no submission after ';' and enter")
	}
	if d.State.Pending != sub {
		t.Fatal("submission not pending")
	}
	if d.State.Editor.Text() != "" {
		t.Errorf("editor not cleared")
	}

	c := sub.Run(e)
	if !d.State.Complete(c) {
		t.Fatal("completion dropped")
	}
	if e.calls[0] != "SELECT a\nFROM t;" {
		t.Errorf("engine got %q", e.calls[0])
	}
	p := d.State.LastResult
	if p == nil || p.RowCount != 6 || p.ScrollX != 0 || p.ScrollY != 0 {
		t.Fatalf("projection = %+v", p)
	}
	if last, _ := d.State.History.Last(); last != "SELECT a\nFROM t;" {
		t.Errorf("history last = %q", last)
	}
	if d.State.Pending != nil {
		t.Errorf("pending not cleared")
	}
}

func TestSubmitFailureKeepsResult(t *testing.T) {
	d := newTestDispatcher()
	prev := &Projection{RowCount: 1}
	d.State.LastResult = prev

	c := d.Submit(context.Background(), &stubEngine{err: errors.New("no such table: t")}, "SELECT * FROM t;")
	if c.Err == nil {
		t.Fatal("expected error")
	}
	if d.State.LastResult != prev {
		t.Errorf("failed query replaced the projection")
	}
	if last, _ := d.State.History.Last(); last != "no such table: t" {
		t.Errorf("history last = %q", last)
	}
}

func TestSecondStatementRefusedWhilePending(t *testing.T) {
	d := newTestDispatcher()
	d.HandleKey(Char('e'))
	first := typeKeys(d, "SELECT 1;\n")
	if first == nil {
		t.Fatal("first statement not submitted")
	}
	if second := typeKeys(d, "SELECT 2;\n"); second != nil {
		t.Fatal("second statement submitted while first pending")
	}
	if got := d.State.Editor.Text(); got != "SELECT 2;" {
		t.Errorf("buffer = %q, want statement kept", got)
	}
}

func TestInterruptCancelsPending(t *testing.T) {
	d := newTestDispatcher()
	d.HandleKey(Char('e'))
	sub := typeKeys(d, "SELECT sleep();\n")

	done := make(chan Completion)
	go func() { done <- sub.Run(&stubEngine{block: true}) }()
	d.HandleKey(Key{Kind: KeyInterrupt})

	c := <-done
	d.State.Complete(c)
	if last, _ := d.State.History.Last(); last != "query canceled" {
		t.Errorf("history last = %q", last)
	}
	if d.State.Mode != Editing {
		t.Errorf("interrupt changed mode")
	}
}

func TestTimeout(t *testing.T) {
	d := NewDispatcher(context.Background(), NewState(Options{}), 10*time.Millisecond)
	c := d.Submit(context.Background(), &stubEngine{block: true}, "SELECT 1;")
	if got := c.Message(); got != "query timed out after 10ms" {
		t.Errorf("message = %q", got)
	}
}

func TestStaleCompletionDropped(t *testing.T) {
	d := newTestDispatcher()
	d.HandleKey(Char('e'))
	sub := typeKeys(d, "SELECT 1;\n")

	if d.State.Complete(Completion{ID: sub.ID + 1, SQL: "other"}) {
		t.Error("stale completion applied")
	}
	if d.State.History.Len() != 0 || d.State.Pending == nil {
		t.Errorf("stale completion changed state")
	}
}

func TestPanInBrowsing(t *testing.T) {
	d := newTestDispatcher()
	d.State.LastResult = &Projection{RowCount: 3, Result: rows(1)}

	d.HandleKey(Key{Kind: KeyLeft})
	d.HandleKey(Key{Kind: KeyUp})
	p := d.State.LastResult
	if p.ScrollX != 0 || p.ScrollY != 0 {
		t.Errorf("scroll went negative: (%d,%d)", p.ScrollX, p.ScrollY)
	}
	for _i := 0; _i < 5; _i++ {
		d.HandleKey(Key{Kind: KeyRight})
		d.HandleKey(Key{Kind: KeyDown})
	}
	if p.ScrollX != 1 || p.ScrollY != 2 {
		t.Errorf("scroll = (%d,%d), want (1,2)", p.ScrollX, p.ScrollY)
	}
}

func TestEditingIgnoresArrows(t *testing.T) {
	d := newTestDispatcher()
	d.State.History.Append("SELECT 1;")
	d.HandleKey(Char('e'))
	typeKeys(d, "SELECT")

	for _, kind := range []KeyKind{KeyUp, KeyDown, KeyLeft, KeyRight, KeyOther} {
		action, sub := d.HandleKey(Key{Kind: kind})
		if action != Continue || sub != nil {
			t.Fatalf("key %d: got (%v, %v)", kind, action, sub)
		}
	}
	if got := d.State.Editor.Text(); got != "SELECT" {
		t.Errorf("editor text = %q, want %q", got, "SELECT")
	}
	if d.State.Mode != Editing {
		t.Errorf("mode = %s", d.State.Mode)
	}
}
