package console

import (
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		result  bool
		want    View
	}{
		{"nothing run", nil, false, ViewEmpty},
		{"error only", []string{"syntax error"}, false, ViewHistory},
		{"select", []string{"SELECT 1;"}, true, ViewTable},
		{"create", []string{"CREATE TABLE t (a int);"}, true, ViewHistory},
		{"lowercase create", []string{"create table t (a int);"}, true, ViewTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(Options{})
			for _, h := range tt.history {
				s.History.Append(h)
			}
			if tt.result {
				s.LastResult = &Projection{}
			}
			if got := Classify(s); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCursorPosition(t *testing.T) {
	s := NewState(Options{})
	for _, r := range "ab\n\tc" {
		s.Editor.AppendChar(r)
	}
	got := CursorPosition(Point{X: 2, Y: 5}, s)
	if got != (Point{X: 2 + 5 + 1, Y: 5 + 1 + 1}) {
		t.Errorf("CursorPosition() = %+v", got)
	}
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Append(fmt.Sprint(i))
	}
	got := h.Entries()
	if len(got) != 3 || got[0] != "2" || got[2] != "4" {
		t.Errorf("Entries() = %v", got)
	}

	unbounded := NewHistory(0)
	for i := 0; i < 2000; i++ {
		unbounded.Append(fmt.Sprint(i))
	}
	if unbounded.Len() != 2000 {
		t.Errorf("unbounded Len() = %d", unbounded.Len())
	}
}

func TestTabs(t *testing.T) {
	tabs := NewTabs(nil)
	if tabs.Len() != 3 || tabs.Current() != "SQL Editor" {
		t.Fatalf("default tabs = %+v", tabs)
	}
	if tabs.Select(3) || tabs.Select(-1) {
		t.Error("out of range select succeeded")
	}
	if !tabs.Select(1) || tabs.Current() != "Query History" {
		t.Errorf("Select(1) -> %q", tabs.Current())
	}
}
