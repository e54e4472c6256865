package editor

import (
	"testing"
)

func typeString(in *Input, s string) {
	for _, r := range s {
		in.AppendChar(r)
	}
}

func TestInputAppend(t *testing.T) {
	tests := []struct {
		name    string
		typed   string
		want    string
		wantRow int
		wantCol int
		lines   int
	}{
		{"empty", "", "", 0, 0, 0},
		{"single line", "SELECT 1", "SELECT 1", 0, 8, 1},
		{"newline", "SELECT\n1", "SELECT\n1", 1, 1, 2},
		{"trailing newline", "a\n", "a\n", 1, 0, 2},
		{"tab", "a\tb", "a\tb", 0, 6, 1},
		{"wide rune", "表x", "表x", 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			typeString(&in, tt.typed)
			if got := in.CombineLines(); got != tt.want {
				t.Errorf("CombineLines() = %q, want %q", got, tt.want)
			}
			if in.CursorRow() != tt.wantRow || in.CursorColumn() != tt.wantCol {
				t.Errorf("cursor = (%d,%d), want (%d,%d)", in.CursorRow(), in.CursorColumn(), tt.wantRow, tt.wantCol)
			}
			if in.LineCount() != tt.lines {
				t.Errorf("LineCount() = %d, want %d", in.LineCount(), tt.lines)
			}
		})
	}
}

func TestInputBackspaceMergesRows(t *testing.T) {
	var in Input
	typeString(&in, "SELECT *\nFROM t")
	for _i := 0; _i < 6; _i++ {
		in.Backspace()
	}
	if in.CursorRow() != 1 || in.CursorColumn() != 0 {
		t.Fatalf("cursor = (%d,%d), want (1,0)", in.CursorRow(), in.CursorColumn())
	}

	in.Backspace()
	if in.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", in.LineCount())
	}
	if in.CursorRow() != 0 || in.CursorColumn() != 8 {
		t.Errorf("cursor = (%d,%d), want (0,8)", in.CursorRow(), in.CursorColumn())
	}
	if got := in.CombineLines(); got != "SELECT *" {
		t.Errorf("CombineLines() = %q", got)
	}
}

func TestInputBackspaceWidths(t *testing.T) {
	var in Input
	typeString(&in, "a\t表")
	if in.CursorColumn() != 7 {
		t.Fatalf("column = %d, want 7", in.CursorColumn())
	}
	in.Backspace()
	if in.CursorColumn() != 5 {
		t.Errorf("after wide rune column = %d, want 5", in.CursorColumn())
	}
	in.Backspace()
	if in.CursorColumn() != 1 {
		t.Errorf("after tab column = %d, want 1", in.CursorColumn())
	}
	in.Backspace()
	if in.CursorColumn() != 0 || in.CombineLines() != "" {
		t.Errorf("got (%d, %q), want empty line", in.CursorColumn(), in.CombineLines())
	}
}

func TestInputBackspaceAtOrigin(t *testing.T) {
	var in Input
	in.Backspace()
	if in.LineCount() != 0 || in.CursorRow() != 0 || in.CursorColumn() != 0 {
		t.Fatalf("backspace on empty buffer changed state")
	}

	typeString(&in, "x")
	in.Backspace()
	in.Backspace()
	if in.CursorRow() != 0 || in.CursorColumn() != 0 || in.CombineLines() != "" {
		t.Errorf("backspace at origin changed state")
	}
}

func TestInputBackspaceZeroWidth(t *testing.T) {
	tests := []struct {
		name    string
		typed   string
		want    string
		wantRow int
		wantCol int
	}{
		{"first row", "\u200b", "", 0, 0},
		{"second row", "a\n\u200b", "a\n", 1, 0},
		{"combining mark", "e\u0301", "e", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			typeString(&in, tt.typed)
			in.Backspace()
			if got := in.CombineLines(); got != tt.want {
				t.Errorf("CombineLines() = %q, want %q", got, tt.want)
			}
			if in.CursorRow() != tt.wantRow || in.CursorColumn() != tt.wantCol {
				t.Errorf("cursor = (%d,%d), want (%d,%d)", in.CursorRow(), in.CursorColumn(), tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestInputNewlineBackspaceRoundTrip(t *testing.T) {
	var in Input
	typeString(&in, "abc")
	in.AppendChar('\n')
	in.Backspace()
	if in.CombineLines() != "abc" || in.CursorRow() != 0 || in.CursorColumn() != 3 {
		t.Errorf("got %q at (%d,%d)", in.CombineLines(), in.CursorRow(), in.CursorColumn())
	}
}

func TestInputPop(t *testing.T) {
	var in Input
	if _, ok := in.Pop(); ok {
		t.Fatal("Pop() on empty buffer reported a rune")
	}

	typeString(&in, "ab\n")
	if _, ok := in.Pop(); ok {
		t.Fatal("Pop() on empty row crossed rows")
	}
	if in.CursorRow() != 1 {
		t.Fatalf("row = %d, want 1", in.CursorRow())
	}

	in.Clear()
	typeString(&in, "ab")
	r, ok := in.Pop()
	if !ok || r != 'b' {
		t.Fatalf("Pop() = (%q, %v), want ('b', true)", r, ok)
	}
	if in.CursorColumn() != 1 {
		t.Errorf("column = %d, want 1", in.CursorColumn())
	}
}

func TestInputClear(t *testing.T) {
	var in Input
	typeString(&in, "a\nb")
	in.Clear()
	if in.LineCount() != 0 || in.CursorRow() != 0 || in.CursorColumn() != 0 || !in.IsEmpty() {
		t.Errorf("Clear() left state behind")
	}
}
