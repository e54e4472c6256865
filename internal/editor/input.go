package editor

import (
	"slices"
	"strings"
)

// Input is the multi-line buffer behind the SQL editor. The cursor column is
// measured in display columns, not runes or bytes.
//
// An empty Input has no lines; row 0 is created on the first insert.
type Input struct {
	lines        []*Line
	cursorRow    int
	cursorColumn int
}

// CursorRow returns the row the cursor is on
func (in *Input) CursorRow() int {
	return in.cursorRow
}

// CursorColumn returns the cursor offset within its row, in display columns
func (in *Input) CursorColumn() int {
	return in.cursorColumn
}

// LineCount returns the number of rows in the buffer
func (in *Input) LineCount() int {
	return len(in.lines)
}

// Lines returns a copy of every row's text
func (in *Input) Lines() []string {
	out := make([]string, len(in.lines))
	for i, l := range in.lines {
		out[i] = l.String()
	}
	return out
}

// IsEmpty reports whether the buffer holds no text at all
func (in *Input) IsEmpty() bool {
	for _, l := range in.lines {
		if l.Len() > 0 {
			return false
		}
	}
	return true
}

// CombineLines returns the whole statement with rows joined by newlines.
func (in *Input) CombineLines() string {
	return strings.Join(in.Lines(), "\n")
}

// AppendChar inserts c at the cursor. A newline splits the current row at
// the cursor and moves to the start of the new row.
func (in *Input) AppendChar(c rune) {
	if len(in.lines) == 0 {
		in.lines = append(in.lines, &Line{})
		in.cursorRow = 0
		in.cursorColumn = 0
	}

	line := in.lines[in.cursorRow]
	idx := line.indexAt(in.cursorColumn)

	switch c {
	case '\n':
		tail := line.splitAt(idx)
		in.lines = slices.Insert(in.lines, in.cursorRow+1, &Line{text: tail})
		in.cursorRow++
		in.cursorColumn = 0
	default:
		line.insert(idx, c)
		in.cursorColumn += runeWidth(c)
	}
}

// Tab inserts a literal tab
func (in *Input) Tab() {
	in.AppendChar('\t')
}

// Pop removes the last rune of the current row. It never crosses into the
// previous row.
func (in *Input) Pop() (rune, bool) {
	if len(in.lines) == 0 {
		return 0, false
	}
	line := in.lines[in.cursorRow]
	if line.Len() == 0 {
		return 0, false
	}
	r := line.removeAt(line.Len() - 1)
	if w := line.Width(); in.cursorColumn > w {
		in.cursorColumn = w
	}
	return r, true
}

// upRow moves the cursor to the end of the previous row.
func (in *Input) upRow() {
	if in.cursorRow > 0 {
		in.cursorRow--
	}
	in.cursorColumn = in.lines[in.cursorRow].Width()
}

// Backspace deletes the rune before the cursor. Zero-width runes at the
// start of a row count as being before the cursor. With no rune before the
// cursor, the row is joined onto the end of the previous one, and at row 0
// it does nothing.
func (in *Input) Backspace() {
	if len(in.lines) == 0 {
		return
	}

	line := in.lines[in.cursorRow]
	idx := line.indexAt(in.cursorColumn)
	if idx == 0 {
		if in.cursorRow == 0 {
			in.cursorColumn = 0
			return
		}
		in.lines = slices.Delete(in.lines, in.cursorRow, in.cursorRow+1)
		in.upRow()
		prev := in.lines[in.cursorRow]
		prev.text = append(prev.text, line.text...)
		return
	}

	r := line.removeAt(idx - 1)
	in.cursorColumn -= runeWidth(r)
	if in.cursorColumn < 0 {
		in.cursorColumn = 0
	}
}

// Clear drops every row and resets the cursor
func (in *Input) Clear() {
	in.lines = nil
	in.cursorRow = 0
	in.cursorColumn = 0
}
