package editor

// Editor wraps an Input and tracks whether the statement being typed has
// been terminated with a semicolon.
type Editor struct {
	input Input
	// sqlTerminated is set once ';' is typed and decides what Enter does.
	sqlTerminated bool
}

// New returns an empty editor
func New() *Editor {
	return &Editor{}
}

// Input exposes the underlying buffer for read-side queries
func (e *Editor) Input() *Input {
	return &e.input
}

// Terminated reports whether a ';' has been typed since the last submission
func (e *Editor) Terminated() bool {
	return e.sqlTerminated
}

// CursorRow returns the cursor row
func (e *Editor) CursorRow() int {
	return e.input.CursorRow()
}

// CursorColumn returns the cursor column in display columns
func (e *Editor) CursorColumn() int {
	return e.input.CursorColumn()
}

// Text returns the flattened buffer
func (e *Editor) Text() string {
	return e.input.CombineLines()
}

// AppendChar types c into the buffer
func (e *Editor) AppendChar(c rune) {
	e.input.AppendChar(c)
	if c == ';' {
		e.sqlTerminated = true
	}
}

// OnEnter either continues the statement on a new line or, once the
// statement is terminated, hands back its text and resets the editor.
func (e *Editor) OnEnter() (string, bool) {
	if !e.sqlTerminated {
		e.input.AppendChar('\n')
		return "", false
	}
	sql := e.input.CombineLines()
	e.Reset()
	return sql, true
}

// OnBackspace deletes backwards
func (e *Editor) OnBackspace() {
	e.input.Backspace()
}

// OnTab inserts a tab
func (e *Editor) OnTab() {
	e.input.Tab()
}

// Reset clears the buffer and the termination flag.
func (e *Editor) Reset() {
	e.input.Clear()
	e.sqlTerminated = false
}
