package console

import (
	"strings"

	"github.com/nhath/sqlterm/internal/db"
)

// Projection describes the last successful query: its size, its latency
// and how far the result view has been scrolled.
type Projection struct {
	RowCount int
	// Elapsed is the wall time of the query in seconds
	Elapsed float64
	ScrollX int
	ScrollY int
	Result  *db.ResultSet
}

// Pan moves the scroll offset, keeping it inside the result bounds
func (p *Projection) Pan(dx, dy int) {
	p.ScrollX = clamp(p.ScrollX+dx, p.maxScrollX())
	p.ScrollY = clamp(p.ScrollY+dy, p.RowCount-1)
}

func (p *Projection) maxScrollX() int {
	if p.Result == nil {
		return 0
	}
	return len(p.Result.Columns) - 1
}

func clamp(v, hi int) int {
	if v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}

// View selects what the results pane shows
type View int

const (
	// ViewEmpty: nothing has been run yet
	ViewEmpty View = iota
	// ViewHistory: the most recent history entry as plain text
	ViewHistory
	// ViewTable: the tabular result of the last query
	ViewTable
)

func (v View) String() string {
	switch v {
	case ViewHistory:
		return "history"
	case ViewTable:
		return "table"
	default:
		return "empty"
	}
}

// Classify decides which view the results pane renders for s.
// A CREATE statement produces no rows worth a table, so its text is shown.
func Classify(s *State) View {
	last, ok := s.History.Last()
	if s.LastResult != nil {
		if ok && strings.HasPrefix(last, "CREATE") {
			return ViewHistory
		}
		return ViewTable
	}
	if ok {
		return ViewHistory
	}
	return ViewEmpty
}

// Point is a terminal cell
type Point struct {
	X, Y int
}

// CursorPosition returns the terminal cell of the editor cursor inside a
// bordered pane whose top-left corner is origin.
func CursorPosition(origin Point, s *State) Point {
	return Point{
		X: origin.X + s.Editor.CursorColumn() + 1,
		Y: origin.Y + s.Editor.CursorRow() + 1,
	}
}
