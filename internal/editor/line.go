// Package editor holds the SQL editing buffer: a list of lines with a
// cursor tracked in terminal display columns.
package editor

import (
	"slices"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the number of columns a tab advances the cursor.
const TabWidth = 4

// runeWidth returns the display width of r as the editor counts it.
func runeWidth(r rune) int {
	if r == '\t' {
		return TabWidth
	}
	return runewidth.RuneWidth(r)
}

// Line is a single row of text in the editor
type Line struct {
	text []rune
}

// String returns the stored text, tabs included
func (l *Line) String() string {
	return string(l.text)
}

// Width returns the display width of the line
func (l *Line) Width() int {
	w := 0
	for _, r := range l.text {
		w += runeWidth(r)
	}
	return w
}

// Len returns the number of runes in the line
func (l *Line) Len() int {
	return len(l.text)
}

// indexAt maps a display column to a rune index.
func (l *Line) indexAt(col int) int {
	w := 0
	for i, r := range l.text {
		rw := runeWidth(r)
		if w+rw > col {
			return i
		}
		w += rw
	}
	return len(l.text)
}

func (l *Line) insert(idx int, r rune) {
	l.text = slices.Insert(l.text, idx, r)
}

func (l *Line) removeAt(idx int) rune {
	r := l.text[idx]
	l.text = slices.Delete(l.text, idx, idx+1)
	return r
}

// splitAt truncates the line at idx and returns the cut tail.
func (l *Line) splitAt(idx int) []rune {
	tail := slices.Clone(l.text[idx:])
	l.text = l.text[:idx]
	return tail
}
