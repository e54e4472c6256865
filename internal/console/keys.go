// Package console holds the session state of the SQL console and the
// dispatcher that turns key presses into edits, tab switches and query
// submissions.
package console

// KeyKind classifies a key press independently of the terminal library
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyInterrupt
)

// Key is a decoded key press. Rune is only meaningful for KeyChar.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Char is shorthand for a printable key
func Char(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

// Action tells the run loop whether to keep going
type Action int

const (
	Continue Action = iota
	Exit
)

// Mode represents the input mode of the console
type Mode string

const (
	Browsing Mode = "BROWSING"
	Editing  Mode = "EDITING"
)
