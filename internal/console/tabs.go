package console

// DefaultTabTitles are used when no titles are configured
var DefaultTabTitles = []string{"SQL Editor", "Query History", "Logs"}

// Tabs is the list of panes and the one currently shown
type Tabs struct {
	Titles []string
	Index  int
}

// NewTabs returns tabs with the given titles, falling back to the defaults
func NewTabs(titles []string) Tabs {
	if len(titles) == 0 {
		titles = DefaultTabTitles
	}
	return Tabs{Titles: append([]string(nil), titles...)}
}

// Len returns the number of tabs
func (t *Tabs) Len() int {
	return len(t.Titles)
}

// Select switches to tab i. Out of range indices are ignored.
func (t *Tabs) Select(i int) bool {
	if i < 0 || i >= len(t.Titles) {
		return false
	}
	t.Index = i
	return true
}

// Current returns the title of the selected tab
func (t *Tabs) Current() string {
	if t.Index < len(t.Titles) {
		return t.Titles[t.Index]
	}
	return ""
}
