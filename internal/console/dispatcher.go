package console

import (
	"context"
	"log"
	"time"
)

// DefaultQueryTimeout bounds a query when no timeout is configured
const DefaultQueryTimeout = 30 * time.Second

// Dispatcher routes key presses to the session state
type Dispatcher struct {
	State *State
	// Timeout bounds every submission; 0 disables the limit
	Timeout time.Duration

	ctx    context.Context
	nextID uint64
}

// NewDispatcher wraps s. Submissions derive their context from ctx.
func NewDispatcher(ctx context.Context, s *State, timeout time.Duration) *Dispatcher {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Dispatcher{State: s, Timeout: timeout, ctx: ctx}
}

// HandleKey applies k. When it completes a statement the new submission is
// returned and recorded as pending; the caller is expected to Run it.
func (d *Dispatcher) HandleKey(k Key) (Action, *Submission) {
	s := d.State

	if k.Kind == KeyInterrupt {
		if s.Pending != nil {
			s.Pending.Cancel()
		}
		return Continue, nil
	}

	switch s.Mode {
	case Editing:
		return Continue, d.handleEditing(k)
	default:
		return d.handleBrowsing(k), nil
	}
}

func (d *Dispatcher) handleBrowsing(k Key) Action {
	s := d.State
	switch k.Kind {
	case KeyChar:
		switch r := k.Rune; {
		case r == 'e':
			s.Mode = Editing
		case r == 'q':
			return Exit
		case r >= '0' && r <= '9':
			s.Tabs.Select(int(r - '0'))
		}
	case KeyLeft:
		d.pan(-1, 0)
	case KeyRight:
		d.pan(1, 0)
	case KeyUp:
		d.pan(0, -1)
	case KeyDown:
		d.pan(0, 1)
	}
	return Continue
}

func (d *Dispatcher) pan(dx, dy int) {
	if p := d.State.LastResult; p != nil {
		p.Pan(dx, dy)
	}
}

func (d *Dispatcher) handleEditing(k Key) *Submission {
	s := d.State
	switch k.Kind {
	case KeyChar:
		s.Editor.AppendChar(k.Rune)
	case KeyEnter:
		// One query at a time keeps history in submission order.
		if s.Pending != nil && s.Editor.Terminated() {
			return nil
		}
		if sql, ready := s.Editor.OnEnter(); ready {
			return d.begin(sql)
		}
	case KeyTab:
		s.Editor.OnTab()
	case KeyBackspace:
		s.Editor.OnBackspace()
	case KeyEsc:
		s.Mode = Browsing
	}
	return nil
}

func (d *Dispatcher) begin(sql string) *Submission {
	d.nextID++
	sub := newSubmission(d.ctx, d.nextID, sql, d.Timeout)
	d.State.Pending = sub
	log.Printf("query %d submitted", sub.ID)
	return sub
}

// Submit runs sql against engine and waits for it, applying the result to
// the state before returning.
func (d *Dispatcher) Submit(ctx context.Context, engine Engine, sql string) Completion {
	d.nextID++
	sub := newSubmission(ctx, d.nextID, sql, d.Timeout)
	d.State.Pending = sub
	c := sub.Run(engine)
	d.State.Complete(c)
	return c
}
