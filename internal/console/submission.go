package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nhath/sqlterm/internal/db"
)

// Engine executes SQL text and returns its result
type Engine interface {
	Execute(ctx context.Context, sql string) (*db.ResultSet, error)
}

// Submission is one statement handed to the engine
type Submission struct {
	ID      uint64
	SQL     string
	Started time.Time
	Timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// Completion is the outcome of running a Submission
type Completion struct {
	ID      uint64
	SQL     string
	Result  *db.ResultSet
	Err     error
	Elapsed time.Duration
}

// Message returns the text recorded in history for a failed completion
func (c Completion) Message() string {
	switch {
	case c.Err == nil:
		return ""
	case errors.Is(c.Err, context.Canceled):
		return "query canceled"
	case errors.Is(c.Err, context.DeadlineExceeded):
		var te *timeoutError
		if errors.As(c.Err, &te) {
			return fmt.Sprintf("query timed out after %s", te.after)
		}
		return "query timed out"
	default:
		return c.Err.Error()
	}
}

type timeoutError struct {
	after time.Duration
}

func (e *timeoutError) Error() string {
	return fmt.Sprintf("query timed out after %s", e.after)
}

func (e *timeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

func newSubmission(parent context.Context, id uint64, sql string, timeout time.Duration) *Submission {
	var ctx context.Context
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	return &Submission{
		ID:      id,
		SQL:     sql,
		Started: time.Now(),
		Timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Run executes the statement and blocks until the engine returns or the
// submission is canceled.
func (s *Submission) Run(engine Engine) Completion {
	res, err := engine.Execute(s.ctx, s.SQL)
	c := Completion{
		ID:      s.ID,
		SQL:     s.SQL,
		Elapsed: time.Since(s.Started),
	}

	// Drivers report cancellation in their own words, so trust the context.
	switch ctxErr := s.ctx.Err(); {
	case errors.Is(ctxErr, context.DeadlineExceeded):
		err = &timeoutError{after: s.Timeout}
	case ctxErr != nil:
		err = ctxErr
	}

	if err != nil {
		log.Printf("query %d failed after %s: %v", s.ID, c.Elapsed, err)
		c.Err = err
		return c
	}
	log.Printf("query %d finished in %s", s.ID, c.Elapsed)
	c.Result = res
	return c
}

// Cancel aborts a running submission
func (s *Submission) Cancel() {
	log.Printf("query %d canceled", s.ID)
	s.cancel()
}

func (s *Submission) release() {
	s.cancel()
}
