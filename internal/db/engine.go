package db

import (
	"context"
	"fmt"
	"log"
)

// Engine runs console submissions against a connected driver
type Engine struct {
	Driver Driver
}

// NewEngine wraps d
func NewEngine(d Driver) *Engine {
	return &Engine{Driver: d}
}

// Execute runs sql on the underlying driver
func (e *Engine) Execute(ctx context.Context, sql string) (*ResultSet, error) {
	if e == nil || e.Driver == nil {
		return nil, WrapConnectionError(fmt.Errorf("no database connected"))
	}
	res, err := e.Driver.Execute(ctx, sql)
	if err != nil {
		log.Printf("%s: %v", e.Driver.Type(), err)
		return nil, err
	}
	return res, nil
}

// Close releases the underlying connection
func (e *Engine) Close() error {
	if e == nil || e.Driver == nil {
		return nil
	}
	return e.Driver.Close()
}
