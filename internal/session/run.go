package session

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrIncomplete reports that input ended before the last cell was typed.
var ErrIncomplete = errors.New("session ended before completion")

// InputSource yields key events in the order they were pressed.
type InputSource interface {
	NextEvent(ctx context.Context) (KeyEvent, error)
}

// Run draws the grid and feeds events from src into s until every cell is
// typed, ctx is cancelled or src fails. A source returning io.EOF ends the
// session with ErrIncomplete.
func Run(ctx context.Context, src InputSource, r Renderer, s *Session) (Result, error) {
	Apply(r, s.Frame())
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		ev, err := src.NextEvent(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s.Result(), ErrIncomplete
			}
			return s.Result(), fmt.Errorf("failed to read key event: %w", err)
		}
		Apply(r, s.Handle(ev))
	}
	return s.Result(), nil
}
