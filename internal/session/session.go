package session

import "time"

// Result holds the final counters of a session.
type Result struct {
	TotalChars int
	Errors     int
	Elapsed    time.Duration
	Complete   bool
}

// Session owns the current State for event-driven callers.
type Session struct {
	lines  []string
	policy KeyPolicy
	clock  Clock
	state  State
}

// New starts a session over the given lines.
func New(lines []string, policy KeyPolicy, clock Clock) *Session {
	s := &Session{
		lines:  append([]string(nil), lines...),
		policy: policy,
		clock:  clock,
	}
	s.Restart()
	return s
}

// Restart discards all progress and starts over with the same lines.
func (s *Session) Restart() {
	s.state = NewState(s.lines, s.policy, s.clock)
}

// Handle applies ev and returns the resulting render instructions.
func (s *Session) Handle(ev KeyEvent) []Instruction {
	next, out := Step(s.state, ev)
	s.state = next
	return out
}

// State returns the current snapshot.
func (s *Session) State() State {
	return s.state
}

// Frame returns instructions that redraw the current grid.
func (s *Session) Frame() []Instruction {
	return s.state.Frame()
}

// Done reports whether the last cell has been typed.
func (s *Session) Done() bool {
	return s.state.Done()
}

// Result returns the counters gathered so far.
func (s *Session) Result() Result {
	return Result{
		TotalChars: s.state.TotalChars(),
		Errors:     s.state.Errors(),
		Elapsed:    s.state.Timer().Elapsed(),
		Complete:   s.state.Done(),
	}
}
