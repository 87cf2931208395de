// Package session implements the typing session state machine.
package session

// Position addresses a cell by line and column.
type Position struct {
	Row int
	Col int
}

// Before reports whether p comes strictly before o in reading order.
func (p Position) Before(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// State is an immutable snapshot of a typing session.
// Step returns a new State and never mutates its argument.
type State struct {
	lines  [][]rune
	cells  [][]Status
	policy KeyPolicy
	timer  Timer

	cursor   Position
	fault    Position
	hasFault bool
	errors   int
	total    int
}

// NewState returns the initial state for typing lines.
func NewState(lines []string, policy KeyPolicy, clock Clock) State {
	s := State{
		lines:  make([][]rune, len(lines)),
		cells:  make([][]Status, len(lines)),
		policy: policy,
		timer:  NewTimer(clock),
	}
	for i, line := range lines {
		s.lines[i] = []rune(line)
		s.cells[i] = make([]Status, len(s.lines[i]))
		s.total += len(s.lines[i])
	}
	return s
}

// Lines returns the target lines.
func (s State) Lines() []string {
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		out[i] = string(line)
	}
	return out
}

// Cursor returns the position of the next cell to type.
func (s State) Cursor() Position {
	return s.cursor
}

// Fault returns the earliest uncorrected mismatch, if any.
func (s State) Fault() (Position, bool) {
	return s.fault, s.hasFault
}

// Errors returns how many times an uncorrected mismatch was established.
func (s State) Errors() int {
	return s.errors
}

// TotalChars returns the number of cells in the session.
func (s State) TotalChars() int {
	return s.total
}

// Timer returns the session stopwatch.
func (s State) Timer() Timer {
	return s.timer
}

// Status returns the stored status of the cell at pos.
func (s State) Status(pos Position) Status {
	return s.cells[pos.Row][pos.Col]
}

// Done reports whether every cell has been typed.
func (s State) Done() bool {
	return s.cursor.Row >= len(s.lines)
}

// Frame returns the instructions that draw the whole grid from scratch.
func (s State) Frame() []Instruction {
	out := make([]Instruction, 0, s.total+3)
	for row, line := range s.lines {
		for col, r := range line {
			out = append(out, Instruction{Kind: DrawCell, Pos: Position{Row: row, Col: col}, Rune: r, Status: s.cells[row][col]})
		}
	}
	return s.finish(out)
}

// Step applies one key event and returns the next state together with the
// instructions that bring a renderer up to date.
func Step(s State, ev KeyEvent) (State, []Instruction) {
	if s.Done() || !s.policy.Admits(ev) {
		return s, nil
	}
	s.timer.Start()

	prev := s.cursor
	var out []Instruction
	switch {
	case ev.Kind == KeyBackspace:
		if s.cursor == (Position{}) {
			return s, nil
		}
		s.cursor = s.retreat(s.cursor)
		out = s.mark(out, s.cursor, Untyped)
		out = append(out, s.draw(prev))
	case s.hasFault && s.fault.Before(s.cursor):
		out = s.mark(out, s.cursor, Incorrect)
		s.cursor = s.advance(s.cursor)
	case ev.Rune == s.target(s.cursor):
		out = s.mark(out, s.cursor, Correct)
		s.hasFault = false
		s.cursor = s.advance(s.cursor)
	default:
		out = s.mark(out, s.cursor, Incorrect)
		if !s.hasFault {
			s.fault = s.cursor
			s.hasFault = true
			s.errors++
		}
		s.cursor = s.advance(s.cursor)
	}

	if s.Done() {
		s.timer.Stop()
	}
	return s, s.finish(out)
}

func (s State) target(pos Position) rune {
	return s.lines[pos.Row][pos.Col]
}

func (s State) draw(pos Position) Instruction {
	return Instruction{Kind: DrawCell, Pos: pos, Rune: s.target(pos), Status: s.cells[pos.Row][pos.Col]}
}

// mark stores status at pos, copying the touched row so earlier states keep theirs.
func (s *State) mark(out []Instruction, pos Position, status Status) []Instruction {
	cells := make([][]Status, len(s.cells))
	copy(cells, s.cells)
	row := make([]Status, len(cells[pos.Row]))
	copy(row, cells[pos.Row])
	row[pos.Col] = status
	cells[pos.Row] = row
	s.cells = cells
	return append(out, s.draw(pos))
}

func (s State) finish(out []Instruction) []Instruction {
	if !s.Done() {
		out = append(out,
			Instruction{Kind: DrawCell, Pos: s.cursor, Rune: s.target(s.cursor), Status: NextToType},
			Instruction{Kind: CursorHint, Pos: s.cursor},
		)
	}
	return append(out, Instruction{Kind: Refresh})
}

func (s State) advance(pos Position) Position {
	pos.Col++
	if pos.Col >= len(s.lines[pos.Row]) {
		pos.Row++
		pos.Col = 0
	}
	return pos
}

func (s State) retreat(pos Position) Position {
	if pos.Col > 0 {
		pos.Col--
		return pos
	}
	pos.Row--
	pos.Col = len(s.lines[pos.Row]) - 1
	return pos
}
