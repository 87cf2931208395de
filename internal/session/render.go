package session

// Status is the display status of a cell.
type Status int

const (
	// Untyped cells have not been typed yet.
	Untyped Status = iota
	// Correct cells were typed as expected.
	Correct
	// Incorrect cells were mistyped or typed after an uncorrected mistake.
	Incorrect
	// NextToType marks the cell under the cursor. It is never stored.
	NextToType
)

func (s Status) String() string {
	switch s {
	case Untyped:
		return "untyped"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case NextToType:
		return "next"
	default:
		return "unknown"
	}
}

// InstructionKind selects the renderer call an Instruction maps to.
type InstructionKind int

const (
	// DrawCell draws Rune at Pos with Status.
	DrawCell InstructionKind = iota
	// CursorHint moves the cursor hint to Pos.
	CursorHint
	// Refresh flushes pending drawing.
	Refresh
)

// Instruction is a single rendering step produced by a state transition.
type Instruction struct {
	Kind   InstructionKind
	Pos    Position
	Rune   rune
	Status Status
}

// Renderer draws cells in grid coordinates relative to the text block.
type Renderer interface {
	DrawCell(pos Position, r rune, status Status)
	SetCursorHint(pos Position)
	Refresh()
}

// Apply replays instructions on r in order.
func Apply(r Renderer, instructions []Instruction) {
	for _, in := range instructions {
		switch in.Kind {
		case DrawCell:
			r.DrawCell(in.Pos, in.Rune, in.Status)
		case CursorHint:
			r.SetCursorHint(in.Pos)
		case Refresh:
			r.Refresh()
		}
	}
}
