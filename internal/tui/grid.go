package tui

import (
	"strings"

	"github.com/verte-zerg/linetype/internal/session"
)

// Grid buffers drawn cells between refreshes. It implements session.Renderer.
type Grid struct {
	lines  [][]rune
	status [][]session.Status
	hint   session.Position
	frames int
}

// NewGrid returns an empty grid sized for lines.
func NewGrid(lines []string) *Grid {
	g := &Grid{
		lines:  make([][]rune, len(lines)),
		status: make([][]session.Status, len(lines)),
	}
	for i, line := range lines {
		g.lines[i] = []rune(line)
		g.status[i] = make([]session.Status, len(g.lines[i]))
	}
	return g
}

// DrawCell implements session.Renderer.
func (g *Grid) DrawCell(pos session.Position, r rune, status session.Status) {
	if !g.contains(pos) {
		return
	}
	g.lines[pos.Row][pos.Col] = r
	g.status[pos.Row][pos.Col] = status
}

// SetCursorHint implements session.Renderer.
func (g *Grid) SetCursorHint(pos session.Position) {
	g.hint = pos
}

// Refresh implements session.Renderer.
func (g *Grid) Refresh() {
	g.frames++
}

// Frames returns how many refreshes the grid received.
func (g *Grid) Frames() int {
	return g.frames
}

// Cell returns the rune and status drawn at pos.
func (g *Grid) Cell(pos session.Position) (rune, session.Status) {
	if !g.contains(pos) {
		return 0, session.Untyped
	}
	return g.lines[pos.Row][pos.Col], g.status[pos.Row][pos.Col]
}

// Progress returns the share of cells before the cursor hint, in percent.
func (g *Grid) Progress(done bool) int {
	total := 0
	typed := 0
	for i, line := range g.lines {
		total += len(line)
		if i < g.hint.Row {
			typed += len(line)
		}
	}
	if total == 0 || done {
		return 100
	}
	typed += g.hint.Col
	return typed * 100 / total
}

// Render draws the grid with st, one text line per row.
func (g *Grid) Render(st styles) string {
	rows := make([]string, len(g.lines))
	for i, line := range g.lines {
		var b strings.Builder
		for j, r := range line {
			b.WriteString(st.cell(r, g.status[i][j]))
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, "\n")
}

func (g *Grid) contains(pos session.Position) bool {
	return pos.Row >= 0 && pos.Row < len(g.lines) && pos.Col >= 0 && pos.Col < len(g.lines[pos.Row])
}
