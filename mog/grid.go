package mog

import "strings"

// CellState is the display state of one grid cell.
type CellState uint8

const (
	// Unselected is an empty cell.
	Unselected CellState = iota
	// Selected marks a cell picked by the user.
	Selected
	// OctadCell marks a cell filled in by completion.
	OctadCell
	// ErrorCell marks a cell the decoder flipped.
	ErrorCell
)

func (s CellState) String() string {
	switch s {
	case Unselected:
		return "unselected"
	case Selected:
		return "selected"
	case OctadCell:
		return "octad"
	case ErrorCell:
		return "error"
	default:
		return "invalid"
	}
}

// render glyphs, one byte per state.
var cellGlyphs = [4]byte{'.', '#', 'O', 'X'}

// Grid holds the display state of all 24 cells, indexed by point.
type Grid [NumPoints]CellState

// Word collects the cells in any of the given states into a vector.
func (g Grid) Word(states ...CellState) Codeword {
	var c Codeword
	for p := Point(0); p < NumPoints; p++ {
		for _, s := range states {
			if g[p] == s {
				c = c.Set(p)
				break
			}
		}
	}
	return c
}

// Permute moves every cell's state to the image of its point under perm.
func (g Grid) Permute(perm Perm) Grid {
	var out Grid
	for p := Point(0); p < NumPoints; p++ {
		out[perm[p]] = g[p]
	}
	return out
}

// String renders the grid, one row per line: '.' unselected, '#' selected,
// 'O' completed, 'X' error.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		for col := 0; col < 6; col++ {
			if col > 0 {
				b.WriteByte(' ')
				if col%2 == 0 {
					b.WriteByte(' ')
				}
			}
			b.WriteByte(cellGlyphs[g[PointAt(F4(r), col)]])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
