package mog

import "math/bits"

// The extended binary Golay code [24,12,8], in MOG coordinates. Membership
// is a closed-form check on the grid: the six column counts share a parity,
// the top-row count has that same parity, and the six column scores form a
// hexacode word. The criterion is GF(2)-linear and holds for all twelve
// basis vectors below, so it holds exactly on the 4096-element code.

// DataBits is the dimension of the code.
const DataBits = 12

// colWord builds the vector selecting the given rows of one column.
func colWord(col int, rows ...F4) Codeword {
	var c Codeword
	for _, r := range rows {
		c = c.Set(PointAt(r, col))
	}
	return c
}

// fullCol is the vector selecting all four rows of one column.
func fullCol(col int) Codeword {
	return colWord(col, 0, 1, F4Omega, F4OmegaBar)
}

// golayBasis spans the code. The first five vectors are unions of column
// pairs; the rest pin down the hexacode structure across the columns.
var golayBasis = buildBasis()

func buildBasis() [DataBits]Codeword {
	var b [DataBits]Codeword
	for k := 1; k <= 5; k++ {
		b[k-1] = fullCol(0) | fullCol(k)
	}
	for i, v := range [3]F4{1, F4Omega, F4OmegaBar} {
		b[5+i] = colWord(0, 1, F4Omega, F4OmegaBar) | colWord(1, 0) |
			colWord(2, v) | colWord(3, v) | colWord(4, v) | colWord(5, v)
	}
	b[8] = colWord(0, 1, F4Omega, F4OmegaBar) | colWord(1, 1) |
		colWord(2, 0) | colWord(3, 1) | colWord(4, F4Omega) | colWord(5, F4OmegaBar)
	b[9] = colWord(0, 1, F4Omega, F4OmegaBar) | colWord(1, F4Omega) |
		colWord(2, 0) | colWord(3, F4Omega) | colWord(4, F4OmegaBar) | colWord(5, 1)
	b[10] = colWord(0, 1) | colWord(1, 1, F4Omega, F4OmegaBar) |
		colWord(2, 0) | colWord(3, 1) | colWord(4, F4OmegaBar) | colWord(5, F4Omega)
	b[11] = colWord(0, F4Omega) | colWord(1, 1, F4Omega, F4OmegaBar) |
		colWord(2, 0) | colWord(3, F4Omega) | colWord(4, 1) | colWord(5, F4OmegaBar)
	return b
}

// Basis returns the twelve spanning vectors. The returned slice is shared;
// callers must not modify it.
func Basis() []Codeword { return golayBasis[:] }

// IsCodeword reports Golay membership. Bits above the grid are ignored.
func (c Codeword) IsCodeword() bool {
	c &= codewordMask
	par := colTab.parity[c.column(0)]
	for col := 1; col < 6; col++ {
		if colTab.parity[c.column(col)] != par {
			return false
		}
	}
	if uint8(bits.OnesCount32(uint32(c&0x3f)))&1 != par {
		return false
	}
	return c.scores().IsHexWord()
}

// Systematic form. The first twelve grid positions are not an information
// set (the octad on rows ω,ω̄ of columns 2–5 vanishes there), so data bits
// live on the pivot positions of the reduced basis instead.
type rrefTables struct {
	rows   [DataBits]Codeword
	pivots [DataBits]Point
}

var rrefTab = buildRREF()

func buildRREF() rrefTables {
	var t rrefTables
	rows := golayBasis
	r := 0
	for p := Point(0); p < NumPoints && r < DataBits; p++ {
		piv := -1
		for i := r; i < DataBits; i++ {
			if rows[i].Bit(p) {
				piv = i
				break
			}
		}
		if piv < 0 {
			continue
		}
		rows[r], rows[piv] = rows[piv], rows[r]
		for i := 0; i < DataBits; i++ {
			if i != r && rows[i].Bit(p) {
				rows[i] ^= rows[r]
			}
		}
		t.pivots[r] = p
		r++
	}
	t.rows = rows
	return t
}

// Pivots returns the twelve positions carrying data bits under Encode,
// in ascending order.
func Pivots() []Point { return rrefTab.pivots[:] }

// Encode maps the low twelve bits of data to the unique codeword whose
// pivot positions carry exactly those bits. Encode is injective and its
// image is the whole code.
func Encode(data uint16) Codeword {
	var c Codeword
	for i := 0; i < DataBits; i++ {
		if data>>i&1 == 1 {
			c ^= rrefTab.rows[i]
		}
	}
	return c
}

// Data extracts the twelve data bits back out of a codeword, inverting
// Encode. On a non-codeword it returns the bits at the pivot positions.
func (c Codeword) Data() uint16 {
	var d uint16
	for i := 0; i < DataBits; i++ {
		if c.Bit(rrefTab.pivots[i]) {
			d |= 1 << i
		}
	}
	return d
}
