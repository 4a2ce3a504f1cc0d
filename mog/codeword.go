package mog

import (
	"math/bits"
	"strings"
)

// The 24 points are laid out on the 4×6 MOG grid in row-major order:
//
//	0  |  0  1   2  3   4  5
//	1  |  6  7   8  9  10 11
//	ω  | 12 13  14 15  16 17
//	ω̄  | 18 19  20 21  22 23
//
// Row labels are GF(4) elements; the row index of a point equals its
// label's F4 value. Columns pair up into three bricks: {0,1}, {2,3}, {4,5}.

// NumPoints is the number of MOG grid cells.
const NumPoints = 24

// Point identifies one of the 24 grid cells, 0–23.
type Point uint8

// PointAt returns the point at the given row (0,1,ω,ω̄ as 0–3) and column (0–5).
func PointAt(row F4, col int) Point { return Point(int(row)*6 + col) }

// Row returns the point's row label.
func (p Point) Row() F4 { return F4(p / 6) }

// Col returns the point's column, 0–5.
func (p Point) Col() int { return int(p % 6) }

// Valid reports whether p indexes a grid cell.
func (p Point) Valid() bool { return p < NumPoints }

// Codeword is a 24-bit vector over GF(2), one bit per point. Despite the
// name it holds arbitrary vectors; IsCodeword tests Golay membership.
// The set of Golay codewords is closed under XOR of the underlying bits.
type Codeword uint32

const codewordMask Codeword = 1<<NumPoints - 1

// WordFromPoints builds the vector with exactly the given points set.
func WordFromPoints(pts ...Point) Codeword {
	var c Codeword
	for _, p := range pts {
		c |= 1 << p
	}
	return c
}

// Bit reports whether point p is set.
func (c Codeword) Bit(p Point) bool { return c>>p&1 == 1 }

// Set returns c with point p set.
func (c Codeword) Set(p Point) Codeword { return c | 1<<p }

// Clear returns c with point p cleared.
func (c Codeword) Clear(p Point) Codeword { return c &^ (1 << p) }

// Weight returns the number of set points.
func (c Codeword) Weight() int { return bits.OnesCount32(uint32(c)) }

// Contains reports whether every point of other is also set in c.
func (c Codeword) Contains(other Codeword) bool { return other&^c == 0 }

// Points returns the set points in ascending order.
func (c Codeword) Points() []Point {
	pts := make([]Point, 0, c.Weight())
	for v := uint32(c); v != 0; v &= v - 1 {
		pts = append(pts, Point(bits.TrailingZeros32(v)))
	}
	return pts
}

// column returns the 4-bit row pattern of column col (bit r = row r set).
func (c Codeword) column(col int) uint8 {
	var pat uint8
	for r := 0; r < 4; r++ {
		pat |= uint8(c>>(r*6+col)&1) << r
	}
	return pat
}

// String renders the vector as the 4×6 grid, set cells as '#'.
func (c Codeword) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		for col := 0; col < 6; col++ {
			if col > 0 {
				b.WriteByte(' ')
				if col%2 == 0 {
					b.WriteByte(' ')
				}
			}
			if c.Bit(PointAt(F4(r), col)) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
