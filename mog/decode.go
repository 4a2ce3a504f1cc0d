package mog

import "math/bits"

// Syndrome decoding. The Golay code is self-dual, so the basis doubles as
// a parity-check matrix: syndrome bit i is the GF(2) inner product of the
// vector with basis vector i. A 4096-entry table maps each syndrome to its
// minimum-weight coset leader, filled once by enumerating error patterns
// in order of weight. The covering radius is 4, so the table is complete.

// syndrome computes the twelve parity checks of a vector.
func (c Codeword) syndrome() uint16 {
	var s uint16
	for i, b := range golayBasis {
		s |= uint16(bits.OnesCount32(uint32(c&b))&1) << i
	}
	return s
}

var cosetLeader = buildCosetLeaders()

func buildCosetLeaders() []Codeword {
	tab := make([]Codeword, 1<<DataBits)
	seen := make([]bool, 1<<DataBits)
	add := func(e Codeword) {
		if s := e.syndrome(); !seen[s] {
			seen[s] = true
			tab[s] = e
		}
	}
	add(0)
	for a := Point(0); a < NumPoints; a++ {
		add(1 << a)
	}
	for a := Point(0); a < NumPoints; a++ {
		for b := a + 1; b < NumPoints; b++ {
			add(1<<a | 1<<b)
		}
	}
	for a := Point(0); a < NumPoints; a++ {
		for b := a + 1; b < NumPoints; b++ {
			for c := b + 1; c < NumPoints; c++ {
				add(1<<a | 1<<b | 1<<c)
			}
		}
	}
	for a := Point(0); a < NumPoints; a++ {
		for b := a + 1; b < NumPoints; b++ {
			for c := b + 1; c < NumPoints; c++ {
				for d := c + 1; d < NumPoints; d++ {
					add(1<<a | 1<<b | 1<<c | 1<<d)
				}
			}
		}
	}
	return tab
}

// Decode returns the nearest codeword to c together with the points where
// the two differ. Up to three flipped bits this recovers the transmitted
// codeword exactly; at distance four several codewords are equally close
// and one is picked deterministically. Bits above the grid are ignored.
func (c Codeword) Decode() (Codeword, []Point) {
	c &= codewordMask
	e := cosetLeader[c.syndrome()]
	return c ^ e, e.Points()
}
