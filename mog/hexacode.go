package mog

// The hexacode is the [6,3,4] code over GF(4) underlying the MOG: one
// symbol per grid column. A 24-bit vector is a Golay codeword iff its six
// column scores form a hexacode word and the column/row-0 parity condition
// holds (see golay.go). All tables here are derived once at startup.

// HexWord is a length-6 word over GF(4), one symbol per column.
type HexWord [6]F4

// hexBasis spans the hexacode over GF(4). The three words are the column
// scores of the Golay basis vectors that are not unions of column pairs.
var hexBasis = [3]HexWord{
	{0, 1, 0, 1, F4Omega, F4OmegaBar},
	{1, 0, 0, 1, F4OmegaBar, F4Omega},
	{0, 0, 1, 1, 1, 1},
}

// hexWords is the full 64-word table, generated from hexBasis.
var hexWords = buildHexWords()

func buildHexWords() []HexWord {
	words := make([]HexWord, 0, 64)
	for a := F4(0); a < 4; a++ {
		for b := F4(0); b < 4; b++ {
			for c := F4(0); c < 4; c++ {
				var w HexWord
				for i := 0; i < 6; i++ {
					w[i] = a.Mul(hexBasis[0][i]).
						Add(b.Mul(hexBasis[1][i])).
						Add(c.Mul(hexBasis[2][i]))
				}
				words = append(words, w)
			}
		}
	}
	return words
}

// HexWords returns the 64 hexacode words. The returned slice is shared;
// callers must not modify it.
func HexWords() []HexWord { return hexWords }

// IsHexWord reports hexacode membership in O(1): the last three symbols
// are determined linearly by the first three.
func (w HexWord) IsHexWord() bool {
	y, x, z := w[0], w[1], w[2]
	return w[3] == x.Add(y).Add(z) &&
		w[4] == x.Mul(F4Omega).Add(y.Mul(F4OmegaBar)).Add(z) &&
		w[5] == x.Mul(F4OmegaBar).Add(y.Mul(F4Omega)).Add(z)
}

// Column tables. A column's 4-bit pattern (bit r = row r selected) reduces
// to a GF(4) score, the sum of the selected rows' labels, plus a count
// parity. For each (score, parity) there are exactly two patterns, which
// are complements of one another and differ in the row-0 bit.
type columnTables struct {
	score   [16]F4
	parity  [16]uint8
	pattern [4][2][2]uint8 // [score][parity][row-0 bit] → pattern
}

var colTab = buildColumnTables()

func buildColumnTables() columnTables {
	var t columnTables
	for pat := 0; pat < 16; pat++ {
		var s F4
		for r := 0; r < 4; r++ {
			if pat>>r&1 == 1 {
				s = s.Add(F4(r))
			}
		}
		t.score[pat] = s
		par := uint8(pat&1 ^ pat>>1&1 ^ pat>>2&1 ^ pat>>3&1)
		t.parity[pat] = par
		t.pattern[s][par][pat&1] = uint8(pat)
	}
	return t
}

// ColumnScore reduces a column pattern (0–15) to its GF(4) score and count
// parity. Fails with ErrInvalidPattern outside that range.
func ColumnScore(pattern int) (score F4, odd bool, err error) {
	if pattern < 0 || pattern > 15 {
		return 0, false, ErrInvalidPattern
	}
	return colTab.score[pattern], colTab.parity[pattern] == 1, nil
}

// ColumnPattern is the inverse lookup: the unique pattern with the given
// score, count parity and row-0 bit.
func ColumnPattern(score F4, odd, rowZero bool) uint8 {
	par, r0 := 0, 0
	if odd {
		par = 1
	}
	if rowZero {
		r0 = 1
	}
	return colTab.pattern[score][par][r0]
}

// scores collects the six column scores of a vector.
func (c Codeword) scores() HexWord {
	var w HexWord
	for col := 0; col < 6; col++ {
		w[col] = colTab.score[c.column(col)]
	}
	return w
}
