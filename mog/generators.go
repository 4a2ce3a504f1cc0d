package mog

// A generating set for M24 as permutations of the grid. g1 through g8
// generate the stabilizer of the column sextet, the maximal subgroup
// 2^6:3.S6: translations by the hexacode basis, scaling the row labels
// by ω, conjugation with the first brick flipped, and three column double
// swaps. g9 fixes an octad pointwise while moving column 0 into the back
// bricks, so it lies outside the stabilizer; a maximal subgroup plus one
// outside element generate the whole group. All nine preserve the code;
// the tests recheck that against the basis.

// translation adds a hexacode word to the row labels, column by column.
func translation(w HexWord) Perm {
	var g Perm
	for p := Point(0); p < NumPoints; p++ {
		g[p] = PointAt(p.Row().Add(w[p.Col()]), p.Col())
	}
	return g
}

// rowScale multiplies every row label by ω, fixing row 0 and cycling the
// other three rows.
func rowScale() Perm {
	var g Perm
	for p := Point(0); p < NumPoints; p++ {
		g[p] = PointAt(F4Omega.Mul(p.Row()), p.Col())
	}
	return g
}

// conjFlip conjugates the row labels and swaps the first brick's columns.
// Conjugation alone is not an automorphism; paired with the flip it is.
func conjFlip() Perm {
	var g Perm
	for p := Point(0); p < NumPoints; p++ {
		col := p.Col()
		switch col {
		case 0:
			col = 1
		case 1:
			col = 0
		}
		g[p] = PointAt(p.Row().Conj(), col)
	}
	return g
}

// colSwaps exchanges two pairs of whole columns.
func colSwaps(a1, b1, a2, b2 int) Perm {
	m := [6]int{0, 1, 2, 3, 4, 5}
	m[a1], m[b1] = b1, a1
	m[a2], m[b2] = b2, a2
	var g Perm
	for p := Point(0); p < NumPoints; p++ {
		g[p] = PointAt(p.Row(), m[p.Col()])
	}
	return g
}

// crossBrick fixes the octad on rows ω,ω̄ of the back two bricks pointwise
// and swaps the remaining sixteen points in pairs, carrying column 0 out
// of the first brick.
func crossBrick() Perm {
	g := Identity()
	for _, t := range [8][2]Point{
		{0, 2}, {1, 8}, {6, 9}, {4, 19},
		{12, 10}, {18, 11}, {7, 3}, {13, 5},
	} {
		g[t[0]], g[t[1]] = t[1], t[0]
	}
	return g
}

// GeneratorNames lists the generator names in their fixed order.
var GeneratorNames = []string{"g1", "g2", "g3", "g4", "g5", "g6", "g7", "g8", "g9"}

var generators = buildGenerators()

func buildGenerators() map[string]Perm {
	return map[string]Perm{
		"g1": translation(hexBasis[0]),
		"g2": translation(hexBasis[1]),
		"g3": translation(hexBasis[2]),
		"g4": rowScale(),
		"g5": conjFlip(),
		"g6": colSwaps(0, 1, 2, 3),
		"g7": colSwaps(0, 2, 1, 3),
		"g8": colSwaps(0, 4, 1, 5),
		"g9": crossBrick(),
	}
}

// Generator looks up a generator by name. Fails with ErrUnknownGenerator.
func Generator(name string) (Perm, error) {
	g, ok := generators[name]
	if !ok {
		return Perm{}, ErrUnknownGenerator
	}
	return g, nil
}
