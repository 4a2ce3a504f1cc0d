package mog

// Sextet completion. Any four points lie in a unique sextet: a partition
// of the grid into six tetrads such that the union of any two is an octad.
// The remaining five tetrads fall out of octad completion: adjoining any
// fifth point p to the tetrad pins down an octad, and removing the tetrad
// from it leaves the tetrad through p.

// Sextet is a partition of the 24 points into six tetrads. The tetrad the
// completion started from comes first; the rest follow in order of their
// smallest point.
type Sextet [6]Codeword

// CompleteSextet returns the unique sextet whose first tetrad is sel.
// Fails with ErrNotTetrad unless sel has exactly 4 points.
func CompleteSextet(sel Codeword) (Sextet, error) {
	sel &= codewordMask
	if sel.Weight() != 4 {
		return Sextet{}, ErrNotTetrad
	}
	s := Sextet{sel}
	assigned := sel
	n := 1
	for p := Point(0); p < NumPoints; p++ {
		if assigned.Bit(p) {
			continue
		}
		oct, err := CompleteOctad(sel.Set(p))
		if err != nil {
			return Sextet{}, err
		}
		tet := oct &^ sel
		s[n] = tet
		assigned |= tet
		n++
	}
	return s, nil
}
