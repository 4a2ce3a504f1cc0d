package mog

// Octad completion. The weight-8 codewords form the Steiner system
// S(5,8,24): any five points lie in exactly one octad. Completion rides on
// the decoder: with 5 to 7 of an octad's points set, the vector is within
// distance 3 of that octad and of no other codeword, so decoding lands on
// it if it exists at all.

// CompleteOctad returns the unique octad containing all points of sel.
// Fails with ErrAmbiguousInput on fewer than 5 points and ErrNoCompletion
// when no octad extends the set.
func CompleteOctad(sel Codeword) (Codeword, error) {
	sel &= codewordMask
	w := sel.Weight()
	switch {
	case w < 5:
		return 0, ErrAmbiguousInput
	case w == 8:
		if sel.IsCodeword() {
			return sel, nil
		}
		return 0, ErrNoCompletion
	case w > 8:
		return 0, ErrNoCompletion
	}
	oct, _ := sel.Decode()
	if oct.Weight() == 8 && oct.Contains(sel) {
		return oct, nil
	}
	return 0, ErrNoCompletion
}
