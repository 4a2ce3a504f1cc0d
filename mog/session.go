package mog

// Session ties the grid, the code and the group action together behind a
// small mutating API. Operations either succeed and update the grid, or
// fail with a sentinel error and leave every field untouched. A Session is
// not safe for concurrent use; callers wanting one per goroutine just
// create one, construction is cheap.
type Session struct {
	grid Grid
	perm Perm
	word []string

	metrics *Metrics
}

// NewSession returns an empty session with the identity permutation.
func NewSession() *Session {
	return &Session{perm: Identity()}
}

// WithMetrics attaches a metrics sink; nil detaches. Returns s.
func (s *Session) WithMetrics(m *Metrics) *Session {
	s.metrics = m
	return s
}

// Grid returns a copy of the current display state.
func (s *Session) Grid() Grid { return s.grid }

// Selected returns the user-picked cells as a vector, completion fills
// excluded.
func (s *Session) Selected() Codeword { return s.grid.Word(Selected) }

// Select marks point p as selected, clearing any completion or error
// state it carried. Fails with ErrInvalidPoint.
func (s *Session) Select(p Point) error {
	if !p.Valid() {
		return ErrInvalidPoint
	}
	s.grid[p] = Selected
	return nil
}

// Deselect clears point p back to unselected. Fails with ErrInvalidPoint.
func (s *Session) Deselect(p Point) error {
	if !p.Valid() {
		return ErrInvalidPoint
	}
	s.grid[p] = Unselected
	return nil
}

// Reset clears the grid, the accumulated permutation and the word.
func (s *Session) Reset() {
	s.grid = Grid{}
	s.perm = Identity()
	s.word = nil
}

// CompleteOctad completes the selected cells to their unique octad and
// marks the added cells. Selected cells stay selected. On failure the
// grid is unchanged.
func (s *Session) CompleteOctad() (Codeword, error) {
	sel := s.Selected()
	oct, err := CompleteOctad(sel)
	s.metrics.observeCompletion(err)
	if err != nil {
		return 0, err
	}
	for _, p := range (oct &^ sel).Points() {
		s.grid[p] = OctadCell
	}
	return oct, nil
}

// CompleteSextet completes the selected tetrad to its sextet. The grid is
// left as is; the partition is the caller's to render.
func (s *Session) CompleteSextet() (Sextet, error) {
	return CompleteSextet(s.Selected())
}

// ApplyGenerator applies the named generator: every cell's state moves to
// the image of its point, the permutation accumulates on the left, and
// the name is appended to the word. Fails with ErrUnknownGenerator.
func (s *Session) ApplyGenerator(name string) error {
	g, err := Generator(name)
	if err != nil {
		return err
	}
	s.grid = s.grid.Permute(g)
	s.perm = g.Compose(s.perm)
	s.word = append(s.word, name)
	s.metrics.observeGenerator(name)
	return nil
}

// IsCodeword reports whether the selected and completed cells form a
// Golay codeword.
func (s *Session) IsCodeword() bool {
	return s.grid.Word(Selected, OctadCell).IsCodeword()
}

// Perm returns the accumulated permutation, the composition of every
// generator applied since the last Reset, latest first.
func (s *Session) Perm() Perm { return s.perm }

// Word returns the generator names applied since the last Reset, in
// application order. The returned slice is shared with the session.
func (s *Session) Word() []string { return s.word }

// Decode treats the selected and completed cells as a received vector and
// rewrites the grid with the nearest codeword: its cells become octad
// cells and the flipped positions become error cells. Returns the
// codeword and the flips.
func (s *Session) Decode() (Codeword, []Point) {
	v := s.grid.Word(Selected, OctadCell)
	cw, flips := v.Decode()
	s.metrics.observeDecode(len(flips))
	s.grid = Grid{}
	for _, p := range cw.Points() {
		s.grid[p] = OctadCell
	}
	for _, p := range flips {
		s.grid[p] = ErrorCell
	}
	return cw, flips
}
