package errsim

import (
	"math/rand"

	"github.com/steiner24/mog/mog"
)

// Flipper draws random error patterns over the 24 grid points, for decoder
// evaluation. Not safe for concurrent use; shard one per goroutine.
type Flipper struct {
	p   float64
	rng *rand.Rand
}

func New(p float64, rng *rand.Rand) *Flipper { return &Flipper{p: p, rng: rng} }

// Pattern implements a simple u<p flip decision per point.
func (f *Flipper) Pattern() mog.Codeword {
	if f.p <= 0 {
		return 0
	}
	var e mog.Codeword
	for p := mog.Point(0); p < mog.NumPoints; p++ {
		if f.p >= 1 || f.rng.Float64() < f.p {
			e = e.Set(p)
		}
	}
	return e
}

// Weight draws a uniform pattern of exactly w distinct points.
func (f *Flipper) Weight(w int) mog.Codeword {
	if w <= 0 {
		return 0
	}
	if w > mog.NumPoints {
		w = mog.NumPoints
	}
	var e mog.Codeword
	for e.Weight() < w {
		e = e.Set(mog.Point(f.rng.Intn(mog.NumPoints)))
	}
	return e
}
