package mog

import (
	"math/rand"
	"testing"

	"github.com/steiner24/mog/internal/errsim"
	"github.com/steiner24/mog/mog"
)

// Decoder sweep over random codewords with injected errors of fixed
// weight: everything inside the correction radius must come back exact.
func TestDecodeSweepFixedWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	flip := errsim.New(0, rng)
	for w := 0; w <= 3; w++ {
		for i := 0; i < 5000; i++ {
			sent := mog.Encode(uint16(rng.Intn(1 << mog.DataBits)))
			e := flip.Weight(w)
			got, flips := (sent ^ e).Decode()
			if got != sent {
				t.Fatalf("w=%d sent=%#x e=%#x got=%#x", w, uint32(sent), uint32(e), uint32(got))
			}
			if len(flips) != w {
				t.Fatalf("w=%d reported %d flips", w, len(flips))
			}
		}
	}
}

// Bernoulli noise: whatever the flip count, the decoder must return a
// codeword at distance at most 4, and recover exactly under 4 flips.
func TestDecodeSweepBernoulli(t *testing.T) {
	rng := rand.New(rand.NewSource(101))
	flip := errsim.New(0.08, rng)
	recovered, trials := 0, 20000
	for i := 0; i < trials; i++ {
		sent := mog.Encode(uint16(rng.Intn(1 << mog.DataBits)))
		e := flip.Pattern()
		got, flips := (sent ^ e).Decode()
		if !got.IsCodeword() {
			t.Fatalf("non-codeword result %#x", uint32(got))
		}
		if len(flips) > 4 {
			t.Fatalf("distance %d exceeds covering radius", len(flips))
		}
		if e.Weight() <= 3 {
			if got != sent {
				t.Fatalf("missed inside radius: sent=%#x e=%#x got=%#x",
					uint32(sent), uint32(e), uint32(got))
			}
			recovered++
		}
	}
	// At p=0.08 roughly 86% of trials have at most 3 flips.
	if rate := float64(recovered) / float64(trials); rate < 0.75 {
		t.Fatalf("recovery rate %.3f suspiciously low", rate)
	}
}

// Octad completion agrees with the Steiner property on a random sample of
// five-point subsets.
func TestOctadCompletionSample(t *testing.T) {
	rng := rand.New(rand.NewSource(103))
	flip := errsim.New(0, rng)
	octads := make(map[mog.Codeword]bool)
	for i := 0; i < 5000; i++ {
		sel := flip.Weight(5)
		oct, err := mog.CompleteOctad(sel)
		if err != nil {
			t.Fatalf("subset %#x: %v", uint32(sel), err)
		}
		if !oct.Contains(sel) || oct.Weight() != 8 || !oct.IsCodeword() {
			t.Fatalf("subset %#x: bad octad %#x", uint32(sel), uint32(oct))
		}
		octads[oct] = true
	}
	// 5000 random subsets hit most of the 759 octads.
	if len(octads) < 700 {
		t.Fatalf("only %d distinct octads", len(octads))
	}
}
