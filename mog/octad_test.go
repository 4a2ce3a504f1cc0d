package mog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteOctadTopRow(t *testing.T) {
	// The five leftmost top-row points complete with the three remaining
	// rows of the last column.
	oct, err := CompleteOctad(WordFromPoints(0, 1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, Codeword(0x82081f), oct)
}

func TestCompleteOctadBackBricks(t *testing.T) {
	// Six of the eight points on rows ω,ω̄ of columns 2–5 pin down that octad.
	oct, err := CompleteOctad(WordFromPoints(14, 15, 16, 20, 21, 22))
	require.NoError(t, err)
	assert.Equal(t, Codeword(0xf3c000), oct)
}

func TestCompleteOctadAmbiguous(t *testing.T) {
	for _, sel := range []Codeword{
		0,
		WordFromPoints(0),
		WordFromPoints(0, 1, 2, 3),
	} {
		_, err := CompleteOctad(sel)
		assert.ErrorIs(t, err, ErrAmbiguousInput, "sel %#x", sel)
	}
}

func TestCompleteOctadNoCompletion(t *testing.T) {
	// A full top row forces odd column parities but an even top-row count,
	// so no octad contains it.
	_, err := CompleteOctad(WordFromPoints(0, 1, 2, 3, 4, 5))
	assert.ErrorIs(t, err, ErrNoCompletion)

	// Eight points that are not a codeword.
	_, err = CompleteOctad(WordFromPoints(0, 1, 2, 3, 4, 5, 6, 7))
	assert.ErrorIs(t, err, ErrNoCompletion)

	// More than eight points never complete.
	_, err = CompleteOctad(Codeword(0x1ff))
	assert.ErrorIs(t, err, ErrNoCompletion)
}

func TestCompleteOctadIdempotentOnOctads(t *testing.T) {
	oct := WordFromPoints(14, 15, 16, 17, 20, 21, 22, 23)
	got, err := CompleteOctad(oct)
	require.NoError(t, err)
	assert.Equal(t, oct, got)
}

func TestCompleteOctadSteiner(t *testing.T) {
	// Any five distinct points lie in exactly one octad: completion of a
	// random 5-set always succeeds and contains the input.
	rng := rand.New(rand.NewSource(19))
	for i := 0; i < 500; i++ {
		var sel Codeword
		for sel.Weight() < 5 {
			sel = sel.Set(Point(rng.Intn(NumPoints)))
		}
		oct, err := CompleteOctad(sel)
		require.NoError(t, err, "sel %#x", sel)
		assert.Equal(t, 8, oct.Weight())
		assert.True(t, oct.Contains(sel))
		assert.True(t, oct.IsCodeword())
	}
}

func TestCompleteOctadSubsetAgreement(t *testing.T) {
	// Completing any 5-subset of an octad returns that octad.
	oct := Codeword(0x82081f)
	pts := oct.Points()
	for skip1 := 0; skip1 < 8; skip1++ {
		for skip2 := skip1 + 1; skip2 < 8; skip2++ {
			for skip3 := skip2 + 1; skip3 < 8; skip3++ {
				var sel Codeword
				for i, p := range pts {
					if i != skip1 && i != skip2 && i != skip3 {
						sel = sel.Set(p)
					}
				}
				got, err := CompleteOctad(sel)
				require.NoError(t, err)
				require.Equal(t, oct, got)
			}
		}
	}
}
