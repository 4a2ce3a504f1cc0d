package mog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFixesCodewords(t *testing.T) {
	for d := 0; d < 1<<DataBits; d++ {
		c := Encode(uint16(d))
		got, flips := c.Decode()
		require.Equal(t, c, got, "data %#x", d)
		require.Empty(t, flips)
	}
}

func TestDecodeCorrectsUpToThreeErrors(t *testing.T) {
	// Every error pattern of weight at most 3, on a handful of codewords.
	words := []Codeword{
		0,
		Encode(0x001),
		Encode(0xabc),
		Encode(0xfff),
		WordFromPoints(14, 15, 16, 17, 20, 21, 22, 23),
	}
	var patterns []Codeword
	for a := Point(0); a < NumPoints; a++ {
		patterns = append(patterns, 1<<a)
		for b := a + 1; b < NumPoints; b++ {
			patterns = append(patterns, 1<<a|1<<b)
			for c := b + 1; c < NumPoints; c++ {
				patterns = append(patterns, 1<<a|1<<b|1<<c)
			}
		}
	}
	for _, w := range words {
		require.True(t, w.IsCodeword())
		for _, e := range patterns {
			got, flips := (w ^ e).Decode()
			require.Equal(t, w, got, "word %#x error %#x", w, e)
			require.Equal(t, e.Points(), flips)
		}
	}
}

func TestDecodeWeightFourDeterministic(t *testing.T) {
	// Four errors sit at equal distance from several codewords. The decoder
	// still lands on one of them, always the same one, at distance exactly 4.
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		w := Encode(uint16(rng.Intn(1 << DataBits)))
		var e Codeword
		for e.Weight() < 4 {
			e = e.Set(Point(rng.Intn(NumPoints)))
		}
		v := w ^ e
		got1, flips1 := v.Decode()
		got2, flips2 := v.Decode()
		assert.True(t, got1.IsCodeword())
		assert.Equal(t, got1, got2)
		assert.Equal(t, flips1, flips2)
		assert.Equal(t, 4, (v ^ got1).Weight())
	}
}

func TestDecodeIgnoresHighBits(t *testing.T) {
	c := Encode(0x123)
	got, flips := (c | 0xff000000).Decode()
	assert.Equal(t, c, got)
	assert.Empty(t, flips)
}

func TestCosetLeaderTableComplete(t *testing.T) {
	// Covering radius 4: every syndrome has a leader of weight at most 4,
	// and the leader's syndrome is its index.
	for s, e := range cosetLeader {
		require.LessOrEqual(t, e.Weight(), 4, "syndrome %#x", s)
		require.Equal(t, uint16(s), e.syndrome())
	}
}
