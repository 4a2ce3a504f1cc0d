package mog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF4FieldAxioms(t *testing.T) {
	for a := F4(0); a < 4; a++ {
		assert.Equal(t, a, a.Add(0))
		assert.Equal(t, F4Zero, a.Add(a))
		assert.Equal(t, F4Zero, a.Mul(0))
		assert.Equal(t, a, a.Mul(1))
		for b := F4(0); b < 4; b++ {
			assert.Equal(t, b.Add(a), a.Add(b))
			assert.Equal(t, b.Mul(a), a.Mul(b))
			for c := F4(0); c < 4; c++ {
				assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
				assert.Equal(t, a.Mul(b).Add(a.Mul(c)), a.Mul(b.Add(c)))
			}
		}
	}
}

func TestF4Inverse(t *testing.T) {
	for a := F4(1); a < 4; a++ {
		assert.Equal(t, F4One, a.Mul(a.Inv()), "a=%v", a)
	}
	assert.Equal(t, F4Zero, F4Zero.Inv())
}

func TestF4Conj(t *testing.T) {
	// Conjugation is squaring: it fixes 0 and 1 and swaps ω, ω̄.
	for a := F4(0); a < 4; a++ {
		assert.Equal(t, a.Mul(a), a.Conj())
		assert.Equal(t, a, a.Conj().Conj())
	}
	assert.Equal(t, F4OmegaBar, F4Omega.Conj())
}

func TestF4OmegaCube(t *testing.T) {
	assert.Equal(t, F4One, F4Omega.Mul(F4Omega).Mul(F4Omega))
	assert.Equal(t, F4OmegaBar, F4Omega.Add(F4One))
}
