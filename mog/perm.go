package mog

import "math/bits"

// Permutations of the 24 grid points. M24 elements are represented
// concretely as point permutations; nothing here assumes membership, and
// IsAutomorphism tests it. Because Golay membership is GF(2)-linear, a
// permutation preserves the whole code iff it maps the twelve basis
// vectors into it.

// Perm maps each point to its image: p goes to g[p].
type Perm [NumPoints]Point

// Identity returns the identity permutation.
func Identity() Perm {
	var g Perm
	for p := Point(0); p < NumPoints; p++ {
		g[p] = p
	}
	return g
}

// Valid reports whether g is a bijection on the 24 points.
func (g Perm) Valid() bool {
	var hit [NumPoints]bool
	for _, q := range g {
		if !q.Valid() || hit[q] {
			return false
		}
		hit[q] = true
	}
	return true
}

// Compose returns the permutation applying h first, then g.
func (g Perm) Compose(h Perm) Perm {
	var out Perm
	for p := Point(0); p < NumPoints; p++ {
		out[p] = g[h[p]]
	}
	return out
}

// Invert returns the inverse permutation.
func (g Perm) Invert() Perm {
	var out Perm
	for p := Point(0); p < NumPoints; p++ {
		out[g[p]] = p
	}
	return out
}

// Apply returns the image of point p.
func (g Perm) Apply(p Point) Point { return g[p] }

// ApplyWord moves every set point of c to its image.
func (g Perm) ApplyWord(c Codeword) Codeword {
	var out Codeword
	for v := uint32(c & codewordMask); v != 0; v &= v - 1 {
		out = out.Set(g[Point(bits.TrailingZeros32(v))])
	}
	return out
}

// Swap returns g with the images of points a and b exchanged, the
// equivalent of composing a transposition on the left.
func (g Perm) Swap(a, b Point) Perm {
	g[a], g[b] = g[b], g[a]
	return g
}

// Order returns the order of g in the symmetric group.
func (g Perm) Order() int {
	n := 1
	for _, c := range g.Cycles() {
		n = lcm(n, len(c))
	}
	return n
}

// Cycles returns the cycle decomposition of g, fixed points omitted.
// Cycles are listed by smallest moved point; each starts at its smallest
// point.
func (g Perm) Cycles() [][]Point {
	var cycles [][]Point
	var done [NumPoints]bool
	for p := Point(0); p < NumPoints; p++ {
		if done[p] || g[p] == p {
			done[p] = true
			continue
		}
		var cyc []Point
		for q := p; !done[q]; q = g[q] {
			done[q] = true
			cyc = append(cyc, q)
		}
		cycles = append(cycles, cyc)
	}
	return cycles
}

// IsAutomorphism reports whether g preserves the Golay code, i.e. whether
// g lies in M24. Checking the basis images suffices.
func (g Perm) IsAutomorphism() bool {
	for _, b := range golayBasis {
		if !g.ApplyWord(b).IsCodeword() {
			return false
		}
	}
	return true
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}
