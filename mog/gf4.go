package mog

// GF(4) arithmetic over {0, 1, ω, ω̄} with small lookup tables.
// Addition is XOR in this representation; only multiplication,
// inversion and conjugation need tables.

// F4 is an element of the field with four elements.
type F4 uint8

const (
	F4Zero F4 = 0
	F4One  F4 = 1
	// F4Omega is ω, a primitive cube root of unity: ω² = ω̄ = ω+1.
	F4Omega    F4 = 2
	F4OmegaBar F4 = 3
)

var f4Mul = [4][4]F4{
	{0, 0, 0, 0},
	{0, 1, 2, 3},
	{0, 2, 3, 1}, // ω·ω = ω̄, ω·ω̄ = 1
	{0, 3, 1, 2},
}

var f4Inv = [4]F4{0, 1, 3, 2}

// f4Conj is the Frobenius map x → x², swapping ω and ω̄.
var f4Conj = [4]F4{0, 1, 3, 2}

// Add returns a+b. The field has characteristic 2.
func (a F4) Add(b F4) F4 { return a ^ b }

// Mul returns a·b.
func (a F4) Mul(b F4) F4 { return f4Mul[a][b] }

// Inv returns the multiplicative inverse of a, and 0 for 0.
func (a F4) Inv() F4 { return f4Inv[a] }

// Conj returns the field conjugate a².
func (a F4) Conj() F4 { return f4Conj[a] }

func (a F4) String() string {
	switch a {
	case F4Zero:
		return "0"
	case F4One:
		return "1"
	case F4Omega:
		return "ω"
	default:
		return "ω̄"
	}
}
