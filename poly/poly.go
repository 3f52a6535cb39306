// Package poly implements the vector polynomials appearing in circuit proofs
// over the bn254 scalar field.
package poly

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// VecPoly3 is a degree 3 polynomial with vector coefficients.
type VecPoly3 struct {
	// T0 is the coefficient vector of degree 0.
	T0 []fr.Element
	// T1 is the coefficient vector of degree 1.
	T1 []fr.Element
	// T2 is the coefficient vector of degree 2.
	T2 []fr.Element
	// T3 is the coefficient vector of degree 3.
	T3 []fr.Element
}

// NewVecPoly3 creates a new VecPoly3 of dimension n.
func NewVecPoly3(n int) VecPoly3 {
	return VecPoly3{
		T0: make([]fr.Element, n),
		T1: make([]fr.Element, n),
		T2: make([]fr.Element, n),
		T3: make([]fr.Element, n),
	}
}

// Dimension returns the dimension of the coefficient vectors.
func (p VecPoly3) Dimension() int {
	return len(p.T0)
}

// Poly6 is a degree 6 polynomial with scalar coefficients
// and zero constant term.
type Poly6 struct {
	// T1 is the coefficient of degree 1.
	T1 fr.Element
	// T2 is the coefficient of degree 2.
	T2 fr.Element
	// T3 is the coefficient of degree 3.
	T3 fr.Element
	// T4 is the coefficient of degree 4.
	T4 fr.Element
	// T5 is the coefficient of degree 5.
	T5 fr.Element
	// T6 is the coefficient of degree 6.
	T6 fr.Element
}
