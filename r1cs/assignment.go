package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Assignment is a wire value known to the prover, either a concrete scalar
// or missing. Operations on missing assignments propagate missingness, so
// gadget code can run shape-only where no witness is available.
type Assignment struct {
	value fr.Element
	known bool
}

// Known creates an Assignment holding the scalar x.
func Known(x fr.Element) Assignment {
	return Assignment{value: x, known: true}
}

// KnownUint64 creates an Assignment holding the small integer x.
func KnownUint64(x uint64) Assignment {
	var v fr.Element
	v.SetUint64(x)
	return Known(v)
}

// Missing creates an Assignment with no value.
func Missing() Assignment {
	return Assignment{}
}

// IsMissing returns whether a holds no value.
func (a Assignment) IsMissing() bool {
	return !a.known
}

// Value returns the scalar held by a.
// Returns ErrMissingAssignment when a is missing.
func (a Assignment) Value() (fr.Element, error) {
	if !a.known {
		return fr.Element{}, ErrMissingAssignment
	}
	return a.value, nil
}

// Add returns a + b, or a missing Assignment when either operand is missing.
func (a Assignment) Add(b Assignment) Assignment {
	if !a.known || !b.known {
		return Missing()
	}

	var v fr.Element
	v.Add(&a.value, &b.value)
	return Known(v)
}

// Sub returns a - b, or a missing Assignment when either operand is missing.
func (a Assignment) Sub(b Assignment) Assignment {
	if !a.known || !b.known {
		return Missing()
	}

	var v fr.Element
	v.Sub(&a.value, &b.value)
	return Known(v)
}

// Mul returns a * b, or a missing Assignment when either operand is missing.
func (a Assignment) Mul(b Assignment) Assignment {
	if !a.known || !b.known {
		return Missing()
	}

	var v fr.Element
	v.Mul(&a.value, &b.value)
	return Known(v)
}
