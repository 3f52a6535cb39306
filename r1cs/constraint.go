package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ConstraintSystem is the capability interface gadget code builds against.
// It exposes wire allocation, linear constraints and transcript challenges
// without revealing whether the underlying system holds a witness, so the
// same gadget runs unchanged against a prover or a future verifier.
type ConstraintSystem interface {
	// AllocateMultiplier allocates a multiplication gate with the given
	// wire values and returns the symbolic left, right and output
	// variables. The gate relation left*right = out is enforced by the
	// proof itself; linear relations to other wires are added separately.
	//
	// Returns ErrMissingAssignment when a required assignment is missing,
	// in which case the system is left unchanged.
	AllocateMultiplier(left, right, out Assignment) (Variable, Variable, Variable, error)

	// AllocateUnconstrained allocates the two input wires of a fresh
	// multiplication gate without tying them to any other wire, deriving
	// the output value as their product.
	//
	// Returns ErrMissingAssignment when a required assignment is missing.
	AllocateUnconstrained(a, b Assignment) (Variable, Variable, error)

	// AddConstraint registers the linear constraint lc = 0 over the
	// allocated wires. The combination is recorded as given and not
	// checked against wire values; a constraint that does not hold makes
	// the resulting proof unverifiable.
	AddConstraint(lc LinearCombination)

	// ChallengeScalar derives a verifier challenge bound to every
	// commitment absorbed so far, for building challenge-dependent
	// gadgets. Wires allocated after a challenge are not bound by it.
	ChallengeScalar(label string) fr.Element
}
