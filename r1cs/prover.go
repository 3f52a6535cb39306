package r1cs

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog"

	"github.com/sp301415/bulletproof-go/generators"
	"github.com/sp301415/bulletproof-go/transcript"
)

var (
	// ErrMissingAssignment is returned when an allocation requires a wire
	// value that is missing.
	ErrMissingAssignment = errors.New("missing assignment")
	// ErrInvalidGeneratorsLength is returned when the circuit has more
	// multiplication gates than the generators support.
	ErrInvalidGeneratorsLength = errors.New("invalid generators length")
	// ErrProverConsumed is returned when a Prover is reused after proving.
	ErrProverConsumed = errors.New("prover already consumed")
)

// Prover is a constraint system paired with the wire values needed to prove
// it. Circuits are built through the [ConstraintSystem] interface and proven
// with [Prover.Prove].
//
// The Prover owns its transcript until Prove returns; absorbing other
// messages into it mid-circuit changes the challenges and must happen
// identically on the verifier side.
type Prover struct {
	bpGens *generators.BulletproofGens
	pcGens *generators.PedersenGens

	transcript *transcript.Transcript

	constraints []LinearCombination

	aL []fr.Element
	aR []fr.Element
	aO []fr.Element

	v         []fr.Element
	vBlinding []fr.Element

	consumed bool
}

var _ ConstraintSystem = (*Prover)(nil)

// NewProver creates a new Prover over the committed input values v with
// blinding factors vBlinding, taking ownership of both slices. It binds the
// transcript to the circuit shape and absorbs a Pedersen commitment to each
// input. Returns the prover, the symbolic variables referring to the
// committed inputs, and the input commitments.
//
// Panics when v and vBlinding have different lengths.
func NewProver(bpGens *generators.BulletproofGens, pcGens *generators.PedersenGens, t *transcript.Transcript, v, vBlinding []fr.Element) (*Prover, []Variable, []bn254.G1Affine) {
	if len(v) != len(vBlinding) {
		panic("length mismatch between values and blindings")
	}

	t.CircuitDomainSep(uint64(len(v)))

	vars := make([]Variable, len(v))
	coms := make([]bn254.G1Affine, len(v))
	for i := range v {
		coms[i] = pcGens.Commit(v[i], vBlinding[i])
		t.AppendPoint("V", &coms[i])
		vars[i] = Variable{Kind: Committed, Index: i}
	}

	p := &Prover{
		bpGens:     bpGens,
		pcGens:     pcGens,
		transcript: t,
		v:          v,
		vBlinding:  vBlinding,
	}

	return p, vars, coms
}

// AllocateMultiplier allocates a multiplication gate with the given wire
// values and returns the symbolic left, right and output variables.
//
// Returns ErrMissingAssignment when any of the three assignments is
// missing, in which case the constraint system is left unchanged.
func (p *Prover) AllocateMultiplier(left, right, out Assignment) (Variable, Variable, Variable, error) {
	l, err := left.Value()
	if err != nil {
		return Variable{}, Variable{}, Variable{}, err
	}
	r, err := right.Value()
	if err != nil {
		return Variable{}, Variable{}, Variable{}, err
	}
	o, err := out.Value()
	if err != nil {
		return Variable{}, Variable{}, Variable{}, err
	}

	p.aL = append(p.aL, l)
	p.aR = append(p.aR, r)
	p.aO = append(p.aO, o)

	i := len(p.aL) - 1
	return Variable{Kind: MultiplierLeft, Index: i},
		Variable{Kind: MultiplierRight, Index: i},
		Variable{Kind: MultiplierOutput, Index: i},
		nil
}

// AllocateUnconstrained allocates the two input wires of a fresh
// multiplication gate, deriving the output wire value as their product.
//
// Returns ErrMissingAssignment when either assignment is missing.
func (p *Prover) AllocateUnconstrained(a, b Assignment) (Variable, Variable, error) {
	l, r, _, err := p.AllocateMultiplier(a, b, a.Mul(b))
	return l, r, err
}

// AddConstraint registers the linear constraint lc = 0.
//
// The combination is recorded as given; it is not checked against the wire
// values here. A constraint that does not hold makes the resulting proof
// unverifiable.
func (p *Prover) AddConstraint(lc LinearCombination) {
	p.constraints = append(p.constraints, lc)
}

// ChallengeScalar derives a challenge scalar bound to every commitment
// absorbed so far.
func (p *Prover) ChallengeScalar(label string) fr.Element {
	return p.transcript.ChallengeScalar(label)
}

// NumGates returns the number of multiplication gates allocated so far.
func (p *Prover) NumGates() int {
	return len(p.aL)
}

// NumConstraints returns the number of linear constraints added so far.
func (p *Prover) NumConstraints() int {
	return len(p.constraints)
}

// flattenedConstraints folds every registered constraint into per-wire
// weight vectors, weighting constraint q by z^(q+1) so that one challenge
// aggregates all constraints. Committed input terms are negated to sit on
// the commitment side of the relation, and constant one terms are dropped;
// the verifier reconstructs them from the constraints alone.
func (p *Prover) flattenedConstraints(z *fr.Element) (wL, wR, wO, wV []fr.Element) {
	n := len(p.aL)
	m := len(p.v)

	wL = make([]fr.Element, n)
	wR = make([]fr.Element, n)
	wO = make([]fr.Element, n)
	wV = make([]fr.Element, m)

	expZ := *z
	var t fr.Element
	for _, lc := range p.constraints {
		for _, term := range lc.Terms {
			t.Mul(&expZ, &term.Coefficient)
			switch term.Variable.Kind {
			case MultiplierLeft:
				wL[term.Variable.Index].Add(&wL[term.Variable.Index], &t)
			case MultiplierRight:
				wR[term.Variable.Index].Add(&wR[term.Variable.Index], &t)
			case MultiplierOutput:
				wO[term.Variable.Index].Add(&wO[term.Variable.Index], &t)
			case Committed:
				wV[term.Variable.Index].Sub(&wV[term.Variable.Index], &t)
			case One:
			}
		}
		expZ.Mul(&expZ, z)
	}

	return wL, wR, wO, wV
}

// evalConstraint evaluates lc against the assigned wire values.
func (p *Prover) evalConstraint(lc LinearCombination) fr.Element {
	var acc, t fr.Element
	for _, term := range lc.Terms {
		switch term.Variable.Kind {
		case MultiplierLeft:
			t.Mul(&term.Coefficient, &p.aL[term.Variable.Index])
		case MultiplierRight:
			t.Mul(&term.Coefficient, &p.aR[term.Variable.Index])
		case MultiplierOutput:
			t.Mul(&term.Coefficient, &p.aO[term.Variable.Index])
		case Committed:
			t.Mul(&term.Coefficient, &p.v[term.Variable.Index])
		case One:
			t = term.Coefficient
		}
		acc.Add(&acc, &t)
	}
	return acc
}

// checkWellFormed logs structural problems that make a proof unverifiable:
// constraints that do not evaluate to zero, and committed inputs no
// constraint references. It never fails the prover; an unsatisfied system
// simply produces a proof that will not verify.
func (p *Prover) checkWellFormed(log zerolog.Logger) {
	referenced := bitset.New(uint(len(p.v)))
	for i, lc := range p.constraints {
		for _, term := range lc.Terms {
			if term.Variable.Kind == Committed {
				referenced.Set(uint(term.Variable.Index))
			}
		}
		if eval := p.evalConstraint(lc); !eval.IsZero() {
			log.Warn().Int("constraint", i).Msg("constraint does not evaluate to zero")
		}
	}

	if m := uint(len(p.v)); referenced.Count() < m {
		log.Warn().Uint("nbUnconstrained", m-referenced.Count()).Msg("committed inputs not referenced by any constraint")
	}
}
