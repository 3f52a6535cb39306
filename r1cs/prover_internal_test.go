package r1cs

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sp301415/bulletproof-go/generators"
	"github.com/sp301415/bulletproof-go/poly"
	"github.com/sp301415/bulletproof-go/transcript"
)

func TestFlattenedConstraints(t *testing.T) {
	bpGens := generators.NewBulletproofGens(4)
	pcGens := generators.NewPedersenGens()

	t.Run("Concrete", func(t *testing.T) {
		// One gate (3, 4, 12) and the constraint c - 12 = 0.
		p, _, _ := NewProver(bpGens, pcGens, transcript.New("test"), nil, nil)
		_, _, c, err := p.AllocateMultiplier(KnownUint64(3), KnownUint64(4), KnownUint64(12))
		require.NoError(t, err)

		var twelve fr.Element
		twelve.SetUint64(12)
		var lc LinearCombination
		lc.AddVariable(c)
		lc.SubConstant(twelve)
		p.AddConstraint(lc)

		var z fr.Element
		z.SetUint64(2)
		wL, wR, wO, wV := p.flattenedConstraints(&z)

		require.Equal(t, 1, len(wL))
		require.Equal(t, 1, len(wR))
		require.Equal(t, 1, len(wO))
		require.Equal(t, 0, len(wV))

		// The output weight is z^1 * 1; the constant term is dropped.
		var want fr.Element
		want.SetUint64(2)
		assert.True(t, wL[0].IsZero())
		assert.True(t, wR[0].IsZero())
		assert.True(t, wO[0].Equal(&want))
	})

	t.Run("CommittedNegated", func(t *testing.T) {
		var three fr.Element
		three.SetUint64(3)
		v := []fr.Element{three}
		vBlinding := make([]fr.Element, 1)
		vBlinding[0].SetUint64(7)

		p, vars, _ := NewProver(bpGens, pcGens, transcript.New("test"), v, vBlinding)
		l, _, _, err := p.AllocateMultiplier(KnownUint64(3), KnownUint64(1), KnownUint64(3))
		require.NoError(t, err)

		// l - v_0 = 0
		var lc LinearCombination
		lc.AddVariable(l)
		lc.SubVariable(vars[0])
		p.AddConstraint(lc)

		var z fr.Element
		z.SetUint64(5)
		wL, _, _, wV := p.flattenedConstraints(&z)

		// wL gets z * 1, wV gets -(z * -1) = z.
		var want fr.Element
		want.SetUint64(5)
		assert.True(t, wL[0].Equal(&want))
		assert.True(t, wV[0].Equal(&want))
	})

	t.Run("PerConstraintWeights", func(t *testing.T) {
		p, _, _ := NewProver(bpGens, pcGens, transcript.New("test"), nil, nil)
		l, r, _, err := p.AllocateMultiplier(KnownUint64(0), KnownUint64(0), KnownUint64(0))
		require.NoError(t, err)

		var lc0, lc1 LinearCombination
		lc0.AddVariable(l)
		lc1.AddVariable(r)
		p.AddConstraint(lc0)
		p.AddConstraint(lc1)

		var z fr.Element
		z.SetUint64(3)
		wL, wR, _, _ := p.flattenedConstraints(&z)

		// Constraint 0 is weighted z, constraint 1 is weighted z^2.
		var want fr.Element
		want.SetUint64(3)
		assert.True(t, wL[0].Equal(&want))
		want.SetUint64(9)
		assert.True(t, wR[0].Equal(&want))
	})
}

// TestFlattenIdentity checks that flattening preserves satisfiability: for
// any satisfied system without constant terms,
// <wL, aL> + <wR, aR> + <wO, aO> - <wV, v> vanishes at every challenge.
func TestFlattenIdentity(t *testing.T) {
	bpGens := generators.NewBulletproofGens(16)
	pcGens := generators.NewPedersenGens()

	randomScalar := func() fr.Element {
		var x fr.Element
		if _, err := x.SetRandom(); err != nil {
			panic(err)
		}
		return x
	}

	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("<wL,aL> + <wR,aR> + <wO,aO> - <wV,v> = 0", prop.ForAll(
		func(nGates, m, nConstraints int) bool {
			v := make([]fr.Element, m)
			vBlinding := make([]fr.Element, m)
			for i := range v {
				v[i] = randomScalar()
				vBlinding[i] = randomScalar()
			}

			p, vars, _ := NewProver(bpGens, pcGens, transcript.New("test"), v, vBlinding)

			gateVars := make([]Variable, 0, 3*nGates)
			for i := 0; i < nGates; i++ {
				l, r, o, err := p.AllocateMultiplier(Known(randomScalar()), Known(randomScalar()), Known(randomScalar()))
				if err != nil {
					return false
				}
				gateVars = append(gateVars, l, r, o)
			}

			// The left wire of gate zero balances each constraint; make
			// sure its value is invertible.
			if p.aL[0].IsZero() {
				p.aL[0].SetOne()
			}

			wires := append(gateVars, vars...)
			for c := 0; c < nConstraints; c++ {
				var lc LinearCombination
				for _, wire := range wires {
					lc.AddTerm(randomScalar(), wire)
				}

				residual := p.evalConstraint(lc)
				var balance fr.Element
				balance.Inverse(&p.aL[0])
				balance.Mul(&balance, &residual)
				balance.Neg(&balance)
				lc.AddTerm(balance, Variable{Kind: MultiplierLeft, Index: 0})

				if eval := p.evalConstraint(lc); !eval.IsZero() {
					return false
				}
				p.AddConstraint(lc)
			}

			z := randomScalar()
			wL, wR, wO, wV := p.flattenedConstraints(&z)

			sum := poly.InnerProduct(wL, p.aL)
			t0 := poly.InnerProduct(wR, p.aR)
			sum.Add(&sum, &t0)
			t0 = poly.InnerProduct(wO, p.aO)
			sum.Add(&sum, &t0)
			t0 = poly.InnerProduct(wV, p.v)
			sum.Sub(&sum, &t0)

			return sum.IsZero()
		},
		gen.IntRange(1, 8),
		gen.IntRange(0, 4),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestProveFixedEntropy pins the entropy source and checks the whole
// pipeline is deterministic: equal circuits yield byte-identical proofs.
func TestProveFixedEntropy(t *testing.T) {
	bpGens := generators.NewBulletproofGens(4)
	pcGens := generators.NewPedersenGens()

	buildProver := func() *Prover {
		var a, b, c fr.Element
		a.SetUint64(3)
		b.SetUint64(4)
		c.SetUint64(12)

		v := []fr.Element{a, b}
		vBlinding := make([]fr.Element, 2)
		vBlinding[0].SetUint64(101)
		vBlinding[1].SetUint64(102)

		p, vars, _ := NewProver(bpGens, pcGens, transcript.New("test"), v, vBlinding)
		l, r, o, err := p.AllocateMultiplier(Known(a), Known(b), Known(c))
		require.NoError(t, err)

		var lc0, lc1, lc2 LinearCombination
		lc0.AddVariable(l)
		lc0.SubVariable(vars[0])
		p.AddConstraint(lc0)
		lc1.AddVariable(r)
		lc1.SubVariable(vars[1])
		p.AddConstraint(lc1)
		lc2.AddVariable(o)
		lc2.SubConstant(c)
		p.AddConstraint(lc2)

		return p
	}

	entropy := func() *bytes.Reader {
		return bytes.NewReader(make([]byte, 32))
	}

	proof0, err := buildProver().prove(entropy())
	require.NoError(t, err)
	proof1, err := buildProver().prove(entropy())
	require.NoError(t, err)

	var buf0, buf1 bytes.Buffer
	_, err = proof0.WriteTo(&buf0)
	require.NoError(t, err)
	_, err = proof1.WriteTo(&buf1)
	require.NoError(t, err)

	assert.Equal(t, buf0.Bytes(), buf1.Bytes())

	// Different entropy diverges the blindings but not the statement.
	proof2, err := buildProver().prove(bytes.NewReader(bytes.Repeat([]byte{0xff}, 32)))
	require.NoError(t, err)
	assert.False(t, proof0.EBlinding.Equal(&proof2.EBlinding))
}
