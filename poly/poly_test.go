package poly_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sp301415/bulletproof-go/poly"
)

func randomScalar(t *testing.T) fr.Element {
	var x fr.Element
	_, err := x.SetRandom()
	require.NoError(t, err)
	return x
}

func TestPowers(t *testing.T) {
	t.Run("Series", func(t *testing.T) {
		var x fr.Element
		x.SetUint64(3)

		pows := poly.Powers(x, 4)

		var want fr.Element
		want.SetOne()
		assert.True(t, pows[0].Equal(&want))
		want.SetUint64(3)
		assert.True(t, pows[1].Equal(&want))
		want.SetUint64(9)
		assert.True(t, pows[2].Equal(&want))
		want.SetUint64(27)
		assert.True(t, pows[3].Equal(&want))
	})

	t.Run("Empty", func(t *testing.T) {
		x := randomScalar(t)
		assert.Equal(t, 0, len(poly.Powers(x, 0)))
	})
}

func TestInnerProduct(t *testing.T) {
	t.Run("Concrete", func(t *testing.T) {
		a := make([]fr.Element, 3)
		b := make([]fr.Element, 3)
		a[0].SetUint64(1)
		a[1].SetUint64(2)
		a[2].SetUint64(3)
		b[0].SetUint64(4)
		b[1].SetUint64(5)
		b[2].SetUint64(6)

		var want fr.Element
		want.SetUint64(32)

		got := poly.InnerProduct(a, b)
		assert.True(t, got.Equal(&want))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		assert.Panics(t, func() {
			poly.InnerProduct(make([]fr.Element, 2), make([]fr.Element, 3))
		})
	})
}

func TestVecPoly3(t *testing.T) {
	t.Run("Eval", func(t *testing.T) {
		// p(X) = (1 + 2X + 3X^2 + 4X^3) in dimension one.
		p := poly.NewVecPoly3(1)
		p.T0[0].SetUint64(1)
		p.T1[0].SetUint64(2)
		p.T2[0].SetUint64(3)
		p.T3[0].SetUint64(4)

		var x fr.Element
		x.SetUint64(2)

		var want fr.Element
		want.SetUint64(49)

		got := p.Eval(x)
		assert.True(t, got[0].Equal(&want))
	})

	t.Run("Dimension", func(t *testing.T) {
		assert.Equal(t, 8, poly.NewVecPoly3(8).Dimension())
	})
}

// TestSpecialInnerProduct checks t = <l, r> as polynomials by comparing
// t(x) against <l(x), r(x)> at random points.
func TestSpecialInnerProduct(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("t(x) = <l(x), r(x)>", prop.ForAll(
		func(n int) bool {
			l := poly.NewVecPoly3(n)
			r := poly.NewVecPoly3(n)
			for i := 0; i < n; i++ {
				l.T1[i] = randomScalar(t)
				l.T2[i] = randomScalar(t)
				l.T3[i] = randomScalar(t)
				r.T0[i] = randomScalar(t)
				r.T1[i] = randomScalar(t)
				r.T3[i] = randomScalar(t)
			}

			tPoly := poly.SpecialInnerProduct(l, r)

			x := randomScalar(t)
			want := poly.InnerProduct(l.Eval(x), r.Eval(x))
			got := tPoly.Eval(x)
			return got.Equal(&want)
		},
		gen.IntRange(1, 32),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPoly6(t *testing.T) {
	t.Run("ZeroConstantTerm", func(t *testing.T) {
		p := poly.Poly6{
			T1: randomScalar(t),
			T2: randomScalar(t),
			T3: randomScalar(t),
			T4: randomScalar(t),
			T5: randomScalar(t),
			T6: randomScalar(t),
		}

		var zero fr.Element
		got := p.Eval(zero)
		assert.True(t, got.IsZero())
	})

	t.Run("Eval", func(t *testing.T) {
		// p(X) = X + X^2 + ... + X^6 at X = 2 is 126.
		var one fr.Element
		one.SetOne()
		p := poly.Poly6{T1: one, T2: one, T3: one, T4: one, T5: one, T6: one}

		var x, want fr.Element
		x.SetUint64(2)
		want.SetUint64(126)

		got := p.Eval(x)
		assert.True(t, got.Equal(&want))
	})
}
