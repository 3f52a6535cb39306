package poly

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Eval returns vOut = p(x).
func (p VecPoly3) Eval(x fr.Element) []fr.Element {
	vOut := make([]fr.Element, p.Dimension())
	p.EvalAssign(x, vOut)
	return vOut
}

// EvalAssign assigns vOut = p(x).
func (p VecPoly3) EvalAssign(x fr.Element, vOut []fr.Element) {
	for i := range vOut {
		vOut[i].Mul(&p.T3[i], &x)
		vOut[i].Add(&vOut[i], &p.T2[i])
		vOut[i].Mul(&vOut[i], &x)
		vOut[i].Add(&vOut[i], &p.T1[i])
		vOut[i].Mul(&vOut[i], &x)
		vOut[i].Add(&vOut[i], &p.T0[i])
	}
}

// Eval returns p(x).
func (p Poly6) Eval(x fr.Element) fr.Element {
	var r fr.Element
	r.Mul(&p.T6, &x)
	r.Add(&r, &p.T5)
	r.Mul(&r, &x)
	r.Add(&r, &p.T4)
	r.Mul(&r, &x)
	r.Add(&r, &p.T3)
	r.Mul(&r, &x)
	r.Add(&r, &p.T2)
	r.Mul(&r, &x)
	r.Add(&r, &p.T1)
	r.Mul(&r, &x)
	return r
}

// SpecialInnerProduct returns the inner product of l and r,
// assuming l.T0 = 0 and r.T2 = 0.
// Convolution terms involving the zero coefficients are skipped.
//
// Panics when the dimensions of l and r differ.
func SpecialInnerProduct(l, r VecPoly3) Poly6 {
	var p Poly6
	var t fr.Element

	p.T1 = InnerProduct(l.T1, r.T0)

	p.T2 = InnerProduct(l.T1, r.T1)
	t = InnerProduct(l.T2, r.T0)
	p.T2.Add(&p.T2, &t)

	p.T3 = InnerProduct(l.T2, r.T1)
	t = InnerProduct(l.T3, r.T0)
	p.T3.Add(&p.T3, &t)

	p.T4 = InnerProduct(l.T1, r.T3)
	t = InnerProduct(l.T3, r.T1)
	p.T4.Add(&p.T4, &t)

	p.T5 = InnerProduct(l.T2, r.T3)

	p.T6 = InnerProduct(l.T3, r.T3)

	return p
}

// InnerProduct returns the inner product of a and b.
//
// Panics when the lengths of a and b differ.
func InnerProduct(a, b []fr.Element) fr.Element {
	if len(a) != len(b) {
		panic("length mismatch in inner product")
	}

	var r, t fr.Element
	for i := range a {
		t.Mul(&a[i], &b[i])
		r.Add(&r, &t)
	}
	return r
}

// Powers returns the power series 1, x, x^2, ..., x^(n-1).
func Powers(x fr.Element, n int) []fr.Element {
	vOut := make([]fr.Element, n)
	if n == 0 {
		return vOut
	}

	vOut[0].SetOne()
	for i := 1; i < n; i++ {
		vOut[i].Mul(&vOut[i-1], &x)
	}
	return vOut
}
