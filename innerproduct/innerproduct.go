// Package innerproduct implements the inner-product argument that compresses
// the vector openings of a circuit proof to logarithmic size.
//
// The argument proves knowledge of vectors a, b opening a commitment
// P = <a, G> + <b, H'> + <a, b>*Q, where H' is the H basis rescaled by a
// caller-supplied vector. Each round halves the vectors, sending one L, R
// pair; after log2(n) rounds only two scalars remain.
package innerproduct

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/sp301415/bulletproof-go/num"
	"github.com/sp301415/bulletproof-go/poly"
	"github.com/sp301415/bulletproof-go/transcript"
)

// Proof is an inner-product argument proof.
type Proof struct {
	// L and R are the per-round fold commitments.
	L []bn254.G1Affine
	R []bn254.G1Affine
	// A and B are the two vectors folded down to dimension one.
	A fr.Element
	B fr.Element
}

// Create proves knowledge of the vectors a and b with respect to the bases
// g, h and the combined base q, binding every round to the transcript.
//
// The first fold applies hScale to the h bases, so the caller can commit to
// a rescaled basis without materializing it; with zero rounds (n <= 1) the
// scaling never enters and is reconstructed by the verifier. The input
// slices are left unmodified, and a zero-length input yields an empty proof.
//
// Panics when the input lengths differ or are not zero or a power of two.
func Create(t *transcript.Transcript, q *bn254.G1Affine, hScale []fr.Element, gVec, hVec []bn254.G1Affine, aVec, bVec []fr.Element) Proof {
	n := len(gVec)
	if len(hVec) != n || len(hScale) != n || len(aVec) != n || len(bVec) != n {
		panic("length mismatch between bases and vectors")
	}
	if n != 0 && !num.IsPowerOfTwo(n) {
		panic("vector length must be a power of two")
	}

	t.InnerProductDomainSep(uint64(n))

	if n == 0 {
		return Proof{}
	}

	a := make([]fr.Element, n)
	b := make([]fr.Element, n)
	g := make([]bn254.G1Affine, n)
	h := make([]bn254.G1Affine, n)
	copy(a, aVec)
	copy(b, bVec)
	copy(g, gVec)
	copy(h, hVec)

	lgN := num.Log2(n)
	proof := Proof{
		L: make([]bn254.G1Affine, 0, lgN),
		R: make([]bn254.G1Affine, 0, lgN),
	}

	first := true
	for n > 1 {
		n2 := n / 2
		aL, aR := a[:n2], a[n2:n]
		bL, bR := b[:n2], b[n2:n]
		gL, gR := g[:n2], g[n2:n]
		hL, hR := h[:n2], h[n2:n]

		cL := poly.InnerProduct(aL, bR)
		cR := poly.InnerProduct(aR, bL)

		comL := foldCommitment(q, aL, gR, bR, hL, hScale[:n2], cL, first)
		comR := foldCommitment(q, aR, gL, bL, hR, hScale[n2:n], cR, first)

		t.AppendPoint("L", &comL)
		t.AppendPoint("R", &comR)
		proof.L = append(proof.L, comL)
		proof.R = append(proof.R, comR)

		u := t.ChallengeScalar("u")
		var uInv fr.Element
		uInv.Inverse(&u)

		var t0, t1 fr.Element
		for i := 0; i < n2; i++ {
			t0.Mul(&aL[i], &u)
			t1.Mul(&aR[i], &uInv)
			aL[i].Add(&t0, &t1)

			t0.Mul(&bL[i], &uInv)
			t1.Mul(&bR[i], &u)
			bL[i].Add(&t0, &t1)

			gScalars := [2]fr.Element{uInv, u}
			hScalars := [2]fr.Element{u, uInv}
			if first {
				hScalars[0].Mul(&hScalars[0], &hScale[i])
				hScalars[1].Mul(&hScalars[1], &hScale[n2+i])
			}
			gL[i] = foldBase(gL[i], gR[i], gScalars)
			hL[i] = foldBase(hL[i], hR[i], hScalars)
		}

		a, b, g, h = aL, bL, gL, hL
		n = n2
		first = false
	}

	proof.A = a[0]
	proof.B = b[0]
	return proof
}

// foldCommitment computes <aHalf, gHalf> + <bHalf, hHalf> + c*q as a single
// multiexponentiation, rescaling the h side on the first round.
func foldCommitment(q *bn254.G1Affine, aHalf []fr.Element, gHalf []bn254.G1Affine, bHalf []fr.Element, hHalf []bn254.G1Affine, hScaleHalf []fr.Element, c fr.Element, first bool) bn254.G1Affine {
	n2 := len(aHalf)

	scalars := make([]fr.Element, 0, 2*n2+1)
	bases := make([]bn254.G1Affine, 0, 2*n2+1)

	scalars = append(scalars, aHalf...)
	bases = append(bases, gHalf...)

	if first {
		var s fr.Element
		for i := range bHalf {
			s.Mul(&bHalf[i], &hScaleHalf[i])
			scalars = append(scalars, s)
		}
	} else {
		scalars = append(scalars, bHalf...)
	}
	bases = append(bases, hHalf...)

	scalars = append(scalars, c)
	bases = append(bases, *q)

	var com bn254.G1Affine
	if _, err := com.MultiExp(bases, scalars, ecc.MultiExpConfig{}); err != nil {
		panic(err)
	}
	return com
}

// foldBase computes scalars[0]*p0 + scalars[1]*p1.
func foldBase(p0, p1 bn254.G1Affine, scalars [2]fr.Element) bn254.G1Affine {
	var folded bn254.G1Affine
	if _, err := folded.MultiExp([]bn254.G1Affine{p0, p1}, scalars[:], ecc.MultiExpConfig{}); err != nil {
		panic(err)
	}
	return folded
}

// WriteTo implements the [io.WriterTo] interface,
// writing points in compressed form.
func (p *Proof) WriteTo(w io.Writer) (int64, error) {
	enc := bn254.NewEncoder(w)
	toEncode := []interface{}{
		p.L,
		p.R,
		&p.A,
		&p.B,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom implements the [io.ReaderFrom] interface.
// Points are checked to be on the curve and in the correct subgroup.
func (p *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := bn254.NewDecoder(r)
	toDecode := []interface{}{
		&p.L,
		&p.R,
		&p.A,
		&p.B,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}
