package r1cs

import (
	"crypto/rand"
	"io"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"

	"github.com/sp301415/bulletproof-go/innerproduct"
	"github.com/sp301415/bulletproof-go/logger"
	"github.com/sp301415/bulletproof-go/num"
	"github.com/sp301415/bulletproof-go/poly"
)

// Prove consumes the Prover and produces a proof of the constraint system.
// Blinding factors are derived from the transcript state, the witness and
// fresh system entropy, so proving the same statement twice yields distinct
// proofs.
//
// Returns ErrInvalidGeneratorsLength when the padded gate count exceeds the
// generator capacity, and ErrProverConsumed on reuse.
func (p *Prover) Prove() (Proof, error) {
	return p.prove(rand.Reader)
}

func (p *Prover) prove(entropy io.Reader) (Proof, error) {
	if p.consumed {
		return Proof{}, ErrProverConsumed
	}
	p.consumed = true

	start := time.Now()
	log := logger.Logger().With().
		Str("curve", "bn254").
		Int("nbGates", len(p.aL)).
		Int("nbConstraints", len(p.constraints)).
		Logger()
	log.Debug().Msg("prover started")

	p.checkWellFormed(log)

	// Pad the gates to a power of two with zero wires. Zero wires commit
	// to nothing and drop out of every inner product, so padding does not
	// change the proven statement.
	n := len(p.aL)
	if n != 0 && !num.IsPowerOfTwo(n) {
		pad := num.NextPowerOfTwo(n) - n
		p.aL = append(p.aL, make([]fr.Element, pad)...)
		p.aR = append(p.aR, make([]fr.Element, pad)...)
		p.aO = append(p.aO, make([]fr.Element, pad)...)
		n = len(p.aL)
	}

	if p.bpGens.Capacity() < n {
		return Proof{}, ErrInvalidGeneratorsLength
	}

	// Blinding factors come from a source keyed by the transcript state,
	// the commitment openings and fresh entropy: deterministic enough to
	// be bound to the witness, fresh enough that repeated proofs differ.
	rngBuilder := p.transcript.RngBuilder()
	for i := range p.vBlinding {
		rngBuilder.WriteWitness("v_blinding", p.vBlinding[i].Marshal())
	}
	rng, err := rngBuilder.Finalize(entropy)
	if err != nil {
		return Proof{}, err
	}

	iBlinding := rng.SampleScalar()
	oBlinding := rng.SampleScalar()
	sBlinding := rng.SampleScalar()
	sL := rng.SampleScalars(n)
	sR := rng.SampleScalars(n)

	gVec := p.bpGens.G(n)
	hVec := p.bpGens.H(n)

	// A_I commits to the gate input wires, A_O to the output wires, and S
	// to the blinding vectors that will hide the wires at the evaluation
	// point.
	var comAI, comAO, comS bn254.G1Affine
	var group errgroup.Group
	group.Go(func() error {
		var err error
		comAI, err = commitVectors(iBlinding, p.pcGens.BBlinding, p.aL, gVec, p.aR, hVec)
		return err
	})
	group.Go(func() error {
		var err error
		comAO, err = commitVectors(oBlinding, p.pcGens.BBlinding, p.aO, gVec, nil, nil)
		return err
	})
	group.Go(func() error {
		var err error
		comS, err = commitVectors(sBlinding, p.pcGens.BBlinding, sL, gVec, sR, hVec)
		return err
	})
	if err := group.Wait(); err != nil {
		return Proof{}, err
	}

	p.transcript.AppendPoint("A_I", &comAI)
	p.transcript.AppendPoint("A_O", &comAO)
	p.transcript.AppendPoint("S", &comS)

	y := p.transcript.ChallengeScalar("y")
	z := p.transcript.ChallengeScalar("z")

	wL, wR, wO, wV := p.flattenedConstraints(&z)

	yPow := poly.Powers(y, n)
	var yInv fr.Element
	yInv.Inverse(&y)
	yInvPow := poly.Powers(yInv, n)

	// l(X) = (a_L + y^-i ∘ w_R) X + a_O X^2 + s_L X^3
	// r(X) = (w_O - y^i) + (y^i ∘ a_R + w_L) X + (y^i ∘ s_R) X^3
	lPoly := poly.NewVecPoly3(n)
	rPoly := poly.NewVecPoly3(n)
	for i := 0; i < n; i++ {
		lPoly.T1[i].Mul(&yInvPow[i], &wR[i])
		lPoly.T1[i].Add(&lPoly.T1[i], &p.aL[i])
		lPoly.T2[i] = p.aO[i]
		lPoly.T3[i] = sL[i]

		rPoly.T0[i].Sub(&wO[i], &yPow[i])
		rPoly.T1[i].Mul(&yPow[i], &p.aR[i])
		rPoly.T1[i].Add(&rPoly.T1[i], &wL[i])
		rPoly.T3[i].Mul(&yPow[i], &sR[i])
	}

	tPoly := poly.SpecialInnerProduct(lPoly, rPoly)

	t1Blinding := rng.SampleScalar()
	t3Blinding := rng.SampleScalar()
	t4Blinding := rng.SampleScalar()
	t5Blinding := rng.SampleScalar()
	t6Blinding := rng.SampleScalar()

	comT1 := p.pcGens.Commit(tPoly.T1, t1Blinding)
	comT3 := p.pcGens.Commit(tPoly.T3, t3Blinding)
	comT4 := p.pcGens.Commit(tPoly.T4, t4Blinding)
	comT5 := p.pcGens.Commit(tPoly.T5, t5Blinding)
	comT6 := p.pcGens.Commit(tPoly.T6, t6Blinding)

	p.transcript.AppendPoint("T_1", &comT1)
	p.transcript.AppendPoint("T_3", &comT3)
	p.transcript.AppendPoint("T_4", &comT4)
	p.transcript.AppendPoint("T_5", &comT5)
	p.transcript.AppendPoint("T_6", &comT6)

	x := p.transcript.ChallengeScalar("x")

	// The degree 2 blinding is fixed by the input commitments: the
	// verifier reconstructs its commitment from V and the flattened
	// weights, so no T_2 is sent.
	t2Blinding := poly.InnerProduct(wV, p.vBlinding)

	tBlindingPoly := poly.Poly6{
		T1: t1Blinding,
		T2: t2Blinding,
		T3: t3Blinding,
		T4: t4Blinding,
		T5: t5Blinding,
		T6: t6Blinding,
	}

	tX := tPoly.Eval(x)
	tXBlinding := tBlindingPoly.Eval(x)

	lVec := lPoly.Eval(x)
	rVec := rPoly.Eval(x)

	// e = x(i + x(o + x s)) folds the three wire commitment blindings at x.
	var eBlinding fr.Element
	eBlinding.Mul(&sBlinding, &x)
	eBlinding.Add(&eBlinding, &oBlinding)
	eBlinding.Mul(&eBlinding, &x)
	eBlinding.Add(&eBlinding, &iBlinding)
	eBlinding.Mul(&eBlinding, &x)

	p.transcript.AppendScalar("t_x", &tX)
	p.transcript.AppendScalar("t_x_blinding", &tXBlinding)
	p.transcript.AppendScalar("e_blinding", &eBlinding)

	// The remaining vector openings are compressed by an inner-product
	// argument over a base Q sampled from the transcript.
	w := p.transcript.ChallengeScalar("w")
	var wBig big.Int
	w.BigInt(&wBig)
	var q bn254.G1Affine
	q.ScalarMultiplication(&p.pcGens.B, &wBig)

	ipProof := innerproduct.Create(p.transcript, &q, yInvPow, gVec, hVec, lVec, rVec)

	log.Debug().Dur("took", time.Since(start)).Msg("prover done")

	return Proof{
		AI: comAI,
		AO: comAO,
		S:  comS,

		T1: comT1,
		T3: comT3,
		T4: comT4,
		T5: comT5,
		T6: comT6,

		TX:         tX,
		TXBlinding: tXBlinding,
		EBlinding:  eBlinding,

		IPProof: ipProof,
	}, nil
}

// commitVectors computes blinding*blindingBase + <v0, b0> + <v1, b1> as a
// single multiexponentiation. The v1, b1 pair may be nil.
func commitVectors(blinding fr.Element, blindingBase bn254.G1Affine, v0 []fr.Element, b0 []bn254.G1Affine, v1 []fr.Element, b1 []bn254.G1Affine) (bn254.G1Affine, error) {
	scalars := make([]fr.Element, 0, 1+len(v0)+len(v1))
	bases := make([]bn254.G1Affine, 0, 1+len(b0)+len(b1))

	scalars = append(scalars, blinding)
	bases = append(bases, blindingBase)
	scalars = append(scalars, v0...)
	bases = append(bases, b0...)
	scalars = append(scalars, v1...)
	bases = append(bases, b1...)

	var com bn254.G1Affine
	if _, err := com.MultiExp(bases, scalars, ecc.MultiExpConfig{}); err != nil {
		return bn254.G1Affine{}, err
	}
	return com, nil
}
