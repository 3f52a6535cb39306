package r1cs

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/sp301415/bulletproof-go/innerproduct"
)

// Proof is a proof of a single constraint system.
// Its size grows logarithmically in the number of multiplication gates.
type Proof struct {
	// AI commits to the left and right gate input wires.
	AI bn254.G1Affine
	// AO commits to the gate output wires.
	AO bn254.G1Affine
	// S commits to the blinding vectors.
	S bn254.G1Affine

	// T1, T3, T4, T5 and T6 commit to the coefficients of the aggregated
	// inner-product polynomial. The degree 2 coefficient is bound by the
	// input commitments and needs no commitment of its own.
	T1 bn254.G1Affine
	T3 bn254.G1Affine
	T4 bn254.G1Affine
	T5 bn254.G1Affine
	T6 bn254.G1Affine

	// TX opens the aggregated polynomial at the evaluation challenge, with
	// TXBlinding the matching commitment blinding and EBlinding the folded
	// wire commitment blinding.
	TX         fr.Element
	TXBlinding fr.Element
	EBlinding  fr.Element

	// IPProof proves the inner-product relation of the evaluated wire
	// vectors.
	IPProof innerproduct.Proof
}

// WriteTo implements the [io.WriterTo] interface,
// writing points in compressed form.
func (p *Proof) WriteTo(w io.Writer) (int64, error) {
	enc := bn254.NewEncoder(w)
	toEncode := []interface{}{
		&p.AI,
		&p.AO,
		&p.S,
		&p.T1,
		&p.T3,
		&p.T4,
		&p.T5,
		&p.T6,
		&p.TX,
		&p.TXBlinding,
		&p.EBlinding,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}

	n, err := p.IPProof.WriteTo(w)
	return enc.BytesWritten() + n, err
}

// ReadFrom implements the [io.ReaderFrom] interface.
// Points are checked to be on the curve and in the correct subgroup.
func (p *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := bn254.NewDecoder(r)
	toDecode := []interface{}{
		&p.AI,
		&p.AO,
		&p.S,
		&p.T1,
		&p.T3,
		&p.T4,
		&p.T5,
		&p.T6,
		&p.TX,
		&p.TXBlinding,
		&p.EBlinding,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}

	n, err := p.IPProof.ReadFrom(r)
	return dec.BytesRead() + n, err
}
