// Package transcript implements a Fiat-Shamir transcript over the bn254 scalar field.
//
// A Transcript absorbs labeled protocol messages into a blake2b XOF,
// and derives challenge scalars from clones of the absorbed state,
// so that every challenge is bound to every message absorbed before it.
// Messages are length-framed, which makes the absorbed byte stream unambiguous.
package transcript

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// modulus is the bn254 scalar field modulus.
var modulus = fr.Modulus()

// msbMask clears the bits above the modulus bit length
// in the leading byte of a sample candidate.
var msbMask = leadingByteMask()

func leadingByteMask() byte {
	b := uint(fr.Bits % 8)
	if b == 0 {
		b = 8
	}
	return byte((1 << b) - 1)
}

// Transcript is a Fiat-Shamir transcript.
// Transcript is not safe for concurrent use.
type Transcript struct {
	xof blake2b.XOF
}

// New creates a new Transcript bound to the given protocol label.
//
// Panics when blake2b initialization fails.
func New(label string) *Transcript {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	t := &Transcript{xof: xof}
	t.AppendMessage("protocol", []byte(label))
	return t
}

// Clone returns an independent copy of the Transcript.
func (t *Transcript) Clone() *Transcript {
	return &Transcript{xof: t.xof.Clone()}
}

// AppendMessage absorbs a labeled byte string into the transcript.
func (t *Transcript) AppendMessage(label string, data []byte) {
	writeFrame(t.xof, label, data)
}

// AppendUint64 absorbs a labeled integer into the transcript.
func (t *Transcript) AppendUint64(label string, x uint64) {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], x)
	t.AppendMessage(label, data[:])
}

// AppendScalar absorbs a labeled scalar into the transcript.
func (t *Transcript) AppendScalar(label string, x *fr.Element) {
	t.AppendMessage(label, x.Marshal())
}

// AppendPoint absorbs a labeled curve point into the transcript,
// in compressed form.
func (t *Transcript) AppendPoint(label string, p *bn254.G1Affine) {
	buf := p.Bytes()
	t.AppendMessage(label, buf[:])
}

// ChallengeScalar derives a challenge scalar bound to all messages absorbed so far.
// The challenge label is absorbed before sampling, so repeated challenges
// yield independent scalars.
func (t *Transcript) ChallengeScalar(label string) fr.Element {
	t.AppendMessage("challenge", []byte(label))

	var c fr.Element
	sampleScalarAssign(t.xof.Clone(), &c)
	return c
}

// CircuitDomainSep absorbs the domain separator for a circuit proof
// over m committed inputs.
func (t *Transcript) CircuitDomainSep(m uint64) {
	t.AppendMessage("dom-sep", []byte("r1cs-v1"))
	t.AppendUint64("m", m)
}

// InnerProductDomainSep absorbs the domain separator for an inner-product
// argument of dimension n.
func (t *Transcript) InnerProductDomainSep(n uint64) {
	t.AppendMessage("dom-sep", []byte("ipp-v1"))
	t.AppendUint64("n", n)
}

// writeFrame absorbs a length-framed message into w.
// Each frame is LE64(len(label)) || label || LE64(len(data)) || data,
// so distinct message sequences never share an absorbed byte stream.
//
// Panics when write to the underlying XOF fails.
func writeFrame(w io.Writer, label string, data []byte) {
	var sz [8]byte

	binary.LittleEndian.PutUint64(sz[:], uint64(len(label)))
	if _, err := w.Write(sz[:]); err != nil {
		panic(err)
	}
	if _, err := io.WriteString(w, label); err != nil {
		panic(err)
	}

	binary.LittleEndian.PutUint64(sz[:], uint64(len(data)))
	if _, err := w.Write(sz[:]); err != nil {
		panic(err)
	}
	if _, err := w.Write(data); err != nil {
		panic(err)
	}
}

// sampleScalarAssign uniformly samples a scalar from r by rejection
// and assigns it to xOut.
//
// Panics when read from r fails.
func sampleScalarAssign(r io.Reader, xOut *fr.Element) {
	var buf [fr.Bytes]byte
	var x big.Int
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			panic(err)
		}

		buf[0] &= msbMask

		x.SetBytes(buf[:])
		if x.Cmp(modulus) < 0 {
			xOut.SetBigInt(&x)
			return
		}
	}
}
