package transcript

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// RngBuilder builds a randomness source seeded by a snapshot of a
// transcript state.
// Witness data absorbed into the builder binds the source to the prover's
// secrets without entering the public transcript.
type RngBuilder struct {
	xof blake2b.XOF
}

// RngBuilder returns a builder for a randomness source seeded by the
// current transcript state. The transcript itself is unaffected.
func (t *Transcript) RngBuilder() *RngBuilder {
	return &RngBuilder{xof: t.xof.Clone()}
}

// WriteWitness absorbs labeled witness bytes into the builder.
func (b *RngBuilder) WriteWitness(label string, data []byte) *RngBuilder {
	writeFrame(b.xof, label, data)
	return b
}

// Finalize mixes 32 bytes of external entropy into the builder and returns
// the finished randomness source.
func (b *RngBuilder) Finalize(entropy io.Reader) (*Rng, error) {
	var seed [32]byte
	if _, err := io.ReadFull(entropy, seed[:]); err != nil {
		return nil, err
	}
	writeFrame(b.xof, "rng", seed[:])

	return &Rng{xof: b.xof}, nil
}

// Rng is a randomness source derived from a transcript state, witness data
// and external entropy.
type Rng struct {
	xof blake2b.XOF
}

// SampleScalar uniformly samples a random scalar.
func (r *Rng) SampleScalar() fr.Element {
	var x fr.Element
	sampleScalarAssign(r.xof, &x)
	return x
}

// SampleScalars uniformly samples a vector of n random scalars.
func (r *Rng) SampleScalars(n int) []fr.Element {
	vOut := make([]fr.Element, n)
	for i := range vOut {
		sampleScalarAssign(r.xof, &vOut[i])
	}
	return vOut
}
