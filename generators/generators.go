// Package generators implements the public generator points used by circuit
// proofs over bn254.
//
// All generators are derived deterministically, so the prover and a future
// verifier agree on them without a trusted setup.
package generators

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// PedersenGens is the base points of a Pedersen commitment.
type PedersenGens struct {
	// B is the base point for the committed value.
	B bn254.G1Affine
	// BBlinding is the base point for the blinding factor.
	BBlinding bn254.G1Affine
}

// NewPedersenGens creates a new PedersenGens with the default bases:
// the curve generator for values, and a hash of its compressed encoding
// for blindings.
//
// Panics when hashing to the curve fails.
func NewPedersenGens() *PedersenGens {
	_, _, g, _ := bn254.Generators()

	buf := g.Bytes()
	h, err := bn254.HashToG1(buf[:], []byte("pedersen:blinding"))
	if err != nil {
		panic(err)
	}

	return &PedersenGens{
		B:         g,
		BBlinding: h,
	}
}

// Commit returns the Pedersen commitment value*B + blinding*BBlinding.
func (g *PedersenGens) Commit(value, blinding fr.Element) bn254.G1Affine {
	var com bn254.G1Affine
	if _, err := com.MultiExp(
		[]bn254.G1Affine{g.B, g.BBlinding},
		[]fr.Element{value, blinding},
		ecc.MultiExpConfig{},
	); err != nil {
		panic(err)
	}
	return com
}

// BulletproofGens is the per-wire generator chains of a circuit proof.
//
// The chains are deterministic prefixes of one another: increasing the
// capacity extends each chain without changing existing points, so proofs
// created with a smaller capacity stay valid.
type BulletproofGens struct {
	capacity int

	g []bn254.G1Affine
	h []bn254.G1Affine
}

// NewBulletproofGens creates a new BulletproofGens supporting circuits
// with up to capacity multiplication gates.
//
// Panics when hashing to the curve fails.
func NewBulletproofGens(capacity int) *BulletproofGens {
	gens := &BulletproofGens{}
	gens.IncreaseCapacity(capacity)
	return gens
}

// Capacity returns the number of multiplication gates the generator chains support.
func (g *BulletproofGens) Capacity() int {
	return g.capacity
}

// IncreaseCapacity extends the generator chains to support circuits with up
// to newCapacity multiplication gates. Existing generators are unchanged.
//
// Panics when hashing to the curve fails.
func (g *BulletproofGens) IncreaseCapacity(newCapacity int) {
	if newCapacity <= g.capacity {
		return
	}

	g.g = extendChain(g.g, newCapacity, []byte("bulletproof:gens:G"))
	g.h = extendChain(g.h, newCapacity, []byte("bulletproof:gens:H"))
	g.capacity = newCapacity
}

// G returns the first n generators of the G chain.
//
// Panics when n exceeds the capacity.
func (g *BulletproofGens) G(n int) []bn254.G1Affine {
	if n > g.capacity {
		panic("generator capacity exceeded")
	}
	return g.g[:n]
}

// H returns the first n generators of the H chain.
//
// Panics when n exceeds the capacity.
func (g *BulletproofGens) H(n int) []bn254.G1Affine {
	if n > g.capacity {
		panic("generator capacity exceeded")
	}
	return g.h[:n]
}

// extendChain extends a hash-to-curve generator chain to length n,
// hashing the chain index under the given domain separation tag.
func extendChain(chain []bn254.G1Affine, n int, dst []byte) []bn254.G1Affine {
	var buf [4]byte
	for i := len(chain); i < n; i++ {
		binary.BigEndian.PutUint32(buf[:], uint32(i))
		p, err := bn254.HashToG1(buf[:], dst)
		if err != nil {
			panic(err)
		}
		chain = append(chain, p)
	}
	return chain
}
