// Package r1cs implements a prover for rank-1 constraint systems in the
// Bulletproofs style. Circuits are built from committed inputs and
// multiplication gates, with linear constraints tying the wires together;
// a single proof covers the whole system and grows logarithmically in the
// gate count.
package r1cs

// VariableKind identifies the wire family a Variable refers to.
type VariableKind uint8

const (
	// MultiplierLeft is the left input wire of a multiplication gate.
	MultiplierLeft VariableKind = iota
	// MultiplierRight is the right input wire of a multiplication gate.
	MultiplierRight
	// MultiplierOutput is the output wire of a multiplication gate.
	MultiplierOutput
	// Committed is a committed input wire.
	Committed
	// One is the constant one wire.
	One
)

// Variable is a symbolic reference to a wire of a constraint system.
// Variables carry no value; the constraint system that allocated them
// holds the assignments.
type Variable struct {
	// Kind is the wire family.
	Kind VariableKind
	// Index is the gate index for multiplier wires and the input index for
	// committed wires. It is ignored for the constant one wire.
	Index int
}

// OneVariable returns the Variable referring to the constant one wire.
func OneVariable() Variable {
	return Variable{Kind: One}
}
