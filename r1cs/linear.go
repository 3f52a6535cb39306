package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Term is a coefficient-variable pair of a linear combination.
type Term struct {
	// Variable is the wire the coefficient applies to.
	Variable Variable
	// Coefficient scales the wire value.
	Coefficient fr.Element
}

// LinearCombination is a linear combination of constraint system wires.
// The zero value is the empty combination.
type LinearCombination struct {
	Terms []Term
}

// NewLinearCombination creates a new LinearCombination from the given terms.
func NewLinearCombination(terms ...Term) LinearCombination {
	return LinearCombination{Terms: terms}
}

// AddTerm appends the term coeff*v to lc.
func (lc *LinearCombination) AddTerm(coeff fr.Element, v Variable) *LinearCombination {
	lc.Terms = append(lc.Terms, Term{Variable: v, Coefficient: coeff})
	return lc
}

// AddVariable appends the term 1*v to lc.
func (lc *LinearCombination) AddVariable(v Variable) *LinearCombination {
	var one fr.Element
	one.SetOne()
	return lc.AddTerm(one, v)
}

// SubVariable appends the term -1*v to lc.
func (lc *LinearCombination) SubVariable(v Variable) *LinearCombination {
	var minusOne fr.Element
	minusOne.SetOne()
	minusOne.Neg(&minusOne)
	return lc.AddTerm(minusOne, v)
}

// AddConstant appends the term c*One to lc.
func (lc *LinearCombination) AddConstant(c fr.Element) *LinearCombination {
	return lc.AddTerm(c, OneVariable())
}

// SubConstant appends the term -c*One to lc.
func (lc *LinearCombination) SubConstant(c fr.Element) *LinearCombination {
	var negC fr.Element
	negC.Neg(&c)
	return lc.AddTerm(negC, OneVariable())
}
