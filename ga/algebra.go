package ga

// Algebra is the shared context that Multivectors, LinearMaps, Versors
// and Rotors reference: a Signature plus its derived dimension count.
// Algebra values are meant to be constructed once with NewAlgebra and
// shared by pointer; binary operations compare operands' Algebra
// pointers for identity, not the structural equality of their
// signatures, so two *Algebra built from the same Signature are
// considered different algebras.
type Algebra struct {
	sig  Signature
	dims int
}

// NewAlgebra binds a Signature into an Algebra.
func NewAlgebra(sig Signature) *Algebra {
	return &Algebra{sig: sig, dims: sig.Dims()}
}

// Signature returns the algebra's metric signature.
func (a *Algebra) Signature() Signature { return a.sig }

// Dims returns the number of basis axes.
func (a *Algebra) Dims() int { return a.dims }

// Size returns 2^Dims, the number of basis blades (and so the length of
// every Multivector's coefficient array) in the algebra.
func (a *Algebra) Size() int { return 1 << uint(a.dims) }

// PseudoscalarMask returns (1<<Dims)-1, the mask of the blade containing
// every axis.
func (a *Algebra) PseudoscalarMask() BladeMask {
	return BladeMask(a.Size() - 1)
}
