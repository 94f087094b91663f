package ga

import "gonum.org/v1/gonum/floats"

// Versor wraps a multivector assumed invertible, acting on other
// multivectors by the sandwich product V*X*V^-1. It does not check that
// the wrapped value is actually invertible beyond the tolerance guard in
// Inverse.
type Versor struct {
	V *Multivector
}

// NewVersor wraps mv as a Versor.
func NewVersor(mv *Multivector) Versor {
	return Versor{V: mv}
}

// Inverse returns ~V / s, where s is the scalar component of V*~V. It
// returns ErrSingular when |s| is within eps of zero.
func (vs Versor) Inverse(eps float64) (*Multivector, error) {
	rev := Reverse(vs.V)
	norm := Geometric(vs.V, rev)
	s := norm.At(0)
	if floats.EqualWithinAbs(s, 0, eps) {
		return nil, ErrSingular
	}
	return rev.Scale(1 / s), nil
}

// Apply returns V*X*V^-1 using the default tolerance to guard the
// inversion. It panics with *AlgebraMismatchError if X references a
// different algebra than V, and returns ErrSingular if V is not
// invertible within DefaultEpsilon.
func (vs Versor) Apply(X *Multivector) (*Multivector, error) {
	mismatch("Versor.Apply", vs.V.alg, X.alg)
	inv, err := vs.Inverse(DefaultEpsilon)
	if err != nil {
		return nil, err
	}
	return Geometric(Geometric(vs.V, X), inv), nil
}
