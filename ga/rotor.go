package ga

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Rotor wraps a multivector assumed to be a unit element of the even
// subalgebra (R*~R == 1), acting by the sandwich product R*X*~R without
// needing a general inverse. Rotor-ness is a documented precondition,
// not something the type enforces structurally.
type Rotor struct {
	R *Multivector
}

// NewRotor wraps mv as a Rotor with no normalization.
func NewRotor(mv *Multivector) Rotor {
	return Rotor{R: mv}
}

// Normalize computes s, the scalar part of R*~R, and scales R by
// 1/sqrt(|s|). It returns ErrSingular, leaving the Rotor unchanged, when
// |s| is within eps of zero.
func (r *Rotor) Normalize(eps float64) error {
	rev := Reverse(r.R)
	norm := Geometric(r.R, rev)
	s := norm.At(0)
	if floats.EqualWithinAbs(s, 0, eps) {
		return ErrSingular
	}
	r.R = r.R.Scale(1 / math.Sqrt(math.Abs(s)))
	return nil
}

// Apply returns R*X*~R. It panics with *AlgebraMismatchError if X
// references a different algebra than R.
func (r Rotor) Apply(X *Multivector) *Multivector {
	mismatch("Rotor.Apply", r.R.alg, X.alg)
	return Geometric(Geometric(r.R, X), Reverse(r.R))
}

// FromBivectorAngle builds the rotor with scalar part cos(theta/2) and
// bivector part -sin(theta/2)*B, then normalizes it with eps. B must be
// a pure bivector (grade-2) multivector in the target algebra.
func FromBivectorAngle(alg *Algebra, B *Multivector, theta, eps float64) (Rotor, error) {
	half := theta / 2
	r := Scalar(alg, math.Cos(half)).Sub(B.Scale(math.Sin(half)))
	rotor := NewRotor(r)
	if err := rotor.Normalize(eps); err != nil {
		return Rotor{}, err
	}
	return rotor, nil
}

// FromPlaneAngle forms the bivector B = a∧b, measures its squared
// magnitude via the Hestenes inner product B·B (not a naive coefficient
// sum, so this is correct in non-Euclidean signatures), normalizes B by
// 1/sqrt(|scalar|), and delegates to FromBivectorAngle. It returns
// ErrSingular if the wedge has zero magnitude in the algebra's metric.
func FromPlaneAngle(alg *Algebra, a, b *Multivector, theta, eps float64) (Rotor, error) {
	B := Wedge(a, b)
	mag2 := Inner(B, B).At(0)
	if floats.EqualWithinAbs(mag2, 0, eps) {
		return Rotor{}, ErrSingular
	}
	Bn := B.Scale(1 / math.Sqrt(math.Abs(mag2)))
	return FromBivectorAngle(alg, Bn, theta, eps)
}
