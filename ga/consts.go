package ga

// NMax is the largest number of basis axes an Algebra may carry. The
// dense coefficient storage backing a Multivector holds 2^n entries, so
// n is capped well below the point where that becomes impractical.
const NMax = 8

// DefaultEpsilon is the tolerance Versor.Apply uses to guard its
// inversion. Versor.Inverse, Rotor.Normalize, FromBivectorAngle and
// FromPlaneAngle take their tolerance as an argument; DefaultEpsilon is
// the value to pass when no other tolerance is wanted.
const DefaultEpsilon = 1e-12
