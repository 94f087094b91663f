// Package ga implements real Clifford (geometric) algebras over small,
// user-declared metric signatures. A Signature fixes how many basis axes
// square to +1, -1 and 0; an Algebra binds a Signature to its dimension
// count and backs Multivectors, which are dense coefficient vectors
// indexed by basis-blade bitmasks.
//
// The geometric product of two basis blades (BladeProduct) is the single
// computational kernel: every other product — wedge, Hestenes inner,
// left/right contraction — is the same bilinear extension (Product) with
// a different grade filter (see Wedge, Inner, LeftContract, RightContract).
// Reverse, GradeInvolution and CliffordConjugate are per-grade sign flips;
// Dual maps each blade to its complement within the pseudoscalar, signed
// by the blade's product with that complement. LinearMap extends
// a linear map on the vector space to the whole algebra by outermorphism,
// and Versor/Rotor act on multivectors by the sandwich product.
//
// All operations are pure functions of their arguments and the Algebra
// they reference: there is no global registry and no shared mutable
// state. Binary operations require their operands to reference the same
// *Algebra (compared by pointer identity, not structural equality of
// signatures) and panic with an *AlgebraMismatchError otherwise.
package ga // import "github.com/TheZerth/GASmith/ga"
