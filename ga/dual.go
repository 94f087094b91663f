package ga

// Dual returns the Hodge dual of A: for each nonzero component c at mask
// m, the complement mask I^m is computed against the pseudoscalar mask
// I, and the blade product of m with that complement is formed. When
// that product is ±I, c*sign accumulates into the result at the
// complement mask; a product with sign 0 or a mask other than I would be
// silently skipped rather than raising (the DegenerateDual guard). A
// blade and its complement share no axis, so no metric factor enters
// their product and it is always ±I: the guard skips nothing, even for
// blades on null axes.
func Dual(A *Multivector) *Multivector {
	sig := A.alg.Signature()
	iMask := A.alg.PseudoscalarMask()
	out := NewMultivector(A.alg)
	for m, c := range A.coeff {
		if c == 0 {
			continue
		}
		comp := iMask ^ BladeMask(m)
		bp := BladeProduct(Blade{Mask: BladeMask(m), Sign: 1}, Blade{Mask: comp, Sign: 1}, sig)
		if bp.IsZero() || bp.Mask != iMask {
			continue
		}
		out.coeff[comp] += c * float64(bp.Sign)
	}
	return out
}
