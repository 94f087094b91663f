package ga

// BladeProduct computes the geometric product of two basis blades under
// sig. Either operand being zero, or the scalar basis, is handled as an
// identity/absorbing case; otherwise the sign accumulates a swap-parity
// factor from moving b's axes past a's (the wedge sign) and a metric
// factor g(i) for every axis shared between a and b (the contraction).
// Any shared null axis (g(i) == 0) makes the whole product vanish.
func BladeProduct(a, b Blade, sig Signature) Blade {
	if a.IsZero() || b.IsZero() {
		return ZeroBlade
	}
	if a.IsScalar() {
		return Blade{Mask: b.Mask, Sign: a.Sign * b.Sign}
	}
	if b.IsScalar() {
		return Blade{Mask: a.Mask, Sign: a.Sign * b.Sign}
	}

	sign := a.Sign * b.Sign
	if inversionParity(a.Mask, b.Mask)%2 != 0 {
		sign = -sign
	}

	overlap := a.Mask & b.Mask
	for i := 0; i < NMax; i++ {
		if overlap&(1<<uint(i)) == 0 {
			continue
		}
		g := sig.G(i)
		if g == 0 {
			return ZeroBlade
		}
		sign *= int8(g)
	}

	return Blade{Mask: a.Mask ^ b.Mask, Sign: sign}
}

// GradeFilter decides, for a term pairing a grade-gA component of A with
// a grade-gB component of B whose basis product lands at grade gR,
// whether that term is kept in the result. A nil filter keeps every
// term, i.e. computes the full geometric product.
type GradeFilter func(gradeA, gradeB, gradeR int) bool

// Product is the bilinear extension of BladeProduct to multivectors: for
// every pair of nonzero coefficients in A and B, it forms their basis
// blade product and, unless keep rejects the term by grade, accumulates
// cA*cB*sign into the matching component of the result. With keep == nil
// this is the full geometric product. It panics with
// *AlgebraMismatchError if A and B reference different algebras.
func Product(A, B *Multivector, keep GradeFilter) *Multivector {
	mismatch("Product", A.alg, B.alg)
	sig := A.alg.Signature()
	out := NewMultivector(A.alg)
	for mA, cA := range A.coeff {
		if cA == 0 {
			continue
		}
		for mB, cB := range B.coeff {
			if cB == 0 {
				continue
			}
			bp := BladeProduct(Blade{Mask: BladeMask(mA), Sign: 1}, Blade{Mask: BladeMask(mB), Sign: 1}, sig)
			if bp.IsZero() {
				continue
			}
			if keep != nil {
				gA := BladeMask(mA).Grade()
				gB := BladeMask(mB).Grade()
				gR := bp.Grade()
				if !keep(gA, gB, gR) {
					continue
				}
			}
			out.coeff[bp.Mask] += cA * cB * float64(bp.Sign)
		}
	}
	return out
}

// Geometric returns the full geometric product A*B.
func Geometric(A, B *Multivector) *Multivector {
	return Product(A, B, nil)
}
