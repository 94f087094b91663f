package ga

// Wedge returns the exterior (outer) product A∧B: the grade-(gA+gB) part
// of the geometric product.
func Wedge(A, B *Multivector) *Multivector {
	return Product(A, B, func(gA, gB, gR int) bool {
		return gR == gA+gB
	})
}

// Inner returns the Hestenes inner product A·B: the grade-|gA-gB| part
// of the geometric product.
func Inner(A, B *Multivector) *Multivector {
	return Product(A, B, func(gA, gB, gR int) bool {
		return gR == absInt(gA-gB)
	})
}

// LeftContract returns the left contraction A⌋B: the grade-(gB-gA) part
// of the geometric product, defined only where gA <= gB.
func LeftContract(A, B *Multivector) *Multivector {
	return Product(A, B, func(gA, gB, gR int) bool {
		return gA <= gB && gR == gB-gA
	})
}

// RightContract returns the right contraction A⌊B: the grade-(gA-gB)
// part of the geometric product, defined only where gA >= gB.
func RightContract(A, B *Multivector) *Multivector {
	return Product(A, B, func(gA, gB, gR int) bool {
		return gA >= gB && gR == gA-gB
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
