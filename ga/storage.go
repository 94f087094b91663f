package ga

// denseCoeffs is the fixed-capacity coefficient array backing a
// Multivector: one float64 per basis-blade mask. It is allocated once,
// sized exactly to the owning Algebra's 2^dims blades, and never grows —
// the dense layout spec.md's Non-goals explicitly trade off against
// sparse storage for n beyond NMax.
type denseCoeffs []float64

func newDenseCoeffs(dims int) denseCoeffs {
	return make(denseCoeffs, 1<<uint(dims))
}

func (c denseCoeffs) clone() denseCoeffs {
	out := make(denseCoeffs, len(c))
	copy(out, c)
	return out
}
