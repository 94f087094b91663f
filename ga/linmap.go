package ga

import "gonum.org/v1/gonum/mat"

// LinearMap is a linear map on the vector space of an Algebra, stored as
// a dense n×n matrix: m.At(row, col) is the coefficient of e_row in the
// image of e_col. The matrix is backed by gonum's *mat.Dense, the same
// dense-matrix type gonum.org/v1/gonum/mat builds its decompositions on.
type LinearMap struct {
	alg *Algebra
	m   *mat.Dense
}

// NewIdentityMap returns the identity linear map on alg.
func NewIdentityMap(alg *Algebra) *LinearMap {
	n := alg.Dims()
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return &LinearMap{alg: alg, m: d}
}

// NewZeroMap returns the zero linear map on alg.
func NewZeroMap(alg *Algebra) *LinearMap {
	n := alg.Dims()
	return &LinearMap{alg: alg, m: mat.NewDense(n, n, nil)}
}

// Algebra returns the algebra the map is bound to.
func (l *LinearMap) Algebra() *Algebra { return l.alg }

// At returns m[row][col]. It panics with *OutOfRangeError when row or
// col is outside [0, alg.Dims()).
func (l *LinearMap) At(row, col int) float64 {
	l.checkRange("At", row, col)
	return l.m.At(row, col)
}

// Set assigns m[row][col]. It panics with *OutOfRangeError when row or
// col is outside [0, alg.Dims()).
func (l *LinearMap) Set(row, col int, v float64) {
	l.checkRange("Set", row, col)
	l.m.Set(row, col, v)
}

func (l *LinearMap) checkRange(op string, row, col int) {
	n := l.alg.Dims()
	if row < 0 || row >= n || col < 0 || col >= n {
		panic(&OutOfRangeError{Op: op, Row: row, Col: col, Dims: n})
	}
}

// ApplyToVector extracts the n components {v_j = coefficient of e_j in
// v} and returns the pure vector w with w_i = sum_j m[i][j]*v_j;
// non-vector-grade components of v are ignored. It panics with
// *AlgebraMismatchError if v references a different algebra.
func (l *LinearMap) ApplyToVector(v *Multivector) *Multivector {
	mismatch("ApplyToVector", l.alg, v.alg)
	n := l.alg.Dims()
	out := NewMultivector(l.alg)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			vj := v.At(BladeMask(1 << uint(j)))
			if vj == 0 {
				continue
			}
			sum += l.m.At(i, j) * vj
		}
		out.Set(BladeMask(1<<uint(i)), sum)
	}
	return out
}

// Apply extends l to the whole multivector A by outermorphism: images of
// the basis vectors are wedged together, bottom-up over masks in
// increasing popcount order, and the result is the linear combination of
// those images weighted by A's coefficients. It panics with
// *AlgebraMismatchError if A references a different algebra.
func (l *LinearMap) Apply(A *Multivector) *Multivector {
	mismatch("Apply", l.alg, A.alg)
	images := l.bladeImages()
	out := NewMultivector(l.alg)
	for m, c := range A.coeff {
		if c == 0 {
			continue
		}
		img := images[m]
		if img == nil {
			continue
		}
		for im, ic := range img.coeff {
			if ic == 0 {
				continue
			}
			out.coeff[im] += c * ic
		}
	}
	return out
}

// bladeImages computes L(E_mask) for every mask of alg, in increasing
// popcount order so each recursive step's dependency is already
// available: mask 0 maps to the scalar 1, grade-1 masks map to the
// precomputed vector images, and every other mask picks its lowest set
// axis j and wedges V_j with L(E_{mask without j}).
func (l *LinearMap) bladeImages() []*Multivector {
	n := l.alg.Dims()
	size := l.alg.Size()
	images := make([]*Multivector, size)
	images[0] = Scalar(l.alg, 1)

	vecImages := make([]*Multivector, n)
	for j := 0; j < n; j++ {
		vecImages[j] = l.ApplyToVector(BasisVector(l.alg, j))
		images[1<<uint(j)] = vecImages[j]
	}

	masksByPopcount := make([][]int, n+1)
	for m := 0; m < size; m++ {
		g := BladeMask(m).Grade()
		masksByPopcount[g] = append(masksByPopcount[g], m)
	}

	for g := 2; g <= n; g++ {
		for _, m := range masksByPopcount[g] {
			j := lowestSetAxis(BladeMask(m))
			rest := m &^ (1 << uint(j))
			images[m] = Wedge(vecImages[j], images[rest])
		}
	}
	return images
}

func lowestSetAxis(m BladeMask) int {
	for i := 0; i < NMax; i++ {
		if m.HasAxis(i) {
			return i
		}
	}
	return -1
}
