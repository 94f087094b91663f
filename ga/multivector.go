package ga

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Multivector is a real linear combination of basis blades in a shared
// Algebra, stored as a dense array of coefficients indexed by
// BladeMask. The zero value is not usable; construct with NewMultivector
// or Scalar.
type Multivector struct {
	alg   *Algebra
	coeff denseCoeffs
}

// NewMultivector returns the zero multivector of alg.
func NewMultivector(alg *Algebra) *Multivector {
	return &Multivector{alg: alg, coeff: newDenseCoeffs(alg.Dims())}
}

// Scalar returns the multivector alg representing the real number v.
func Scalar(alg *Algebra, v float64) *Multivector {
	mv := NewMultivector(alg)
	mv.Set(0, v)
	return mv
}

// BasisVector returns the multivector alg representing e_i, the pure
// grade-1 basis vector on axis i. It panics with *OutOfRangeError if i
// is outside [0, alg.Dims()).
func BasisVector(alg *Algebra, i int) *Multivector {
	if i < 0 || i >= alg.Dims() {
		panic(&OutOfRangeError{Op: "BasisVector", Row: i, Dims: alg.Dims()})
	}
	mv := NewMultivector(alg)
	mv.Set(BladeMask(1<<uint(i)), 1)
	return mv
}

// Algebra returns the algebra mv is bound to.
func (mv *Multivector) Algebra() *Algebra { return mv.alg }

// At returns the coefficient of basis blade mask.
func (mv *Multivector) At(mask BladeMask) float64 {
	return mv.coeff[mask]
}

// Set assigns the coefficient of basis blade mask.
func (mv *Multivector) Set(mask BladeMask, v float64) {
	mv.coeff[mask] = v
}

// Clone returns an independent copy of mv in the same algebra.
func (mv *Multivector) Clone() *Multivector {
	return &Multivector{alg: mv.alg, coeff: mv.coeff.clone()}
}

// Add returns mv + other; it panics with *AlgebraMismatchError if the
// operands reference different algebras.
func (mv *Multivector) Add(other *Multivector) *Multivector {
	mismatch("Add", mv.alg, other.alg)
	out := NewMultivector(mv.alg)
	for m := range out.coeff {
		out.coeff[m] = mv.coeff[m] + other.coeff[m]
	}
	return out
}

// Sub returns mv - other; it panics with *AlgebraMismatchError if the
// operands reference different algebras.
func (mv *Multivector) Sub(other *Multivector) *Multivector {
	mismatch("Sub", mv.alg, other.alg)
	out := NewMultivector(mv.alg)
	for m := range out.coeff {
		out.coeff[m] = mv.coeff[m] - other.coeff[m]
	}
	return out
}

// Scale returns mv scaled by f.
func (mv *Multivector) Scale(f float64) *Multivector {
	out := NewMultivector(mv.alg)
	for m := range out.coeff {
		out.coeff[m] = f * mv.coeff[m]
	}
	return out
}

// grade returns the grade-r part of mv: all components whose mask does
// not have popcount r are zeroed.
func (mv *Multivector) grade(r int) *Multivector {
	out := NewMultivector(mv.alg)
	for m, c := range mv.coeff {
		if c != 0 && BladeMask(m).Grade() == r {
			out.coeff[m] = c
		}
	}
	return out
}

// EqualWithin reports whether every component of mv and other differs by
// no more than tol. It panics with *AlgebraMismatchError if the operands
// reference different algebras.
func (mv *Multivector) EqualWithin(other *Multivector, tol float64) bool {
	mismatch("EqualWithin", mv.alg, other.alg)
	for m := range mv.coeff {
		if !floats.EqualWithinAbs(mv.coeff[m], other.coeff[m], tol) {
			return false
		}
	}
	return true
}

// String renders mv as a sum of signed blade terms, e.g. "1 + 2e1 - e23",
// omitting zero components. The zero multivector renders as "0".
func (mv *Multivector) String() string {
	var b strings.Builder
	first := true
	for m, c := range mv.coeff {
		if c == 0 {
			continue
		}
		if !first {
			if c < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		} else if c < 0 {
			b.WriteString("-")
		}
		first = false
		mag := c
		if mag < 0 {
			mag = -mag
		}
		writeBladeTerm(&b, mag, BladeMask(m))
	}
	if first {
		return "0"
	}
	return b.String()
}

func writeBladeTerm(b *strings.Builder, mag float64, m BladeMask) {
	if m == 0 {
		fmt.Fprintf(b, "%g", mag)
		return
	}
	if mag != 1 {
		fmt.Fprintf(b, "%g", mag)
	}
	b.WriteString("e")
	for i := 0; i < NMax; i++ {
		if m.HasAxis(i) {
			fmt.Fprintf(b, "%d", i)
		}
	}
}
