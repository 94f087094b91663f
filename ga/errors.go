package ga

import "fmt"

// Error is a constant error value, following the same idiom as
// gonum.org/v1/gonum/mat's Error type: sentinel failures that a caller
// can compare with ==.
type Error string

func (e Error) Error() string { return string(e) }

// Data-dependent construction and numerical failures. These are returned,
// never panicked, because they depend on caller-supplied values rather
// than on a violated API contract.
const (
	// ErrSignatureTooLarge is returned when p+q+r exceeds NMax.
	ErrSignatureTooLarge = Error("ga: signature dimension exceeds NMax")
	// ErrOverlappingMasks is returned when a Signature built from axis
	// masks has two masks that share a bit.
	ErrOverlappingMasks = Error("ga: signature axis masks overlap")
	// ErrAxisCountOutOfRange is returned when a Signature built from a
	// raw metric is given an axis count outside [0, NMax].
	ErrAxisCountOutOfRange = Error("ga: axis count out of range")
	// ErrSingular is returned by Versor.Inverse, Rotor.Normalize, and
	// FromPlaneAngle when the scalar norm they guard against is
	// within epsilon of zero.
	ErrSingular = Error("ga: operand has near-zero norm and cannot be inverted or normalized")
)

// AlgebraMismatchError reports that two operands of a binary operation
// reference different *Algebra values. It is always a panic payload: two
// multivectors from different algebras is a caller bug, not a runtime
// condition to recover from, mirroring how gonum/mat panics with ErrShape
// on dimension mismatches.
type AlgebraMismatchError struct {
	Op string
}

func (e *AlgebraMismatchError) Error() string {
	return fmt.Sprintf("ga: %s: operands do not share an algebra", e.Op)
}

// OutOfRangeError reports an out-of-bounds row/column access on a
// LinearMap, or an axis index outside [0, Dims) passed to BasisVector
// (reported as Row, with Col 0). Like AlgebraMismatchError, it is a
// panic payload.
type OutOfRangeError struct {
	Op       string
	Row, Col int
	Dims     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("ga: %s: index (%d, %d) out of range for %d-dimensional map", e.Op, e.Row, e.Col, e.Dims)
}

func mismatch(op string, a, b *Algebra) {
	if a != b {
		panic(&AlgebraMismatchError{Op: op})
	}
}
