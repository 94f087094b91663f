package ga

import "math/bits"

// Signature declares the metric of a Clifford algebra: the number of
// basis axes that square to +1, -1 and 0, plus a handedness flag. The
// flag is stored and reported by RightHanded; no operation in this
// package reads it, so it does not change the pseudoscalar's orientation
// or the sign of any product or dual. g(i) recovers the
// per-axis sign from whichever of the three construction paths built
// the Signature.
type Signature struct {
	p, q, r int
	// metric[i] is g(i) for i in [0, p+q+r). Entries at or beyond
	// p+q+r are unused.
	metric      [NMax]int8
	rightHanded bool
}

// NewSignature builds a Signature from axis counts: the first p axes
// square to +1, the next q to -1, the last r to 0. It fails with
// ErrSignatureTooLarge when p+q+r exceeds NMax.
func NewSignature(p, q, r int, rightHanded bool) (Signature, error) {
	n := p + q + r
	if n > NMax || p < 0 || q < 0 || r < 0 {
		return Signature{}, ErrSignatureTooLarge
	}
	var sig Signature
	sig.p, sig.q, sig.r = p, q, r
	sig.rightHanded = rightHanded
	i := 0
	for ; i < p; i++ {
		sig.metric[i] = 1
	}
	for ; i < p+q; i++ {
		sig.metric[i] = -1
	}
	for ; i < n; i++ {
		sig.metric[i] = 0
	}
	return sig, nil
}

// NewSignatureFromMasks builds a Signature from three disjoint axis
// masks: axis i squares to +1 if pMask has bit i set, -1 if qMask does,
// 0 if rMask does. It fails with ErrOverlappingMasks when any pair of
// masks shares a bit, and with ErrSignatureTooLarge when the union of
// the masks spans more than NMax axes or reaches beyond bit NMax-1.
func NewSignatureFromMasks(pMask, qMask, rMask BladeMask, rightHanded bool) (Signature, error) {
	if pMask&qMask != 0 || pMask&rMask != 0 || qMask&rMask != 0 {
		return Signature{}, ErrOverlappingMasks
	}
	union := pMask | qMask | rMask
	n := bits.Len8(uint8(union))
	if n > NMax {
		return Signature{}, ErrSignatureTooLarge
	}
	var sig Signature
	sig.rightHanded = rightHanded
	for i := 0; i < n; i++ {
		bit := BladeMask(1 << uint(i))
		switch {
		case pMask&bit != 0:
			sig.metric[i] = 1
			sig.p++
		case qMask&bit != 0:
			sig.metric[i] = -1
			sig.q++
		case rMask&bit != 0:
			sig.metric[i] = 0
			sig.r++
		default:
			// An axis below n with no assigned sign would leave a
			// gap in the dimension count; treat it as null so every
			// axis in [0,n) contributes to p+q+r.
			sig.r++
		}
	}
	return sig, nil
}

// NewSignatureFromMetric builds a Signature from an explicit diagonal
// metric and axis count, recovering (p, q, r) by counting. It fails with
// ErrAxisCountOutOfRange when axisCount is negative or exceeds NMax.
func NewSignatureFromMetric(metric [NMax]int8, axisCount int, rightHanded bool) (Signature, error) {
	if axisCount < 0 || axisCount > NMax {
		return Signature{}, ErrAxisCountOutOfRange
	}
	var sig Signature
	sig.rightHanded = rightHanded
	sig.metric = metric
	for i := 0; i < axisCount; i++ {
		switch {
		case metric[i] > 0:
			sig.p++
		case metric[i] < 0:
			sig.q++
		default:
			sig.r++
		}
	}
	for i := axisCount; i < NMax; i++ {
		sig.metric[i] = 0
	}
	return sig, nil
}

// Dims returns p+q+r, the number of basis axes.
func (s Signature) Dims() int { return s.p + s.q + s.r }

// Counts returns (p, q, r).
func (s Signature) Counts() (p, q, r int) { return s.p, s.q, s.r }

// RightHanded reports the handedness flag the Signature was built with.
func (s Signature) RightHanded() bool { return s.rightHanded }

// IsDegenerate reports whether the metric has any null axes (r > 0).
func (s Signature) IsDegenerate() bool { return s.r > 0 }

// G returns g(i), the diagonal metric value of axis i, for i in
// [0, Dims()). Callers must not query axes outside that range: blade
// iteration is always bounded by Dims(), so no sentinel is defined for
// out-of-range i.
func (s Signature) G(i int) int8 {
	return s.metric[i]
}
