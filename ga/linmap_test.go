package ga

import "testing"

func TestIdentityMapFixesVectors(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	L := NewIdentityMap(alg)
	e1 := BasisVector(alg, 0)
	got := L.ApplyToVector(e1)
	if !got.EqualWithin(e1, 1e-12) {
		t.Errorf("identity map moved e1: %s", got)
	}
}

func TestLinearMapOutOfRangePanics(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	L := NewIdentityMap(alg)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("At(3,0) did not panic")
		} else if _, ok := r.(*OutOfRangeError); !ok {
			t.Fatalf("panic value %v is not *OutOfRangeError", r)
		}
	}()
	L.At(3, 0)
}

func TestOutermorphismScalarAndPseudoscalar(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	L := NewZeroMap(alg)
	// A 90-degree rotation in the e1-e2 plane, identity on e3.
	L.Set(0, 0, 0)
	L.Set(1, 0, 1)
	L.Set(0, 1, -1)
	L.Set(1, 1, 0)
	L.Set(2, 2, 1)

	one := Scalar(alg, 1)
	if got := L.Apply(one); got.At(0) != 1 {
		t.Errorf("L(1) = %s, want 1", got)
	}

	I := NewMultivector(alg)
	I.Set(0b111, 1)
	// det(L) = 1 (pure rotation), so L(I) should equal I.
	got := L.Apply(I)
	if !got.EqualWithin(I, 1e-9) {
		t.Errorf("L(I) = %s, want %s", got, I)
	}
}

func TestOutermorphismMultiplicativeOnWedge(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	L := NewZeroMap(alg)
	L.Set(0, 0, 2)
	L.Set(1, 0, 1)
	L.Set(0, 1, 0)
	L.Set(1, 1, 3)
	L.Set(2, 2, 1)

	e1 := BasisVector(alg, 0)
	e2 := BasisVector(alg, 1)

	lhs := L.Apply(Wedge(e1, e2))
	rhs := Wedge(L.ApplyToVector(e1), L.ApplyToVector(e2))
	if !lhs.EqualWithin(rhs, 1e-9) {
		t.Errorf("L(e1^e2) = %s, want L(e1)^L(e2) = %s", lhs, rhs)
	}
}
