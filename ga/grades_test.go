package ga

import "testing"

func TestWedgeAnticommuteOnVectors(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	e1 := BasisVector(alg, 0)
	e2 := BasisVector(alg, 1)

	e12 := Wedge(e1, e2)
	e21 := Wedge(e2, e1)
	if e12.At(0b011) != 1 {
		t.Errorf("e1^e2 component = %v, want 1", e12.At(0b011))
	}
	if e21.At(0b011) != -1 {
		t.Errorf("e2^e1 component = %v, want -1", e21.At(0b011))
	}
}

func TestWedgeSelfVanishes(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	e1 := BasisVector(alg, 0)
	got := Wedge(e1, e1)
	zero := NewMultivector(alg)
	if !got.EqualWithin(zero, 1e-12) {
		t.Errorf("e1^e1 = %s, want 0", got)
	}
}

func TestContractionsOnBivector(t *testing.T) {
	alg := mustAlgebra(t, 3, 0, 0)
	e1 := BasisVector(alg, 0)
	e2 := BasisVector(alg, 1)
	e3 := BasisVector(alg, 2)
	B := Wedge(e1, e2)

	cases := []struct {
		name string
		got  *Multivector
		mask BladeMask
		want float64
	}{
		{"e1 lcontract B", LeftContract(e1, B), 0b010, 1},
		{"e2 lcontract B", LeftContract(e2, B), 0b001, -1},
		{"B rcontract e2", RightContract(B, e2), 0b001, 1},
		{"B rcontract e1", RightContract(B, e1), 0b010, -1},
	}
	for _, c := range cases {
		if got := c.got.At(c.mask); got != c.want {
			t.Errorf("%s: component at %03b = %v, want %v", c.name, c.mask, got, c.want)
		}
	}

	zero := NewMultivector(alg)
	if got := LeftContract(e3, B); !got.EqualWithin(zero, 1e-12) {
		t.Errorf("e3 lcontract B = %s, want 0", got)
	}
	if got := RightContract(B, e3); !got.EqualWithin(zero, 1e-12) {
		t.Errorf("B rcontract e3 = %s, want 0", got)
	}
}

func TestInnerMetricSquare(t *testing.T) {
	sigs := []Signature{}
	s1, _ := NewSignature(3, 0, 0, true)
	s2, _ := NewSignature(1, 3, 0, true)
	sigs = append(sigs, s1, s2)

	for _, sig := range sigs {
		alg := NewAlgebra(sig)
		for i := 0; i < sig.Dims(); i++ {
			ei := BasisVector(alg, i)
			got := Inner(ei, ei).At(0)
			if want := float64(sig.G(i)); got != want {
				t.Errorf("e%d . e%d = %v, want %v", i, i, got, want)
			}
		}
	}
}
