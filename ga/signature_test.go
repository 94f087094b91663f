package ga

import "testing"

func TestNewSignatureCounts(t *testing.T) {
	sig, err := NewSignature(3, 0, 0, true)
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	if sig.Dims() != 3 {
		t.Fatalf("Dims() = %d, want 3", sig.Dims())
	}
	for i := 0; i < 3; i++ {
		if g := sig.G(i); g != 1 {
			t.Errorf("G(%d) = %d, want 1", i, g)
		}
	}
	if sig.IsDegenerate() {
		t.Errorf("IsDegenerate() = true, want false")
	}
}

func TestNewSignatureTooLarge(t *testing.T) {
	if _, err := NewSignature(5, 4, 0, true); err != ErrSignatureTooLarge {
		t.Fatalf("got err %v, want ErrSignatureTooLarge", err)
	}
}

func TestNewSignatureSTA(t *testing.T) {
	sig, err := NewSignature(1, 3, 0, true)
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	if g := sig.G(0); g != 1 {
		t.Errorf("G(0) = %d, want +1", g)
	}
	for i := 1; i < 4; i++ {
		if g := sig.G(i); g != -1 {
			t.Errorf("G(%d) = %d, want -1", i, g)
		}
	}
}

func TestNewSignaturePGANullAxis(t *testing.T) {
	sig, err := NewSignature(3, 0, 1, true)
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	if g := sig.G(3); g != 0 {
		t.Errorf("G(3) = %d, want 0", g)
	}
	if !sig.IsDegenerate() {
		t.Errorf("IsDegenerate() = false, want true")
	}
}

func TestNewSignatureFromMasksOverlap(t *testing.T) {
	_, err := NewSignatureFromMasks(0b011, 0b010, 0, true)
	if err != ErrOverlappingMasks {
		t.Fatalf("got err %v, want ErrOverlappingMasks", err)
	}
}

func TestNewSignatureFromMasksTimeLast(t *testing.T) {
	// Time axis placed last instead of first: space = {0,1,2}, time = {3}.
	sig, err := NewSignatureFromMasks(0b0111, 0b1000, 0, true)
	if err != nil {
		t.Fatalf("NewSignatureFromMasks: %v", err)
	}
	for i := 0; i < 3; i++ {
		if g := sig.G(i); g != 1 {
			t.Errorf("G(%d) = %d, want +1", i, g)
		}
	}
	if g := sig.G(3); g != -1 {
		t.Errorf("G(3) = %d, want -1", g)
	}
}

func TestNewSignatureFromMetricRoundTrip(t *testing.T) {
	var metric [NMax]int8
	metric[0], metric[1], metric[2] = 1, -1, 0
	sig, err := NewSignatureFromMetric(metric, 3, true)
	if err != nil {
		t.Fatalf("NewSignatureFromMetric: %v", err)
	}
	p, q, r := sig.Counts()
	if p != 1 || q != 1 || r != 1 {
		t.Fatalf("Counts() = (%d,%d,%d), want (1,1,1)", p, q, r)
	}
}

func TestNewSignatureFromMetricOutOfRange(t *testing.T) {
	var metric [NMax]int8
	if _, err := NewSignatureFromMetric(metric, NMax+1, true); err != ErrAxisCountOutOfRange {
		t.Fatalf("got err %v, want ErrAxisCountOutOfRange", err)
	}
}
