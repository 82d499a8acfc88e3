package pool

import "testing"

func TestPoolGetPut(t *testing.T) {
	resetCalls := 0
	p := New(
		func() *int { v := 0; return &v },
		func(v *int) { resetCalls++; *v = 0 },
	)

	v := p.Get()
	*v = 42
	p.Put(v)

	if resetCalls != 1 {
		t.Fatalf("expected reset to run once, got %d", resetCalls)
	}

	allocated, inUse := p.Stats()
	if allocated != 1 {
		t.Fatalf("expected 1 allocation, got %d", allocated)
	}
	if inUse != 0 {
		t.Fatalf("expected 0 in-use after Put, got %d", inUse)
	}
}

func TestDigitsScratchIsZeroLength(t *testing.T) {
	d := GetDigits()
	if len(d) != 0 {
		t.Fatalf("expected zero-length scratch slice, got len %d", len(d))
	}
	d = append(d, 1, 2, 3)
	PutDigits(d)

	d2 := GetDigits()
	if len(d2) != 0 {
		t.Fatalf("expected reused slice truncated to zero length, got len %d", len(d2))
	}
}
