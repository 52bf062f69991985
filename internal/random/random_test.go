package random

import "testing"

func TestBetweenInclusive(t *testing.T) {
	src := NewSeeded(7)
	seenLo, seenHi := false, false
	for i := 0; i < 2000; i++ {
		v := Between(src, 3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("Between out of range: %d", v)
		}
		if v == 3 {
			seenLo = true
		}
		if v == 6 {
			seenHi = true
		}
	}
	if !seenLo || !seenHi {
		t.Errorf("expected both bounds to be drawn, lo=%v hi=%v", seenLo, seenHi)
	}
	if got := Between(src, 5, 5); got != 5 {
		t.Errorf("Between(5,5) = %d", got)
	}
}

func TestConfidenceStaysInRange(t *testing.T) {
	src := NewSeeded(11)
	for i := 0; i < 2000; i++ {
		c := Confidence(src, 0.75, 0.98)
		if c < 0.75 || c > 0.98 {
			t.Fatalf("confidence %v outside [0.75, 0.98]", c)
		}
		if Round(c, 2) != c {
			t.Fatalf("confidence %v not rounded to 2 decimals", c)
		}
	}
}

func TestSeededIsDeterministic(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 50; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		dec  int
		want float64
	}{
		{33.3333, 1, 33.3},
		{16.66666, 1, 16.7},
		{0.756, 2, 0.76},
		{50, 1, 50},
	}
	for _, c := range cases {
		if got := Round(c.in, c.dec); got != c.want {
			t.Errorf("Round(%v, %d) = %v, want %v", c.in, c.dec, got, c.want)
		}
	}
}
