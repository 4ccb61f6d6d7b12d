package ewma

import "testing"

func TestFilter_SingleUpdateLaw(t *testing.T) {
	// 7/10 smoothing: one update from 100 with raw 0 must read exactly 70.
	f := New(7, 10, 100)
	f.Update(0)
	if got := f.Value(); got != 70 {
		t.Fatalf("Value() after Update(0) from 100 = %d, want 70", got)
	}
}

func TestFilter_SteadyInputIsFixedPoint(t *testing.T) {
	f := New(7, 10, 42)
	for i := 0; i < 50; i++ {
		f.Update(42)
	}
	if got := f.Value(); got != 42 {
		t.Fatalf("steady input drifted to %d, want 42", got)
	}
}

func TestFilter_ConvergesTowardRaw(t *testing.T) {
	f := New(7, 10, 200)
	prev := f.Value()
	for i := 0; i < 40; i++ {
		f.Update(10)
		v := f.Value()
		if v > prev {
			t.Fatalf("value rose from %d to %d while converging down", prev, v)
		}
		prev = v
	}
	if prev != 10 {
		t.Fatalf("did not converge to 10, got %d", prev)
	}
}

func TestFilter_BoundedByHistoricalRange(t *testing.T) {
	f := New(7, 10, 50)
	inputs := []int32{0, 100, 30, 90, 10, 100, 0}
	for _, in := range inputs {
		f.Update(in)
		if v := f.Value(); v < 0 || v > 100 {
			t.Fatalf("value %d escaped range [0,100]", v)
		}
	}
}

func TestNew_CoercesDegenerateFactors(t *testing.T) {
	f := New(12, 10, 5) // num > den => always hold
	f.Update(100)
	if got := f.Value(); got != 5 {
		t.Fatalf("coerced hold filter moved to %d, want 5", got)
	}
	g := New(-1, 10, 5) // num < 0 => always track
	g.Update(100)
	if got := g.Value(); got != 100 {
		t.Fatalf("coerced track filter read %d, want 100", got)
	}
}
