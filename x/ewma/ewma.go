package ewma

// Filter is a fixed-point exponential low-pass: each Update folds a raw
// sample into the running value as value' = (num*value + (den-num)*raw)/den.
// State is held scaled by 1000 so repeated updates do not lose the
// fractional part; Value truncates to an integer.
//
// The output is always a convex combination of past inputs, so it stays
// inside the historical range of the raw samples.
type Filter struct {
	num, den int32
	scaled   int64 // value * 1000
}

// New returns a filter with smoothing factor num/den seeded at initial.
// den must be > 0 and num in [0, den]; out-of-range factors are coerced.
func New(num, den int32, initial int32) Filter {
	if den <= 0 {
		den = 1
	}
	if num < 0 {
		num = 0
	}
	if num > den {
		num = den
	}
	return Filter{num: num, den: den, scaled: int64(initial) * 1000}
}

// Update folds one raw sample into the filter.
func (f *Filter) Update(raw int32) {
	f.scaled = (int64(f.num)*f.scaled + int64(f.den-f.num)*int64(raw)*1000) / int64(f.den)
}

// Value returns the filtered value truncated to an integer.
func (f *Filter) Value() int32 { return int32(f.scaled / 1000) }
