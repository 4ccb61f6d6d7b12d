package types

// ------------------------
// USB-C current advertisement
// ------------------------

// CurrentTier is the discrete current budget advertised by the upstream
// host on the CC lines. Ordering matters: higher value => more current.
type CurrentTier uint8

const (
	TierStandard CurrentTier = iota // default USB power, matrix stays off
	Tier1A5                         // 1.5 A advertisement
	Tier3A                          // 3.0 A advertisement
)

func (t CurrentTier) String() string {
	switch t {
	case Tier3A:
		return "3.0A"
	case Tier1A5:
		return "1.5A"
	default:
		return "standard"
	}
}

// MilliAmps returns the nominal budget for the tier. TierStandard reports
// the legacy 500 mA default, which is never enough to light the matrix.
func (t CurrentTier) MilliAmps() int32 {
	switch t {
	case Tier3A:
		return 3000
	case Tier1A5:
		return 1500
	default:
		return 500
	}
}

// Retained value: power/tier/value
type TierValue struct {
	Tier          CurrentTier `json:"tier"`
	MilliAmps     int32       `json:"mA"`
	MaxBrightness uint8       `json:"max_brightness"`
	TSms          int64       `json:"ts_ms"`
}

// Retained value: power/rail/state
type RailState struct {
	On   bool  `json:"on"`
	TSms int64 `json:"ts_ms"`
}
