// services/ctrl/detector.go
package ctrl

import (
	"glowgrid-go/types"
	"glowgrid-go/x/mathx"
)

// CC voltage bands from the Type-C connector spec's current advertisement.
// These are a contract with the physical standard, not tunables.
const (
	ccVRefMilliVolts = 3300
	ccFullScale      = 0xFFFF

	cc3AMilliVolts  = 1230 // above => 3.0 A
	cc1A5MilliVolts = 660  // above => 1.5 A, else default power
)

// Detector classifies the host's advertised current budget from the two CC
// lines. Only one line is driven, depending on cable orientation, so the
// louder of the two wins. An undriven or shorted-low pair reads as
// TierStandard, which is the fail-safe.
type Detector struct {
	cc1, cc2 AnalogLine
}

func NewDetector(cc1, cc2 AnalogLine) *Detector {
	return &Detector{cc1: cc1, cc2: cc2}
}

// Sample reads both lines once and classifies the result. Never fails.
func (d *Detector) Sample() types.CurrentTier {
	mv := mathx.Max(toMilliVolts(d.cc1.ReadRaw()), toMilliVolts(d.cc2.ReadRaw()))
	return classify(mv)
}

// SampleMilliVolts exposes the raw line voltages for bring-up tooling.
func (d *Detector) SampleMilliVolts() (cc1, cc2 int32) {
	return toMilliVolts(d.cc1.ReadRaw()), toMilliVolts(d.cc2.ReadRaw())
}

func toMilliVolts(raw uint16) int32 {
	return int32(uint32(raw) * ccVRefMilliVolts / ccFullScale)
}

// classify uses strict greater-than so band edges resolve to the lower,
// safer tier.
func classify(mv int32) types.CurrentTier {
	switch {
	case mv > cc3AMilliVolts:
		return types.Tier3A
	case mv > cc1A5MilliVolts:
		return types.Tier1A5
	default:
		return types.TierStandard
	}
}
