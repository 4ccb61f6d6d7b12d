// services/ctrl/brightness.go
package ctrl

import (
	"glowgrid-go/types"
	"glowgrid-go/x/mathx"
)

// Worst-case electrical budget of the panel.
const (
	ledCount             = 64  // 8x8 matrix
	perLEDMaxMilliAmps   = 60  // all three channels at full scale
	idleReserveMilliAmps = 150 // MCU, regulators, indicators
	brightnessFullScale  = 255
)

// MaxBrightness maps an accepted tier to the highest global brightness that
// keeps worst-case LED draw plus the idle reserve inside the advertised
// budget. Pure function; TierStandard yields 0 because the matrix rail is
// kept down entirely at default power.
func MaxBrightness(tier types.CurrentTier) uint8 {
	if tier == types.TierStandard {
		return 0
	}
	headroom := tier.MilliAmps() - idleReserveMilliAmps
	if headroom <= 0 {
		return 0
	}
	b := headroom * brightnessFullScale / (ledCount * perLEDMaxMilliAmps)
	return uint8(mathx.Clamp(b, 0, brightnessFullScale))
}
