// services/ctrl/touch.go
package ctrl

import (
	"glowgrid-go/types"
	"glowgrid-go/x/ewma"
)

const (
	touchChannels  = 3
	touchThreshold = 20 // filtered reading below this counts as touched

	// Smoothing factor of the per-pad low-pass filter.
	touchFilterNum = 7
	touchFilterDen = 10
)

// Pad colors in priority order: the first touched pad wins.
var touchColors = [touchChannels]types.Color{types.White, types.Red, types.Blue}

type touchChannel struct {
	line AnalogLine
	filt ewma.Filter
}

func newTouchChannel(line AnalogLine) touchChannel {
	return touchChannel{
		line: line,
		filt: ewma.New(touchFilterNum, touchFilterDen, int32(line.ReadRaw())),
	}
}

// update folds one raw sample into the filter and returns the new value.
func (t *touchChannel) update() int32 {
	t.filt.Update(int32(t.line.ReadRaw()))
	return t.filt.Value()
}

// selectColor picks the color of the first channel whose filtered value sits
// below the activation threshold, checked in fixed priority order. When no
// pad is touched the previous color is retained.
func selectColor(filtered [touchChannels]int32, prev types.Color) types.Color {
	for i, v := range filtered {
		if v < touchThreshold {
			return touchColors[i]
		}
	}
	return prev
}
