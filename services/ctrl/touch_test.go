package ctrl

import (
	"testing"

	"glowgrid-go/types"
)

func TestSelectColor_PriorityOrder(t *testing.T) {
	// Channel 0 wins because it is checked first, not because it is lowest.
	got := selectColor([touchChannels]int32{15, 5, 50}, types.Off)
	if got != types.White {
		t.Fatalf("selectColor = %v, want white (channel 0 priority)", got)
	}
}

func TestSelectColor_RetainsPreviousWhenUntouched(t *testing.T) {
	prev := types.Blue
	got := selectColor([touchChannels]int32{40, 55, 90}, prev)
	if got != prev {
		t.Fatalf("selectColor = %v, want previous color retained", got)
	}
}

func TestSelectColor_ThresholdIsStrict(t *testing.T) {
	prev := types.Off
	if got := selectColor([touchChannels]int32{touchThreshold, touchThreshold, touchThreshold}, prev); got != prev {
		t.Fatalf("value at threshold must not trigger, got %v", got)
	}
	if got := selectColor([touchChannels]int32{50, touchThreshold - 1, 50}, prev); got != types.Red {
		// channel 1 carries red
		t.Fatalf("value just under threshold must trigger channel 1, got %v", got)
	}
}

func TestTouchChannel_FilterTracksLine(t *testing.T) {
	line := &scriptLine{seq: []uint16{100, 0}}
	ch := newTouchChannel(line) // consumes the initial 100
	if got := ch.update(); got != 70 {
		t.Fatalf("first update = %d, want 70", got)
	}
}
