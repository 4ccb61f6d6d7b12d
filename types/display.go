package types

// ------------------------
// Display output
// ------------------------

type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255}
	Blue  = Color{B: 255}
	Off   = Color{}
)

// Scale returns the color with every channel scaled by brightness/255.
// Integer math, rounds down; brightness 0 yields Off.
func (c Color) Scale(brightness uint8) Color {
	b := uint16(brightness)
	return Color{
		R: uint8(uint16(c.R) * b / 255),
		G: uint8(uint16(c.G) * b / 255),
		B: uint8(uint16(c.B) * b / 255),
	}
}

// Retained value: display/color/value
type ColorValue struct {
	Color Color `json:"color"`
	TSms  int64 `json:"ts_ms"`
}

// Streamed value: input/touch/value (one per control-loop iteration)
type TouchValue struct {
	Filtered [3]int32 `json:"filtered"`
	TSms     int64    `json:"ts_ms"`
}
