// services/ctrl/types.go
package ctrl

import (
	"time"

	"glowgrid-go/types"
)

// Hardware primitives the control service is wired to. Providers implement
// these against real pins; tests implement them against scripted fakes.

// AnalogLine is one raw analog input. Readings are full-scale 16-bit.
type AnalogLine interface {
	ReadRaw() uint16
}

// DigitalOut drives one output pin.
type DigitalOut interface {
	Set(on bool)
}

// PixelSink accepts one color and a global brightness for the whole matrix.
// The sink owns serialization to the addressable LED chain.
type PixelSink interface {
	Show(c types.Color, brightness uint8)
}

// Clock abstracts the hard waits (debounce confirm, stage settle, loop
// period) so tests can observe elapsed time instead of waiting it out.
type Clock interface {
	Sleep(d time.Duration)
}

// Board bundles everything the control service drives. All fields must be
// non-nil.
type Board struct {
	CC1, CC2 AnalogLine    // current-advertisement lines
	Touch    [3]AnalogLine // capacitive pads, priority order

	DataHold DigitalOut // holds the LED data line low across power moves
	Stage1   DigitalOut // current-limited first power stage
	Stage2   DigitalOut // low-resistance second power stage

	IndA DigitalOut // tier indicator, lit from 1.5A up
	IndB DigitalOut // tier indicator, lit at 3.0A only

	Sink  PixelSink
	Clock Clock
}
