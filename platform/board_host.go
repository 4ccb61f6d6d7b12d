// platform/board_host.go
//go:build !rp2040

package platform

import (
	"io"
	"os"
	"time"

	"glowgrid-go/services/ctrl"
	"glowgrid-go/types"
)

// NewBoard returns an inert board for host builds: CC lines read as an
// undriven cable, touch pads read idle, pins and pixels go nowhere. It
// keeps the full binary runnable on a workstation.
func NewBoard() ctrl.Board {
	return ctrl.Board{
		CC1:      constLine(0),
		CC2:      constLine(0),
		Touch:    [3]ctrl.AnalogLine{constLine(100), constLine(100), constLine(100)},
		DataHold: nullPin{},
		Stage1:   nullPin{},
		Stage2:   nullPin{},
		IndA:     nullPin{},
		IndB:     nullPin{},
		Sink:     nullSink{},
		Clock:    sysClock{},
	}
}

// DiagWriter sends the diagnostic stream to stdout on the host.
func DiagWriter() io.Writer { return os.Stdout }

type constLine uint16

func (l constLine) ReadRaw() uint16 { return uint16(l) }

type nullPin struct{}

func (nullPin) Set(bool) {}

type nullSink struct{}

func (nullSink) Show(types.Color, uint8) {}

type sysClock struct{}

func (sysClock) Sleep(d time.Duration) { time.Sleep(d) }
