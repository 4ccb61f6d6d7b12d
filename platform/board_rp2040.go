// platform/board_rp2040.go
//go:build rp2040

// Package platform binds the control loop's board contract to real
// hardware, or to an inert simulation when built for the host.
package platform

import (
	"image/color"
	"io"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ws2812"

	"glowgrid-go/drivers/touchpad"
	"glowgrid-go/services/ctrl"
	"glowgrid-go/types"
)

// Pin map for the rev-A board.
const (
	pinCC1 = machine.GPIO26 // ADC0
	pinCC2 = machine.GPIO27 // ADC1

	pinTouch0 = machine.GPIO18
	pinTouch1 = machine.GPIO19
	pinTouch2 = machine.GPIO20

	pinMatrixData = machine.GPIO16
	pinStage1     = machine.GPIO3
	pinStage2     = machine.GPIO4
	pinIndA       = machine.GPIO5
	pinIndB       = machine.GPIO6
)

const matrixLEDs = 64

// NewBoard configures every peripheral and returns the wired board.
// Output pins come up low, so the matrix rail starts disabled.
func NewBoard() ctrl.Board {
	machine.InitADC()

	return ctrl.Board{
		CC1:      newADCLine(pinCC1),
		CC2:      newADCLine(pinCC2),
		Touch:    [3]ctrl.AnalogLine{newPad(pinTouch0), newPad(pinTouch1), newPad(pinTouch2)},
		DataHold: newOutPin(pinMatrixData),
		Stage1:   newOutPin(pinStage1),
		Stage2:   newOutPin(pinStage2),
		IndA:     newOutPin(pinIndA),
		IndB:     newOutPin(pinIndB),
		Sink:     newMatrixSink(pinMatrixData),
		Clock:    sysClock{},
	}
}

// DiagWriter opens UART0 for the diagnostic text stream.
func DiagWriter() io.Writer {
	uartx.UART0.Configure(uartx.UARTConfig{BaudRate: 115200})
	return uartx.UART0
}

// ---- analog lines ----

type adcLine struct {
	adc machine.ADC
}

func newADCLine(p machine.Pin) *adcLine {
	a := machine.ADC{Pin: p}
	a.Configure(machine.ADCConfig{})
	return &adcLine{adc: a}
}

func (l *adcLine) ReadRaw() uint16 { return l.adc.Get() }

// ---- touch pads ----

type gpioPin struct {
	p machine.Pin
}

func (g *gpioPin) ConfigureInput() {
	g.p.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
}
func (g *gpioPin) ConfigureOutput() {
	g.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
}
func (g *gpioPin) Set(high bool) { g.p.Set(high) }
func (g *gpioPin) Get() bool     { return g.p.Get() }

func newPad(p machine.Pin) *touchpad.Device {
	return touchpad.New(&gpioPin{p: p})
}

// ---- digital outputs ----

type outPin struct {
	p machine.Pin
}

func newOutPin(p machine.Pin) *outPin {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return &outPin{p: p}
}

func (o *outPin) Set(on bool) { o.p.Set(on) }

// ---- pixel sink ----

type matrixSink struct {
	dev ws2812.Device
	buf [matrixLEDs]color.RGBA
}

func newMatrixSink(p machine.Pin) *matrixSink {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &matrixSink{dev: ws2812.New(p)}
}

func (s *matrixSink) Show(c types.Color, brightness uint8) {
	sc := c.Scale(brightness)
	px := color.RGBA{R: sc.R, G: sc.G, B: sc.B, A: 255}
	for i := range s.buf {
		s.buf[i] = px
	}
	s.dev.WriteColors(s.buf[:])
}

// ---- clock ----

type sysClock struct{}

func (sysClock) Sleep(d time.Duration) { time.Sleep(d) }
