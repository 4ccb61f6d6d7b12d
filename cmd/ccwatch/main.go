// cmd/ccwatch/main.go
//
// Bring-up utility: prints the CC line voltages and the classified
// current tier twice a second. Flash it instead of the main firmware to
// verify the divider values against a known charger before trusting
// the control loop with the rail.
package main

import (
	"time"

	"glowgrid-go/platform"
	"glowgrid-go/services/ctrl"
)

func main() {
	time.Sleep(2 * time.Second)
	println("ccwatch boot")

	board := platform.NewBoard()
	det := ctrl.NewDetector(board.CC1, board.CC2)

	tick := time.NewTicker(500 * time.Millisecond)
	defer tick.Stop()

	for range tick.C {
		cc1, cc2 := det.SampleMilliVolts()
		tier := det.Sample()
		println("cc1:", cc1, "mV cc2:", cc2, "mV tier:", tier.String())
	}
}
