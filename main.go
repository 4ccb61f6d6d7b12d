package main

import (
	"context"
	"time"

	"glowgrid-go/bus"
	"glowgrid-go/platform"
	"glowgrid-go/services/ctrl"
	"glowgrid-go/services/diag"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	ctx := context.Background()
	b := bus.NewBus(16)

	go diag.Run(ctx, b.NewConnection("diag"), platform.DiagWriter())

	// The control loop owns the main goroutine and never returns.
	ctrl.Run(ctx, b.NewConnection("ctrl"), platform.NewBoard())
}
