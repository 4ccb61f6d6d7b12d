// Package touchpad reads a capacitive pad on a single GPIO with no
// dedicated touch controller. Each sample charges the pad, releases it
// into its bleed resistor and checks whether it has settled low again
// within a short fixed poll; a finger adds capacitance, slows the decay
// and fails more of the passes. ReadRaw therefore goes DOWN when the
// pad is touched.
//
// The driver avoids floating-point and allocations entirely; it is safe
// to call from a tight control loop.
package touchpad

// Pin is the minimal GPIO surface the driver needs. On hardware this is
// a thin wrapper over machine.Pin.
type Pin interface {
	ConfigureInput()
	ConfigureOutput()
	Set(high bool)
	Get() bool
}

const (
	// Charge-release rounds per sample. The result range is [0, rounds].
	rounds = 100
	// Get() polls allowed for the pad to settle low in one round.
	settlePolls = 4
)

// Device samples one pad. Implements the uint16 analog-line contract
// used by the control loop.
type Device struct {
	pin Pin
}

func New(pin Pin) *Device {
	return &Device{pin: pin}
}

// ReadRaw runs a burst of charge-release rounds and returns how many of
// them settled low in time. Untouched pads score near the full round
// count; a firm touch drops the score toward zero.
func (d *Device) ReadRaw() uint16 {
	var settled uint16
	for i := 0; i < rounds; i++ {
		d.pin.ConfigureOutput()
		d.pin.Set(true)
		d.pin.ConfigureInput()
		for p := 0; p < settlePolls; p++ {
			if !d.pin.Get() {
				settled++
				break
			}
		}
	}
	d.pin.ConfigureOutput()
	d.pin.Set(false)
	return settled
}
