// services/ctrl/sequencer.go
package ctrl

import "time"

// stageSettle lets the matrix input capacitance charge through the
// current-limited first stage before the second stage shorts it out.
const stageSettle = 50 * time.Millisecond

// Sequencer drives the two-stage power switch feeding the matrix. The data
// line is forced low before either direction of travel so the first LED in
// the chain never sees a floating input while its supply moves. Calls block
// for their settle delays and are idempotent.
type Sequencer struct {
	data    DigitalOut
	stage1  DigitalOut
	stage2  DigitalOut
	clock   Clock
	enabled bool
}

func NewSequencer(data, stage1, stage2 DigitalOut, clock Clock) *Sequencer {
	return &Sequencer{data: data, stage1: stage1, stage2: stage2, clock: clock}
}

// Enable powers the matrix: stage 1 first, settle, then stage 2. Stage 2 is
// always asserted; the brightness policy, not the switch topology, is what
// enforces the budget.
func (s *Sequencer) Enable() {
	if s.enabled {
		return
	}
	s.data.Set(false)
	s.stage1.Set(true)
	s.clock.Sleep(stageSettle)
	s.stage2.Set(true)
	s.enabled = true
}

// Disable powers the matrix down in reverse order.
func (s *Sequencer) Disable() {
	if !s.enabled {
		return
	}
	s.data.Set(false)
	s.stage2.Set(false)
	s.stage1.Set(false)
	s.enabled = false
}

// Enabled reports whether the matrix rail is up.
func (s *Sequencer) Enabled() bool { return s.enabled }
