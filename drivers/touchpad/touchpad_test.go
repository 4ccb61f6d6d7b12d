package touchpad

import "testing"

// decayPin models the pad's RC decay: after a charge it reads high for a
// fixed number of Get() polls, then low.
type decayPin struct {
	decayPolls int // polls before the pad reads low again
	remaining  int
	charged    bool
}

func (p *decayPin) ConfigureInput()  {}
func (p *decayPin) ConfigureOutput() {}

func (p *decayPin) Set(high bool) {
	p.charged = high
	if high {
		p.remaining = p.decayPolls
	}
}

func (p *decayPin) Get() bool {
	if !p.charged {
		return false
	}
	if p.remaining > 0 {
		p.remaining--
		return true
	}
	p.charged = false
	return false
}

func TestReadRaw_FastDecayScoresFull(t *testing.T) {
	d := New(&decayPin{decayPolls: 1})
	if got := d.ReadRaw(); got != rounds {
		t.Fatalf("fast pad scored %d, want %d", got, rounds)
	}
}

func TestReadRaw_SlowDecayScoresZero(t *testing.T) {
	// A touched pad outlasts every poll in the round.
	d := New(&decayPin{decayPolls: settlePolls + 1})
	if got := d.ReadRaw(); got != 0 {
		t.Fatalf("slow pad scored %d, want 0", got)
	}
}

func TestReadRaw_TouchReadsBelowIdle(t *testing.T) {
	idle := New(&decayPin{decayPolls: 1}).ReadRaw()
	touched := New(&decayPin{decayPolls: settlePolls + 1}).ReadRaw()
	if touched >= idle {
		t.Fatalf("touched %d not below idle %d", touched, idle)
	}
}

func TestReadRaw_LeavesPadDrivenLow(t *testing.T) {
	p := &decayPin{decayPolls: 1}
	New(p).ReadRaw()
	if p.charged {
		t.Fatal("pad left charged after sample")
	}
}
