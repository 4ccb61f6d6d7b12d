package ctrl

import (
	"time"

	"glowgrid-go/types"
)

// Shared ordered event log so tests can assert cross-pin sequencing.
type recorder struct {
	events []string
}

func (r *recorder) add(e string) { r.events = append(r.events, e) }

type fakePin struct {
	name string
	rec  *recorder
	on   bool
}

func (p *fakePin) Set(on bool) {
	p.on = on
	if p.rec != nil {
		if on {
			p.rec.add(p.name + "=1")
		} else {
			p.rec.add(p.name + "=0")
		}
	}
}

type fakeClock struct {
	rec   *recorder
	slept []time.Duration
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	if c.rec != nil {
		c.rec.add("sleep:" + d.String())
	}
}

// scriptLine replays a fixed sequence of raw readings; the last one sticks.
type scriptLine struct {
	seq []uint16
	i   int
}

func (l *scriptLine) ReadRaw() uint16 {
	if len(l.seq) == 0 {
		return 0
	}
	if l.i < len(l.seq) {
		v := l.seq[l.i]
		l.i++
		return v
	}
	return l.seq[len(l.seq)-1]
}

type showCall struct {
	c types.Color
	b uint8
}

type fakeSink struct {
	calls []showCall
}

func (s *fakeSink) Show(c types.Color, brightness uint8) {
	s.calls = append(s.calls, showCall{c: c, b: brightness})
}

func rawForMilliVolts(mv int32) uint16 {
	return uint16(uint32(mv) * ccFullScale / ccVRefMilliVolts)
}
