// services/ctrl/loop.go
package ctrl

import (
	"context"

	"glowgrid-go/bus"
	"glowgrid-go/types"
	"glowgrid-go/x/timex"

	"time"
)

const (
	// loopPeriod plus the worst-case confirmDelay stays well inside the
	// standard's 60 ms window for honoring a host current-limit change.
	loopPeriod   = 30 * time.Millisecond
	confirmDelay = 15 * time.Millisecond
)

// Run owns the whole control cycle: tier detection with debounce, power
// sequencing, brightness capping, touch color selection and the pixel push.
// Single goroutine; every wait is a hard timed delay through the board
// clock. Returns only when ctx is cancelled.
func Run(ctx context.Context, conn *bus.Connection, board Board) {
	s := newService(conn, board)
	s.pubState("ready", "")
	s.publishTier()
	for {
		select {
		case <-ctx.Done():
			s.pubState("stopped", "context_cancelled")
			return
		default:
		}
		s.step()
		board.Clock.Sleep(loopPeriod)
	}
}

type service struct {
	conn  *bus.Connection
	board Board

	det *Detector
	seq *Sequencer

	accepted      types.CurrentTier
	maxBrightness uint8
	color         types.Color
	touch         [touchChannels]touchChannel
}

// newService starts in the fail-safe state: default power, matrix down.
func newService(conn *bus.Connection, board Board) *service {
	s := &service{
		conn:     conn,
		board:    board,
		det:      NewDetector(board.CC1, board.CC2),
		seq:      NewSequencer(board.DataHold, board.Stage1, board.Stage2, board.Clock),
		accepted: types.TierStandard,
		color:    types.White,
	}
	for i := range s.touch {
		s.touch[i] = newTouchChannel(board.Touch[i])
	}
	return s
}

// step runs one iteration: detector poll (with debounce), touch update,
// color selection, pixel push.
func (s *service) step() {
	s.pollTier()

	var filtered [touchChannels]int32
	for i := range s.touch {
		filtered[i] = s.touch[i].update()
	}
	s.conn.Publish(s.conn.NewMessage(topicTouchValue,
		types.TouchValue{Filtered: filtered, TSms: timex.NowMs()}, false))

	if c := selectColor(filtered, s.color); c != s.color {
		s.color = c
		s.conn.Publish(s.conn.NewMessage(topicColorValue,
			types.ColorValue{Color: c, TSms: timex.NowMs()}, true))
	}

	s.board.Sink.Show(s.color, s.maxBrightness)
}

// pollTier samples the advertised tier and applies it only after a second
// agreeing sample one settle interval later. A host may emit protocol
// signaling on the same line, which shows up as a transient excursion; the
// two-sample confirmation rejects it. If the re-sample disagrees with both
// the candidate and the accepted tier, the accepted tier is simply kept and
// the next poll starts over.
func (s *service) pollTier() {
	sampled := s.det.Sample()
	if sampled == s.accepted {
		return
	}
	s.board.Clock.Sleep(confirmDelay)
	if s.det.Sample() != sampled {
		return
	}
	s.apply(sampled)
}

// apply commits a confirmed tier: indicators, brightness cap, and the power
// rail, then the retained telemetry.
func (s *service) apply(tier types.CurrentTier) {
	s.accepted = tier
	s.maxBrightness = MaxBrightness(tier)

	switch tier {
	case types.Tier3A:
		s.board.IndA.Set(true)
		s.board.IndB.Set(true)
		s.seq.Enable()
	case types.Tier1A5:
		s.board.IndA.Set(true)
		s.board.IndB.Set(false)
		s.seq.Enable()
	default:
		s.board.IndA.Set(false)
		s.board.IndB.Set(false)
		s.seq.Disable()
	}

	s.publishTier()
}

func (s *service) publishTier() {
	now := timex.NowMs()
	s.conn.Publish(s.conn.NewMessage(topicTierValue, types.TierValue{
		Tier:          s.accepted,
		MilliAmps:     s.accepted.MilliAmps(),
		MaxBrightness: s.maxBrightness,
		TSms:          now,
	}, true))
	s.conn.Publish(s.conn.NewMessage(topicRailState,
		types.RailState{On: s.seq.Enabled(), TSms: now}, true))
}

func (s *service) pubState(level, status string) {
	s.conn.Publish(s.conn.NewMessage(topicState,
		types.CtrlState{Level: level, Status: status, TSms: timex.NowMs()}, true))
}
