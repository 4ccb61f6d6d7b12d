// services/diag/service.go
package diag

import (
	"context"
	"io"

	"glowgrid-go/bus"
	"glowgrid-go/errcode"
	"glowgrid-go/types"
)

var (
	topicTouchValue = bus.T("input", "touch", "value")
	topicTierValue  = bus.T("power", "tier", "value")
	topicTierGet    = bus.T("power", "tier", "get")
)

// Run streams touch telemetry as text lines on w and answers tier queries
// over the bus. It caches the last retained tier value so a query never has
// to wait for the next detector cycle. Blocks until ctx is cancelled.
func Run(ctx context.Context, conn *bus.Connection, w io.Writer) {
	touchSub := conn.Subscribe(topicTouchValue)
	defer conn.Unsubscribe(touchSub)
	tierSub := conn.Subscribe(topicTierValue)
	defer conn.Unsubscribe(tierSub)
	getSub := conn.Subscribe(topicTierGet)
	defer conn.Unsubscribe(getSub)

	var (
		lastTier types.TierValue
		haveTier bool
	)

	for {
		select {
		case <-ctx.Done():
			println("Info: diag service stopping")
			return
		case msg := <-touchSub.Channel():
			if tv, ok := msg.Payload.(types.TouchValue); ok {
				writeTouchLine(w, tv)
			}
		case msg := <-tierSub.Channel():
			if tv, ok := msg.Payload.(types.TierValue); ok {
				lastTier = tv
				haveTier = true
				println("Info: tier", tv.Tier.String(), tv.MilliAmps, "mA")
			}
		case msg := <-getSub.Channel():
			if !msg.CanReply() {
				continue
			}
			if !haveTier {
				conn.Reply(msg, types.ErrorReply{Error: string(errcode.NoValue)}, false)
				continue
			}
			conn.Reply(msg, lastTier, false)
		}
	}
}

// writeTouchLine emits "a b c\n" without pulling fmt into the image.
func writeTouchLine(w io.Writer, tv types.TouchValue) {
	buf := make([]byte, 0, 36)
	for i, v := range tv.Filtered {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendInt(buf, v)
	}
	buf = append(buf, '\n')
	w.Write(buf)
}

func appendInt(buf []byte, v int32) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	if v == 0 {
		return append(buf, '0')
	}
	var tmp [11]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[i:]...)
}
