package diag

import (
	"context"
	"testing"
	"time"

	"glowgrid-go/bus"
	"glowgrid-go/errcode"
	"glowgrid-go/types"
)

// chanWriter hands each Write to the test goroutine, one line at a time.
type chanWriter struct {
	lines chan string
}

func (w *chanWriter) Write(p []byte) (int, error) {
	w.lines <- string(p)
	return len(p), nil
}

type fixture struct {
	bus    *bus.Bus
	client *bus.Connection
	out    *chanWriter
	cancel context.CancelFunc
}

func startDiag(t *testing.T) *fixture {
	t.Helper()
	b := bus.NewBus(16)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	fx := &fixture{
		bus:    b,
		client: b.NewConnection("test"),
		out:    &chanWriter{lines: make(chan string, 8)},
		cancel: cancel,
	}
	go Run(ctx, b.NewConnection("diag"), fx.out)
	// Wait for the service's subscriptions to land before publishing.
	waitForSubscriber(t, fx.client)
	return fx
}

// waitForSubscriber polls until a tier query gets any reply, which means the
// service loop is up and subscribed.
func waitForSubscriber(t *testing.T, conn *bus.Connection) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		_, err := conn.RequestWait(ctx, conn.NewMessage(bus.T("power", "tier", "get"), nil, false))
		cancel()
		if err == nil {
			return
		}
	}
	t.Fatal("diag service never answered")
}

func TestDiag_WritesTouchLines(t *testing.T) {
	fx := startDiag(t)

	fx.client.Publish(fx.client.NewMessage(bus.T("input", "touch", "value"),
		types.TouchValue{Filtered: [3]int32{15, 5, 50}}, false))

	select {
	case line := <-fx.out.lines:
		if line != "15 5 50\n" {
			t.Fatalf("touch line %q, want %q", line, "15 5 50\n")
		}
	case <-time.After(time.Second):
		t.Fatal("no touch line written")
	}
}

func TestDiag_AnswersTierQueryFromRetained(t *testing.T) {
	fx := startDiag(t)

	want := types.TierValue{Tier: types.Tier3A, MilliAmps: 3000, MaxBrightness: 189}
	fx.client.Publish(fx.client.NewMessage(bus.T("power", "tier", "value"), want, true))

	// The cache update races the query; retry until it lands.
	deadline := time.Now().Add(time.Second)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		reply, err := fx.client.RequestWait(ctx,
			fx.client.NewMessage(bus.T("power", "tier", "get"), nil, false))
		cancel()
		if err == nil {
			if tv, ok := reply.Payload.(types.TierValue); ok && tv == want {
				return
			}
		}
		if time.Now().After(deadline) {
			t.Fatal("tier query never returned the published value")
		}
	}
}

func TestDiag_TierQueryBeforeAnyValue(t *testing.T) {
	fx := startDiag(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	reply, err := fx.client.RequestWait(ctx,
		fx.client.NewMessage(bus.T("power", "tier", "get"), nil, false))
	if err != nil {
		t.Fatalf("RequestWait: %v", err)
	}
	er, ok := reply.Payload.(types.ErrorReply)
	if !ok || er.Error != string(errcode.NoValue) {
		t.Fatalf("unexpected reply: %#v", reply.Payload)
	}
}

func TestAppendInt(t *testing.T) {
	cases := []struct {
		v    int32
		want string
	}{
		{0, "0"},
		{7, "7"},
		{1234, "1234"},
		{-42, "-42"},
	}
	for _, c := range cases {
		if got := string(appendInt(nil, c.v)); got != c.want {
			t.Fatalf("appendInt(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}
