package ctrl

import "testing"

func newTestSequencer() (*Sequencer, *recorder) {
	rec := &recorder{}
	s := NewSequencer(
		&fakePin{name: "data", rec: rec},
		&fakePin{name: "stage1", rec: rec},
		&fakePin{name: "stage2", rec: rec},
		&fakeClock{rec: rec},
	)
	return s, rec
}

func assertEvents(t *testing.T, rec *recorder, want []string) {
	t.Helper()
	if len(rec.events) != len(want) {
		t.Fatalf("event log %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Fatalf("event[%d] = %q, want %q (log %v)", i, rec.events[i], want[i], rec.events)
		}
	}
}

func TestEnable_StageOrderingWithSettle(t *testing.T) {
	s, rec := newTestSequencer()
	s.Enable()
	assertEvents(t, rec, []string{"data=0", "stage1=1", "sleep:50ms", "stage2=1"})
	if !s.Enabled() {
		t.Fatal("sequencer not enabled after Enable")
	}
}

func TestDisable_ReverseOrdering(t *testing.T) {
	s, rec := newTestSequencer()
	s.Enable()
	rec.events = nil
	s.Disable()
	assertEvents(t, rec, []string{"data=0", "stage2=0", "stage1=0"})
	if s.Enabled() {
		t.Fatal("sequencer still enabled after Disable")
	}
}

func TestEnable_Idempotent(t *testing.T) {
	s, rec := newTestSequencer()
	s.Enable()
	n := len(rec.events)
	s.Enable()
	if len(rec.events) != n {
		t.Fatalf("second Enable produced extra events: %v", rec.events[n:])
	}
}

func TestDisable_NoopWhenAlreadyDown(t *testing.T) {
	s, rec := newTestSequencer()
	s.Disable()
	if len(rec.events) != 0 {
		t.Fatalf("Disable on a down rail touched pins: %v", rec.events)
	}
}
