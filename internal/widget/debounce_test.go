package widget

import (
	"testing"
	"time"
)

func TestDebouncer_LastKeystrokeWins(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncerWithClock(300*time.Millisecond, clock.AfterFunc)

	type call struct {
		at    time.Duration
		value string
	}
	var calls []call

	keystroke := func(at time.Duration, value string) {
		clock.Advance(at)
		d.Trigger(func() { calls = append(calls, call{at: clock.Now(), value: value}) })
	}

	keystroke(0, "m")
	keystroke(100*time.Millisecond, "ma")
	keystroke(200*time.Millisecond, "mar")

	clock.Advance(499 * time.Millisecond)
	if len(calls) != 0 {
		t.Fatalf("search ran early: %+v", calls)
	}

	clock.Advance(2 * time.Second)
	if len(calls) != 1 {
		t.Fatalf("expected exactly one search, got %d", len(calls))
	}
	if calls[0].at != 500*time.Millisecond || calls[0].value != "mar" {
		t.Errorf("search = %+v, want value mar at 500ms", calls[0])
	}
	if d.Pending() {
		t.Error("no call should be pending after firing")
	}
}

func TestDebouncer_Stop(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncerWithClock(300*time.Millisecond, clock.AfterFunc)

	fired := false
	d.Trigger(func() { fired = true })
	if !d.Pending() {
		t.Fatal("expected pending call")
	}
	d.Stop()
	clock.Advance(time.Second)

	if fired {
		t.Error("stopped call must not run")
	}
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncerWithClock(0, clock.AfterFunc)

	n := 0
	d.Trigger(func() { n++ })
	clock.Advance(DefaultDelay)
	d.Trigger(func() { n++ })
	clock.Advance(2 * DefaultDelay)

	if n != 2 {
		t.Errorf("expected two calls for two bursts, got %d", n)
	}
}

func TestDebouncer_RealClock(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	done := make(chan string, 3)

	d.Trigger(func() { done <- "a" })
	d.Trigger(func() { done <- "b" })

	select {
	case v := <-done:
		if v != "b" {
			t.Errorf("got %q, want b", v)
		}
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}

	select {
	case v := <-done:
		t.Errorf("unexpected extra call %q", v)
	case <-time.After(50 * time.Millisecond):
	}
}
