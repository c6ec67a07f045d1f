package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLoopStopCancelsFrames(t *testing.T) {
	var frames atomic.Int64
	l := NewLoop[int](time.Millisecond, nil, nil, func(time.Time) { frames.Add(1) }, nil)

	if !l.Start(context.Background()) {
		t.Fatal("Start returned false on a stopped loop")
	}
	if l.Start(context.Background()) {
		t.Error("second Start should report already running")
	}
	waitFor(t, func() bool { return frames.Load() >= 3 })

	l.Stop()
	if l.Running() {
		t.Error("loop still running after Stop")
	}
	n := frames.Load()
	time.Sleep(20 * time.Millisecond)
	if frames.Load() != n {
		t.Errorf("frames ran after Stop: %d -> %d", n, frames.Load())
	}
	if uint64(n) != l.Frames() {
		t.Errorf("Frames() = %d, callback saw %d", l.Frames(), n)
	}

	// Stop is idempotent
	l.Stop()
}

func TestLoopRestart(t *testing.T) {
	var frames atomic.Int64
	l := NewLoop[int](time.Millisecond, nil, nil, func(time.Time) { frames.Add(1) }, nil)

	l.Start(context.Background())
	waitFor(t, func() bool { return frames.Load() >= 1 })
	l.Stop()
	n := frames.Load()

	if !l.Start(context.Background()) {
		t.Fatal("Start after Stop should re-arm")
	}
	waitFor(t, func() bool { return frames.Load() > n+2 })
	l.Stop()
}

func TestLoopStopBeforeStart(t *testing.T) {
	l := NewLoop[int](time.Millisecond, nil, nil, nil, nil)
	l.Stop()
	if l.Running() {
		t.Error("never-started loop reports running")
	}
}

func TestLoopQuitEvent(t *testing.T) {
	events := make(chan int, 4)
	var handled []int
	l := NewLoop(time.Hour, nil, events, nil, func(ev int) bool {
		handled = append(handled, ev)
		return ev != 0
	})
	l.Start(context.Background())

	events <- 1
	events <- 2
	events <- 0
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Done not closed after quit event")
	}
	l.Stop()

	if len(handled) != 3 || handled[2] != 0 {
		t.Errorf("handled = %v", handled)
	}
	if l.Running() {
		t.Error("loop running after quit")
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop[int](time.Millisecond, nil, nil, func(time.Time) {}, nil)
	l.Start(ctx)
	cancel()
	waitFor(t, func() bool { return !l.Running() })
	l.Stop()
}

func TestLoopFrameUsesClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	seen := make(chan time.Time, 1)
	l := NewLoop[int](time.Millisecond, clock, nil, func(now time.Time) {
		select {
		case seen <- now:
		default:
		}
	}, nil)
	l.Start(context.Background())
	defer l.Stop()

	select {
	case now := <-seen:
		if !now.Equal(start) {
			t.Errorf("frame time = %v, want %v", now, start)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no frame")
	}
}

func TestLoopCrashHandler(t *testing.T) {
	got := make(chan any, 1)
	l := NewLoop[int](time.Millisecond, nil, nil, func(time.Time) { panic("boom") }, nil)
	l.SetCrashHandler(func(r any) { got <- r })
	l.Start(context.Background())

	select {
	case r := <-got:
		if r != "boom" {
			t.Errorf("recovered %v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("crash handler not called")
	}
	l.Stop()
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	c.Advance(90 * time.Minute)
	if want := start.Add(90 * time.Minute); !c.Now().Equal(want) {
		t.Errorf("after Advance = %v, want %v", c.Now(), want)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Errorf("after Set = %v", c.Now())
	}
}
