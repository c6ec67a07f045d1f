package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop drives frames on a fixed interval and applies input events between them
// Frames and events run on the same goroutine, so handlers never race the frame pipeline
type Loop[E any] struct {
	interval time.Duration
	clock    Clock
	frame    func(now time.Time)
	handle   func(ev E) bool
	events   <-chan E

	crashHandler func(any)

	mu       sync.Mutex
	stopChan chan struct{}
	stopOnce *sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	frames   atomic.Uint64
	quit     chan struct{}
	quitOnce sync.Once
}

// NewLoop creates a stopped loop, handle returning false ends the loop and closes Done
func NewLoop[E any](interval time.Duration, clock Clock, events <-chan E, frame func(time.Time), handle func(E) bool) *Loop[E] {
	if interval <= 0 {
		interval = time.Second / 60
	}
	if clock == nil {
		clock = WallClock{}
	}
	return &Loop[E]{
		interval: interval,
		clock:    clock,
		frame:    frame,
		handle:   handle,
		events:   events,
		quit:     make(chan struct{}),
	}
}

// SetCrashHandler installs the panic handler for the loop goroutine, must be called before Start
func (l *Loop[E]) SetCrashHandler(fn func(any)) {
	l.crashHandler = fn
}

// Start arms the loop, a stopped loop may be started again
// Returns false if already running
func (l *Loop[E]) Start(ctx context.Context) bool {
	if !l.running.CompareAndSwap(false, true) {
		return false
	}
	stop := make(chan struct{})
	l.mu.Lock()
	l.stopChan = stop
	l.stopOnce = &sync.Once{}
	l.mu.Unlock()

	l.wg.Add(1)
	go l.run(ctx, stop)
	return true
}

// Stop cancels further frames and waits for the in-flight one to finish
func (l *Loop[E]) Stop() {
	l.mu.Lock()
	stop, once := l.stopChan, l.stopOnce
	l.mu.Unlock()
	if stop == nil {
		return
	}
	once.Do(func() { close(stop) })
	l.wg.Wait()
}

// Running reports whether the loop goroutine is active
func (l *Loop[E]) Running() bool { return l.running.Load() }

// Frames returns the number of frames run across all starts
func (l *Loop[E]) Frames() uint64 { return l.frames.Load() }

// Done is closed once an event handler asks to quit
func (l *Loop[E]) Done() <-chan struct{} { return l.quit }

func (l *Loop[E]) run(ctx context.Context, stop <-chan struct{}) {
	defer l.wg.Done()
	defer l.running.Store(false)
	if l.crashHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				l.crashHandler(r)
			}
		}()
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	events := l.events
	for {
		// Stop wins over a ready tick
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		default:
		}

		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if l.handle != nil && !l.handle(ev) {
				l.quitOnce.Do(func() { close(l.quit) })
				return
			}
		case <-ticker.C:
			l.frames.Add(1)
			if l.frame != nil {
				l.frame(l.clock.Now())
			}
		}
	}
}
