package orchestrator

import "time"

// FrameScheduler models the frame-coalescing hook: something that defers
// a callback to the next appropriate moment (a requestAnimationFrame
// shim on the web, a ticker here) and can cancel it before it fires.
type FrameScheduler interface {
	// Defer schedules fn to run later and returns a cancel function.
	// Calling cancel before fn runs prevents it from running at all;
	// calling it afterwards is a no-op.
	Defer(fn func()) (cancel func())
}

// TickerScheduler is a goroutine-and-time.Timer based FrameScheduler,
// grounded on the emulator's own tickerloop pacing (cmd/nes/main.go),
// for headless use and tests where no real frame clock is available.
type TickerScheduler struct {
	interval time.Duration
}

// NewTickerScheduler returns a scheduler that defers by one interval,
// e.g. time.Second/60 to approximate a 60Hz frame clock.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerScheduler{interval: interval}
}

func (s *TickerScheduler) Defer(fn func()) (cancel func()) {
	timer := time.AfterFunc(s.interval, fn)
	return func() { timer.Stop() }
}
