package core

import (
	"time"
)

// NewTime creates a new time service. The event ticker starts right away;
// the fps ticker starts on the first call to FpsTicker.
func NewTime(cfg TimeConfiguration) *Time {
	var interval time.Duration
	if cfg.FramesPerSecond == 0 {
		interval = time.Nanosecond
	} else {
		interval = time.Second / (time.Duration)(cfg.FramesPerSecond)
	}

	eventInterval := time.Duration(cfg.EventPollDelay) * time.Millisecond
	if eventInterval <= 0 {
		eventInterval = interval
	}

	return &Time{
		fps:            cfg.FramesPerSecond,
		fpsInterval:    interval,
		eventPollDelay: cfg.EventPollDelay,
		eventTicker:    time.NewTicker(eventInterval),
	}
}

// Time contains all the time services and tickers
type Time struct {
	fps         int
	fpsInterval time.Duration
	fpsTicker   *time.Ticker

	eventPollDelay int
	eventTicker    *time.Ticker
}

// Fps gets the set frames per second
func (t *Time) Fps() int {
	return t.fps
}

// EventPollDelay gets the delay between event pumps in milliseconds
func (t *Time) EventPollDelay() int {
	return t.eventPollDelay
}

// FpsTicker gets the fps ticker, starting it on first use
func (t *Time) FpsTicker() *time.Ticker {
	if t.fpsTicker == nil {
		t.fpsTicker = time.NewTicker(t.fpsInterval)
	}
	return t.fpsTicker
}

// FpsRunning reports whether the fps ticker has been started
func (t *Time) FpsRunning() bool {
	return t.fpsTicker != nil
}

// EventTicker gets the initialized event ticker for the event loop
func (t *Time) EventTicker() *time.Ticker {
	return t.eventTicker
}

// Stop stops every started ticker
func (t *Time) Stop() {
	if t.fpsTicker != nil {
		t.fpsTicker.Stop()
	}
	t.eventTicker.Stop()
}
