package demo

import (
	"fmt"

	"github.com/rs/zerolog"
)

// PullConfig drives RunPull.
type PullConfig struct {
	// Start is the initial value of the counter.
	Start int
	// Ticks is the number of readings recorded on the station.
	Ticks int
}

type PullResult struct {
	Counter int
	Shown   Reading
}

// RunPull records Ticks readings on a station watched by a counter and a display.
func RunPull(cfg PullConfig, logger zerolog.Logger) (PullResult, error) {
	if cfg.Ticks < 0 {
		return PullResult{}, fmt.Errorf("ticks must not be negative: %d", cfg.Ticks)
	}

	station := NewStation(logger)
	counter := NewCounter(cfg.Start)
	display := NewDisplay(station, logger)
	station.Attach(counter)
	station.Attach(display)

	for i := 1; i <= cfg.Ticks; i++ {
		station.Record(Reading{Timestamp: int64(i), Celsius: 20 + float64(i)/10})
	}

	logger.Info().Int("counter", counter.Value()).Msg("pull scenario finished")
	return PullResult{Counter: counter.Value(), Shown: display.Shown()}, nil
}

// PushConfig drives RunPush.
type PushConfig struct {
	// First is pushed to both recorders, Second only to the one still attached.
	First  int64
	Second int64
}

type PushResult struct {
	A, B *Recorder
}

// RunPush attaches recorders A and B to a feed, pushes First, detaches A and pushes Second.
func RunPush(cfg PushConfig, logger zerolog.Logger) (PushResult, error) {
	feed := NewFeed(logger)
	a := NewRecorder("A", logger)
	b := NewRecorder("B", logger)
	feed.Attach(a)
	feed.Attach(b)

	if err := feed.SafeNotify(Reading{Timestamp: cfg.First}); err != nil {
		return PushResult{}, fmt.Errorf("could not push first reading: %w", err)
	}

	feed.Detach(a)

	if err := feed.SafeNotify(Reading{Timestamp: cfg.Second}); err != nil {
		return PushResult{}, fmt.Errorf("could not push second reading: %w", err)
	}

	logger.Info().
		Int64("a", a.Last().Timestamp).
		Int64("b", b.Last().Timestamp).
		Msg("push scenario finished")
	return PushResult{A: a, B: b}, nil
}
