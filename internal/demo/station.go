package demo

import (
	"github.com/rs/zerolog"

	"github.com/jeremyforan/observer"
)

// Reading is a single weather measurement.
type Reading struct {
	Timestamp int64   `json:"timestamp"`
	Celsius   float64 `json:"celsius"`
}

// Station keeps the latest reading and signals its pull observers when it changes. Observers read
// the new value with Latest.
type Station struct {
	*observer.PullPublisher

	latest Reading
}

// NewStation creates a Station whose notifications are logged to logger.
func NewStation(logger zerolog.Logger, opts ...observer.Option) *Station {
	opts = append([]observer.Option{observer.WithName("station"), observer.WithLogger(logger)}, opts...)
	return &Station{
		PullPublisher: observer.NewPullPublisher(opts...),
	}
}

// Record stores r as the latest reading and notifies the observers.
func (s *Station) Record(r Reading) {
	s.latest = r
	s.Notify()
}

// Latest returns the most recently recorded reading.
func (s *Station) Latest() Reading {
	return s.latest
}

// Feed pushes every reading to its observers.
type Feed = observer.PushPublisher[Reading]

// NewFeed creates a Feed whose notifications are logged to logger.
func NewFeed(logger zerolog.Logger, opts ...observer.Option) *Feed {
	opts = append([]observer.Option{observer.WithName("feed"), observer.WithLogger(logger)}, opts...)
	return observer.NewPushPublisher[Reading](opts...)
}
