package demo

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Counter is a pull observer that counts notifications.
type Counter struct {
	ID    uuid.UUID
	value int
}

func NewCounter(start int) *Counter {
	return &Counter{ID: uuid.New(), value: start}
}

func (c *Counter) Update() {
	c.value++
}

func (c *Counter) Value() int {
	return c.value
}

// Display is a pull observer that fetches the latest reading from its station on every update.
type Display struct {
	ID      uuid.UUID
	station *Station
	shown   Reading
	logger  zerolog.Logger
}

func NewDisplay(station *Station, logger zerolog.Logger) *Display {
	id := uuid.New()
	return &Display{
		ID:      id,
		station: station,
		logger:  logger.With().Str("display", id.String()).Logger(),
	}
}

func (d *Display) Update() {
	d.shown = d.station.Latest()
	d.logger.Info().
		Int64("timestamp", d.shown.Timestamp).
		Float64("celsius", d.shown.Celsius).
		Msg("display refreshed")
}

// Shown returns the reading currently on the display.
func (d *Display) Shown() Reading {
	return d.shown
}

// Recorder is a push observer that keeps the last reading it was given.
type Recorder struct {
	ID      uuid.UUID
	Name    string
	last    Reading
	updates int
	logger  zerolog.Logger
}

func NewRecorder(name string, logger zerolog.Logger) *Recorder {
	id := uuid.New()
	return &Recorder{
		ID:     id,
		Name:   name,
		logger: logger.With().Str("recorder", name).Str("id", id.String()).Logger(),
	}
}

func (r *Recorder) Update(data Reading) {
	r.last = data
	r.updates++
	r.logger.Info().
		Int64("timestamp", data.Timestamp).
		Int("updates", r.updates).
		Msg("reading received")
}

func (r *Recorder) Last() Reading {
	return r.last
}

func (r *Recorder) Updates() int {
	return r.updates
}
