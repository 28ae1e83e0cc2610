package observer

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// registry is the set of observers shared by both subject flavors. Membership is keyed on interface
// equality, which for pointer observers is pointer identity. An observer whose dynamic type is not
// comparable (for example a func or a struct value holding a slice) panics when attached.
//
// The zero value is usable: the set, logger and metrics are filled with defaults on first use.
type registry[O comparable] struct {
	// mutex to protect access to the observer set and the logger.
	mu sync.RWMutex

	// once fills in defaults for a registry that was not built through setup.
	once sync.Once

	observers mapset.Set[O]

	// name reported in logs and metrics.
	name string
	kind string

	logger  zerolog.Logger
	metrics Metrics
}

func (r *registry[O]) setup(kind string, opts ...Option) {
	cfg := defaultConfig(kind)
	for _, opt := range opts {
		opt(&cfg)
	}

	r.observers = mapset.NewThreadUnsafeSet[O]()
	r.name = cfg.name
	r.kind = kind
	r.logger = scopedLogger(cfg.logger, cfg.name, kind)
	r.metrics = cfg.metrics
}

// lazyInit gives a zero-value registry an empty set, a discarding logger and no-op metrics.
func (r *registry[O]) lazyInit() {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		if r.observers != nil {
			return
		}
		cfg := defaultConfig(r.kind)
		r.observers = mapset.NewThreadUnsafeSet[O]()
		r.name = cfg.name
		r.logger = scopedLogger(cfg.logger, cfg.name, r.kind)
		r.metrics = cfg.metrics
	})
}

func scopedLogger(logger zerolog.Logger, name, kind string) zerolog.Logger {
	return logger.With().
		Str("component", "observer").
		Str("subject", name).
		Str("kind", kind).
		Logger()
}

// Attach registers an observer to receive notifications. Attaching an observer that is already
// registered does nothing, so it is still notified once per Notify. A nil observer is ignored.
// Attaching an observer whose dynamic type is not comparable panics and leaves the set unchanged.
func (r *registry[O]) Attach(o O) {
	r.lazyInit()
	logger := r.Logger()

	if isNil(o) {
		logger.Debug().Msg("ignoring nil observer")
		return
	}

	if !r.add(o) {
		logger.Debug().Type("observer", o).Msg("observer already attached")
		return
	}

	r.metrics.ObserverAttached(r.name)
	logger.Debug().Type("observer", o).Msg("attached observer")
}

// Detach removes an observer from the subject. If the observer is not attached, it does nothing.
func (r *registry[O]) Detach(o O) {
	r.lazyInit()
	if isNil(o) {
		return
	}

	logger := r.Logger()
	if !r.remove(o) {
		logger.Debug().Type("observer", o).Msg("detach of unknown observer")
		return
	}

	r.metrics.ObserverDetached(r.name)
	logger.Debug().Type("observer", o).Msg("detached observer")
}

// add and remove hash o while holding the lock; the deferred unlock keeps the registry usable
// when hashing panics on a non-comparable observer.
func (r *registry[O]) add(o O) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.observers.Add(o)
}

func (r *registry[O]) remove(o O) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.observers.Contains(o) {
		return false
	}
	r.observers.Remove(o)
	return true
}

// ObserverCount returns the number of attached observers.
func (r *registry[O]) ObserverCount() int {
	r.lazyInit()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.observers.Cardinality()
}

// SetLogger sets the structured logger for the subject.
func (r *registry[O]) SetLogger(logger zerolog.Logger) {
	r.lazyInit()
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger = scopedLogger(logger, r.name, r.kind)
}

// Logger returns the structured logger for the subject.
func (r *registry[O]) Logger() zerolog.Logger {
	r.lazyInit()
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.logger
}

// snapshot copies the current observers so that dispatch runs without holding the lock and is not
// affected by attach or detach calls made while it runs.
func (r *registry[O]) snapshot() []O {
	r.lazyInit()
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.observers.ToSlice()
}

// dispatch calls deliver for every observer in the snapshot. A panic in deliver propagates to the
// caller and the remaining observers of the snapshot are skipped.
func (r *registry[O]) dispatch(deliver func(O)) {
	observers := r.snapshot()
	r.metrics.NotificationSent(r.name, len(observers))

	if len(observers) == 0 {
		logger := r.Logger()
		logger.Debug().Msg("no observers to notify")
		return
	}

	for _, o := range observers {
		deliver(o)
	}
}

// dispatchIsolated calls deliver for every observer in the snapshot, recovering panics so that one
// failing observer does not stop delivery to the others. The recovered panics are returned together.
func (r *registry[O]) dispatchIsolated(deliver func(O)) error {
	observers := r.snapshot()
	r.metrics.NotificationSent(r.name, len(observers))

	if len(observers) == 0 {
		logger := r.Logger()
		logger.Debug().Msg("no observers to notify")
		return nil
	}

	var errs *multierror.Error
	for _, o := range observers {
		if err := r.deliverRecovered(o, deliver); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (r *registry[O]) deliverRecovered(o O, deliver func(O)) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		pe := newPanicError(o, rec)
		r.metrics.ObserverPanicked(r.name)
		logger := r.Logger()
		logger.Error().Err(pe).Type("observer", o).Msg("observer panicked")
		err = pe
	}()

	deliver(o)
	return nil
}

func isNil[O comparable](o O) bool {
	return any(o) == nil
}
