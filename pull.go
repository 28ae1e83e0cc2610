package observer

const kindPull = "pull"

// PullPublisher is a PullSubject. Its notifications carry no data. The zero value is ready to use with
// default settings; NewPullPublisher applies options.
type PullPublisher struct {
	registry[PullObserver]
}

var _ PullSubject = (*PullPublisher)(nil)

// NewPullPublisher creates a new PullPublisher instance.
func NewPullPublisher(opts ...Option) *PullPublisher {
	p := &PullPublisher{}
	p.setup(kindPull, opts...)
	return p
}

// Notify calls Update on every observer attached when Notify was called. If an observer panics, the
// panic propagates and the observers not yet called miss this notification.
func (p *PullPublisher) Notify() {
	p.dispatch(func(o PullObserver) {
		o.Update()
	})
}

// SafeNotify is like Notify but keeps delivering when an observer panics. Every recovered panic is
// returned as a *PanicError inside a multierror; the result is nil when no observer panicked.
func (p *PullPublisher) SafeNotify() error {
	return p.dispatchIsolated(func(o PullObserver) {
		o.Update()
	})
}
