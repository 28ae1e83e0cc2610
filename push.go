package observer

const kindPush = "push"

// PushPublisher is a PushSubject for payloads of type T. The payload is passed by value to each
// observer and is not kept by the publisher once Notify returns. If T holds references (pointers,
// maps, slices), observers share what they point to. The zero value is ready to use with default
// settings; NewPushPublisher applies options.
type PushPublisher[T any] struct {
	registry[PushObserver[T]]
}

// NewPushPublisher creates a new PushPublisher instance.
func NewPushPublisher[T any](opts ...Option) *PushPublisher[T] {
	p := &PushPublisher[T]{}
	p.setup(kindPush, opts...)
	return p
}

// Notify calls Update with data on every observer attached when Notify was called. If an observer
// panics, the panic propagates and the observers not yet called miss this notification.
func (p *PushPublisher[T]) Notify(data T) {
	p.dispatch(func(o PushObserver[T]) {
		o.Update(data)
	})
}

// SafeNotify is like Notify but keeps delivering when an observer panics. Every recovered panic is
// returned as a *PanicError inside a multierror; the result is nil when no observer panicked.
func (p *PushPublisher[T]) SafeNotify(data T) error {
	return p.dispatchIsolated(func(o PushObserver[T]) {
		o.Update(data)
	})
}
