// Package observer implements the observer pattern in two flavors.
//
// A pull subject only signals that something happened; its observers query whatever they are watching
// for the details. A push subject hands the changed data to each observer as part of the notification.
// This is based on the documentation here:
// https://refactoring.guru/design-patterns/observer
//
// Delivery is synchronous: Notify calls every attached observer in the caller's goroutine and returns
// once all of them have returned. Each Notify works on a snapshot of the observers attached when it was
// called, so an observer may attach or detach observers (itself included) from inside Update and the
// change only applies to later notifications.
package observer

//go:generate mockery --name=PullObserver --output=mocks --outpkg=mocks --case=underscore
//go:generate mockery --name=PushObserver --output=mocks --outpkg=mocks --case=underscore
//go:generate mockery --name=Metrics --output=mocks --outpkg=mocks --case=underscore

// PullObserver is notified that its subject changed. It receives no data and is expected to fetch
// whatever it needs from the source it is watching.
type PullObserver interface {
	Update()
}

// PullSubject broadcasts a content-free notification to its observers.
type PullSubject interface {
	// Notify calls Update on every attached observer.
	Notify()

	// Attach registers an observer. Attaching the same observer again has no effect.
	Attach(PullObserver)

	// Detach unregisters an observer. Detaching an observer that is not attached does nothing.
	Detach(PullObserver)
}

// PushObserver receives the changed data directly.
type PushObserver[T any] interface {
	Update(data T)
}

// PushSubject broadcasts a notification carrying data of type T to its observers.
type PushSubject[T any] interface {
	// Notify calls Update with data on every attached observer. All observers of a call receive
	// the same value.
	Notify(data T)

	// Attach registers an observer. Attaching the same observer again has no effect.
	Attach(PushObserver[T])

	// Detach unregisters an observer. Detaching an observer that is not attached does nothing.
	Detach(PushObserver[T])
}
