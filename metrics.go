package observer

// Metrics receives counters about attach, detach and notify activity of a subject. The subject
// argument is the name given with WithName.
type Metrics interface {
	// ObserverAttached is called when an observer joins the subject's set.
	ObserverAttached(subject string)

	// ObserverDetached is called when an observer leaves the subject's set.
	ObserverDetached(subject string)

	// NotificationSent is called once per Notify or SafeNotify with the number of observers
	// that were in the snapshot.
	NotificationSent(subject string, deliveries int)

	// ObserverPanicked is called for every panic recovered by SafeNotify.
	ObserverPanicked(subject string)
}

type noopMetrics struct{}

func (noopMetrics) ObserverAttached(string)      {}
func (noopMetrics) ObserverDetached(string)      {}
func (noopMetrics) NotificationSent(string, int) {}
func (noopMetrics) ObserverPanicked(string)      {}
