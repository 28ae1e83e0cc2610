package metrics

import (
	"github.com/jeremyforan/observer"
)

type NoopCollector struct{}

var _ observer.Metrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) ObserverAttached(subject string)                 {}
func (nc *NoopCollector) ObserverDetached(subject string)                 {}
func (nc *NoopCollector) NotificationSent(subject string, deliveries int) {}
func (nc *NoopCollector) ObserverPanicked(subject string)                 {}
