package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jeremyforan/observer"
)

const (
	namespaceObserver = "observer"
	LabelSubject      = "subject"
)

// Collector records subject activity as prometheus metrics, labelled by subject name.
type Collector struct {
	notifications *prometheus.CounterVec
	deliveries    *prometheus.CounterVec
	panics        *prometheus.CounterVec
	attached      *prometheus.GaugeVec
}

var _ observer.Metrics = (*Collector)(nil)

// NewCollector creates the collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "notifications_total",
			Namespace: namespaceObserver,
			Help:      "the number of Notify and SafeNotify calls made on a subject",
		}, []string{LabelSubject}),

		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "deliveries_total",
			Namespace: namespaceObserver,
			Help:      "the number of observer updates attempted by a subject",
		}, []string{LabelSubject}),

		panics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "panics_total",
			Namespace: namespaceObserver,
			Help:      "the number of observer panics recovered by SafeNotify",
		}, []string{LabelSubject}),

		attached: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:      "attached",
			Namespace: namespaceObserver,
			Help:      "the number of observers currently attached to a subject",
		}, []string{LabelSubject}),
	}

	for _, col := range []prometheus.Collector{c.notifications, c.deliveries, c.panics, c.attached} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Collector) ObserverAttached(subject string) {
	c.attached.WithLabelValues(subject).Inc()
}

func (c *Collector) ObserverDetached(subject string) {
	c.attached.WithLabelValues(subject).Dec()
}

func (c *Collector) NotificationSent(subject string, deliveries int) {
	c.notifications.WithLabelValues(subject).Inc()
	c.deliveries.WithLabelValues(subject).Add(float64(deliveries))
}

func (c *Collector) ObserverPanicked(subject string) {
	c.panics.WithLabelValues(subject).Inc()
}
