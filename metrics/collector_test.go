package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyforan/observer"
)

type tick struct{}

func (tick) Update(int) {}

type boom struct{}

func (*boom) Update(int) { panic("boom") }

func TestCollector(t *testing.T) {
	t.Run("RecordsSubjectActivity", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector, err := NewCollector(reg)
		require.NoError(t, err)

		pub := observer.NewPushPublisher[int](observer.WithName("feed"), observer.WithMetrics(collector))
		failing := &boom{}
		pub.Attach(tick{})
		pub.Attach(failing)

		require.Error(t, pub.SafeNotify(1))
		pub.Detach(failing)
		pub.Notify(2)

		assert.Equal(t, float64(2), testutil.ToFloat64(collector.notifications.WithLabelValues("feed")))
		assert.Equal(t, float64(3), testutil.ToFloat64(collector.deliveries.WithLabelValues("feed")))
		assert.Equal(t, float64(1), testutil.ToFloat64(collector.panics.WithLabelValues("feed")))
		assert.Equal(t, float64(1), testutil.ToFloat64(collector.attached.WithLabelValues("feed")))
	})

	t.Run("SeparatesSubjects", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector, err := NewCollector(reg)
		require.NoError(t, err)

		signal := observer.NewPullPublisher(observer.WithName("signal"), observer.WithMetrics(collector))
		signal.Notify()
		signal.Notify()

		feed := observer.NewPushPublisher[int](observer.WithMetrics(collector))
		feed.Notify(1)

		assert.Equal(t, float64(2), testutil.ToFloat64(collector.notifications.WithLabelValues("signal")))
		assert.Equal(t, float64(1), testutil.ToFloat64(collector.notifications.WithLabelValues("push")))
		assert.Equal(t, 2, testutil.CollectAndCount(collector.notifications))
	})

	t.Run("DuplicateRegistrationFails", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := NewCollector(reg)
		require.NoError(t, err)

		_, err = NewCollector(reg)
		require.Error(t, err)
	})
}

func TestNoopCollector(t *testing.T) {
	pub := observer.NewPullPublisher(observer.WithMetrics(NewNoopCollector()))
	require.NotPanics(t, pub.Notify)
}
