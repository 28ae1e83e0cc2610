package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jeremyforan/observer/mocks"
)

type pushedData struct {
	Timestamp int64
}

// recorder is a push observer that keeps the last payload it received.
type recorder struct {
	timestamp int64
	updates   int
}

func (r *recorder) Update(data pushedData) {
	r.timestamp = data.Timestamp
	r.updates++
}

// valueObserver has value semantics: two equal values are the same observer.
type valueObserver struct {
	hits *int
}

func (v valueObserver) Update(string) {
	*v.hits++
}

func TestNewPushPublisher(t *testing.T) {
	t.Run("CreatesInstance", func(t *testing.T) {
		pub := NewPushPublisher[string]()
		require.NotNil(t, pub)
		assert.Equal(t, 0, pub.ObserverCount())
	})

	t.Run("SatisfiesPushSubject", func(t *testing.T) {
		var subject PushSubject[pushedData] = NewPushPublisher[pushedData]()
		subject.Notify(pushedData{})
	})
}

func TestPushNotify(t *testing.T) {
	t.Run("TimestampScenario", func(t *testing.T) {
		pub := NewPushPublisher[pushedData]()
		a := &recorder{timestamp: 1000}
		b := &recorder{}
		pub.Attach(a)
		pub.Attach(b)

		pub.Notify(pushedData{Timestamp: 42})

		assert.Equal(t, int64(42), a.timestamp)
		assert.Equal(t, int64(42), b.timestamp)
		assert.Equal(t, 1, a.updates)
		assert.Equal(t, 1, b.updates)

		pub.Detach(a)
		pub.Notify(pushedData{Timestamp: 2500})

		assert.Equal(t, int64(42), a.timestamp)
		assert.Equal(t, 1, a.updates)
		assert.Equal(t, int64(2500), b.timestamp)
		assert.Equal(t, 2, b.updates)
	})

	t.Run("SamePayloadToEveryObserver", func(t *testing.T) {
		pub := NewPushPublisher[pushedData]()
		payload := pushedData{Timestamp: 7}

		observers := make([]*mocks.PushObserver[pushedData], 3)
		for i := range observers {
			observers[i] = mocks.NewPushObserver[pushedData](t)
			observers[i].On("Update", payload).Once()
			pub.Attach(observers[i])
		}

		pub.Notify(payload)
	})

	t.Run("ObserverCannotAlterPayloadOfOthers", func(t *testing.T) {
		pub := NewPushPublisher[[2]int]()
		var seen [][2]int

		for i := 0; i < 3; i++ {
			obs := mocks.NewPushObserver[[2]int](t)
			obs.On("Update", mock.Anything).Run(func(args mock.Arguments) {
				data := args.Get(0).([2]int)
				seen = append(seen, data)
				data[0] = -1
			}).Once()
			pub.Attach(obs)
		}

		pub.Notify([2]int{1, 2})

		require.Len(t, seen, 3)
		for _, s := range seen {
			assert.Equal(t, [2]int{1, 2}, s)
		}
	})

	t.Run("EveryObserverUpdatedOncePerNotify", func(t *testing.T) {
		pub := NewPushPublisher[int]()
		const m = 4
		observers := make([]*mocks.PushObserver[int], 5)
		for i := range observers {
			observers[i] = mocks.NewPushObserver[int](t)
			observers[i].On("Update", mock.AnythingOfType("int")).Times(m)
			pub.Attach(observers[i])
			pub.Attach(observers[i])
		}

		for i := 0; i < m; i++ {
			pub.Notify(i)
		}
	})

	t.Run("NoObservers", func(t *testing.T) {
		pub := NewPushPublisher[pushedData]()
		require.NotPanics(t, func() { pub.Notify(pushedData{Timestamp: 1}) })
		require.NoError(t, pub.SafeNotify(pushedData{Timestamp: 1}))
	})

	t.Run("DetachUnknownObserver", func(t *testing.T) {
		pub := NewPushPublisher[pushedData]()
		b := &recorder{}
		pub.Attach(b)

		require.NotPanics(t, func() { pub.Detach(&recorder{}) })
		pub.Notify(pushedData{Timestamp: 3})

		assert.Equal(t, int64(3), b.timestamp)
	})

	t.Run("ValueObserversCompareByValue", func(t *testing.T) {
		pub := NewPushPublisher[string]()
		hits := 0
		pub.Attach(valueObserver{hits: &hits})
		pub.Attach(valueObserver{hits: &hits})

		pub.Notify("x")

		assert.Equal(t, 1, pub.ObserverCount())
		assert.Equal(t, 1, hits)
	})
}

func TestPushSafeNotify(t *testing.T) {
	pub := NewPushPublisher[pushedData]()
	healthy := &recorder{}
	failing := mocks.NewPushObserver[pushedData](t)
	failing.On("Update", pushedData{Timestamp: 9}).Run(func(mock.Arguments) {
		panic("bad payload")
	}).Once()

	pub.Attach(healthy)
	pub.Attach(failing)

	err := pub.SafeNotify(pushedData{Timestamp: 9})
	require.ErrorIs(t, err, ErrObserverPanicked)

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bad payload", pe.Recovered)
	assert.Same(t, failing, pe.Observer)
	assert.Equal(t, int64(9), healthy.timestamp)
}
