package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishDeliversToSubscribers(t *testing.T) {
	t.Parallel()

	bus := New(nil)
	defer bus.Close()

	got := make(chan DomainEvent, 1)
	bus.Subscribe(EventRequestFailed, func(e DomainEvent) {
		got <- e
	})

	bus.Publish(RequestFailedEvent{Kind: "search", Target: "fer"})

	select {
	case e := <-got:
		failed, ok := e.(RequestFailedEvent)
		require.True(t, ok)
		assert.Equal(t, "fer", failed.Target)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := New(nil)
	defer bus.Close()

	var calls atomic.Int32
	unsubscribe := bus.Subscribe(EventSearchIssued, func(DomainEvent) {
		calls.Add(1)
	})
	unsubscribe()

	delivered := make(chan struct{}, 1)
	bus.Subscribe(EventSearchIssued, func(DomainEvent) {
		delivered <- struct{}{}
	})

	bus.Publish(SearchIssuedEvent{Term: "x"})

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber not called")
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestBus_RecoversHandlerPanic(t *testing.T) {
	t.Parallel()

	bus := New(nil)
	defer bus.Close()

	done := make(chan struct{}, 1)
	bus.Subscribe(EventTeamOpened, func(DomainEvent) {
		panic("boom")
	})
	bus.Subscribe(EventTeamOpened, func(DomainEvent) {
		done <- struct{}{}
	})

	bus.Publish(TeamOpenedEvent{})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler not called")
	}
}

func TestBus_CloseWaitsForHandlers(t *testing.T) {
	t.Parallel()

	bus := New(nil)

	var handled atomic.Int32
	bus.Subscribe(EventRequestFailed, func(DomainEvent) {
		time.Sleep(20 * time.Millisecond)
		handled.Add(1)
	})

	for i := 0; i < 5; i++ {
		bus.Publish(RequestFailedEvent{Kind: "search"})
	}
	bus.Close()

	assert.Equal(t, int32(5), handled.Load())

	bus.Publish(RequestFailedEvent{Kind: "search"})
	bus.Close()
	assert.Equal(t, int32(5), handled.Load())
}

func TestRecorder_OfType(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	rec.Publish(SearchIssuedEvent{Term: "a"})
	rec.Publish(DropdownDismissedEvent{})
	rec.Publish(SearchIssuedEvent{Term: "b"})

	assert.Len(t, rec.Events(), 3)
	assert.Len(t, rec.OfType(EventSearchIssued), 2)
}
