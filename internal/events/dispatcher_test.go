package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var created, closed int
	d.Subscribe(EventTripCreated, func(context.Context, Event) error {
		created++
		return nil
	})
	d.Subscribe(EventTripClosed, func(context.Context, Event) error {
		closed++
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTripCreated, TripID: 1}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if created != 1 || closed != 0 {
		t.Fatalf("created=%d closed=%d", created, closed)
	}
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	var second bool
	d.Subscribe(EventTripClosed, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventTripClosed, func(context.Context, Event) error {
		second = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTripClosed, TripID: 2}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !second {
		t.Fatal("second handler not invoked after first failed")
	}
}
