package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishWithoutSubscribersDropsEvent(t *testing.T) {
	d := NewInMemoryDispatcher()

	err := d.Publish(context.Background(), Event{Type: EventEmployeeAdded})
	if err != nil {
		t.Fatalf("publish with no subscribers: %v", err)
	}
}

func TestSubscribedHandlerReceivesEvent(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got *Event
	d.Subscribe(EventTicketAdded, func(ctx context.Context, event Event) error {
		got = &event
		return nil
	})

	event := Event{
		Type:    EventTicketAdded,
		Payload: RecordPayload{ID: 7, Label: "Login Issue"},
	}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got == nil {
		t.Fatal("handler was not invoked")
	}
	if got.Type != EventTicketAdded {
		t.Fatalf("got type %q, want %q", got.Type, EventTicketAdded)
	}
}

func TestHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventPolicyAdded, func(ctx context.Context, event Event) error {
		return errors.New("handler boom")
	})
	d.Subscribe(EventPolicyAdded, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventPolicyAdded}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !secondCalled {
		t.Fatal("second handler was skipped after first handler error")
	}
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int
	d.Subscribe(EventSystemAdded, func(ctx context.Context, event Event) error {
		calls++
		return nil
	})

	_ = d.Publish(context.Background(), Event{Type: EventSystemDeleted})
	_ = d.Publish(context.Background(), Event{Type: EventSystemAdded})

	if calls != 1 {
		t.Fatalf("handler called %d times, want 1", calls)
	}
}
