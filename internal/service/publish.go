package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/company-portal/internal/events"
)

// publish stamps and emits an event, fire-and-forget. A missing dispatcher
// or a delivery failure never affects the mutation that produced the event.
func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}
