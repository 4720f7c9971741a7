package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/events"
)

type countingStatsSource struct {
	calls atomic.Int64
}

func (s *countingStatsSource) Compute(ctx context.Context) (*domain.Stats, error) {
	s.calls.Add(1)
	return &domain.Stats{ChangeRequests: s.calls.Load()}, nil
}

type countingRequestSource struct {
	calls atomic.Int64
}

func (s *countingRequestSource) List(ctx context.Context, department *domain.Department) ([]domain.ChangeRequest, error) {
	s.calls.Add(1)
	return []domain.ChangeRequest{{ID: 1, Department: domain.DepartmentHR}}, nil
}

func newTestAggregator(cap int) (*NotificationAggregator, *countingStatsSource, *countingRequestSource, events.Dispatcher) {
	stats := &countingStatsSource{}
	requests := &countingRequestSource{}
	dispatcher := events.NewInMemoryDispatcher()
	aggregator := NewNotificationAggregator(stats, requests, zap.NewNop(), cap)
	aggregator.RegisterHandlers(dispatcher)
	return aggregator, stats, requests, dispatcher
}

func TestLogIsNewestFirstAndBounded(t *testing.T) {
	aggregator, _, _, dispatcher := newTestAggregator(3)

	for i := 1; i <= 5; i++ {
		_ = dispatcher.Publish(context.Background(), events.Event{
			Type:    events.EventEmployeeAdded,
			Payload: events.RecordPayload{ID: int64(i), Label: fmt.Sprintf("Employee %d", i)},
		})
	}
	aggregator.Flush()

	recent := aggregator.Recent()
	if len(recent) != 3 {
		t.Fatalf("log length = %d, want cap 3", len(recent))
	}
	if recent[0].Message != "New employee added: Employee 5" {
		t.Fatalf("newest entry = %q, want the last published event", recent[0].Message)
	}
	if recent[2].Message != "New employee added: Employee 3" {
		t.Fatalf("oldest surviving entry = %q, want Employee 3", recent[2].Message)
	}
}

func TestEveryEventTriggersStatsRepull(t *testing.T) {
	aggregator, stats, requests, dispatcher := newTestAggregator(10)

	kinds := []events.EventType{
		events.EventEmployeeAdded,
		events.EventTicketDeleted,
		events.EventSystemAdded,
	}
	for _, kind := range kinds {
		_ = dispatcher.Publish(context.Background(), events.Event{Type: kind})
	}
	aggregator.Flush()

	if got := stats.calls.Load(); got != int64(len(kinds)) {
		t.Fatalf("stats re-pulls = %d, want %d", got, len(kinds))
	}
	if got := requests.calls.Load(); got != 0 {
		t.Fatalf("change-request re-pulls = %d, want 0 for non-completion events", got)
	}
}

func TestCompletionEventAlsoRepullsChangeRequests(t *testing.T) {
	aggregator, stats, requests, dispatcher := newTestAggregator(10)

	_ = dispatcher.Publish(context.Background(), events.Event{
		Type: events.EventChangeRequestCompleted,
		Payload: events.ChangeRequestCompletedPayload{
			ID: 4, Department: domain.DepartmentHR,
			Status: domain.RequestStatusCompleted, Description: "Update handbook",
		},
	})
	aggregator.Flush()

	if got := stats.calls.Load(); got != 1 {
		t.Fatalf("stats re-pulls = %d, want 1", got)
	}
	if got := requests.calls.Load(); got != 1 {
		t.Fatalf("change-request re-pulls = %d, want 1", got)
	}

	snapshotStats, snapshotRequests := aggregator.Snapshot()
	if snapshotStats == nil {
		t.Fatal("snapshot stats missing after re-pull")
	}
	if len(snapshotRequests) != 1 {
		t.Fatalf("snapshot requests = %d, want 1", len(snapshotRequests))
	}
}

func TestClearEmptiesOnlyTheLocalLog(t *testing.T) {
	aggregator, stats, _, dispatcher := newTestAggregator(10)

	_ = dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventPolicyAdded,
		Payload: events.RecordPayload{ID: 1, Label: "Leave Policy"},
	})
	aggregator.Flush()

	if len(aggregator.Recent()) != 1 {
		t.Fatal("expected one log entry before clear")
	}

	aggregator.Clear()

	if len(aggregator.Recent()) != 0 {
		t.Fatal("clear must empty the log")
	}
	snapshotStats, _ := aggregator.Snapshot()
	if snapshotStats == nil {
		t.Fatal("clear must not discard the aggregate snapshot")
	}
	if before := stats.calls.Load(); before != 1 {
		t.Fatalf("clear must not trigger re-pulls, got %d", before)
	}
}

func TestRedisShapedPayloadStillRenders(t *testing.T) {
	aggregator, _, _, dispatcher := newTestAggregator(10)

	// Events crossing the Redis bridge arrive as decoded JSON maps.
	_ = dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventTicketStatusChanged,
		Payload: map[string]interface{}{"id": float64(9), "new_status": "Resolved"},
	})
	aggregator.Flush()

	recent := aggregator.Recent()
	if len(recent) != 1 {
		t.Fatalf("log length = %d, want 1", len(recent))
	}
	if recent[0].Message != "Ticket status updated to: Resolved" {
		t.Fatalf("message = %q", recent[0].Message)
	}
}
