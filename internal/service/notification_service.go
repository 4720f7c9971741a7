package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/events"
)

// Notification is one entry in the host's ephemeral activity log. Entries
// live only in process memory and are lost on restart.
type Notification struct {
	ID         string           `json:"id"`
	Kind       events.EventType `json:"kind"`
	Message    string           `json:"message"`
	ObservedAt time.Time        `json:"observed_at"`
}

// StatsSource supplies aggregate counts for re-pulls.
type StatsSource interface {
	Compute(ctx context.Context) (*domain.Stats, error)
}

// ChangeRequestSource supplies the change-request list for re-pulls.
type ChangeRequestSource interface {
	List(ctx context.Context, department *domain.Department) ([]domain.ChangeRequest, error)
}

// NotificationAggregator is the single consumer of the fan-out channel. Each
// received event is appended to a bounded, newest-first log and triggers a
// re-derivation of the host's aggregate view from the store. There is no
// per-kind merge logic: every event means "something changed, recompute".
type NotificationAggregator struct {
	stats    StatsSource
	requests ChangeRequestSource
	logger   *zap.Logger
	cap      int

	mu           sync.Mutex
	log          []Notification
	lastStats    *domain.Stats
	lastRequests []domain.ChangeRequest

	repulls sync.WaitGroup
}

// NewNotificationAggregator creates the aggregator. cap bounds the log; the
// oldest entry is evicted on overflow.
func NewNotificationAggregator(stats StatsSource, requests ChangeRequestSource, logger *zap.Logger, cap int) *NotificationAggregator {
	if cap <= 0 {
		cap = 500
	}
	return &NotificationAggregator{
		stats:    stats,
		requests: requests,
		logger:   logger,
		cap:      cap,
	}
}

// RegisterHandlers subscribes the aggregator to every event kind.
func (a *NotificationAggregator) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	for _, kind := range events.AllEventTypes {
		dispatcher.Subscribe(kind, a.handleEvent)
	}
}

func (a *NotificationAggregator) handleEvent(ctx context.Context, event events.Event) error {
	entry := Notification{
		ID:         uuid.NewString(),
		Kind:       event.Type,
		Message:    notificationText(event),
		ObservedAt: time.Now(),
	}

	a.mu.Lock()
	a.log = append([]Notification{entry}, a.log...)
	if len(a.log) > a.cap {
		a.log = a.log[:a.cap]
	}
	a.mu.Unlock()

	// Re-pull happens off the producer's path: a slow store must never
	// stall the view that emitted the event.
	a.repulls.Add(1)
	go func(kind events.EventType) {
		defer a.repulls.Done()
		a.refresh(kind)
	}(event.Type)
	return nil
}

func (a *NotificationAggregator) refresh(kind events.EventType) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := a.stats.Compute(ctx)
	if err != nil {
		a.logger.Warn("stats re-pull failed", zap.Error(err))
	}

	var requests []domain.ChangeRequest
	if kind == events.EventChangeRequestCompleted {
		requests, err = a.requests.List(ctx, nil)
		if err != nil {
			a.logger.Warn("change-request re-pull failed", zap.Error(err))
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if stats != nil {
		a.lastStats = stats
	}
	if requests != nil {
		a.lastRequests = requests
	}
}

// Recent returns the current log, newest first.
func (a *NotificationAggregator) Recent() []Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Notification, len(a.log))
	copy(out, a.log)
	return out
}

// Clear empties the log. Purely local; the underlying store is untouched.
func (a *NotificationAggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.log = nil
}

// Snapshot returns the last re-pulled aggregate view.
func (a *NotificationAggregator) Snapshot() (*domain.Stats, []domain.ChangeRequest) {
	a.mu.Lock()
	defer a.mu.Unlock()
	requests := make([]domain.ChangeRequest, len(a.lastRequests))
	copy(requests, a.lastRequests)
	return a.lastStats, requests
}

// Flush waits for in-flight re-pulls, for shutdown and tests.
func (a *NotificationAggregator) Flush() {
	a.repulls.Wait()
}

func notificationText(event events.Event) string {
	label := payloadLabel(event.Payload)
	switch event.Type {
	case events.EventEmployeeAdded:
		return fmt.Sprintf("New employee added: %s", label)
	case events.EventEmployeeDeleted:
		return "Employee deleted"
	case events.EventPolicyAdded:
		return fmt.Sprintf("New policy added: %s", label)
	case events.EventPolicyDeleted:
		return "Policy deleted"
	case events.EventReportAdded:
		return fmt.Sprintf("New report generated: %s", label)
	case events.EventReportDeleted:
		return "Report deleted"
	case events.EventTicketAdded:
		return fmt.Sprintf("New ticket created: %s", label)
	case events.EventTicketDeleted:
		return "Ticket deleted"
	case events.EventTicketStatusChanged:
		return fmt.Sprintf("Ticket status updated to: %s", label)
	case events.EventSystemAdded:
		return fmt.Sprintf("New system added: %s", label)
	case events.EventSystemDeleted:
		return "System deleted"
	case events.EventMaintenanceAdded:
		return fmt.Sprintf("Maintenance scheduled: %s", label)
	case events.EventMaintenanceDeleted:
		return "Maintenance record deleted"
	case events.EventChangeRequestCompleted:
		return fmt.Sprintf("Change request completed: %s", label)
	default:
		return string(event.Type)
	}
}

// payloadLabel pulls a display label from the payload. Payloads arrive as
// typed structs from the in-memory dispatcher and as decoded JSON maps from
// the Redis bridge; both shapes are handled, and the label is cosmetic only.
func payloadLabel(payload interface{}) string {
	switch p := payload.(type) {
	case events.RecordPayload:
		return p.Label
	case events.TicketStatusChangedPayload:
		return p.NewStatus
	case events.ChangeRequestCompletedPayload:
		return p.Description
	case map[string]interface{}:
		for _, key := range []string{"label", "new_status", "description"} {
			if v, ok := p[key].(string); ok && v != "" {
				return v
			}
		}
	}
	return ""
}
