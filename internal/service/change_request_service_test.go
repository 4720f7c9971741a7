package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/events"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

type fakeChangeRequestRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.ChangeRequest
}

func newFakeChangeRequestRepo() *fakeChangeRequestRepo {
	return &fakeChangeRequestRepo{rows: make(map[int64]domain.ChangeRequest)}
}

func (f *fakeChangeRequestRepo) Create(ctx context.Context, req *domain.ChangeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	req.ID = f.nextID
	req.CreatedAt = time.Now()
	f.rows[req.ID] = *req
	return nil
}

func (f *fakeChangeRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ChangeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (f *fakeChangeRequestRepo) List(ctx context.Context, department *domain.Department) ([]domain.ChangeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ChangeRequest
	for id := f.nextID; id >= 1; id-- {
		row, ok := f.rows[id]
		if !ok {
			continue
		}
		if department != nil && row.Department != *department {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeChangeRequestRepo) UpdateStatus(ctx context.Context, req *domain.ChangeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[req.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.rows[req.ID] = *req
	return nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("got %v, want a DomainError with code %s", err, code)
	}
	if domainErr.Code != code {
		t.Fatalf("got code %s, want %s", domainErr.Code, code)
	}
}

func TestCreateValidatesInput(t *testing.T) {
	svc := NewChangeRequestService(newFakeChangeRequestRepo(), &recordingDispatcher{})

	_, err := svc.Create(context.Background(), ChangeRequestCreateInput{
		Department: "Finance", Description: "something",
	})
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Create(context.Background(), ChangeRequestCreateInput{
		Department: domain.DepartmentHR, Description: "   ",
	})
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewChangeRequestService(newFakeChangeRequestRepo(), &recordingDispatcher{})

	req, err := svc.Create(context.Background(), ChangeRequestCreateInput{
		Department:  domain.DepartmentIT,
		Type:        "Access",
		Description: "Grant VPN access",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if req.Status != domain.RequestStatusPending {
		t.Fatalf("new request status = %s, want Pending", req.Status)
	}
	if req.RequestedBy != "Admin" {
		t.Fatalf("requestedBy = %q, want default Admin", req.RequestedBy)
	}
	if req.CompletedAt != nil {
		t.Fatal("new request must not carry a completion timestamp")
	}
}

func TestTransitionLifecycleEdges(t *testing.T) {
	cases := []struct {
		name string
		from domain.RequestStatus
		to   domain.RequestStatus
		ok   bool
	}{
		{"pending to in-progress", domain.RequestStatusPending, domain.RequestStatusInProgress, true},
		{"pending to completed", domain.RequestStatusPending, domain.RequestStatusCompleted, true},
		{"pending to cancelled", domain.RequestStatusPending, domain.RequestStatusCancelled, true},
		{"in-progress to completed", domain.RequestStatusInProgress, domain.RequestStatusCompleted, true},
		{"in-progress to cancelled", domain.RequestStatusInProgress, domain.RequestStatusCancelled, true},
		{"pending self-loop", domain.RequestStatusPending, domain.RequestStatusPending, false},
		{"in-progress back to pending", domain.RequestStatusInProgress, domain.RequestStatusPending, false},
		{"completed to in-progress", domain.RequestStatusCompleted, domain.RequestStatusInProgress, false},
		{"completed to cancelled", domain.RequestStatusCompleted, domain.RequestStatusCancelled, false},
		{"cancelled to completed", domain.RequestStatusCancelled, domain.RequestStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeChangeRequestRepo()
			svc := NewChangeRequestService(repo, &recordingDispatcher{})

			seed := &domain.ChangeRequest{
				Department:  domain.DepartmentHR,
				Type:        "Policy",
				Description: "Update leave policy",
				Status:      tc.from,
				RequestedBy: "Admin",
			}
			if err := repo.Create(context.Background(), seed); err != nil {
				t.Fatalf("seed: %v", err)
			}

			got, err := svc.Transition(context.Background(), nil, seed.ID, tc.to, nil)
			if tc.ok {
				if err != nil {
					t.Fatalf("transition %s -> %s: %v", tc.from, tc.to, err)
				}
				if got.Status != tc.to {
					t.Fatalf("status = %s, want %s", got.Status, tc.to)
				}
				if tc.to.Terminal() && got.CompletedAt == nil {
					t.Fatal("terminal transition must stamp completedAt")
				}
				if !tc.to.Terminal() && got.CompletedAt != nil {
					t.Fatal("non-terminal transition must not stamp completedAt")
				}
				return
			}
			assertDomainErrorCode(t, err, "INVALID_TRANSITION")
		})
	}
}

func TestTransitionStoresNotes(t *testing.T) {
	repo := newFakeChangeRequestRepo()
	svc := NewChangeRequestService(repo, &recordingDispatcher{})

	seed := &domain.ChangeRequest{
		Department: domain.DepartmentIT, Description: "Rotate keys",
		Status: domain.RequestStatusPending, RequestedBy: "Admin",
	}
	_ = repo.Create(context.Background(), seed)

	notes := "rotated and verified"
	got, err := svc.Transition(context.Background(), nil, seed.ID, domain.RequestStatusCompleted, &notes)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if got.Notes == nil || *got.Notes != notes {
		t.Fatalf("notes = %v, want %q", got.Notes, notes)
	}

	stored, _ := repo.GetByID(context.Background(), seed.ID)
	if stored.Notes == nil || *stored.Notes != notes {
		t.Fatal("notes were not persisted")
	}
}

func TestTransitionUnknownIDIsNotFound(t *testing.T) {
	svc := NewChangeRequestService(newFakeChangeRequestRepo(), &recordingDispatcher{})

	_, err := svc.Transition(context.Background(), nil, 99, domain.RequestStatusCompleted, nil)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("got %v, want pgx.ErrNoRows", err)
	}
}

func TestScopedTransitionHidesOtherDepartments(t *testing.T) {
	repo := newFakeChangeRequestRepo()
	svc := NewChangeRequestService(repo, &recordingDispatcher{})

	seed := &domain.ChangeRequest{
		Department: domain.DepartmentIT, Description: "Server swap",
		Status: domain.RequestStatusPending, RequestedBy: "Admin",
	}
	_ = repo.Create(context.Background(), seed)

	scope := domain.DepartmentHR
	_, err := svc.Transition(context.Background(), &scope, seed.ID, domain.RequestStatusCompleted, nil)
	assertDomainErrorCode(t, err, "NOT_FOUND")

	stored, _ := repo.GetByID(context.Background(), seed.ID)
	if stored.Status != domain.RequestStatusPending {
		t.Fatal("scoped miss must not mutate the row")
	}
}

func TestTerminalTransitionPublishesCompletionEvent(t *testing.T) {
	repo := newFakeChangeRequestRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewChangeRequestService(repo, dispatcher)

	seed := &domain.ChangeRequest{
		Department: domain.DepartmentHR, Description: "Badge printer",
		Status: domain.RequestStatusPending, RequestedBy: "Admin",
	}
	_ = repo.Create(context.Background(), seed)

	if _, err := svc.Transition(context.Background(), nil, seed.ID, domain.RequestStatusInProgress, nil); err != nil {
		t.Fatalf("transition: %v", err)
	}
	if len(dispatcher.published()) != 0 {
		t.Fatal("non-terminal transition must not publish")
	}

	if _, err := svc.Transition(context.Background(), nil, seed.ID, domain.RequestStatusCompleted, nil); err != nil {
		t.Fatalf("transition: %v", err)
	}

	published := dispatcher.published()
	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	event := published[0]
	if event.Type != events.EventChangeRequestCompleted {
		t.Fatalf("event type = %s, want %s", event.Type, events.EventChangeRequestCompleted)
	}
	payload, ok := event.Payload.(events.ChangeRequestCompletedPayload)
	if !ok {
		t.Fatalf("payload type %T", event.Payload)
	}
	if payload.ID != seed.ID || payload.Status != domain.RequestStatusCompleted {
		t.Fatalf("payload = %+v", payload)
	}
}
