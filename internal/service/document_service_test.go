package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/company-portal/internal/domain"
)

type fakeDocumentRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{rows: make(map[int64]domain.Document)}
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	doc.ID = f.nextID
	doc.CreatedAt = time.Now()
	f.rows[doc.ID] = *doc
	return nil
}

func (f *fakeDocumentRepo) List(ctx context.Context, department *domain.Department) ([]domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Document
	for id := f.nextID; id >= 1; id-- {
		doc, ok := f.rows[id]
		if !ok {
			continue
		}
		if department != nil && doc.Department != *department {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id int64) (*domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(f.rows, id)
	return &doc, nil
}

type fakeIndexer struct {
	mu    sync.Mutex
	calls []int64
	err   error
}

func (f *fakeIndexer) EmbedIndex(ctx context.Context, doc *domain.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, doc.ID)
	return f.err
}

func (f *fakeIndexer) indexed() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64{}, f.calls...)
}

func TestIngestValidatesInput(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), &fakeIndexer{}, zap.NewNop(), time.Second)

	_, err := svc.Ingest(context.Background(), DocumentIngestInput{
		Department: "Legal", Title: "t", Content: "c",
	})
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Ingest(context.Background(), DocumentIngestInput{
		Department: domain.DepartmentHR, Title: " ", Content: "c",
	})
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")
}

func TestIngestPersistsAndDispatchesIndexing(t *testing.T) {
	repo := newFakeDocumentRepo()
	indexer := &fakeIndexer{}
	svc := NewDocumentService(repo, indexer, zap.NewNop(), time.Second)

	doc, err := svc.Ingest(context.Background(), DocumentIngestInput{
		Department: domain.DepartmentHR,
		Title:      "Onboarding Guide",
		Content:    "Welcome to the company",
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if doc.ID == 0 {
		t.Fatal("document was not assigned an id")
	}

	svc.Drain()
	got := indexer.indexed()
	if len(got) != 1 || got[0] != doc.ID {
		t.Fatalf("indexed ids = %v, want [%d]", got, doc.ID)
	}
}

func TestIngestSucceedsWhenIndexingFails(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	repo := newFakeDocumentRepo()
	indexer := &fakeIndexer{err: errors.New("connection refused")}
	svc := NewDocumentService(repo, indexer, zap.New(core), time.Second)

	doc, err := svc.Ingest(context.Background(), DocumentIngestInput{
		Department: domain.DepartmentIT,
		Title:      "Runbook",
		Content:    "Restart procedure",
	})
	if err != nil {
		t.Fatalf("ingest must not surface indexing failure: %v", err)
	}

	svc.Drain()

	if _, ok := repo.rows[doc.ID]; !ok {
		t.Fatal("document insert was rolled back")
	}
	entries := logs.FilterMessage("semantic indexing dispatch failed").All()
	if len(entries) != 1 {
		t.Fatalf("error log entries = %d, want 1", len(entries))
	}
}

func TestDeleteRemovesOnlyStoreRow(t *testing.T) {
	repo := newFakeDocumentRepo()
	indexer := &fakeIndexer{}
	svc := NewDocumentService(repo, indexer, zap.NewNop(), time.Second)

	doc, _ := svc.Ingest(context.Background(), DocumentIngestInput{
		Department: domain.DepartmentHR, Title: "Old Guide", Content: "stale",
	})
	svc.Drain()

	deleted, err := svc.Delete(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != doc.ID {
		t.Fatalf("deleted id = %d, want %d", deleted.ID, doc.ID)
	}

	// One indexing call from the ingest, none from the delete.
	if calls := indexer.indexed(); len(calls) != 1 {
		t.Fatalf("indexer calls = %d, want 1", len(calls))
	}

	_, err = svc.Delete(context.Background(), doc.ID)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("got %v, want pgx.ErrNoRows", err)
	}
}
