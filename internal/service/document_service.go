package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/repository"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

// Indexer pushes a document at the external semantic service.
type Indexer interface {
	EmbedIndex(ctx context.Context, doc *domain.Document) error
}

// DocumentService is the ingestion pipeline: a synchronous durable insert
// followed by a detached, best-effort indexing dispatch. The caller's result
// depends only on the insert.
type DocumentService struct {
	documents repository.DocumentRepository
	indexer   Indexer
	logger    *zap.Logger
	timeout   time.Duration

	inflight sync.WaitGroup
}

// NewDocumentService constructs the service. timeout bounds each background
// indexing call.
func NewDocumentService(documents repository.DocumentRepository, indexer Indexer, logger *zap.Logger, timeout time.Duration) *DocumentService {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &DocumentService{
		documents: documents,
		indexer:   indexer,
		logger:    logger,
		timeout:   timeout,
	}
}

// DocumentIngestInput describes the upload payload.
type DocumentIngestInput struct {
	Department domain.Department
	Title      string
	Content    string
}

// Ingest persists the document and then dispatches one indexing request
// without waiting for it. Indexing failure is logged and swallowed; it never
// reaches the caller and never rolls back the insert.
func (s *DocumentService) Ingest(ctx context.Context, input DocumentIngestInput) (*domain.Document, error) {
	if !input.Department.Valid() {
		return nil, apperrors.NewValidationError("department must be HR or IT", nil)
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("department, title, and content are required", nil)
	}

	doc := &domain.Document{
		Department: input.Department,
		Title:      strings.TrimSpace(input.Title),
		Content:    input.Content,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.dispatchIndexing(*doc)
	return doc, nil
}

func (s *DocumentService) dispatchIndexing(doc domain.Document) {
	if s.indexer == nil {
		return
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.indexer.EmbedIndex(ctx, &doc); err != nil {
			s.logger.Error("semantic indexing dispatch failed",
				zap.Int64("document_id", doc.ID),
				zap.String("department", string(doc.Department)),
				zap.Error(err))
		}
	}()
}

// List returns documents newest-first, optionally filtered by department.
func (s *DocumentService) List(ctx context.Context, department *domain.Department) ([]domain.Document, error) {
	return s.documents.List(ctx, department)
}

// Delete removes the store row. The semantic index entry, if any, is left
// behind on purpose; there is no deletion propagation.
func (s *DocumentService) Delete(ctx context.Context, id int64) (*domain.Document, error) {
	return s.documents.Delete(ctx, id)
}

// Drain waits for in-flight indexing dispatches, for shutdown and tests.
func (s *DocumentService) Drain() {
	s.inflight.Wait()
}
