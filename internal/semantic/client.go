// Package semantic holds the HTTP client for the external document indexing
// service. The service is an opaque collaborator: the portal only pushes
// index requests at it and never reads them back.
package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/spec-kit/company-portal/internal/domain"
)

// Client issues indexing requests against the semantic service.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a semantic index client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// embedIndexRequest is the semantic service request format. Ids travel as
// strings on the wire even though the store assigns integers.
type embedIndexRequest struct {
	ID         string `json:"id"`
	Department string `json:"department"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// EmbedIndex asks the service to index one document.
func (c *Client) EmbedIndex(ctx context.Context, doc *domain.Document) error {
	reqBody := embedIndexRequest{
		ID:         strconv.FormatInt(doc.ID, 10),
		Department: string(doc.Department),
		Title:      doc.Title,
		Content:    doc.Content,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embed-index", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling semantic service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("semantic service returned status %d", resp.StatusCode)
	}
	return nil
}
