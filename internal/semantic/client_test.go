package semantic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spec-kit/company-portal/internal/domain"
)

func TestClient_EmbedIndex(t *testing.T) {
	var got embedIndexRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed-index" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"indexed": true})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	doc := &domain.Document{ID: 42, Department: domain.DepartmentIT, Title: "VPN Guide", Content: "..."}

	if err := client.EmbedIndex(context.Background(), doc); err != nil {
		t.Fatalf("embed-index failed: %v", err)
	}
	if got.ID != "42" {
		t.Errorf("expected string id %q, got %q", "42", got.ID)
	}
	if got.Department != "IT" || got.Title != "VPN Guide" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if err := client.EmbedIndex(context.Background(), &domain.Document{ID: 1}); err == nil {
		t.Error("should error on 500")
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)
	if err := client.EmbedIndex(context.Background(), &domain.Document{ID: 1}); err == nil {
		t.Error("should error when unreachable")
	}
}

func TestClient_Defaults(t *testing.T) {
	client := NewClient("", 0)
	if client.baseURL != "http://localhost:8000" {
		t.Error("should default base URL")
	}
	if client.client.Timeout != 15*time.Second {
		t.Error("should default timeout")
	}
}
