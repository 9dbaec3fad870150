package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/restaurant-api/pkg/logger"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name             string
		ping             pingerFunc
		expectedStatus   string
		expectedDatabase string
	}{
		{
			name:             "database reachable",
			ping:             func(ctx context.Context) error { return nil },
			expectedStatus:   "healthy",
			expectedDatabase: "up",
		},
		{
			name:             "database unreachable",
			ping:             func(ctx context.Context) error { return errors.New("connection refused") },
			expectedStatus:   "degraded",
			expectedDatabase: "down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.ping, logger.Discard())

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", w.Code)
			}

			var response HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if response.Status != tt.expectedStatus {
				t.Errorf("status = %s, want %s", response.Status, tt.expectedStatus)
			}
			if response.Database != tt.expectedDatabase {
				t.Errorf("database = %s, want %s", response.Database, tt.expectedDatabase)
			}
			if response.Timestamp.IsZero() {
				t.Error("timestamp is zero")
			}
		})
	}
}

func TestHealthHandler_PingIsBounded(t *testing.T) {
	var hasDeadline bool
	handler := NewHealthHandler(pingerFunc(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	}), logger.Discard())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if !hasDeadline {
		t.Error("expected ping context to carry a deadline")
	}
}

func TestRoot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	Root(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "Servidor funcionando correctamente" {
		t.Errorf("body = %q", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
}

func TestNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/categorias/1", nil)
	w := httptest.NewRecorder()

	NotFound(logger.Discard())(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "not found" {
		t.Errorf("expected error message 'not found', got %s", response["error"])
	}
}
