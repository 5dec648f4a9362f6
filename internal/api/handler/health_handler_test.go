package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "", "")

	if err := NewHealthHandler(nil).Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all healthy", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/health/ready", "", "")
		h := NewHealthHandler(map[string]Pinger{"sqlite": ok, "redis": ok})

		if err := h.Readiness(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("one dependency down", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/health/ready", "", "")
		h := NewHealthHandler(map[string]Pinger{"sqlite": ok, "redis": down})

		if err := h.Readiness(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}

		var resp readinessResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp.Status != "degraded" {
			t.Fatalf("expected degraded, got %q", resp.Status)
		}
		if resp.Dependencies["redis"].Error != "connection refused" || resp.Dependencies["sqlite"].Status != "ok" {
			t.Fatalf("unexpected dependencies: %+v", resp.Dependencies)
		}
	})
}
