package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loan-application-api/internal/adapter/repository/mysql"
	"loan-application-api/internal/testutil/sqlitedb"

	"github.com/labstack/echo/v4"
)

type probeFunc func(ctx context.Context) ([]mysql.ProbeRow, error)

func (f probeFunc) Ping(ctx context.Context) ([]mysql.ProbeRow, error) { return f(ctx) }

func TestHealth_ReturnsOKWithRFC3339NanoUTC(t *testing.T) {
	e := echo.New()
	h := NewHandler(nil, nil, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	start := time.Now().UTC()

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Status code
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	// Content-Type
	ct := rec.Header().Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	// Body JSON
	var body struct {
		Status string `json:"status"`
		Time   string `json:"time"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}

	if body.Status != "ok" {
		t.Fatalf(`expected status "ok", got %q`, body.Status)
	}

	// Time is RFC3339Nano and UTC (with 'Z')
	parsed, err := time.Parse(time.RFC3339Nano, body.Time)
	if err != nil {
		t.Fatalf("time not RFC3339Nano: %v (value=%q)", err, body.Time)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", parsed.Location())
	}
	// Freshness: should be close to now (within a few seconds)
	now := time.Now().UTC()
	if parsed.Before(start.Add(-2*time.Second)) || parsed.After(now.Add(2*time.Second)) {
		t.Fatalf("time not within expected window: parsed=%v start=%v now=%v", parsed, start, now)
	}
}

func TestWelcome(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := NewHandler(nil, nil, false).Welcome(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["message"] != "Welcome to the Loan Application API" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestDBTest_SQLite(t *testing.T) {
	db := sqlitedb.Open(t)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/test", nil), rec)

	if err := NewHandler(mysql.NewProbe(db), nil, false).DBTest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Message string           `json:"message"`
		Data    []map[string]int `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Message != "Database connection successful" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if len(body.Data) != 1 || body.Data[0]["test"] != 1 {
		t.Fatalf("unexpected data %+v", body.Data)
	}
	if n := sqlitedb.InUse(t, db); n != 0 {
		t.Fatalf("connections in use after probe: %d", n)
	}
}

func TestDBTest_Failure_HidesDetailsByDefault(t *testing.T) {
	down := probeFunc(func(context.Context) ([]mysql.ProbeRow, error) {
		return nil, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	})

	for _, expose := range []bool{false, true} {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/test", nil), rec)

		if err := NewHandler(down, nil, expose).DBTest(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", rec.Code)
		}
		var body FailureResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body.Error != "Database connection failed" {
			t.Fatalf("unexpected error %q", body.Error)
		}
		if expose != strings.Contains(body.Details, "connection refused") {
			t.Fatalf("expose=%v but details=%q", expose, body.Details)
		}
	}
}
