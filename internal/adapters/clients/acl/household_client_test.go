package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hausfam/onboarding-service/internal/domain"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
	"github.com/hausfam/onboarding-service/internal/platform/config"
	"github.com/hausfam/onboarding-service/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.StoreConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.Default()

	return httpclient.New(cfg, "household-store-test", nil, logger)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func strPtr(v string) *string { return &v }

func sampleProfile() wizard.ProfileRecord {
	return wizard.ProfileRecord{
		OwnerID:       "user-1",
		Name:          "Lena Huber",
		Phone:         strPtr("+41 791 234 567"),
		Street:        strPtr("Hauptstrasse"),
		HouseNumber:   strPtr("12"),
		PostalCode:    strPtr("8001"),
		City:          strPtr("Zürich"),
		Country:       "CH",
		Language:      "de",
		Currency:      "CHF",
		TaxpayerCount: 2,
		TaxYear:       2026,
	}
}

func TestHouseholdClient_CreateProfile(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/profiles" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "secret-key" {
			t.Errorf("X-API-Key = %q, want secret-key", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body["owner_id"] != "user-1" {
			t.Errorf("owner_id = %v, want user-1", body["owner_id"])
		}
		if body["street"] != "Hauptstrasse" {
			t.Errorf("street = %v, want Hauptstrasse", body["street"])
		}
		// Blank optionals must arrive as explicit null, not be omitted.
		if v, ok := body["birth_date"]; !ok || v != nil {
			t.Errorf("birth_date = %v (present=%t), want explicit null", v, ok)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, map[string]any{"id": "profile-1"})
	}))
	defer ts.Close()

	client := NewHouseholdClient(newTestClient(t, ts.URL), "secret-key", slog.Default())

	id, err := client.CreateProfile(context.Background(), sampleProfile())
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	if id != "profile-1" {
		t.Errorf("CreateProfile() = %q, want profile-1", id)
	}
}

func TestHouseholdClient_CreateProfile_ValidationError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		writeJSON(t, w, map[string]any{
			"detail": "validation failed",
			"errors": []map[string]any{
				{"location": "body.name", "message": "is required"},
			},
		})
	}))
	defer ts.Close()

	client := NewHouseholdClient(newTestClient(t, ts.URL), "", slog.Default())

	_, err := client.CreateProfile(context.Background(), wizard.ProfileRecord{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("CreateProfile() error = %v, want ErrValidation", err)
	}

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("CreateProfile() error = %T, want *domain.ValidationError", err)
	}
	if vErr.Fields["name"] != "is required" {
		t.Errorf("Fields[name] = %q, want %q", vErr.Fields["name"], "is required")
	}
}

func TestHouseholdClient_CreatePerson(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/persons" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body["kind"] != "child" {
			t.Errorf("kind = %v, want child", body["kind"])
		}
		if body["first_name"] != "Mia" {
			t.Errorf("first_name = %v, want Mia", body["first_name"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, map[string]any{"id": "person-1"})
	}))
	defer ts.Close()

	client := NewHouseholdClient(newTestClient(t, ts.URL), "", slog.Default())

	id, err := client.CreatePerson(context.Background(), wizard.PersonRecord{
		OwnerID:   "user-1",
		Kind:      wizard.PersonChild,
		FirstName: "Mia",
		LastName:  "Huber",
		Notes:     strPtr("2018-04-02 | Primary School"),
	})
	if err != nil {
		t.Fatalf("CreatePerson() error = %v", err)
	}
	if id != "person-1" {
		t.Errorf("CreatePerson() = %q, want person-1", id)
	}
}

func TestHouseholdClient_CreatePerson_Unavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewHouseholdClient(newTestClient(t, ts.URL), "", slog.Default())

	_, err := client.CreatePerson(context.Background(), wizard.PersonRecord{
		Kind: wizard.PersonMember, FirstName: "Oma", LastName: "Huber",
	})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("CreatePerson() error = %v, want ErrUnavailable", err)
	}
}

func TestHouseholdClient_HealthCheckViaHTTPClient(t *testing.T) {
	t.Parallel()

	httpClient := newTestClient(t, "http://localhost:0")

	if got := httpClient.Name(); !strings.HasPrefix(got, "household-store") {
		t.Errorf("Name() = %q, want household-store prefix", got)
	}
	if err := httpClient.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() with closed breaker = %v, want nil", err)
	}
}
