package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hausfam/onboarding-service/internal/domain/locale"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
	"github.com/hausfam/onboarding-service/internal/ports"
)

const testSessionID = "9f2d8c1a0b3e4d5f"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withSessionParam(r *http.Request) *http.Request {
	return withChiParams(r, map[string]string{"id": testSessionID})
}

func validView() *ports.SessionView {
	return &ports.SessionView{
		ID:   testSessionID,
		Step: wizard.StepPersonal,
		Personal: wizard.Personal{
			Name:     "Lena Huber",
			Country:  locale.DE,
			Language: "de",
			Currency: "EUR",
		},
		Children: []wizard.Child{},
		Members:  []wizard.Member{},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
