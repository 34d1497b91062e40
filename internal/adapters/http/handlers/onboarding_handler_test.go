package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/hausfam/onboarding-service/internal/adapters/http/dto"
	"github.com/hausfam/onboarding-service/internal/adapters/http/handlers"
	"github.com/hausfam/onboarding-service/internal/domain"
	"github.com/hausfam/onboarding-service/internal/domain/locale"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
	"github.com/hausfam/onboarding-service/internal/ports"
	"github.com/hausfam/onboarding-service/mocks"
)

// --- StartSession ---

func TestStartSession_Created(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().StartSession(mock.Anything, "token-1").Return(validView(), nil)

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/sessions", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	h.StartSession(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.SessionResponse](t, rec)
	if resp.ID != testSessionID {
		t.Errorf("ID = %q, want %q", resp.ID, testSessionID)
	}
	if resp.StepName != "personal" {
		t.Errorf("StepName = %q, want personal", resp.StepName)
	}
	if resp.Personal.Name != "Lena Huber" {
		t.Errorf("Personal.Name = %q, want Lena Huber", resp.Personal.Name)
	}
}

func TestStartSession_MissingToken(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/sessions", nil)
	h.StartSession(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestStartSession_RejectedToken(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().StartSession(mock.Anything, "expired").
		Return(nil, fmt.Errorf("resolving session: %w", domain.ErrForbidden))

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/sessions", nil)
	req.Header.Set("Authorization", "Bearer expired")
	h.StartSession(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

// --- GetSession ---

func TestGetSession_OK(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().GetSession(mock.Anything, testSessionID).Return(validView(), nil)

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/sessions/"+testSessionID, nil))
	h.GetSession(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.SessionResponse](t, rec)
	if resp.Children == nil {
		t.Error("Children = nil, want empty array")
	}
}

func TestGetSession_NotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().GetSession(mock.Anything, testSessionID).
		Return(nil, fmt.Errorf("session %q: %w", testSessionID, domain.ErrNotFound))

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/sessions/"+testSessionID, nil))
	h.GetSession(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdatePersonal ---

func TestUpdatePersonal_UppercasesCountry(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().UpdatePersonal(mock.Anything, testSessionID, mock.MatchedBy(func(u ports.PersonalUpdate) bool {
		return u.Country == locale.CH && u.Address.Street == "Hauptstrasse"
	})).Return(validView(), nil)

	h := handlers.NewOnboardingHandler(svc)

	body := jsonBody(t, dto.UpdatePersonalRequest{
		Name:        "Lena Huber",
		Street:      "Hauptstrasse",
		HouseNumber: "12",
		PostalCode:  "8001",
		City:        "Zürich",
		Country:     "ch",
	})

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPut, "/api/v1/onboarding/sessions/"+testSessionID+"/personal", body))
	h.UpdatePersonal(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdatePersonal_InvalidCountry(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	h := handlers.NewOnboardingHandler(svc)

	body := jsonBody(t, dto.UpdatePersonalRequest{Country: "Germany"})

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPut, "/api/v1/onboarding/sessions/"+testSessionID+"/personal", body))
	h.UpdatePersonal(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)

	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.country" {
		t.Errorf("Errors = %+v, want one body.country entry", resp.Errors)
	}
}

func TestUpdatePersonal_InvalidJSON(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPut,
		"/api/v1/onboarding/sessions/"+testSessionID+"/personal", strings.NewReader("{not json")))
	h.UpdatePersonal(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- UpdateTax ---

func TestUpdateTax_OK(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().UpdateTax(mock.Anything, testSessionID, wizard.Tax{
		Region:        "Zürich",
		TaxClass:      "married",
		TaxpayerCount: 2,
		TaxYear:       "2026",
	}).Return(validView(), nil)

	h := handlers.NewOnboardingHandler(svc)

	body := jsonBody(t, dto.UpdateTaxRequest{
		Region:        "Zürich",
		TaxClass:      "married",
		TaxpayerCount: 2,
		TaxYear:       "2026",
	})

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPut, "/api/v1/onboarding/sessions/"+testSessionID+"/tax", body))
	h.UpdateTax(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateTax_NegativeTaxpayerCount(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	h := handlers.NewOnboardingHandler(svc)

	body := jsonBody(t, dto.UpdateTaxRequest{TaxpayerCount: -1})

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPut, "/api/v1/onboarding/sessions/"+testSessionID+"/tax", body))
	h.UpdateTax(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- UpdateChildren ---

func TestUpdateChildren_OK(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().UpdateChildren(mock.Anything, testSessionID, mock.MatchedBy(func(u ports.ChildrenUpdate) bool {
		return u.Count == 2 && len(u.Children) == 1 && u.Children[0].FirstName == "Mia"
	})).Return(validView(), nil)

	h := handlers.NewOnboardingHandler(svc)

	body := jsonBody(t, dto.UpdateChildrenRequest{
		Count:    2,
		Children: []dto.ChildRequest{{FirstName: "Mia", Gender: "f"}},
	})

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPut, "/api/v1/onboarding/sessions/"+testSessionID+"/children", body))
	h.UpdateChildren(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateChildren_InvalidGender(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	h := handlers.NewOnboardingHandler(svc)

	body := jsonBody(t, dto.UpdateChildrenRequest{
		Count:    1,
		Children: []dto.ChildRequest{{FirstName: "Mia", Gender: "x"}},
	})

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPut, "/api/v1/onboarding/sessions/"+testSessionID+"/children", body))
	h.UpdateChildren(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Navigation ---

func TestNext_GateFailure(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().Next(mock.Anything, testSessionID).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"street": "Street is required"}})

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/sessions/"+testSessionID+"/next", nil))
	h.Next(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)

	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.street" {
		t.Errorf("Errors = %+v, want one body.street entry", resp.Errors)
	}
}

func TestBack_OK(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().Back(mock.Anything, testSessionID).Return(validView(), nil)

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/sessions/"+testSessionID+"/back", nil))
	h.Back(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

// --- Submission ---

func TestComplete_Created(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().Complete(mock.Anything, testSessionID).Return(&ports.SubmissionResult{
		ProfileID: "profile-1",
		PersonIDs: []string{"person-1", "person-2"},
	}, nil)

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/sessions/"+testSessionID+"/complete", nil))
	h.Complete(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.SubmissionResponse](t, rec)
	if resp.ProfileID != "profile-1" {
		t.Errorf("ProfileID = %q, want profile-1", resp.ProfileID)
	}
	if resp.Succeeded != 2 || resp.Failed != 0 {
		t.Errorf("Succeeded/Failed = %d/%d, want 2/0", resp.Succeeded, resp.Failed)
	}
}

func TestComplete_PartialFailure(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().Complete(mock.Anything, testSessionID).Return(&ports.SubmissionResult{
		ProfileID: "profile-1",
		PersonIDs: []string{"person-1"},
		Errors: []ports.PersonWriteError{{
			Person: wizard.PersonRecord{FirstName: "Ben", Kind: wizard.PersonChild},
			Err:    fmt.Errorf("creating person: %w", domain.ErrUnavailable),
		}},
	}, nil)

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/sessions/"+testSessionID+"/complete", nil))
	h.Complete(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.SubmissionResponse](t, rec)
	if resp.Failed != 1 {
		t.Fatalf("Failed = %d, want 1", resp.Failed)
	}
	if resp.Errors[0].FirstName != "Ben" || resp.Errors[0].Kind != "child" {
		t.Errorf("Errors[0] = %+v, want Ben/child", resp.Errors[0])
	}
}

func TestSkip_WrongStep(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().Skip(mock.Anything, testSessionID).
		Return(nil, fmt.Errorf("skip from step 5: %w", domain.ErrConflict))

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/sessions/"+testSessionID+"/skip", nil))
	h.Skip(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

func TestComplete_StoreUnavailable(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockOnboardingService(t)
	svc.EXPECT().Complete(mock.Anything, testSessionID).
		Return(nil, fmt.Errorf("creating profile: %w", domain.ErrUnavailable))

	h := handlers.NewOnboardingHandler(svc)

	rec := httptest.NewRecorder()
	req := withSessionParam(httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/sessions/"+testSessionID+"/complete", nil))
	h.Complete(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}
