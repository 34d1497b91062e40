// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/hausfam/onboarding-service/internal/adapters/http/dto"
	"github.com/hausfam/onboarding-service/internal/domain"
	"github.com/hausfam/onboarding-service/internal/ports"
)

// OnboardingHandler handles HTTP requests for the intake wizard: session
// lifecycle, per-step updates, navigation, and submission.
type OnboardingHandler struct {
	svc ports.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler with the given
// service port.
func NewOnboardingHandler(svc ports.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

// StartSession handles POST /api/v1/onboarding/sessions. The caller
// authenticates with a bearer token, which is resolved through the session
// directory.
func (h *OnboardingHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		dto.WriteErrorResponse(w, r, fmt.Errorf("missing bearer token: %w", domain.ErrForbidden))
		return
	}

	view, err := h.svc.StartSession(r.Context(), token)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSessionResponse(view))
}

// GetSession handles GET /api/v1/onboarding/sessions/{id}.
func (h *OnboardingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetSession(r.Context(), sessionID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(view))
}

// UpdatePersonal handles PUT /api/v1/onboarding/sessions/{id}/personal.
func (h *OnboardingHandler) UpdatePersonal(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePersonalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.UpdatePersonal(r.Context(), sessionID(r), mapPersonalUpdate(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(view))
}

// UpdateTax handles PUT /api/v1/onboarding/sessions/{id}/tax.
func (h *OnboardingHandler) UpdateTax(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTaxRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.UpdateTax(r.Context(), sessionID(r), mapTaxUpdate(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(view))
}

// UpdateChildren handles PUT /api/v1/onboarding/sessions/{id}/children.
func (h *OnboardingHandler) UpdateChildren(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateChildrenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.UpdateChildren(r.Context(), sessionID(r), mapChildrenUpdate(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(view))
}

// UpdateHousehold handles PUT /api/v1/onboarding/sessions/{id}/household.
func (h *OnboardingHandler) UpdateHousehold(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateHouseholdRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.UpdateHousehold(r.Context(), sessionID(r), mapHouseholdUpdate(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(view))
}

// UpdatePreferences handles PUT /api/v1/onboarding/sessions/{id}/preferences.
func (h *OnboardingHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePreferencesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.UpdatePreferences(r.Context(), sessionID(r), mapPreferencesUpdate(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(view))
}

// Next handles POST /api/v1/onboarding/sessions/{id}/next.
func (h *OnboardingHandler) Next(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Next(r.Context(), sessionID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(view))
}

// Back handles POST /api/v1/onboarding/sessions/{id}/back.
func (h *OnboardingHandler) Back(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Back(r.Context(), sessionID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(view))
}

// Skip handles POST /api/v1/onboarding/sessions/{id}/skip. The session is
// submitted immediately with whatever data exists.
func (h *OnboardingHandler) Skip(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Skip(r.Context(), sessionID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSubmissionResponse(result))
}

// Complete handles POST /api/v1/onboarding/sessions/{id}/complete.
func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Complete(r.Context(), sessionID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSubmissionResponse(result))
}
