package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hausfam/onboarding-service/internal/adapters/http/dto"
	"github.com/hausfam/onboarding-service/internal/domain/locale"
	"github.com/hausfam/onboarding-service/internal/ports"
)

// FormHandler handles the form-description and phone-normalization
// endpoints shared by the wizard UI.
type FormHandler struct {
	svc ports.OnboardingService
}

// NewFormHandler creates a new FormHandler with the given service port.
func NewFormHandler(svc ports.OnboardingService) *FormHandler {
	return &FormHandler{svc: svc}
}

// AddressForm handles GET /api/v1/address-forms/{country}. The optional
// lang query parameter selects the translation catalog; without it the
// built-in labels are returned unchanged.
func (h *FormHandler) AddressForm(w http.ResponseWriter, r *http.Request) {
	country := locale.Country(strings.ToUpper(chi.URLParam(r, "country")))
	lang := r.URL.Query().Get("lang")

	form, err := h.svc.AddressForm(r.Context(), country, lang)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAddressFormResponse(form))
}

// FormatPhone handles POST /api/v1/phone/format.
func (h *FormHandler) FormatPhone(w http.ResponseWriter, r *http.Request) {
	var req dto.FormatPhoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, dto.PhoneResponse{Formatted: h.svc.FormatPhone(req.Phone)})
}
