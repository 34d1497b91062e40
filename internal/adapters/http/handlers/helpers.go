package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hausfam/onboarding-service/internal/adapters/http/dto"
	"github.com/hausfam/onboarding-service/internal/domain"
	"github.com/hausfam/onboarding-service/internal/domain/locale"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
	"github.com/hausfam/onboarding-service/internal/ports"
)

// sessionID extracts the session identifier path parameter.
func sessionID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// bearerToken extracts the bearer token from the Authorization header.
// Returns "" when the header is missing or not a bearer scheme.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}

// mapPersonalUpdate converts an UpdatePersonalRequest DTO to the service
// port's update type. The country code is upper-cased on the way in.
func mapPersonalUpdate(req *dto.UpdatePersonalRequest) ports.PersonalUpdate {
	return ports.PersonalUpdate{
		Name:      req.Name,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Address: locale.AddressValues{
			Street:      req.Street,
			HouseNumber: req.HouseNumber,
			PostalCode:  req.PostalCode,
			City:        req.City,
			State:       req.State,
		},
		Country: locale.Country(strings.ToUpper(strings.TrimSpace(req.Country))),
	}
}

// mapTaxUpdate converts an UpdateTaxRequest DTO to the domain Tax value.
func mapTaxUpdate(req *dto.UpdateTaxRequest) wizard.Tax {
	return wizard.Tax{
		Region:        req.Region,
		TaxClass:      req.TaxClass,
		ExtraValues:   req.ExtraValues,
		TaxpayerCount: req.TaxpayerCount,
		TaxYear:       req.TaxYear,
	}
}

// mapChildrenUpdate converts an UpdateChildrenRequest DTO to the service
// port's update type.
func mapChildrenUpdate(req *dto.UpdateChildrenRequest) ports.ChildrenUpdate {
	children := make([]wizard.Child, len(req.Children))
	for i, c := range req.Children {
		children[i] = wizard.Child{
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			BirthDate:   c.BirthDate,
			School:      c.School,
			SchoolGrade: c.SchoolGrade,
			Gender:      c.Gender,
		}
	}
	return ports.ChildrenUpdate{Count: req.Count, Children: children}
}

// mapHouseholdUpdate converts an UpdateHouseholdRequest DTO to the service
// port's update type.
func mapHouseholdUpdate(req *dto.UpdateHouseholdRequest) ports.HouseholdUpdate {
	members := make([]wizard.Member, len(req.Members))
	for i, m := range req.Members {
		members[i] = wizard.Member{
			FirstName:    m.FirstName,
			LastName:     m.LastName,
			BirthDate:    m.BirthDate,
			Relationship: m.Relationship,
			Email:        m.Email,
			Phone:        m.Phone,
			Notes:        m.Notes,
		}
	}
	return ports.HouseholdUpdate{Count: req.Count, Members: members}
}

// mapPreferencesUpdate converts an UpdatePreferencesRequest DTO to the
// domain Preferences value.
func mapPreferencesUpdate(req *dto.UpdatePreferencesRequest) wizard.Preferences {
	return wizard.Preferences{
		Language:      req.Language,
		Theme:         req.Theme,
		Notifications: req.Notifications,
		Tutorial:      req.Tutorial,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
