package dto

import (
	"fmt"
	"strings"

	"github.com/hausfam/onboarding-service/internal/domain"
)

const (
	msgRequired = "is required"

	// maxListEntries caps the children and household-member lists per request.
	maxListEntries = 50
)

// UpdatePersonalRequest represents the JSON body for replacing the step-1
// data of a session. Address fields are free-form here; they are validated
// against the country schema when the wizard advances, not on update.
type UpdatePersonalRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	BirthDate   string `json:"birth_date"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

// Validate checks that the country code, when present, is a two-letter code.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdatePersonalRequest) Validate() error {
	fields := make(map[string]string)

	if c := strings.TrimSpace(r.Country); c != "" && !isCountryCode(c) {
		fields["country"] = fmt.Sprintf("must be a two-letter country code, got %q", r.Country)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, ch := range s {
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}

// UpdateTaxRequest represents the JSON body for replacing the step-2 data.
// Every field is optional; step 2 has no completion gate.
type UpdateTaxRequest struct {
	Region        string            `json:"region"`
	TaxClass      string            `json:"tax_class"`
	ExtraValues   map[string]string `json:"extra_values"`
	TaxpayerCount int               `json:"taxpayer_count"`
	TaxYear       string            `json:"tax_year"`
}

// Validate checks that numeric fields are in range.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaxRequest) Validate() error {
	fields := make(map[string]string)

	if r.TaxpayerCount < 0 {
		fields["taxpayer_count"] = fmt.Sprintf("must not be negative, got %d", r.TaxpayerCount)
	}
	if y := strings.TrimSpace(r.TaxYear); y != "" && !isYear(y) {
		fields["tax_year"] = fmt.Sprintf("must be a four-digit year, got %q", r.TaxYear)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// ChildRequest is one entry of the children list in UpdateChildrenRequest.
type ChildRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	School      string `json:"school"`
	SchoolGrade string `json:"school_grade"`
	Gender      string `json:"gender"`
}

// UpdateChildrenRequest represents the JSON body for replacing the step-3
// data: the target list length and the entries to copy in. Entries beyond
// count are dropped; a count beyond the entries pads with blanks.
type UpdateChildrenRequest struct {
	Count    int            `json:"count"`
	Children []ChildRequest `json:"children"`
}

// Validate checks the list bounds and gender values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateChildrenRequest) Validate() error {
	fields := make(map[string]string)

	if r.Count < 0 {
		fields["count"] = fmt.Sprintf("must not be negative, got %d", r.Count)
	}
	if r.Count > maxListEntries {
		fields["count"] = fmt.Sprintf("must be at most %d, got %d", maxListEntries, r.Count)
	}
	for i, c := range r.Children {
		if !isGender(c.Gender) {
			fields[fmt.Sprintf("children[%d].gender", i)] = fmt.Sprintf("must be one of f, m, d, got %q", c.Gender)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func isGender(s string) bool {
	switch s {
	case "", "f", "m", "d":
		return true
	default:
		return false
	}
}

// MemberRequest is one entry of the members list in UpdateHouseholdRequest.
type MemberRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BirthDate    string `json:"birth_date"`
	Relationship string `json:"relationship"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
}

// UpdateHouseholdRequest represents the JSON body for replacing the step-4
// data, with the same resize contract as UpdateChildrenRequest.
type UpdateHouseholdRequest struct {
	Count   int             `json:"count"`
	Members []MemberRequest `json:"members"`
}

// Validate checks the list bounds.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateHouseholdRequest) Validate() error {
	fields := make(map[string]string)

	if r.Count < 0 {
		fields["count"] = fmt.Sprintf("must not be negative, got %d", r.Count)
	}
	if r.Count > maxListEntries {
		fields["count"] = fmt.Sprintf("must be at most %d, got %d", maxListEntries, r.Count)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdatePreferencesRequest represents the JSON body for replacing the
// step-5 data.
type UpdatePreferencesRequest struct {
	Language      string `json:"language"`
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Tutorial      bool   `json:"tutorial"`
}

// Validate checks that the theme, when present, is a known value.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdatePreferencesRequest) Validate() error {
	fields := make(map[string]string)

	switch r.Theme {
	case "", "light", "dark", "system":
	default:
		fields["theme"] = fmt.Sprintf("must be one of light, dark, system, got %q", r.Theme)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// FormatPhoneRequest represents the JSON body for the phone normalization
// endpoint.
type FormatPhoneRequest struct {
	Phone string `json:"phone"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *FormatPhoneRequest) Validate() error {
	if strings.TrimSpace(r.Phone) == "" {
		return &domain.ValidationError{Fields: map[string]string{"phone": msgRequired}}
	}
	return nil
}
