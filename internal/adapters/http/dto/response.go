// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"fmt"

	"github.com/hausfam/onboarding-service/internal/domain/locale"
	"github.com/hausfam/onboarding-service/internal/ports"
)

// SessionResponse represents a single wizard session in HTTP responses.
type SessionResponse struct {
	ID          string              `json:"id"`
	Step        int                 `json:"step"`
	StepName    string              `json:"step_name"`
	Submitted   bool                `json:"submitted"`
	Personal    PersonalResponse    `json:"personal"`
	Tax         TaxResponse         `json:"tax"`
	Children    []ChildResponse     `json:"children"`
	Members     []MemberResponse    `json:"household_members"`
	Preferences PreferencesResponse `json:"preferences"`
}

// PersonalResponse represents the step-1 data in HTTP responses.
type PersonalResponse struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	BirthDate   string `json:"birth_date"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Language    string `json:"language"`
	Currency    string `json:"currency"`
}

// TaxResponse represents the step-2 data in HTTP responses.
type TaxResponse struct {
	Region        string            `json:"region"`
	TaxClass      string            `json:"tax_class"`
	ExtraValues   map[string]string `json:"extra_values,omitempty"`
	TaxpayerCount int               `json:"taxpayer_count"`
	TaxYear       string            `json:"tax_year"`
}

// ChildResponse represents one children-list entry in HTTP responses.
type ChildResponse struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	School      string `json:"school"`
	SchoolGrade string `json:"school_grade"`
	Gender      string `json:"gender"`
}

// MemberResponse represents one household-member entry in HTTP responses.
type MemberResponse struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BirthDate    string `json:"birth_date"`
	Relationship string `json:"relationship"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
}

// PreferencesResponse represents the step-5 data in HTTP responses.
type PreferencesResponse struct {
	Language      string `json:"language"`
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Tutorial      bool   `json:"tutorial"`
}

// ToSessionResponse converts a session view to an HTTP response DTO.
// The children and member lists are always non-nil so they marshal as
// JSON arrays, never null.
func ToSessionResponse(v *ports.SessionView) SessionResponse {
	children := make([]ChildResponse, len(v.Children))
	for i, c := range v.Children {
		children[i] = ChildResponse{
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			BirthDate:   c.BirthDate,
			School:      c.School,
			SchoolGrade: c.SchoolGrade,
			Gender:      c.Gender,
		}
	}

	members := make([]MemberResponse, len(v.Members))
	for i, m := range v.Members {
		members[i] = MemberResponse{
			FirstName:    m.FirstName,
			LastName:     m.LastName,
			BirthDate:    m.BirthDate,
			Relationship: m.Relationship,
			Email:        m.Email,
			Phone:        m.Phone,
			Notes:        m.Notes,
		}
	}

	return SessionResponse{
		ID:        v.ID,
		Step:      int(v.Step),
		StepName:  v.Step.String(),
		Submitted: v.Submitted,
		Personal: PersonalResponse{
			Name:        v.Personal.Name,
			Phone:       v.Personal.Phone,
			BirthDate:   v.Personal.BirthDate,
			Street:      v.Personal.Address.Street,
			HouseNumber: v.Personal.Address.HouseNumber,
			PostalCode:  v.Personal.Address.PostalCode,
			City:        v.Personal.Address.City,
			State:       v.Personal.Address.State,
			Country:     v.Personal.Country.String(),
			Language:    v.Personal.Language,
			Currency:    v.Personal.Currency,
		},
		Tax: TaxResponse{
			Region:        v.Tax.Region,
			TaxClass:      v.Tax.TaxClass,
			ExtraValues:   v.Tax.ExtraValues,
			TaxpayerCount: v.Tax.TaxpayerCount,
			TaxYear:       v.Tax.TaxYear,
		},
		Children: children,
		Members:  members,
		Preferences: PreferencesResponse{
			Language:      v.Preferences.Language,
			Theme:         v.Preferences.Theme,
			Notifications: v.Preferences.Notifications,
			Tutorial:      v.Preferences.Tutorial,
		},
	}
}

// SubmissionResponse represents the outcome of submitting a session.
// Person writes succeed or fail independently; Errors lists the failures.
type SubmissionResponse struct {
	ProfileID string                 `json:"profile_id"`
	PersonIDs []string               `json:"person_ids"`
	Errors    []PersonWriteErrorItem `json:"errors"`
	Total     int                    `json:"total"`
	Succeeded int                    `json:"succeeded"`
	Failed    int                    `json:"failed"`
}

// PersonWriteErrorItem represents a single failed person write within a
// submission.
type PersonWriteErrorItem struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

// ToSubmissionResponse converts a ports.SubmissionResult to an HTTP
// response DTO.
func ToSubmissionResponse(result *ports.SubmissionResult) SubmissionResponse {
	personIDs := result.PersonIDs
	if personIDs == nil {
		personIDs = []string{}
	}

	errs := make([]PersonWriteErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = PersonWriteErrorItem{
			FirstName: e.Person.FirstName,
			LastName:  e.Person.LastName,
			Kind:      string(e.Person.Kind),
			Message:   e.Err.Error(),
		}
	}

	return SubmissionResponse{
		ProfileID: result.ProfileID,
		PersonIDs: personIDs,
		Errors:    errs,
		Total:     len(result.PersonIDs) + len(result.Errors),
		Succeeded: len(result.PersonIDs),
		Failed:    len(result.Errors),
	}
}

// AddressFormResponse represents the rendered intake form description for
// one country: address fields in display order, the tax section, and the
// derived defaults. Labels arrive already translated.
type AddressFormResponse struct {
	Country  string          `json:"country"`
	Fields   []FieldResponse `json:"fields"`
	Tax      TaxFormResponse `json:"tax"`
	Language string          `json:"language"`
	Currency string          `json:"currency"`
}

// FieldResponse represents one form field in HTTP responses. Pattern is the
// regular expression a non-empty value must match; empty means any value.
type FieldResponse struct {
	Key         string           `json:"key"`
	Label       string           `json:"label"`
	Placeholder string           `json:"placeholder,omitempty"`
	Required    bool             `json:"required"`
	Type        string           `json:"type"`
	Options     []OptionResponse `json:"options,omitempty"`
	Pattern     string           `json:"pattern,omitempty"`
	MaxLength   int              `json:"max_length,omitempty"`
}

// OptionResponse represents one selectable value of a select field.
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TaxFormResponse represents the tax section of the intake form.
type TaxFormResponse struct {
	RegionLabel string           `json:"region_label"`
	Classes     []OptionResponse `json:"classes"`
	ExtraFields []FieldResponse  `json:"extra_fields"`
}

// ToAddressFormResponse converts a ports.AddressForm to an HTTP response DTO.
func ToAddressFormResponse(form *ports.AddressForm) AddressFormResponse {
	fields := make([]FieldResponse, len(form.Fields))
	for i := range form.Fields {
		fields[i] = toFieldResponse(form.Fields[i])
	}

	extra := make([]FieldResponse, len(form.Tax.ExtraFields))
	for i := range form.Tax.ExtraFields {
		extra[i] = toFieldResponse(form.Tax.ExtraFields[i])
	}

	return AddressFormResponse{
		Country: form.Country.String(),
		Fields:  fields,
		Tax: TaxFormResponse{
			RegionLabel: form.Tax.RegionLabel,
			Classes:     toOptionResponses(form.Tax.Classes),
			ExtraFields: extra,
		},
		Language: form.Defaults.Language,
		Currency: form.Defaults.Currency,
	}
}

func toFieldResponse(f locale.FieldSpec) FieldResponse {
	return FieldResponse{
		Key:         f.Key,
		Label:       f.Label,
		Placeholder: f.Placeholder,
		Required:    f.Required,
		Type:        string(f.Type),
		Options:     toOptionResponses(f.Options),
		Pattern:     rulePattern(f.Rule),
		MaxLength:   f.MaxLength,
	}
}

func toOptionResponses(opts []locale.Option) []OptionResponse {
	if len(opts) == 0 {
		return nil
	}
	out := make([]OptionResponse, len(opts))
	for i, o := range opts {
		out[i] = OptionResponse{Value: o.Value, Label: o.Label}
	}
	return out
}

// rulePattern renders a validation rule as a client-checkable regular
// expression.
func rulePattern(r locale.Rule) string {
	switch r.Kind {
	case locale.RuleDigits:
		return fmt.Sprintf(`^\d{%d}$`, r.N)
	case locale.RuleRegex:
		return r.Pattern.String()
	default:
		return ""
	}
}

// PhoneResponse represents a normalized phone number in HTTP responses.
type PhoneResponse struct {
	Formatted string `json:"formatted"`
}
