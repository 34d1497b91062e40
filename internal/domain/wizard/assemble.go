package wizard

import (
	"strconv"
	"strings"
	"time"

	"github.com/hausfam/onboarding-service/internal/domain/locale"
)

// PersonKind distinguishes the two dependent-person record types.
type PersonKind string

const (
	PersonChild  PersonKind = "child"
	PersonMember PersonKind = "household_member"
)

// ProfileRecord is the flattened household profile write. Optional fields
// are nil when blank and marshal as explicit JSON null, never omitted, so
// the document store overwrites stale values instead of keeping them.
type ProfileRecord struct {
	OwnerID              string            `json:"ownerId"`
	Name                 string            `json:"name"`
	Phone                *string           `json:"phone"`
	BirthDate            *string           `json:"birthDate"`
	Street               *string           `json:"street"`
	HouseNumber          *string           `json:"houseNumber"`
	PostalCode           *string           `json:"postalCode"`
	City                 *string           `json:"city"`
	State                *string           `json:"state"`
	Country              string            `json:"country"`
	Language             string            `json:"language"`
	Currency             string            `json:"currency"`
	TaxRegion            *string           `json:"taxRegion"`
	TaxClass             *string           `json:"taxClass"`
	TaxExtra             map[string]string `json:"taxExtra"`
	TaxpayerCount        int               `json:"taxpayerCount"`
	TaxYear              int               `json:"taxYear"`
	Theme                *string           `json:"theme"`
	NotificationsEnabled bool              `json:"notificationsEnabled"`
	TutorialEnabled      bool              `json:"tutorialEnabled"`
}

// PersonRecord is one dependent-person write. Person writes are mutually
// independent and independent of the profile write; issuing them
// concurrently is safe.
type PersonRecord struct {
	OwnerID   string     `json:"ownerId"`
	Kind      PersonKind `json:"kind"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	BirthDate *string    `json:"birthDate"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	Notes     *string    `json:"notes"`
}

// Batch is the assembled output of one wizard session: exactly one profile
// write plus zero or more person writes.
type Batch struct {
	Profile ProfileRecord
	Persons []PersonRecord
}

// childNotesSeparator joins the present child attributes into the free-text
// notes field. The separator is part of the stored format.
const childNotesSeparator = " | "

// Assemble turns a finished wizard state into its write batch. genderLabel
// translates a child's gender value into its display label for the notes
// field; a nil func keeps the raw value. now anchors the tax-year default.
//
// Children and household members whose first or last name is blank are
// dropped silently: the step gates already rejected them on the normal path,
// and on the Skip path they are legitimately incomplete.
func Assemble(s *State, genderLabel func(string) string, now time.Time) Batch {
	if genderLabel == nil {
		genderLabel = func(v string) string { return v }
	}

	language := s.Personal.Language
	if pref := strings.TrimSpace(s.Preferences.Language); pref != "" {
		language = pref
	}

	profile := ProfileRecord{
		OwnerID:              s.OwnerID,
		Name:                 strings.TrimSpace(s.Personal.Name),
		Phone:                optional(s.Personal.Phone),
		BirthDate:            optional(s.Personal.BirthDate),
		Street:               optional(s.Personal.Address.Street),
		HouseNumber:          optional(s.Personal.Address.HouseNumber),
		PostalCode:           optional(s.Personal.Address.PostalCode),
		City:                 optional(s.Personal.Address.City),
		State:                optional(s.Personal.Address.State),
		Country:              string(s.Personal.Country),
		Language:             language,
		Currency:             s.Personal.Currency,
		TaxRegion:            optional(s.Tax.Region),
		TaxClass:             optional(s.Tax.TaxClass),
		TaxExtra:             cleanExtra(s.Tax.ExtraValues),
		TaxpayerCount:        s.Tax.TaxpayerCount,
		TaxYear:              parseTaxYear(s.Tax.TaxYear, now),
		Theme:                optional(s.Preferences.Theme),
		NotificationsEnabled: s.Preferences.Notifications,
		TutorialEnabled:      s.Preferences.Tutorial,
	}

	persons := make([]PersonRecord, 0, len(s.Children)+len(s.Members))
	for _, c := range s.Children {
		if blank(c.FirstName) || blank(c.LastName) {
			continue
		}
		persons = append(persons, PersonRecord{
			OwnerID:   s.OwnerID,
			Kind:      PersonChild,
			FirstName: strings.TrimSpace(c.FirstName),
			LastName:  strings.TrimSpace(c.LastName),
			BirthDate: optional(c.BirthDate),
			Notes:     childNotes(c, s.Personal.Address, genderLabel),
		})
	}
	for _, m := range s.Members {
		if blank(m.FirstName) || blank(m.LastName) {
			continue
		}
		persons = append(persons, PersonRecord{
			OwnerID:   s.OwnerID,
			Kind:      PersonMember,
			FirstName: strings.TrimSpace(m.FirstName),
			LastName:  strings.TrimSpace(m.LastName),
			BirthDate: optional(m.BirthDate),
			Email:     optional(m.Email),
			Phone:     optional(m.Phone),
			Notes:     memberNotes(m),
		})
	}

	return Batch{Profile: profile, Persons: persons}
}

// childNotes concatenates the child's present optional attributes with
// childNotesSeparator: birth date, school, grade, gender label, and the
// household address composed as "street houseNumber, postalCode city".
// Absent attributes are omitted; nil when none are present.
func childNotes(c Child, addr locale.AddressValues, genderLabel func(string) string) *string {
	var parts []string
	for _, v := range []string{c.BirthDate, c.School, c.SchoolGrade} {
		if !blank(v) {
			parts = append(parts, strings.TrimSpace(v))
		}
	}
	if !blank(c.Gender) {
		parts = append(parts, strings.TrimSpace(genderLabel(c.Gender)))
	}
	if composed := composeAddress(addr); composed != "" {
		parts = append(parts, composed)
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, childNotesSeparator)
	return &joined
}

// memberNotes joins relationship and free-text notes with " - " when both
// are present, keeps whichever one exists otherwise, and is nil when both
// are blank.
func memberNotes(m Member) *string {
	rel := strings.TrimSpace(m.Relationship)
	notes := strings.TrimSpace(m.Notes)
	switch {
	case rel != "" && notes != "":
		joined := rel + " - " + notes
		return &joined
	case rel != "":
		return &rel
	case notes != "":
		return &notes
	default:
		return nil
	}
}

func composeAddress(addr locale.AddressValues) string {
	line := strings.TrimSpace(strings.TrimSpace(addr.Street) + " " + strings.TrimSpace(addr.HouseNumber))
	place := strings.TrimSpace(strings.TrimSpace(addr.PostalCode) + " " + strings.TrimSpace(addr.City))
	switch {
	case line != "" && place != "":
		return line + ", " + place
	case line != "":
		return line
	default:
		return place
	}
}

// parseTaxYear parses the free-text tax year, defaulting to the current
// year when absent or unparsable.
func parseTaxYear(raw string, now time.Time) int {
	if year, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return year
	}
	return now.Year()
}

func optional(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func cleanExtra(values map[string]string) map[string]string {
	var out map[string]string
	for k, v := range values {
		if blank(v) {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}

func blank(v string) bool {
	return strings.TrimSpace(v) == ""
}
