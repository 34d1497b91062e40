// Package wizard implements the five-step household intake flow: per-step
// state, gated transitions, list resizing for dependents, and the assembly
// of the final profile and person write records.
package wizard

import (
	"fmt"
	"strings"

	"github.com/hausfam/onboarding-service/internal/domain"
	"github.com/hausfam/onboarding-service/internal/domain/locale"
)

// Step identifies a wizard step. Steps advance 1 through 5; StepSubmitted is
// terminal.
type Step int

const (
	StepPersonal    Step = 1
	StepTax         Step = 2
	StepChildren    Step = 3
	StepHousehold   Step = 4
	StepPreferences Step = 5
	StepSubmitted   Step = 6
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepTax:
		return "tax"
	case StepChildren:
		return "children"
	case StepHousehold:
		return "household"
	case StepPreferences:
		return "preferences"
	case StepSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Personal holds the step-1 data. Country changes must go through
// ApplyCountryDefaults, not through direct assignment.
type Personal struct {
	Name      string
	Phone     string
	BirthDate string
	Address   locale.AddressValues
	Country   locale.Country
	Language  string
	Currency  string
}

// Tax holds the step-2 data. All of it is optional; step 2 has no gate.
type Tax struct {
	Region        string
	TaxClass      string
	ExtraValues   map[string]string
	TaxpayerCount int
	TaxYear       string
}

// Child is one entry of the step-3 list.
type Child struct {
	FirstName   string
	LastName    string
	BirthDate   string
	School      string
	SchoolGrade string
	Gender      string
}

// Member is one entry of the step-4 list.
type Member struct {
	FirstName    string
	LastName     string
	BirthDate    string
	Relationship string
	Email        string
	Phone        string
	Notes        string
}

// Preferences holds the step-5 data.
type Preferences struct {
	Language      string
	Theme         string
	Notifications bool
	Tutorial      bool
}

// State is the mutable aggregate for one onboarding session. It is created
// by New, mutated step by step, and consumed exactly once by Assemble when
// the flow reaches StepSubmitted. It holds no external resources and may be
// discarded at any time.
//
// State is not safe for concurrent use; the owning session registry
// serializes access.
type State struct {
	OwnerID     string
	Personal    Personal
	Tax         Tax
	Children    []Child
	Members     []Member
	Preferences Preferences

	step Step
}

// New creates a fresh wizard at step 1, pre-filled with the known user's
// display name and the default country's language and currency.
func New(ownerID, displayName string) *State {
	defaults, _ := locale.CountryDefaults(locale.DefaultCountry)
	return &State{
		OwnerID: ownerID,
		Personal: Personal{
			Name:     displayName,
			Country:  locale.DefaultCountry,
			Language: defaults.Language,
			Currency: defaults.Currency,
		},
		step: StepPersonal,
	}
}

// Step returns the current step.
func (s *State) Step() Step {
	return s.step
}

// Submitted reports whether the wizard has reached its terminal state.
func (s *State) Submitted() bool {
	return s.step == StepSubmitted
}

// ApplyCountryDefaults switches the selected country: all address fields are
// reset to empty, and when the country has registered defaults the language
// and currency are overwritten with them. This is the only transition that
// derives language and currency; ordinary field edits never touch them.
func (s *State) ApplyCountryDefaults(c locale.Country) {
	s.Personal.Country = c
	s.Personal.Address = locale.AddressValues{}
	if d, ok := locale.CountryDefaults(c); ok {
		s.Personal.Language = d.Language
		s.Personal.Currency = d.Currency
	}
}

// SetChildCount resizes the children list to n, padding with blank records
// or truncating. Existing entries keep their position and content up to the
// new length. Negative counts clamp to zero.
func (s *State) SetChildCount(n int) {
	s.Children = resize(s.Children, n)
}

// SetMemberCount resizes the household-member list, with the same contract
// as SetChildCount.
func (s *State) SetMemberCount(n int) {
	s.Members = resize(s.Members, n)
}

func resize[T any](list []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n <= len(list) {
		return list[:n]
	}
	out := make([]T, n)
	copy(out, list)
	return out
}

// Next advances to the following step if the current step's gate passes.
// Gate failures are returned as *domain.ValidationError. From step 5 the
// flow must finish through Complete, and a submitted wizard accepts no
// further transitions; both cases return domain.ErrConflict.
func (s *State) Next() error {
	switch s.step {
	case StepPersonal:
		if err := s.validatePersonal(); err != nil {
			return err
		}
	case StepTax:
		// Tax data is optional; no gate.
	case StepChildren:
		if err := validateNames("children", childNames(s.Children)); err != nil {
			return err
		}
	case StepHousehold:
		if err := validateNames("householdMembers", memberNames(s.Members)); err != nil {
			return err
		}
	case StepPreferences:
		return fmt.Errorf("final step finishes via complete: %w", domain.ErrConflict)
	default:
		return fmt.Errorf("wizard already submitted: %w", domain.ErrConflict)
	}
	s.step++
	return nil
}

// Back moves one step backwards without validation. It is allowed from any
// step after the first while the wizard is not submitted.
func (s *State) Back() error {
	if s.step == StepSubmitted {
		return fmt.Errorf("wizard already submitted: %w", domain.ErrConflict)
	}
	if s.step <= StepPersonal {
		return fmt.Errorf("already at the first step: %w", domain.ErrConflict)
	}
	s.step--
	return nil
}

// Skip abandons the remaining steps and marks the wizard submitted with
// whatever data has been entered so far. No gate runs; incomplete dependent
// records are dropped later by Assemble. Allowed from steps 1 through 4.
func (s *State) Skip() error {
	if s.step < StepPersonal || s.step > StepHousehold {
		return fmt.Errorf("skip is only available before the final step: %w", domain.ErrConflict)
	}
	s.step = StepSubmitted
	return nil
}

// Reopen returns a submitted wizard to the given step. Callers use it when
// the submission's write fails after the terminal transition and the flow
// must accept another attempt.
func (s *State) Reopen(step Step) error {
	if s.step != StepSubmitted {
		return fmt.Errorf("wizard is not submitted: %w", domain.ErrConflict)
	}
	if step < StepPersonal || step > StepPreferences {
		return fmt.Errorf("cannot reopen at step %d: %w", int(step), domain.ErrConflict)
	}
	s.step = step
	return nil
}

// Complete finishes the flow from step 5.
func (s *State) Complete() error {
	if s.step != StepPreferences {
		return fmt.Errorf("complete is only available on the final step: %w", domain.ErrConflict)
	}
	s.step = StepSubmitted
	return nil
}

func (s *State) validatePersonal() error {
	fields := make(map[string]string)
	if strings.TrimSpace(s.Personal.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if result := locale.ValidateAddress(s.Personal.Country, s.Personal.Address); !result.Valid {
		fields[result.Field] = result.Message
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

type namePair struct {
	first string
	last  string
}

func childNames(children []Child) []namePair {
	pairs := make([]namePair, len(children))
	for i, c := range children {
		pairs[i] = namePair{first: c.FirstName, last: c.LastName}
	}
	return pairs
}

func memberNames(members []Member) []namePair {
	pairs := make([]namePair, len(members))
	for i, m := range members {
		pairs[i] = namePair{first: m.FirstName, last: m.LastName}
	}
	return pairs
}

func validateNames(listKey string, pairs []namePair) error {
	fields := make(map[string]string)
	for i, p := range pairs {
		if strings.TrimSpace(p.first) == "" {
			fields[fmt.Sprintf("%s[%d].firstName", listKey, i)] = domain.MsgRequired
		}
		if strings.TrimSpace(p.last) == "" {
			fields[fmt.Sprintf("%s[%d].lastName", listKey, i)] = domain.MsgRequired
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
