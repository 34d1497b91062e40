package ports

import (
	"context"

	"github.com/hausfam/onboarding-service/internal/domain/locale"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
)

// OnboardingService defines the service port for the intake wizard.
// Implemented by the application layer; called by inbound adapters (handlers).
// One session corresponds to one in-memory wizard; sessions do not survive
// submission or a process restart.
type OnboardingService interface {
	// StartSession resolves the caller through the session directory, creates
	// a fresh wizard pre-filled with the caller's display name, and returns
	// the initial view.
	// Returns domain.ErrForbidden if the token cannot be resolved.
	StartSession(ctx context.Context, token string) (*SessionView, error)

	// GetSession returns the current view of a session.
	// Returns domain.ErrNotFound if the session does not exist.
	GetSession(ctx context.Context, id string) (*SessionView, error)

	// UpdatePersonal replaces the step-1 data. A changed country triggers the
	// country-defaults transition: address fields reset, language and
	// currency re-derived. The phone number is normalized on the way in.
	UpdatePersonal(ctx context.Context, id string, update PersonalUpdate) (*SessionView, error)

	// UpdateTax replaces the step-2 data. All tax data is optional.
	UpdateTax(ctx context.Context, id string, update wizard.Tax) (*SessionView, error)

	// UpdateChildren resizes the children list to update.Count and copies the
	// provided entries up to the new length.
	UpdateChildren(ctx context.Context, id string, update ChildrenUpdate) (*SessionView, error)

	// UpdateHousehold resizes the household-member list, with the same
	// contract as UpdateChildren.
	UpdateHousehold(ctx context.Context, id string, update HouseholdUpdate) (*SessionView, error)

	// UpdatePreferences replaces the step-5 data.
	UpdatePreferences(ctx context.Context, id string, prefs wizard.Preferences) (*SessionView, error)

	// Next advances the wizard one step.
	// Returns domain.ErrValidation when the current step's gate fails and
	// domain.ErrConflict when the session is already submitted or on the
	// final step.
	Next(ctx context.Context, id string) (*SessionView, error)

	// Back moves one step backwards without validation.
	Back(ctx context.Context, id string) (*SessionView, error)

	// Skip submits the session immediately with whatever data exists,
	// bypassing all gates. Allowed from steps 1 through 4.
	Skip(ctx context.Context, id string) (*SubmissionResult, error)

	// Complete submits the session from the final step.
	Complete(ctx context.Context, id string) (*SubmissionResult, error)

	// AddressForm returns the address schema and tax configuration for a
	// country with labels resolved through the translation catalog. Unknown
	// countries fall back to the default country; lang selects the catalog.
	AddressForm(ctx context.Context, country locale.Country, lang string) (*AddressForm, error)

	// FormatPhone normalizes raw phone input. Pure; shared with the
	// reminders UI.
	FormatPhone(raw string) string
}

// PersonalUpdate carries the step-1 fields of an update request.
type PersonalUpdate struct {
	Name      string
	Phone     string
	BirthDate string
	Address   locale.AddressValues
	Country   locale.Country
}

// ChildrenUpdate carries the step-3 fields: the target list length and the
// entries to copy in.
type ChildrenUpdate struct {
	Count    int
	Children []wizard.Child
}

// HouseholdUpdate carries the step-4 fields.
type HouseholdUpdate struct {
	Count   int
	Members []wizard.Member
}

// SessionView is a read-only snapshot of one wizard session.
type SessionView struct {
	ID          string
	Step        wizard.Step
	Submitted   bool
	Personal    wizard.Personal
	Tax         wizard.Tax
	Children    []wizard.Child
	Members     []wizard.Member
	Preferences wizard.Preferences
}

// PersonWriteError records a single failed person write within a submission.
type PersonWriteError struct {
	Person wizard.PersonRecord
	Err    error
}

// SubmissionResult holds the outcome of submitting a session. Person writes
// use partial-success semantics: each write succeeds or fails independently,
// and failures never roll back the profile write. A profile-write failure is
// returned as a hard error instead, with no person writes attempted.
type SubmissionResult struct {
	ProfileID string
	PersonIDs []string
	Errors    []PersonWriteError
}

// AddressForm is the rendered form description for one country: address
// fields in display order, the tax configuration, and the derived
// language/currency defaults. Labels are already translated.
type AddressForm struct {
	Country  locale.Country
	Fields   []locale.FieldSpec
	Tax      locale.TaxConfig
	Defaults locale.Defaults
}
