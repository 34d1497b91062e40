// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hausfam/onboarding-service/internal/app/fanout"
	"github.com/hausfam/onboarding-service/internal/domain/locale"
	"github.com/hausfam/onboarding-service/internal/domain/phone"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
	"github.com/hausfam/onboarding-service/internal/ports"
)

// Compile-time check that OnboardingService implements ports.OnboardingService.
var _ ports.OnboardingService = (*OnboardingService)(nil)

// defaultPersonWriteConcurrency bounds parallel person writes when the
// configured value is missing or invalid.
const defaultPersonWriteConcurrency = 4

// OnboardingService implements ports.OnboardingService. It owns the in-memory
// session registry, runs the wizard's step transitions, and turns submissions
// into writes against the household store. It contains no validation rules of
// its own; gates and field checks live in the domain packages.
type OnboardingService struct {
	store       ports.HouseholdStore
	directory   ports.SessionDirectory
	translator  ports.Translator
	sessions    *sessionRegistry
	concurrency int
	logger      *slog.Logger
	now         func() time.Time
}

// OnboardingOptions carries the tunables for NewOnboardingService.
type OnboardingOptions struct {
	// SessionTTL is how long an idle session survives. Zero disables expiry.
	SessionTTL time.Duration
	// PersonWriteConcurrency bounds parallel person writes per submission.
	PersonWriteConcurrency int
	// Now overrides the clock; nil means time.Now. Used by tests.
	Now func() time.Time
}

// NewOnboardingService creates an OnboardingService with an empty session
// registry.
func NewOnboardingService(
	store ports.HouseholdStore,
	directory ports.SessionDirectory,
	translator ports.Translator,
	opts OnboardingOptions,
	logger *slog.Logger,
) *OnboardingService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	concurrency := opts.PersonWriteConcurrency
	if concurrency < 1 {
		concurrency = defaultPersonWriteConcurrency
	}
	return &OnboardingService{
		store:       store,
		directory:   directory,
		translator:  translator,
		sessions:    newSessionRegistry(opts.SessionTTL, now),
		concurrency: concurrency,
		logger:      logger,
		now:         now,
	}
}

// StartSession resolves the caller's token through the session directory and
// opens a fresh wizard pre-filled with the caller's display name.
func (s *OnboardingService) StartSession(ctx context.Context, token string) (*ports.SessionView, error) {
	identity, err := s.directory.Resolve(ctx, token)
	if err != nil {
		s.logger.WarnContext(ctx, "session token rejected",
			slog.String("operation", "StartSession"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("resolving session token: %w", err)
	}

	state := wizard.New(identity.ID, identity.DisplayName)
	id := s.sessions.add(state)

	s.logger.InfoContext(ctx, "onboarding session started",
		slog.String("session_id", id),
		slog.String("owner_id", identity.ID),
	)

	return snapshot(id, state), nil
}

// GetSession returns the current view of a session.
func (s *OnboardingService) GetSession(_ context.Context, id string) (*ports.SessionView, error) {
	return s.withSession(id, func(*wizard.State) error { return nil })
}

// UpdatePersonal replaces the step-1 data. A country change resets the
// address and re-derives language and currency; the provided address is
// ignored in that case. Phone input is normalized before it is stored.
func (s *OnboardingService) UpdatePersonal(_ context.Context, id string, update ports.PersonalUpdate) (*ports.SessionView, error) {
	return s.withSession(id, func(state *wizard.State) error {
		if update.Country != state.Personal.Country {
			state.ApplyCountryDefaults(update.Country)
		} else {
			state.Personal.Address = update.Address
		}
		state.Personal.Name = update.Name
		state.Personal.Phone = phone.Format(update.Phone)
		state.Personal.BirthDate = update.BirthDate
		return nil
	})
}

// UpdateTax replaces the step-2 data.
func (s *OnboardingService) UpdateTax(_ context.Context, id string, update wizard.Tax) (*ports.SessionView, error) {
	return s.withSession(id, func(state *wizard.State) error {
		state.Tax = update
		return nil
	})
}

// UpdateChildren resizes the children list and copies the provided entries
// up to the new length.
func (s *OnboardingService) UpdateChildren(_ context.Context, id string, update ports.ChildrenUpdate) (*ports.SessionView, error) {
	return s.withSession(id, func(state *wizard.State) error {
		state.SetChildCount(update.Count)
		copy(state.Children, update.Children)
		return nil
	})
}

// UpdateHousehold resizes the household-member list, with the same contract
// as UpdateChildren.
func (s *OnboardingService) UpdateHousehold(_ context.Context, id string, update ports.HouseholdUpdate) (*ports.SessionView, error) {
	return s.withSession(id, func(state *wizard.State) error {
		state.SetMemberCount(update.Count)
		copy(state.Members, update.Members)
		return nil
	})
}

// UpdatePreferences replaces the step-5 data.
func (s *OnboardingService) UpdatePreferences(_ context.Context, id string, prefs wizard.Preferences) (*ports.SessionView, error) {
	return s.withSession(id, func(state *wizard.State) error {
		state.Preferences = prefs
		return nil
	})
}

// Next advances the wizard one step, running the current step's gate.
func (s *OnboardingService) Next(_ context.Context, id string) (*ports.SessionView, error) {
	return s.withSession(id, (*wizard.State).Next)
}

// Back moves one step backwards without validation.
func (s *OnboardingService) Back(_ context.Context, id string) (*ports.SessionView, error) {
	return s.withSession(id, (*wizard.State).Back)
}

// Skip submits the session immediately with whatever data exists. No gate
// runs; dependent records without names are dropped during assembly.
func (s *OnboardingService) Skip(ctx context.Context, id string) (*ports.SubmissionResult, error) {
	return s.submit(ctx, id, (*wizard.State).Skip)
}

// Complete submits the session from the final step.
func (s *OnboardingService) Complete(ctx context.Context, id string) (*ports.SubmissionResult, error) {
	return s.submit(ctx, id, (*wizard.State).Complete)
}

// AddressForm returns the address schema and tax configuration for a country
// with labels resolved through the translation catalog. Unknown countries
// fall back to the default country's schema.
func (s *OnboardingService) AddressForm(_ context.Context, country locale.Country, lang string) (*ports.AddressForm, error) {
	schema := locale.AddressSchema(country)
	tax := locale.TaxSettings(schema.Country)
	defaults, _ := locale.CountryDefaults(schema.Country)

	fields := schema.Fields()
	for i := range fields {
		fields[i].Label = s.translateLabel(lang, schema.Country, fields[i].Key, fields[i].Label)
	}

	// Copy before translating; the config's slice backs the shared table.
	extra := make([]locale.FieldSpec, len(tax.ExtraFields))
	copy(extra, tax.ExtraFields)
	for i := range extra {
		extra[i].Label = s.translateLabel(lang, schema.Country, extra[i].Key, extra[i].Label)
	}
	tax.ExtraFields = extra

	return &ports.AddressForm{
		Country:  schema.Country,
		Fields:   fields,
		Tax:      tax,
		Defaults: defaults,
	}, nil
}

// FormatPhone normalizes raw phone input.
func (s *OnboardingService) FormatPhone(raw string) string {
	return phone.Format(raw)
}

// withSession runs fn on the session's wizard under its lock and returns a
// fresh view. Submitted sessions have already left the registry, so fn only
// ever sees live wizards.
func (s *OnboardingService) withSession(id string, fn func(*wizard.State) error) (*ports.SessionView, error) {
	sess, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess.state); err != nil {
		return nil, err
	}
	return snapshot(id, sess.state), nil
}

// submit finishes the wizard via transition (Skip or Complete), assembles the
// write batch, and executes it: the profile write first, then the person
// writes fanned out with bounded concurrency. Person writes succeed or fail
// independently and never undo the profile write. The session is discarded
// once the profile write has succeeded, regardless of person-write failures.
func (s *OnboardingService) submit(ctx context.Context, id string, transition func(*wizard.State) error) (*ports.SubmissionResult, error) {
	sess, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	prev := sess.state.Step()
	if err := transition(sess.state); err != nil {
		return nil, err
	}

	lang := effectiveLanguage(sess.state)
	batch := wizard.Assemble(sess.state, s.genderLabel(lang), s.now())

	profileID, err := s.store.CreateProfile(ctx, batch.Profile)
	if err != nil {
		// Reopen so the client can retry the submission.
		_ = sess.state.Reopen(prev)
		s.logger.ErrorContext(ctx, "profile write failed",
			slog.String("operation", "submit"),
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	result := &ports.SubmissionResult{
		ProfileID: profileID,
		PersonIDs: make([]string, 0, len(batch.Persons)),
	}

	writes := fanout.Run(ctx, s.concurrency, batch.Persons,
		func(ctx context.Context, record wizard.PersonRecord) (string, error) {
			return s.store.CreatePerson(ctx, record)
		})
	for i, w := range writes {
		if w.Err != nil {
			result.Errors = append(result.Errors, ports.PersonWriteError{
				Person: batch.Persons[i],
				Err:    w.Err,
			})
			continue
		}
		result.PersonIDs = append(result.PersonIDs, w.Value)
	}

	s.sessions.remove(id)

	s.logger.InfoContext(ctx, "onboarding session submitted",
		slog.String("session_id", id),
		slog.String("profile_id", profileID),
		slog.Int("persons_written", len(result.PersonIDs)),
		slog.Int("persons_failed", len(result.Errors)),
	)

	return result, nil
}

// genderLabel returns the note label for a child's gender code, resolved
// through the translation catalog with the code itself as fallback.
func (s *OnboardingService) genderLabel(lang string) func(string) string {
	return func(code string) string {
		if code == "" {
			return ""
		}
		if label, ok := s.translator.Translate(lang, "gender."+code); ok {
			return label
		}
		return code
	}
}

// translateLabel resolves a field label override keyed by country and field.
func (s *OnboardingService) translateLabel(lang string, country locale.Country, key, fallback string) string {
	catalogKey := strings.ToLower(string(country)) + "." + key
	if label, ok := s.translator.Translate(lang, catalogKey); ok {
		return label
	}
	return fallback
}

// effectiveLanguage prefers the step-5 language choice over the one derived
// from the country.
func effectiveLanguage(state *wizard.State) string {
	if state.Preferences.Language != "" {
		return state.Preferences.Language
	}
	return state.Personal.Language
}

// snapshot builds a detached view of the wizard. Slices and the extra-values
// map are copied so the caller never aliases live session state.
func snapshot(id string, state *wizard.State) *ports.SessionView {
	view := &ports.SessionView{
		ID:          id,
		Step:        state.Step(),
		Submitted:   state.Submitted(),
		Personal:    state.Personal,
		Tax:         state.Tax,
		Preferences: state.Preferences,
	}
	view.Children = make([]wizard.Child, len(state.Children))
	copy(view.Children, state.Children)
	view.Members = make([]wizard.Member, len(state.Members))
	copy(view.Members, state.Members)
	if state.Tax.ExtraValues != nil {
		view.Tax.ExtraValues = make(map[string]string, len(state.Tax.ExtraValues))
		for k, v := range state.Tax.ExtraValues {
			view.Tax.ExtraValues[k] = v
		}
	}
	return view
}
