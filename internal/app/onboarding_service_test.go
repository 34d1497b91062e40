package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hausfam/onboarding-service/internal/domain"
	"github.com/hausfam/onboarding-service/internal/domain/locale"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
	"github.com/hausfam/onboarding-service/internal/ports"
	"github.com/hausfam/onboarding-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type serviceMocks struct {
	store      *mocks.MockHouseholdStore
	directory  *mocks.MockSessionDirectory
	translator *mocks.MockTranslator
}

func newTestService(t *testing.T) (*OnboardingService, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		store:      mocks.NewMockHouseholdStore(t),
		directory:  mocks.NewMockSessionDirectory(t),
		translator: mocks.NewMockTranslator(t),
	}
	svc := NewOnboardingService(m.store, m.directory, m.translator, OnboardingOptions{
		SessionTTL:             time.Hour,
		PersonWriteConcurrency: 2,
	}, discardLogger())
	return svc, m
}

func startSession(t *testing.T, svc *OnboardingService, m serviceMocks) string {
	t.Helper()
	m.directory.EXPECT().Resolve(mock.Anything, "token-1").
		Return(&ports.UserIdentity{ID: "user-1", DisplayName: "Lena Huber"}, nil).Once()

	view, err := svc.StartSession(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	return view.ID
}

func validGermanAddress() locale.AddressValues {
	return locale.AddressValues{
		Street:      "Hauptstrasse",
		HouseNumber: "12",
		PostalCode:  "10115",
		City:        "Berlin",
	}
}

// advanceToPreferences fills step 1 with valid data and walks the wizard to
// the final step.
func advanceToPreferences(t *testing.T, svc *OnboardingService, id string) {
	t.Helper()
	ctx := context.Background()

	if _, err := svc.UpdatePersonal(ctx, id, ports.PersonalUpdate{
		Name:    "Lena Huber",
		Address: validGermanAddress(),
		Country: locale.DE,
	}); err != nil {
		t.Fatalf("UpdatePersonal() error = %v", err)
	}

	for range 4 {
		if _, err := svc.Next(ctx, id); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
	}
}

func TestNewOnboardingService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewOnboardingService(
		mocks.NewMockHouseholdStore(t),
		mocks.NewMockSessionDirectory(t),
		mocks.NewMockTranslator(t),
		OnboardingOptions{},
		nil,
	)
	if svc.logger == nil {
		t.Fatal("NewOnboardingService(nil logger) should create a no-op logger, got nil")
	}
}

func TestStartSession_PrefillsDefaults(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	m.directory.EXPECT().Resolve(mock.Anything, "token-1").
		Return(&ports.UserIdentity{ID: "user-1", DisplayName: "Lena Huber"}, nil)

	view, err := svc.StartSession(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	if view.ID == "" {
		t.Error("session ID is empty")
	}
	if view.Step != wizard.StepPersonal {
		t.Errorf("Step = %v, want %v", view.Step, wizard.StepPersonal)
	}
	if view.Personal.Name != "Lena Huber" {
		t.Errorf("Name = %q, want %q", view.Personal.Name, "Lena Huber")
	}
	if view.Personal.Country != locale.DE {
		t.Errorf("Country = %v, want %v", view.Personal.Country, locale.DE)
	}
	if view.Personal.Language != "de" || view.Personal.Currency != "EUR" {
		t.Errorf("Language/Currency = %q/%q, want de/EUR", view.Personal.Language, view.Personal.Currency)
	}
}

func TestStartSession_RejectedToken(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	m.directory.EXPECT().Resolve(mock.Anything, "bad-token").
		Return(nil, domain.ErrForbidden)

	_, err := svc.StartSession(context.Background(), "bad-token")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("StartSession() error = %v, want ErrForbidden", err)
	}
}

func TestGetSession_Unknown(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.GetSession(context.Background(), "no-such-session")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetSession() error = %v, want ErrNotFound", err)
	}
}

func TestUpdatePersonal_NormalizesPhone(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	id := startSession(t, svc, m)

	view, err := svc.UpdatePersonal(context.Background(), id, ports.PersonalUpdate{
		Name:    "Lena Huber",
		Phone:   "0791234567",
		Address: validGermanAddress(),
		Country: locale.DE,
	})
	if err != nil {
		t.Fatalf("UpdatePersonal() error = %v", err)
	}

	if view.Personal.Phone != "079 123 456 7" {
		t.Errorf("Phone = %q, want %q", view.Personal.Phone, "079 123 456 7")
	}
	if view.Personal.Address.Street != "Hauptstrasse" {
		t.Errorf("Street = %q, want %q", view.Personal.Address.Street, "Hauptstrasse")
	}
}

func TestUpdatePersonal_CountryChangeResetsAddress(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	id := startSession(t, svc, m)

	view, err := svc.UpdatePersonal(context.Background(), id, ports.PersonalUpdate{
		Name:    "Lena Huber",
		Address: validGermanAddress(),
		Country: locale.CH,
	})
	if err != nil {
		t.Fatalf("UpdatePersonal() error = %v", err)
	}

	if view.Personal.Country != locale.CH {
		t.Errorf("Country = %v, want %v", view.Personal.Country, locale.CH)
	}
	if view.Personal.Address != (locale.AddressValues{}) {
		t.Errorf("Address = %+v, want empty after country change", view.Personal.Address)
	}
	if view.Personal.Currency != "CHF" {
		t.Errorf("Currency = %q, want CHF", view.Personal.Currency)
	}
}

func TestUpdateChildren_ResizesAndCopies(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	id := startSession(t, svc, m)

	view, err := svc.UpdateChildren(context.Background(), id, ports.ChildrenUpdate{
		Count: 3,
		Children: []wizard.Child{
			{FirstName: "Mia", LastName: "Huber"},
		},
	})
	if err != nil {
		t.Fatalf("UpdateChildren() error = %v", err)
	}

	if len(view.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(view.Children))
	}
	if view.Children[0].FirstName != "Mia" {
		t.Errorf("Children[0].FirstName = %q, want Mia", view.Children[0].FirstName)
	}
	if view.Children[2] != (wizard.Child{}) {
		t.Errorf("Children[2] = %+v, want blank padding", view.Children[2])
	}
}

func TestNext_GateFailure(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	id := startSession(t, svc, m)

	_, err := svc.Next(context.Background(), id)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Next() error = %v, want ErrValidation", err)
	}

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Next() error = %T, want *domain.ValidationError", err)
	}
	if _, ok := vErr.Fields["street"]; !ok {
		t.Errorf("Fields = %v, want street entry", vErr.Fields)
	}
}

func TestComplete_SubmitsAndDiscardsSession(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	id := startSession(t, svc, m)
	advanceToPreferences(t, svc, id)

	m.store.EXPECT().CreateProfile(mock.Anything, mock.Anything).
		Run(func(_ context.Context, record wizard.ProfileRecord) {
			if record.OwnerID != "user-1" {
				t.Errorf("OwnerID = %q, want user-1", record.OwnerID)
			}
			if record.Name != "Lena Huber" {
				t.Errorf("Name = %q, want Lena Huber", record.Name)
			}
		}).
		Return("profile-1", nil)

	result, err := svc.Complete(context.Background(), id)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if result.ProfileID != "profile-1" {
		t.Errorf("ProfileID = %q, want profile-1", result.ProfileID)
	}
	if len(result.PersonIDs) != 0 || len(result.Errors) != 0 {
		t.Errorf("PersonIDs/Errors = %v/%v, want empty", result.PersonIDs, result.Errors)
	}

	if _, err := svc.GetSession(context.Background(), id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetSession() after submit error = %v, want ErrNotFound", err)
	}
}

func TestComplete_FromWrongStep(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	id := startSession(t, svc, m)

	_, err := svc.Complete(context.Background(), id)
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Complete() from step 1 error = %v, want ErrConflict", err)
	}
}

func TestSkip_PartialSuccess(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	id := startSession(t, svc, m)

	_, err := svc.UpdateChildren(context.Background(), id, ports.ChildrenUpdate{
		Count: 2,
		Children: []wizard.Child{
			{FirstName: "Mia", LastName: "Huber"},
			{FirstName: "Ben", LastName: "Huber"},
		},
	})
	if err != nil {
		t.Fatalf("UpdateChildren() error = %v", err)
	}

	m.store.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return("profile-1", nil)

	writeErr := errors.New("store unavailable")
	m.store.EXPECT().CreatePerson(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, record wizard.PersonRecord) (string, error) {
			if record.FirstName == "Ben" {
				return "", writeErr
			}
			return "person-" + record.FirstName, nil
		})

	result, err := svc.Skip(context.Background(), id)
	if err != nil {
		t.Fatalf("Skip() error = %v", err)
	}

	if result.ProfileID != "profile-1" {
		t.Errorf("ProfileID = %q, want profile-1", result.ProfileID)
	}
	if len(result.PersonIDs) != 1 || result.PersonIDs[0] != "person-Mia" {
		t.Errorf("PersonIDs = %v, want [person-Mia]", result.PersonIDs)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(result.Errors))
	}
	if result.Errors[0].Person.FirstName != "Ben" {
		t.Errorf("Errors[0].Person.FirstName = %q, want Ben", result.Errors[0].Person.FirstName)
	}
	if !errors.Is(result.Errors[0].Err, writeErr) {
		t.Errorf("Errors[0].Err = %v, want %v", result.Errors[0].Err, writeErr)
	}
}

func TestSubmit_ProfileWriteFailureKeepsSession(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	id := startSession(t, svc, m)
	advanceToPreferences(t, svc, id)

	storeErr := errors.New("store unavailable")
	m.store.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return("", storeErr).Once()
	m.store.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return("profile-1", nil).Once()

	if _, err := svc.Complete(context.Background(), id); !errors.Is(err, storeErr) {
		t.Fatalf("Complete() error = %v, want %v", err, storeErr)
	}

	// The session survives a failed profile write and accepts a retry.
	view, err := svc.GetSession(context.Background(), id)
	if err != nil {
		t.Fatalf("GetSession() after failed submit error = %v", err)
	}
	if view.Step != wizard.StepPreferences {
		t.Errorf("Step = %v, want %v", view.Step, wizard.StepPreferences)
	}

	result, err := svc.Complete(context.Background(), id)
	if err != nil {
		t.Fatalf("Complete() retry error = %v", err)
	}
	if result.ProfileID != "profile-1" {
		t.Errorf("ProfileID = %q, want profile-1", result.ProfileID)
	}
}

func TestAddressForm_TranslatesLabels(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	m.translator.EXPECT().Translate("de", mock.Anything).
		RunAndReturn(func(_, key string) (string, bool) {
			if key == "ch.street" {
				return "Strasse", true
			}
			return "", false
		})

	form, err := svc.AddressForm(context.Background(), locale.CH, "de")
	if err != nil {
		t.Fatalf("AddressForm() error = %v", err)
	}

	if form.Country != locale.CH {
		t.Errorf("Country = %v, want CH", form.Country)
	}
	if form.Fields[0].Label != "Strasse" {
		t.Errorf("Fields[0].Label = %q, want Strasse", form.Fields[0].Label)
	}
	if form.Fields[2].Label != "Postal code" {
		t.Errorf("Fields[2].Label = %q, want untranslated fallback", form.Fields[2].Label)
	}
	if form.Defaults.Currency != "CHF" {
		t.Errorf("Defaults.Currency = %q, want CHF", form.Defaults.Currency)
	}
}

func TestAddressForm_LeavesSharedConfigUntouched(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	m.translator.EXPECT().Translate("de", mock.Anything).Return("Übersetzt", true)

	if _, err := svc.AddressForm(context.Background(), locale.DE, "de"); err != nil {
		t.Fatalf("AddressForm() error = %v", err)
	}

	for _, f := range locale.TaxSettings(locale.DE).ExtraFields {
		if f.Label == "Übersetzt" {
			t.Fatalf("translation leaked into the shared tax config: %+v", f)
		}
	}
}

func TestAddressForm_UnknownCountryFallsBack(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	m.translator.EXPECT().Translate(mock.Anything, mock.Anything).Return("", false).Maybe()

	form, err := svc.AddressForm(context.Background(), locale.Country("XX"), "en")
	if err != nil {
		t.Fatalf("AddressForm() error = %v", err)
	}
	if form.Country != locale.DE {
		t.Errorf("Country = %v, want fallback %v", form.Country, locale.DE)
	}
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	if got := svc.FormatPhone("+41791234567"); got != "+41 791 234 567" {
		t.Errorf("FormatPhone() = %q, want %q", got, "+41 791 234 567")
	}
}
