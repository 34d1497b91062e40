package ports

import (
	"context"

	"github.com/hausfam/onboarding-service/internal/domain/wizard"
)

// HouseholdStore defines the client port for the hosted document store.
// Implemented by the ACL adapter; called by the application layer. The store
// assigns document IDs; the caller owns retry and ordering policy. Profile
// and person writes have no dependency on each other.
type HouseholdStore interface {
	// CreateProfile writes the household profile document and returns its ID.
	CreateProfile(ctx context.Context, record wizard.ProfileRecord) (string, error)

	// CreatePerson writes one dependent-person document and returns its ID.
	// Person writes are independent; issuing them concurrently is safe.
	CreatePerson(ctx context.Context, record wizard.PersonRecord) (string, error)
}

// UserIdentity is the resolved caller of an onboarding session.
type UserIdentity struct {
	ID          string
	DisplayName string
}

// SessionDirectory resolves bearer tokens to user identities. The identity
// supplies the display name for pre-fill and the owner key for the profile
// write.
type SessionDirectory interface {
	// Resolve returns the identity behind a token.
	// Returns domain.ErrForbidden for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (*UserIdentity, error)
}

// Translator looks up label overrides by catalog language and key. The
// second return value is false when no override exists; callers then keep
// the schema's built-in label. Translation never affects validation logic.
type Translator interface {
	Translate(lang, key string) (string, bool)
}
