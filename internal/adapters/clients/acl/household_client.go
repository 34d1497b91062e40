package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hausfam/onboarding-service/internal/adapters/clients/acl/person"
	"github.com/hausfam/onboarding-service/internal/adapters/clients/acl/profile"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
	"github.com/hausfam/onboarding-service/internal/platform/httpclient"
	"github.com/hausfam/onboarding-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HouseholdStore = (*HouseholdClient)(nil)

// HouseholdClient is the outbound adapter for the hosted document store's
// profile and person collections. It implements [ports.HouseholdStore].
//
// Records are translated into the store's document schema by the ACL
// translators in sub-packages [profile] and [person]. HTTP errors are mapped
// to domain errors (ErrNotFound, ErrValidation, etc.) by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, OpenTelemetry tracing, and health checking
// ([ports.HealthChecker]) for every outbound call.
type HouseholdClient struct {
	req *Requester
}

// NewHouseholdClient creates a HouseholdClient that sends requests through
// the given [httpclient.Client]. The client's BaseURL should point to the
// store's API root; apiKey is the service credential sent with every write.
func NewHouseholdClient(client *httpclient.Client, apiKey string, logger *slog.Logger) *HouseholdClient {
	return &HouseholdClient{
		req: NewRequester(client, apiKey, logger),
	}
}

// CreateProfile writes the household profile document via
// POST /api/v1/profiles and returns the store-assigned document ID.
func (c *HouseholdClient) CreateProfile(ctx context.Context, record wizard.ProfileRecord) (string, error) {
	reqDTO := profile.FromRecord(record)

	var respDTO profile.CreateResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/v1/profiles", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return "", err
	}
	return respDTO.ID, nil
}

// CreatePerson writes one dependent-person document via
// POST /api/v1/persons and returns the store-assigned document ID.
// Person writes are independent of each other and of the profile write;
// issuing them concurrently is safe.
func (c *HouseholdClient) CreatePerson(ctx context.Context, record wizard.PersonRecord) (string, error) {
	reqDTO := person.FromRecord(record)

	var respDTO person.CreateResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/v1/persons", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return "", err
	}
	return respDTO.ID, nil
}
