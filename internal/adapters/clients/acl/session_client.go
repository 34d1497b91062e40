package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hausfam/onboarding-service/internal/platform/httpclient"
	"github.com/hausfam/onboarding-service/internal/ports"
)

// Compile-time interface check.
var _ ports.SessionDirectory = (*SessionClient)(nil)

// sessionDTO matches the directory's current-session schema.
type sessionDTO struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// SessionClient resolves bearer tokens against the hosted session directory.
// It implements [ports.SessionDirectory]. Unknown and expired tokens come
// back as 401/403 and surface as domain.ErrForbidden via the shared error
// translation.
type SessionClient struct {
	req *Requester
}

// NewSessionClient creates a SessionClient that sends requests through the
// given [httpclient.Client].
func NewSessionClient(client *httpclient.Client, apiKey string, logger *slog.Logger) *SessionClient {
	return &SessionClient{
		req: NewRequester(client, apiKey, logger),
	}
}

// Resolve returns the identity behind a token via
// GET /api/v1/sessions/current with the token as bearer credential.
func (c *SessionClient) Resolve(ctx context.Context, token string) (*ports.UserIdentity, error) {
	var dto sessionDTO
	if err := c.req.GetAuthorized(ctx, "/api/v1/sessions/current", token, http.StatusOK, &dto); err != nil {
		return nil, err
	}
	return &ports.UserIdentity{
		ID:          dto.UserID,
		DisplayName: dto.DisplayName,
	}, nil
}
