// Package avatar wraps the HeyGen streaming API used by the browser avatar
// widget. The server only brokers short-lived session tokens; media flows
// directly between the client and HeyGen.
package avatar

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"caresma-server/internal/config"
	"caresma-server/internal/utils/platformerrors"
)

// SessionToken is an ephemeral token for the streaming avatar SDK.
type SessionToken struct {
	Token string `json:"token"`
}

// tokenEnvelope mirrors HeyGen's create_token response body.
type tokenEnvelope struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

// Client talks to the HeyGen streaming API.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// NewClient builds a HeyGen client from config.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	http := resty.New().
		SetBaseURL(cfg.HeyGenBaseURL).
		SetTimeout(cfg.HeyGenTimeout).
		SetHeader("X-Api-Key", cfg.HeyGenAPIKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http: http,
		log:  log.With().Str("component", "avatar-client").Logger(),
	}
}

// CreateSessionToken mints a streaming session token for the frontend SDK.
func (c *Client) CreateSessionToken(ctx context.Context) (*SessionToken, error) {
	var envelope tokenEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		Post("/v1/streaming.create_token")
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"failed to reach avatar API",
			err,
		)
	}
	if resp.IsError() {
		return nil, c.upstreamError(ctx, resp, "avatar token request rejected")
	}

	if envelope.Data.Token == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"no token returned from avatar API",
			nil,
		)
	}

	return &SessionToken{Token: envelope.Data.Token}, nil
}

// ListSessions returns the raw list of active streaming sessions.
func (c *Client) ListSessions(ctx context.Context) (map[string]any, error) {
	var body map[string]any
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/v1/streaming.list")
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"failed to reach avatar API",
			err,
		)
	}
	if resp.IsError() {
		return nil, c.upstreamError(ctx, resp, "avatar session list rejected")
	}

	return body, nil
}

// StopSession terminates one streaming session upstream.
func (c *Client) StopSession(ctx context.Context, sessionID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"session_id": sessionID}).
		Post("/v1/streaming.stop")
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"failed to reach avatar API",
			err,
		)
	}
	if resp.IsError() {
		return c.upstreamError(ctx, resp, "avatar session stop rejected")
	}

	c.log.Info().Str("avatar_session_id", sessionID).Msg("avatar session stopped")
	return nil
}

func (c *Client) upstreamError(ctx context.Context, resp *resty.Response, message string) error {
	c.log.Warn().
		Int("status", resp.StatusCode()).
		Str("body", resp.String()).
		Msg(message)
	return platformerrors.NewError(
		ctx,
		platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal,
		fmt.Sprintf("%s: upstream status %d", message, resp.StatusCode()),
		nil,
	)
}
