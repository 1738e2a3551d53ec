// Package auth talks to the trackr API on behalf of the login flow.
package auth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"trackr/internal/domain"
	"trackr/internal/errors"
)

const (
	graphqlPath   = "/graphql"
	heartbeatPath = "/api/v1/agent/heartbeat"
)

const createAnonymousEntityMutation = `mutation CreateAnonymousEntity {
	createAnonymousEntity(input: {}) {
		apiKey {
			name
		}
	}
}`

const viewerQuery = `query Viewer {
	viewer {
		entity
		username
	}
}`

type graphqlRequest struct {
	Query string `json:"query"`
}

// Client implements domain.AuthAPI and domain.Heartbeater over HTTP.
type Client struct {
	httpAdapter domain.HTTPAdapter
	logger      *slog.Logger
}

var (
	_ domain.AuthAPI     = (*Client)(nil)
	_ domain.Heartbeater = (*Client)(nil)
)

// NewClient creates a new API client.
func NewClient(httpAdapter domain.HTTPAdapter, logger *slog.Logger) *Client {
	return &Client{
		httpAdapter: httpAdapter,
		logger:      logger,
	}
}

// CreateAnonymousKey asks the server for a one-time anonymous key.
func (c *Client) CreateAnonymousKey(ctx context.Context, baseURL string) (domain.Secret, error) {
	url := endpoint(baseURL, graphqlPath)

	c.logger.DebugContext(ctx, "Requesting anonymous key", "url", url)

	resp, err := c.httpAdapter.Post(ctx, url, graphqlRequest{Query: createAnonymousEntityMutation})
	if err != nil {
		return domain.Secret{}, errors.NewNetworkError("anonymous key request failed", err)
	}

	body, err := readBody(resp, url)
	if err != nil {
		return domain.Secret{}, err
	}

	if msg := graphqlError(body); msg != "" {
		return domain.Secret{}, fmt.Errorf("anonymous key request rejected: %s", msg)
	}

	key := gjson.GetBytes(body, "data.createAnonymousEntity.apiKey.name").String()
	if key == "" {
		return domain.Secret{}, fmt.Errorf("anonymous key request succeeded but no key was returned")
	}

	c.logger.DebugContext(ctx, "Anonymous key issued", "url", url)
	return domain.NewSecret(key), nil
}

// Viewer returns the identity that owns key. A key the server does not
// recognize yields an error matching errors.ErrUnauthorized.
func (c *Client) Viewer(ctx context.Context, baseURL string, key domain.Secret) (domain.Identity, error) {
	url := endpoint(baseURL, graphqlPath)

	resp, err := c.httpAdapter.PostWithAPIKey(ctx, url, key.Value(), graphqlRequest{Query: viewerQuery})
	if err != nil {
		return domain.Identity{}, errors.NewNetworkError("viewer request failed", err)
	}

	body, err := readBody(resp, url)
	if err != nil {
		return domain.Identity{}, err
	}

	if msg := graphqlError(body); msg != "" {
		return domain.Identity{}, fmt.Errorf("viewer request rejected: %s", msg)
	}

	viewer := gjson.GetBytes(body, "data.viewer")
	if !viewer.Exists() || viewer.Type == gjson.Null {
		return domain.Identity{}, fmt.Errorf("key not recognized by %s: %w", baseURL, errors.ErrUnauthorized)
	}

	identity := domain.Identity{
		Entity:   viewer.Get("entity").String(),
		Username: viewer.Get("username").String(),
	}

	c.logger.DebugContext(ctx, "Resolved viewer", "entity", identity.Entity, "username", identity.Username)
	return identity, nil
}

// Heartbeat reports agent liveness.
func (c *Client) Heartbeat(ctx context.Context, baseURL string, key domain.Secret, beat domain.Heartbeat) error {
	url := endpoint(baseURL, heartbeatPath)

	resp, err := c.httpAdapter.PostWithAPIKey(ctx, url, key.Value(), beat)
	if err != nil {
		return errors.NewNetworkError("heartbeat failed", err)
	}

	if _, err := readBody(resp, url); err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "Heartbeat sent", "session", beat.SessionID)
	return nil
}

func endpoint(baseURL, path string) string {
	return domain.NormalizeBaseURL(baseURL) + path
}

// readBody drains the response and turns non-2xx statuses into HTTPError.
func readBody(resp *http.Response, url string) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError("failed to read response", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NewHTTPError(resp.StatusCode, http.MethodPost, url, strings.TrimSpace(string(body)))
	}

	return body, nil
}

func graphqlError(body []byte) string {
	return gjson.GetBytes(body, "errors.0.message").String()
}
