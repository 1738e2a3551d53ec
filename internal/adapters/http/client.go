package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	// HTTP client retry configuration.
	defaultRetryCount       = 3
	defaultRetryMaxWaitTime = 5 * time.Second

	// Rate limiting configuration.
	rateLimitRequestsPerSecond = 10
	rateLimitBurst             = 20
)

const (
	// Standard HTTP content types.
	contentTypeJSON = "application/json"

	// apiKeyUsername is the basic-auth user paired with an API key.
	apiKeyUsername = "api"
)

// Adapter is an HTTP client adapter using resty with rate limiting.
type Adapter struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewAdapter creates a new HTTP adapter with rate limiting and retry capabilities.
// Rate limit: 10 requests per second with burst of 20.
func NewAdapter(timeout time.Duration, logger *slog.Logger) *Adapter {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(defaultRetryMaxWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			// Retry transport failures and server errors only; 4xx answers are final.
			return err != nil || (resp != nil && resp.StatusCode() >= http.StatusInternalServerError)
		})

	adapter := &Adapter{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rateLimitRequestsPerSecond), rateLimitBurst),
		logger:  logger,
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return adapter.limiter.Wait(req.Context())
	})

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
		)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.DebugContext(resp.Request.Context(), "HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	return adapter
}

// Get performs a GET request.
func (a *Adapter) Get(ctx context.Context, url string) (*http.Response, error) {
	resp, err := a.client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GET request: %w", err)
	}
	return resp.RawResponse, nil
}

// Post performs a POST request with optional JSON payload.
func (a *Adapter) Post(
	ctx context.Context,
	url string,
	payload any,
) (*http.Response, error) {
	return a.post(ctx, a.client.R(), url, payload, "POST")
}

// PostWithAPIKey performs a POST request authenticated with an API key.
func (a *Adapter) PostWithAPIKey(
	ctx context.Context,
	url, apiKey string,
	payload any,
) (*http.Response, error) {
	request := a.client.R().SetBasicAuth(apiKeyUsername, apiKey)
	return a.post(ctx, request, url, payload, "authenticated POST")
}

func (a *Adapter) post(
	ctx context.Context,
	request *resty.Request,
	url string,
	payload any,
	kind string,
) (*http.Response, error) {
	request.SetContext(ctx).SetDoNotParseResponse(true)

	if payload != nil {
		request.SetHeader("Content-Type", contentTypeJSON).SetBody(payload)
	}

	resp, err := request.Post(url)
	if err != nil {
		// Handle resty marshaling errors
		if strings.Contains(err.Error(), "unsupported 'Body' type/value") {
			return nil, fmt.Errorf("failed to prepare %s payload: %w", kind, err)
		}
		return nil, fmt.Errorf("failed to execute %s request: %w", kind, err)
	}
	return resp.RawResponse, nil
}
