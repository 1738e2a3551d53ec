package domain

import (
	"context"
	"net/http"
)

// HTTPAdapter defines the interface for HTTP operations.
type HTTPAdapter interface {
	Get(ctx context.Context, url string) (*http.Response, error)
	Post(ctx context.Context, url string, payload any) (*http.Response, error)
	PostWithAPIKey(
		ctx context.Context,
		url, apiKey string,
		payload any,
	) (*http.Response, error)
}
