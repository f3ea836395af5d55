package test_helpers

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	graph "github.com/jamesprial/go-graph-api-wrapper"
)

// TestAccessToken is the user token test clients are configured with.
const TestAccessToken = "test_token"

// TestClient provides a Graph client wired to its own MockServer.
type TestClient struct {
	*graph.Client
	mockServer *MockServer
}

// NewTestClient creates a client against a fresh mock server. The config may
// be nil; base URLs and the HTTP client are always replaced, and when no
// credentials are set TestAccessToken is used. Pass a config with
// TokenProvider set to a provider that fails to test anonymous-only paths.
func NewTestClient(config *graph.Config) *TestClient {
	mockServer := NewMockServer()

	cfg := graph.Config{}
	if config != nil {
		cfg = *config
	}
	cfg.RestBaseURL = mockServer.URL()
	cfg.VideoBaseURL = mockServer.URL()
	cfg.HTTPClient = mockServer.Client()
	if cfg.AccessToken == "" && cfg.AppID == "" && cfg.TokenProvider == nil {
		cfg.AccessToken = TestAccessToken
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &graph.RateLimitConfig{RequestsPerMinute: 60000, Burst: 1000}
	}

	client, err := graph.NewClient(&cfg)
	if err != nil {
		mockServer.Close()
		panic(fmt.Sprintf("failed to create graph client: %v", err))
	}

	return &TestClient{
		Client:     client,
		mockServer: mockServer,
	}
}

// NewAnonymousTestClient creates a client without any credentials.
func NewAnonymousTestClient() *TestClient {
	mockServer := NewMockServer()
	client, err := graph.NewClient(&graph.Config{
		RestBaseURL:  mockServer.URL(),
		VideoBaseURL: mockServer.URL(),
		HTTPClient:   mockServer.Client(),
	})
	if err != nil {
		mockServer.Close()
		panic(fmt.Sprintf("failed to create graph client: %v", err))
	}
	return &TestClient{Client: client, mockServer: mockServer}
}

// MockServer returns the underlying mock server
func (tc *TestClient) MockServer() *MockServer {
	return tc.mockServer
}

// Close closes the mock server
func (tc *TestClient) Close() {
	tc.mockServer.Close()
}

// Reset clears the mock server's request log
func (tc *TestClient) Reset() {
	tc.mockServer.ClearLog()
}

// WaitForRequests waits for a specific number of requests
func (tc *TestClient) WaitForRequests(count int, timeout time.Duration) error {
	return tc.mockServer.WaitForRequests(count, timeout)
}

// RunConcurrent runs fn n times in parallel against the same client and
// returns the first error.
func (tc *TestClient) RunConcurrent(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return fn(ctx, i)
		})
	}
	return g.Wait()
}
