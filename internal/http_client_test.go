package internal

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

type mockTokenProvider struct {
	token string
	err   error
	calls int32
}

func (m *mockTokenProvider) GetToken(ctx context.Context) (string, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.token, m.err
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

var fastRate = &RateLimitConfig{RequestsPerMinute: 60000, Burst: 1000}

func TestNewClient_DefaultRateLimiter(t *testing.T) {
	client := NewClient(nil, nil, "agent", nil, nil, nil)

	if client.limiter == nil {
		t.Fatalf("expected limiter to be initialized")
	}
	want := rate.Limit(DefaultRequestsPerMinute / SecondsPerMinute)
	if got := client.limiter.Limit(); got != want {
		t.Errorf("expected default limit %v req/sec, got %v", want, got)
	}
	if got := client.limiter.Burst(); got != DefaultRateLimitBurst {
		t.Errorf("expected default burst of %d, got %d", DefaultRateLimitBurst, got)
	}
	if client.usageCooldown != DefaultUsageCooldown {
		t.Errorf("expected default usage cooldown, got %v", client.usageCooldown)
	}
}

func TestNewClient_CustomLimiterConfig(t *testing.T) {
	client := NewClient(nil, nil, "agent", nil, nil, &RateLimitConfig{RequestsPerMinute: 120, Burst: 5, UsageCooldown: time.Second})

	if got := client.limiter.Limit(); got != rate.Limit(2) {
		t.Errorf("expected limit of 2 req/sec, got %v", got)
	}
	if got := client.limiter.Burst(); got != 5 {
		t.Errorf("expected burst of 5, got %d", got)
	}
	if client.usageCooldown != time.Second {
		t.Errorf("expected usage cooldown of 1s, got %v", client.usageCooldown)
	}
}

func TestClient_GetSetsHeadersAndQuery(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"id":"me"}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient(server.Client(), &mockTokenProvider{token: "token-value"}, "my-agent", nil, nil, fastRate)

	resp, err := c.Get(context.Background(), server.URL+"/me?fields=id", types.P("limit", 5, "q", "a b"))
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if resp.StatusCode != http.StatusOK || string(resp.Body) != `{"id":"me"}` {
		t.Fatalf("unexpected response: %d %s", resp.StatusCode, resp.Body)
	}

	if ua := got.Header.Get("User-Agent"); ua != "my-agent" {
		t.Errorf("expected user agent my-agent, got %q", ua)
	}
	if auth := got.Header.Get("Authorization"); auth != "Bearer token-value" {
		t.Errorf("expected bearer token, got %q", auth)
	}
	if q := got.URL.RawQuery; q != "fields=id&limit=5&q=a+b" {
		t.Errorf("unexpected query %q", q)
	}
}

func TestClient_ExplicitAccessTokenSkipsProvider(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		params types.Params
	}{
		{name: "param", url: "/me", params: types.P("access_token", "user-token")},
		{name: "url", url: "/me?access_token=user-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authHeader string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				authHeader = r.Header.Get("Authorization")
				if r.URL.Query().Get("access_token") != "user-token" {
					t.Errorf("expected explicit token on the wire, got %q", r.URL.RawQuery)
				}
				_, _ = w.Write([]byte(`true`))
			}))
			t.Cleanup(server.Close)

			tokens := &mockTokenProvider{token: "app-token"}
			c := NewClient(server.Client(), tokens, "agent", nil, nil, fastRate)
			if _, err := c.Get(context.Background(), server.URL+tt.url, tt.params); err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if authHeader != "" {
				t.Errorf("expected no Authorization header, got %q", authHeader)
			}
			if n := atomic.LoadInt32(&tokens.calls); n != 0 {
				t.Errorf("token provider should not be called, got %d calls", n)
			}
		})
	}
}

func TestClient_PostEncodesOrderedForm(t *testing.T) {
	var body, contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		contentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient(server.Client(), nil, "agent", nil, nil, fastRate)
	params := types.P("message", "hello world", "link", "https://example.com/?a=1", "message", "again")
	if _, err := c.Post(context.Background(), server.URL+"/me/feed", params); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}

	if contentType != "application/x-www-form-urlencoded" {
		t.Errorf("unexpected content type %q", contentType)
	}
	want := "message=hello+world&link=https%3A%2F%2Fexample.com%2F%3Fa%3D1&message=again"
	if body != want {
		t.Errorf("expected body %q, got %q", want, body)
	}
}

func TestClient_PostMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("expected multipart body, got %q", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		if got := r.FormValue("message"); got != "caption" {
			t.Errorf("expected message field, got %q", got)
		}
		f, header, err := r.FormFile("source")
		if err != nil {
			t.Fatalf("missing source file: %v", err)
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if header.Filename != "cat.jpg" || string(data) != "jpeg-bytes" {
			t.Errorf("unexpected file %q with %q", header.Filename, data)
		}
		_, _ = w.Write([]byte(`{"id":"photo1"}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient(server.Client(), nil, "agent", nil, nil, fastRate)
	params := types.Params{
		types.File("source", types.NewMedia("cat.jpg", []byte("jpeg-bytes"))),
	}.Add("message", "caption")

	if _, err := c.Post(context.Background(), server.URL+"/me/photos", params); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
}

func TestClient_FileOnGetIsEncodingError(t *testing.T) {
	httpClient := &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		t.Fatal("transport should not be reached")
		return nil, nil
	})}
	c := NewClient(httpClient, nil, "agent", nil, nil, fastRate)

	params := types.Params{types.File("source", types.NewMedia("a.txt", []byte("x")))}
	_, err := c.Get(context.Background(), "https://graph.example.com/me", params)
	if !errors.Is(err, pkgerrs.ErrEncoding) {
		t.Fatalf("expected encoding error, got %v", err)
	}
}

func TestClient_TransportErrorWrapped(t *testing.T) {
	expectedErr := errors.New("boom")
	httpClient := &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, expectedErr
	})}

	var observed []bool
	c := NewClient(httpClient, nil, "agent", nil, func(_ string, _ time.Duration, ok bool) {
		observed = append(observed, ok)
	}, fastRate)

	_, err := c.Get(context.Background(), "https://graph.example.com/me", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !errors.Is(err, pkgerrs.ErrTransport) {
		t.Fatalf("expected transport kind, got %v", err)
	}
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected wrapped error %v, got %v", expectedErr, err)
	}
	if len(observed) != 1 || observed[0] {
		t.Fatalf("expected one failed observation, got %v", observed)
	}
}

func TestClient_NonSuccessStatusReturnsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Unsupported get request.","type":"GraphMethodException","code":100}}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient(server.Client(), nil, "agent", nil, nil, fastRate)

	resp, err := c.Get(context.Background(), server.URL+"/nope", nil)
	if err == nil {
		t.Fatal("expected API error")
	}
	if resp == nil {
		t.Fatal("expected response to be returned alongside error")
	}
	if !errors.Is(err, pkgerrs.ErrAPI) {
		t.Fatalf("expected api kind, got %v", err)
	}

	var apiErr *pkgerrs.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Code != 100 {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestClient_TokenProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *pkgerrs.Error
	}{
		{name: "rejected", err: &pkgerrs.AuthError{StatusCode: http.StatusBadRequest}, want: pkgerrs.ErrAPI},
		{name: "unreachable", err: &pkgerrs.AuthError{Err: errors.New("dial tcp")}, want: pkgerrs.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(nil, &mockTokenProvider{err: tt.err}, "agent", nil, nil, fastRate)
			_, err := c.Get(context.Background(), "https://graph.example.com/me", nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want.Kind, err)
			}
			var authErr *pkgerrs.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError cause, got %T", err)
			}
		})
	}
}

func TestClient_GetRedirectReturnsLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://cdn.example.com/p.jpg", http.StatusFound)
	}))
	t.Cleanup(server.Close)

	var observed []bool
	c := NewClient(server.Client(), nil, "agent", nil, func(_ string, _ time.Duration, ok bool) {
		observed = append(observed, ok)
	}, fastRate)

	resp, err := c.GetRedirect(context.Background(), server.URL+"/me/picture", nil)
	if err != nil {
		t.Fatalf("GetRedirect returned error: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "https://cdn.example.com/p.jpg" {
		t.Fatalf("unexpected location %q", loc)
	}
	if len(observed) != 1 || !observed[0] {
		t.Fatalf("expected one successful observation, got %v", observed)
	}
}

func TestClient_ObserverRedactsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`true`))
	}))
	t.Cleanup(server.Close)

	var observedURL string
	c := NewClient(server.Client(), nil, "agent", nil, func(u string, _ time.Duration, _ bool) {
		observedURL = u
	}, fastRate)

	if _, err := c.Delete(context.Background(), server.URL+"/123", types.P("access_token", "secret")); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if strings.Contains(observedURL, "secret") || !strings.Contains(observedURL, "access_token=REDACTED") {
		t.Fatalf("expected redacted URL, got %q", observedURL)
	}
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://graph.example.com/me?access_token=abc", want: "https://graph.example.com/me?access_token=REDACTED"},
		{in: "https://graph.example.com/me?limit=5", want: "https://graph.example.com/me?limit=5"},
		{in: "::bad", want: "::bad"},
	}
	for _, tt := range tests {
		if got := RedactURL(tt.in); got != tt.want {
			t.Errorf("RedactURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClient_EnforcesRetryAfter(t *testing.T) {
	var (
		mu        sync.Mutex
		callCount int
		firstHit  time.Time
		secondHit time.Time
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		callCount++
		if callCount == 1 {
			firstHit = time.Now()
			w.Header().Set("Retry-After", "0.1")
		} else {
			secondHit = time.Now()
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient(server.Client(), nil, "agent", nil, nil, fastRate)

	ctx := context.Background()
	if _, err := c.Get(ctx, server.URL+"/first", nil); err != nil {
		t.Fatalf("first request returned error: %v", err)
	}

	start := time.Now()
	if _, err := c.Get(ctx, server.URL+"/second", nil); err != nil {
		t.Fatalf("second request returned error: %v", err)
	}
	elapsed := time.Since(start)

	mu.Lock()
	s, f, n := secondHit, firstHit, callCount
	mu.Unlock()

	if n != 2 {
		t.Fatalf("expected 2 calls to server, got %d", n)
	}
	if diff := s.Sub(f); diff < 90*time.Millisecond {
		t.Fatalf("expected at least 90ms between requests, got %v", diff)
	}
	if elapsed < 90*time.Millisecond {
		t.Fatalf("expected second call to wait for Retry-After, took %v", elapsed)
	}
}

func TestClient_HonorsCanceledContextBeforeSend(t *testing.T) {
	transportCalled := false
	httpClient := &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		transportCalled = true
		return nil, errors.New("unexpected transport call")
	})}

	c := NewClient(httpClient, nil, "agent", nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "https://graph.example.com/me", nil)
	if err == nil {
		t.Fatal("expected error due to canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if !errors.Is(err, pkgerrs.ErrTransport) {
		t.Fatalf("expected transport kind, got %v", err)
	}
	if transportCalled {
		t.Fatal("transport should not be invoked when context already canceled")
	}
}

func TestClient_WaitForForcedDelayBlocksAndClears(t *testing.T) {
	c := &Client{}
	future := time.Now().Add(30 * time.Millisecond)
	atomic.StoreInt64(&c.forceWaitUntil, future.UnixNano())

	start := time.Now()
	if err := c.waitForForcedDelay(context.Background()); err != nil {
		t.Fatalf("waitForForcedDelay returned error: %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 25*time.Millisecond {
		t.Fatalf("expected waitForForcedDelay to block, elapsed %v", elapsed)
	}

	if atomic.LoadInt64(&c.forceWaitUntil) != 0 {
		t.Fatal("expected forced delay to be cleared after waiting")
	}
}

func TestClient_WaitForForcedDelayContextCanceled(t *testing.T) {
	c := &Client{}
	atomic.StoreInt64(&c.forceWaitUntil, time.Now().Add(100*time.Millisecond).UnixNano())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.waitForForcedDelay(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if atomic.LoadInt64(&c.forceWaitUntil) == 0 {
		t.Fatalf("forced delay should remain until cleared on successful wait")
	}
}

func TestClient_DeferRequestsExtendsDelay(t *testing.T) {
	c := &Client{}

	c.deferRequests(context.Background(), -time.Second, "test")
	if atomic.LoadInt64(&c.forceWaitUntil) != 0 {
		t.Fatal("negative duration should not set forced delay")
	}

	c.deferRequests(context.Background(), 20*time.Millisecond, "test")
	first := atomic.LoadInt64(&c.forceWaitUntil)
	if first == 0 {
		t.Fatal("expected forced delay to be set")
	}

	c.deferRequests(context.Background(), 5*time.Millisecond, "test")
	if second := atomic.LoadInt64(&c.forceWaitUntil); second != first {
		t.Fatalf("shorter defer should not reduce wait: first=%v second=%v", first, second)
	}

	c.deferRequests(context.Background(), 40*time.Millisecond, "test")
	if third := atomic.LoadInt64(&c.forceWaitUntil); third <= first {
		t.Fatalf("longer defer should extend wait: first=%v third=%v", first, third)
	}
}

func TestClient_SetLogBodyLimit(t *testing.T) {
	c := &Client{maxLogBodyBytes: defaultLogBodyBytes}

	c.SetLogBodyLimit(2048)
	if c.maxLogBodyBytes != 2048 {
		t.Fatalf("expected maxLogBodyBytes to be 2048, got %d", c.maxLogBodyBytes)
	}

	c.SetLogBodyLimit(0)
	if c.maxLogBodyBytes != defaultLogBodyBytes {
		t.Fatalf("expected default limit after reset, got %d", c.maxLogBodyBytes)
	}
}

func TestClient_ApplyRateHeaders(t *testing.T) {
	tests := []struct {
		name      string
		header    http.Header
		wantDefer bool
	}{
		{name: "retry after", header: http.Header{"Retry-After": []string{"2"}}, wantDefer: true},
		{name: "retry after zero", header: http.Header{"Retry-After": []string{"0"}}},
		{name: "usage at quota", header: http.Header{"X-App-Usage": []string{`{"call_count":100,"total_time":4,"total_cputime":2}`}}, wantDefer: true},
		{name: "cpu at quota", header: http.Header{"X-App-Usage": []string{`{"call_count":1,"total_time":4,"total_cputime":101}`}}, wantDefer: true},
		{name: "usage below quota", header: http.Header{"X-App-Usage": []string{`{"call_count":99,"total_time":10,"total_cputime":10}`}}},
		{name: "unparseable usage", header: http.Header{"X-App-Usage": []string{`nope`}}},
		{name: "no headers", header: http.Header{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{usageCooldown: time.Minute}
			c.applyRateHeaders(context.Background(), tt.header)

			deferred := atomic.LoadInt64(&c.forceWaitUntil) != 0
			if deferred != tt.wantDefer {
				t.Fatalf("expected deferred=%v, got %v", tt.wantDefer, deferred)
			}
		})
	}
}

func TestClient_ApplyRateHeadersDoesNotShortenDelay(t *testing.T) {
	c := &Client{usageCooldown: time.Minute}
	future := time.Now().Add(time.Hour).UnixNano()
	atomic.StoreInt64(&c.forceWaitUntil, future)

	c.applyRateHeaders(context.Background(), http.Header{"Retry-After": []string{"1"}})

	if got := atomic.LoadInt64(&c.forceWaitUntil); got != future {
		t.Fatalf("expected forced delay to remain %v, got %v", future, got)
	}
}
