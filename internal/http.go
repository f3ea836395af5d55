package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// TokenProvider supplies the ambient access token attached to requests.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// CallObserver is notified once per HTTP call with the request URL (token
// redacted), the elapsed time and whether the call succeeded.
type CallObserver func(url string, elapsed time.Duration, ok bool)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client performs Graph API HTTP calls. It attaches credentials, encodes
// parameters, throttles outgoing requests and maps failures onto pkg/errors kinds.
// It never retries.
type Client struct {
	client     *http.Client
	noRedirect *http.Client
	UserAgent  string
	tokens     TokenProvider
	logger     *slog.Logger
	observer   CallObserver

	limiter         *rate.Limiter
	forceWaitUntil  int64 // unix nanos, 0 when no forced delay is pending
	usageCooldown   time.Duration
	maxLogBodyBytes int
}

// RateLimitConfig controls how requests are throttled before reaching the API.
type RateLimitConfig struct {
	// RequestsPerMinute caps steady-state throughput. Defaults to 200 if zero.
	RequestsPerMinute float64
	// Burst allows short spikes above the steady-state rate. Defaults to 20 if zero.
	Burst int
	// UsageCooldown is how long to pause once X-App-Usage reports a quota at 100%.
	// Defaults to one minute if zero.
	UsageCooldown time.Duration
}

const (
	DefaultRequestsPerMinute = 200
	DefaultRateLimitBurst    = 20
	DefaultUsageCooldown     = time.Minute
	SecondsPerMinute         = 60.0
	ParseFloatBitSize        = 64

	defaultLogBodyBytes = 500
	redacted            = "REDACTED"
)

// NewClient returns a new Graph API transport client.
// If a nil httpClient is provided, http.DefaultClient will be used. tokens may be
// nil, in which case only requests that carry their own access_token are authenticated.
func NewClient(httpClient *http.Client, tokens TokenProvider, userAgent string, logger *slog.Logger, observer CallObserver, rateCfg *RateLimitConfig) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if rateCfg == nil {
		rateCfg = &RateLimitConfig{}
	}

	noRedirect := *httpClient
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	cooldown := rateCfg.UsageCooldown
	if cooldown <= 0 {
		cooldown = DefaultUsageCooldown
	}

	return &Client{
		client:          httpClient,
		noRedirect:      &noRedirect,
		UserAgent:       userAgent,
		tokens:          tokens,
		logger:          logger,
		observer:        observer,
		limiter:         buildLimiter(*rateCfg),
		usageCooldown:   cooldown,
		maxLogBodyBytes: defaultLogBodyBytes,
	}
}

// SetLogBodyLimit sets how many response bytes are included in debug logs.
// Values <= 0 restore the default.
func (c *Client) SetLogBodyLimit(n int) {
	if n <= 0 {
		n = defaultLogBodyBytes
	}
	c.maxLogBodyBytes = n
}

// Get sends a GET with params appended to the query string.
func (c *Client) Get(ctx context.Context, rawURL string, params types.Params) (*Response, error) {
	return c.do(ctx, c.client, http.MethodGet, rawURL, params)
}

// GetRedirect sends a GET without following redirects. A 3xx response is
// returned as a success so the caller can read its Location header.
func (c *Client) GetRedirect(ctx context.Context, rawURL string, params types.Params) (*Response, error) {
	return c.do(ctx, c.noRedirect, http.MethodGet, rawURL, params)
}

// Post sends a POST with params as a form body, or as multipart when any
// parameter carries a file.
func (c *Client) Post(ctx context.Context, rawURL string, params types.Params) (*Response, error) {
	return c.do(ctx, c.client, http.MethodPost, rawURL, params)
}

// Delete sends a DELETE with params appended to the query string.
func (c *Client) Delete(ctx context.Context, rawURL string, params types.Params) (*Response, error) {
	return c.do(ctx, c.client, http.MethodDelete, rawURL, params)
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, rawURL string, params types.Params) (*Response, error) {
	req, err := c.newRequest(ctx, method, rawURL, params)
	if err != nil {
		return nil, err
	}
	logURL := RedactURL(req.URL.String())

	if err := c.waitForRateLimit(ctx); err != nil {
		return nil, &pkgerrs.Error{Kind: pkgerrs.KindTransport, URL: logURL, Message: "rate limit wait aborted", Err: err}
	}

	start := time.Now()
	resp, err := c.send(hc, req)
	elapsed := time.Since(start)
	if err != nil {
		c.notify(logURL, elapsed, false)
		c.log().DebugContext(ctx, "graph request failed", "method", method, "url", logURL, "elapsed", elapsed, "error", err)
		return nil, &pkgerrs.Error{Kind: pkgerrs.KindTransport, URL: logURL, Err: err}
	}

	redirect := hc == c.noRedirect && resp.StatusCode >= 300 && resp.StatusCode < 400
	success := (resp.StatusCode >= 200 && resp.StatusCode < 300) || redirect
	c.notify(logURL, elapsed, success)

	c.log().DebugContext(ctx, "graph request",
		"method", method,
		"url", logURL,
		"status", resp.StatusCode,
		"elapsed", elapsed,
		"response_preview", string(preview(resp.Body, c.maxLogBodyBytes)),
	)

	c.applyRateHeaders(ctx, resp.Header)

	if !success {
		return resp, &pkgerrs.Error{Kind: pkgerrs.KindAPI, URL: logURL, Err: DecodeAPIError(resp.StatusCode, resp.Body)}
	}
	return resp, nil
}

func (c *Client) notify(logURL string, elapsed time.Duration, ok bool) {
	if c.observer != nil {
		c.observer(logURL, elapsed, ok)
	}
}

func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

func (c *Client) send(hc *http.Client, req *http.Request) (*Response, error) {
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

func (c *Client) newRequest(ctx context.Context, method, rawURL string, params types.Params) (*http.Request, error) {
	var (
		body        io.Reader
		contentType string
	)

	switch {
	case method == http.MethodPost && params.HasFile():
		buf, ct, err := encodeMultipart(params)
		if err != nil {
			return nil, &pkgerrs.Error{Kind: pkgerrs.KindEncoding, URL: RedactURL(rawURL), Message: "failed to encode multipart body", Err: err}
		}
		body, contentType = buf, ct
	case method == http.MethodPost:
		body, contentType = strings.NewReader(encodeForm(params)), "application/x-www-form-urlencoded"
	case params.HasFile():
		return nil, &pkgerrs.Error{Kind: pkgerrs.KindEncoding, URL: RedactURL(rawURL), Message: "file parameters require POST"}
	case len(params) > 0:
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		rawURL += sep + encodeForm(params)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, &pkgerrs.Error{Kind: pkgerrs.KindEncoding, URL: RedactURL(rawURL), Message: "failed to build request", Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	// An explicit access_token overrides the ambient credential.
	if c.tokens != nil && !params.Has("access_token") && !HasAccessToken(rawURL) {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return nil, tokenError(RedactURL(rawURL), err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func tokenError(logURL string, err error) error {
	var authErr *pkgerrs.AuthError
	if errors.As(err, &authErr) && authErr.StatusCode > 0 {
		return &pkgerrs.Error{Kind: pkgerrs.KindAPI, URL: logURL, Message: "failed to obtain access token", Err: err}
	}
	return &pkgerrs.Error{Kind: pkgerrs.KindTransport, URL: logURL, Message: "failed to obtain access token", Err: err}
}

// encodeForm keeps parameter order, unlike url.Values.Encode.
func encodeForm(params types.Params) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p.Name)+"="+url.QueryEscape(p.Value))
	}
	return strings.Join(parts, "&")
}

func encodeMultipart(params types.Params) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, p := range params {
		if p.File == nil {
			if err := w.WriteField(p.Name, p.Value); err != nil {
				return nil, "", err
			}
			continue
		}
		if p.File.Content == nil {
			return nil, "", fmt.Errorf("media %q has no content", p.Name)
		}
		part, err := w.CreateFormFile(p.Name, p.File.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, p.File.Content); err != nil {
			return nil, "", fmt.Errorf("failed to read media %q: %w", p.File.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// RedactURL hides the access_token query parameter of a URL.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if !q.Has("access_token") {
		return rawURL
	}
	q.Set("access_token", redacted)
	u.RawQuery = q.Encode()
	return u.String()
}

func buildLimiter(cfg RateLimitConfig) *rate.Limiter {
	requestsPerMinute := cfg.RequestsPerMinute
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRequestsPerMinute
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = DefaultRateLimitBurst
	}

	limitPerSecond := rate.Limit(requestsPerMinute / SecondsPerMinute)
	if limitPerSecond <= 0 {
		limitPerSecond = rate.Limit(1)
	}

	return rate.NewLimiter(limitPerSecond, burst)
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	if err := c.waitForForcedDelay(ctx); err != nil {
		return err
	}

	if c.limiter == nil {
		return nil
	}

	return c.limiter.Wait(ctx)
}

func (c *Client) waitForForcedDelay(ctx context.Context) error {
	for {
		waitUntil := atomic.LoadInt64(&c.forceWaitUntil)
		if waitUntil == 0 {
			return nil
		}

		remaining := time.Until(time.Unix(0, waitUntil))
		if remaining <= 0 {
			atomic.CompareAndSwapInt64(&c.forceWaitUntil, waitUntil, 0)
			return nil
		}

		timer := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			atomic.CompareAndSwapInt64(&c.forceWaitUntil, waitUntil, 0)
		}
	}
}

// appUsage is the X-App-Usage header payload; values are percentages of quota.
type appUsage struct {
	CallCount    float64 `json:"call_count"`
	TotalTime    float64 `json:"total_time"`
	TotalCPUTime float64 `json:"total_cputime"`
}

func (c *Client) applyRateHeaders(ctx context.Context, header http.Header) {
	if retryAfter := header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.ParseFloat(retryAfter, ParseFloatBitSize); err == nil && seconds > 0 {
			c.deferRequests(ctx, time.Duration(seconds*float64(time.Second)), "retry-after")
		}
	}

	usageHeader := header.Get("X-App-Usage")
	if usageHeader == "" {
		return
	}

	var usage appUsage
	if err := json.Unmarshal([]byte(usageHeader), &usage); err != nil {
		c.log().DebugContext(ctx, "ignoring unparseable X-App-Usage header", "value", usageHeader)
		return
	}
	if max(usage.CallCount, usage.TotalTime, usage.TotalCPUTime) >= 100 {
		c.deferRequests(ctx, c.usageCooldown, "app usage at quota")
	}
}

func (c *Client) deferRequests(ctx context.Context, d time.Duration, reason string) {
	if d <= 0 {
		return
	}

	until := time.Now().Add(d).UnixNano()
	for {
		current := atomic.LoadInt64(&c.forceWaitUntil)
		if current >= until {
			return
		}
		if atomic.CompareAndSwapInt64(&c.forceWaitUntil, current, until) {
			c.log().DebugContext(ctx, "deferring requests", "reason", reason, "delay", d)
			return
		}
	}
}
