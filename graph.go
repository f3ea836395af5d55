package graph

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jamesprial/go-graph-api-wrapper/internal"
	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

const (
	// DefaultRestBaseURL is the default Graph API base URL
	DefaultRestBaseURL = "https://graph.facebook.com/"
	// DefaultVideoBaseURL is the default host for video uploads
	DefaultVideoBaseURL = "https://graph-video.facebook.com/"
	// DefaultUserAgent is the default user agent string
	DefaultUserAgent = "go-graph-api-wrapper/0.1"
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	me         = "me"
	tracerName = "github.com/jamesprial/go-graph-api-wrapper"
)

var tracer = otel.Tracer(tracerName)

// RateLimitConfig controls client-side throttling. See Config.RateLimit.
type RateLimitConfig = internal.RateLimitConfig

// TokenProvider supplies the access token attached to requests.
type TokenProvider = internal.TokenProvider

// Config holds the configuration for the Graph client.
//
// Credentials are resolved in this order: TokenProvider, AccessToken, then
// AppID with AppSecret (an app access token fetched once on first use). With
// none of them the client can only run anonymous searches.
//
//	config := &Config{
//		AccessToken: os.Getenv("GRAPH_ACCESS_TOKEN"),
//		UserAgent:   "myapp/1.0",
//	}
type Config struct {
	// AccessToken is a user, page or app token sent with every request.
	AccessToken string `json:"access_token,omitempty"`

	// AppID and AppSecret obtain an app access token with the client
	// credentials grant. Both must be set together.
	AppID     string `json:"app_id,omitempty" validate:"required_with=AppSecret"`
	AppSecret string `json:"app_secret,omitempty" validate:"required_with=AppID"`

	// TokenProvider overrides AccessToken and the app credentials.
	TokenProvider TokenProvider `json:"-"`

	// UserAgent identifies your application.
	// Defaults to DefaultUserAgent if not specified.
	UserAgent string `json:"user_agent,omitempty" validate:"omitempty,max=256,headervalue"`

	// RestBaseURL and VideoBaseURL default to the public Graph hosts.
	RestBaseURL  string `json:"rest_base_url,omitempty" validate:"omitempty,url"`
	VideoBaseURL string `json:"video_base_url,omitempty" validate:"omitempty,url"`

	// HTTPClient to use for requests.
	// Defaults to a client with DefaultTimeout and an OpenTelemetry transport.
	HTTPClient *http.Client `json:"-"`

	// Logger for structured diagnostics.
	// Optional. If provided, debug information will be logged during API calls.
	Logger *slog.Logger `json:"-"`

	// LogBodyLimit caps how many response bytes appear in debug logs.
	LogBodyLimit int `json:"log_body_limit,omitempty" validate:"gte=0"`

	// Observer is told about every HTTP call. Optional.
	Observer Observer `json:"-"`

	// RateLimit tunes client-side throttling. Optional.
	RateLimit *RateLimitConfig `json:"rate_limit,omitempty"`
}

// Client is the Graph API client.
// It is safe for concurrent use; nothing about it changes after NewClient returns.
type Client struct {
	http      *internal.Client
	urls      *internal.URLComposer
	validator *internal.Validator
	tokens    TokenProvider
	logger    *slog.Logger
}

// NewClient creates a new Graph client with the provided configuration.
// It validates the configuration and wires the credential source, transport
// and rate limiter. No network call is made.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, &pkgerrs.ConfigError{Message: "config cannot be nil"}
	}
	cfg := *config

	v := internal.NewValidator()
	if err := v.ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if err := v.ValidateUserAgent(cfg.UserAgent); err != nil {
		return nil, &pkgerrs.ConfigError{Field: "UserAgent", Message: err.Error()}
	}
	if cfg.RestBaseURL == "" {
		cfg.RestBaseURL = DefaultRestBaseURL
	}
	if cfg.VideoBaseURL == "" {
		cfg.VideoBaseURL = DefaultVideoBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Observer == nil {
		cfg.Observer = NoopObserver{}
	}

	urls, err := internal.NewURLComposer(cfg.RestBaseURL, cfg.VideoBaseURL)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "RestBaseURL", Message: err.Error()}
	}

	tokens, err := resolveTokens(&cfg)
	if err != nil {
		return nil, err
	}

	transport := internal.NewClient(cfg.HTTPClient, tokens, cfg.UserAgent, cfg.Logger, cfg.Observer.OnCallCompleted, cfg.RateLimit)
	transport.SetLogBodyLimit(cfg.LogBodyLimit)

	return &Client{
		http:      transport,
		urls:      urls,
		validator: v,
		tokens:    tokens,
		logger:    cfg.Logger,
	}, nil
}

func resolveTokens(cfg *Config) (TokenProvider, error) {
	switch {
	case cfg.TokenProvider != nil:
		return cfg.TokenProvider, nil
	case cfg.AccessToken != "":
		return internal.StaticToken(cfg.AccessToken), nil
	case cfg.AppID != "":
		auth, err := internal.NewAuthenticator(cfg.HTTPClient, cfg.AppID, cfg.AppSecret, cfg.UserAgent, cfg.RestBaseURL, "")
		if err != nil {
			return nil, &pkgerrs.ConfigError{Field: "AppID", Message: err.Error()}
		}
		return internal.NewTokenCache(auth), nil
	default:
		return nil, nil
	}
}

// HasCredentials reports whether the client can call operations other than search.
func (c *Client) HasCredentials() bool {
	return c.tokens != nil
}

func orMe(id string) string {
	if id == "" {
		return me
	}
	return id
}

// call runs fn inside a span. Unless anonymous is set, a client without
// credentials fails before fn runs.
func (c *Client) call(ctx context.Context, op string, anonymous bool, fn func(context.Context) error) error {
	if !anonymous && c.tokens == nil {
		return pkgerrs.New(pkgerrs.KindAuthorizationRequired, op, "an access token or app credentials are required", nil)
	}

	ctx, span := tracer.Start(ctx, "graph:"+op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	err := fn(ctx)
	if err != nil {
		err = withOperation(err, op)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.DebugContext(ctx, "graph operation failed", "operation", op, "error", err)
	}
	return err
}

// withOperation stamps the operation name onto the first *Error in the chain.
func withOperation(err error, op string) error {
	var gErr *pkgerrs.Error
	if errors.As(err, &gErr) && gErr.Operation == "" {
		gErr.Operation = op
	}
	return err
}

// fetchOne issues a GET and decodes a single object. found is false when the
// service answered with a literal false.
func fetchOne[T any](ctx context.Context, c *Client, op, rawURL string, params types.Params) (v *T, err error) {
	err = c.call(ctx, op, false, func(ctx context.Context) error {
		resp, err := c.http.Get(ctx, rawURL, params)
		if err != nil {
			return err
		}
		out, found, err := internal.DecodeEntity(resp.Body, internal.JSONDecoder[T]())
		if err != nil {
			return err
		}
		if found {
			v = &out
		}
		return nil
	})
	return v, err
}

// fetchList issues a GET and decodes a list envelope.
func fetchList[T any](ctx context.Context, c *Client, op, rawURL string, params types.Params) (*Page[T], error) {
	return fetchListAs(ctx, c, op, false, rawURL, params, internal.JSONDecoder[T]())
}

func searchList[T any](ctx context.Context, c *Client, op, rawURL string) (*Page[T], error) {
	return fetchListAs(ctx, c, op, true, rawURL, nil, internal.JSONDecoder[T]())
}

func fetchListAs[T any](ctx context.Context, c *Client, op string, anonymous bool, rawURL string, params types.Params, decode internal.Decoder[T]) (page *Page[T], err error) {
	err = c.call(ctx, op, anonymous, func(ctx context.Context) error {
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("graph.url", internal.RedactURL(rawURL)))
		resp, err := c.http.Get(ctx, rawURL, params)
		if err != nil {
			return err
		}
		page, err = newPage(resp.Body, decode)
		return err
	})
	return page, err
}

// postID issues a POST and returns the id of the created object.
func (c *Client) postID(ctx context.Context, op, rawURL string, params types.Params) (id string, err error) {
	err = c.call(ctx, op, false, func(ctx context.Context) error {
		resp, err := c.http.Post(ctx, rawURL, params)
		if err != nil {
			return err
		}
		id, err = internal.DecodeID(resp.Body)
		return err
	})
	return id, err
}

// postAck issues a POST answered with a boolean.
func (c *Client) postAck(ctx context.Context, op, rawURL string, params types.Params) (ok bool, err error) {
	err = c.call(ctx, op, false, func(ctx context.Context) error {
		resp, err := c.http.Post(ctx, rawURL, params)
		if err != nil {
			return err
		}
		ok, err = internal.DecodeAck(resp.Body)
		return err
	})
	return ok, err
}

// deleteAck issues a DELETE answered with a boolean.
func (c *Client) deleteAck(ctx context.Context, op, rawURL string, params types.Params) (ok bool, err error) {
	err = c.call(ctx, op, false, func(ctx context.Context) error {
		resp, err := c.http.Delete(ctx, rawURL, params)
		if err != nil {
			return err
		}
		ok, err = internal.DecodeAck(resp.Body)
		return err
	})
	return ok, err
}

// pictureURL reads the Location of a picture redirect instead of the body.
func (c *Client) pictureURL(ctx context.Context, op, rawURL string, size types.PictureSize) (loc *url.URL, err error) {
	err = c.call(ctx, op, false, func(ctx context.Context) error {
		var params types.Params
		if size != "" {
			params = types.P("type", string(size))
		}
		resp, err := c.http.GetRedirect(ctx, rawURL, params)
		if err != nil {
			return err
		}

		location := resp.Header.Get("Location")
		if location == "" {
			return &pkgerrs.Error{Kind: pkgerrs.KindMalformedResponse, URL: internal.RedactURL(rawURL), Message: "picture response has no Location header"}
		}
		parsed, err := url.Parse(location)
		if err != nil {
			return &pkgerrs.Error{Kind: pkgerrs.KindMalformedResponse, URL: internal.RedactURL(rawURL), Message: "invalid Location header", Err: err}
		}
		if !parsed.IsAbs() || parsed.Host == "" {
			return &pkgerrs.Error{Kind: pkgerrs.KindMalformedResponse, URL: internal.RedactURL(rawURL), Message: "Location header is not an absolute URL: " + location}
		}
		loc = parsed
		return nil
	})
	return loc, err
}

// encodeRequest validates a request struct and flattens it into params.
func (c *Client) encodeRequest(op string, req any) (types.Params, error) {
	if err := c.validator.ValidateRequest(op, req); err != nil {
		return nil, err
	}
	params, err := types.EncodeParams(req)
	if err != nil {
		return nil, pkgerrs.New(pkgerrs.KindEncoding, op, "failed to encode request", err)
	}
	return params, nil
}

// build is a shorthand for the REST URL composer.
func (c *Client) build(id, connection string, r *reading.Reading) string {
	return c.urls.Build(id, connection, r)
}

// uploadParams starts a parameter list with the "source" file of an upload.
func uploadParams(op string, source *types.Media) (types.Params, error) {
	if source == nil {
		return nil, pkgerrs.New(pkgerrs.KindEncoding, op, "a source file is required", nil)
	}
	return types.Params{types.File("source", source)}, nil
}
