package graph

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"sigs.k8s.io/yaml"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
)

// Environment variables that override values loaded from a config file.
const (
	EnvAccessToken = "GRAPH_ACCESS_TOKEN"
	EnvAppID       = "GRAPH_APP_ID"
	EnvAppSecret   = "GRAPH_APP_SECRET"
)

// fileConfig is the on-disk form of Config. Durations are strings such as "30s".
type fileConfig struct {
	AccessToken  string `json:"access_token"`
	AppID        string `json:"app_id"`
	AppSecret    string `json:"app_secret"`
	UserAgent    string `json:"user_agent"`
	RestBaseURL  string `json:"rest_base_url"`
	VideoBaseURL string `json:"video_base_url"`
	Timeout      string `json:"timeout"`
	LogBodyLimit int    `json:"log_body_limit"`
	RateLimit    *struct {
		RequestsPerMinute float64 `json:"requests_per_minute"`
		Burst             int     `json:"burst"`
		UsageCooldown     string  `json:"usage_cooldown"`
	} `json:"rate_limit"`
}

// LoadConfig reads a YAML or JSON config file. An empty path skips the file.
// GRAPH_ACCESS_TOKEN, GRAPH_APP_ID and GRAPH_APP_SECRET override the
// corresponding file values when set.
//
//	access_token: EAAB...
//	user_agent: myapp/1.0
//	timeout: 10s
//	rate_limit:
//	  requests_per_minute: 100
//	  burst: 5
func LoadConfig(path string) (*Config, error) {
	var fc fileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &fc); err != nil {
			return nil, &pkgerrs.ConfigError{Message: "invalid config file " + path + ": " + err.Error()}
		}
	}

	cfg := &Config{
		AccessToken:  fc.AccessToken,
		AppID:        fc.AppID,
		AppSecret:    fc.AppSecret,
		UserAgent:    fc.UserAgent,
		RestBaseURL:  fc.RestBaseURL,
		VideoBaseURL: fc.VideoBaseURL,
		LogBodyLimit: fc.LogBodyLimit,
	}

	if fc.Timeout != "" {
		timeout, err := time.ParseDuration(fc.Timeout)
		if err != nil || timeout <= 0 {
			return nil, &pkgerrs.ConfigError{Field: "timeout", Message: "must be a positive duration"}
		}
		cfg.HTTPClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	if rl := fc.RateLimit; rl != nil {
		cfg.RateLimit = &RateLimitConfig{RequestsPerMinute: rl.RequestsPerMinute, Burst: rl.Burst}
		if rl.UsageCooldown != "" {
			cooldown, err := time.ParseDuration(rl.UsageCooldown)
			if err != nil {
				return nil, &pkgerrs.ConfigError{Field: "rate_limit.usage_cooldown", Message: "must be a duration"}
			}
			cfg.RateLimit.UsageCooldown = cooldown
		}
	}

	if v := os.Getenv(EnvAccessToken); v != "" {
		cfg.AccessToken = v
	}
	if v := os.Getenv(EnvAppID); v != "" {
		cfg.AppID = v
	}
	if v := os.Getenv(EnvAppSecret); v != "" {
		cfg.AppSecret = v
	}
	return cfg, nil
}
