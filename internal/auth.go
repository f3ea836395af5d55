package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
)

const defaultTokenEndpointPath = "oauth/access_token"

// StaticToken is a TokenProvider for a token the caller already holds.
type StaticToken string

// GetToken returns the token unchanged.
func (s StaticToken) GetToken(context.Context) (string, error) {
	return string(s), nil
}

// Authenticator obtains an app access token with the client credentials grant.
type Authenticator struct {
	client    *http.Client
	appID     string
	appSecret string
	userAgent string
	tokenURL  *url.URL
}

// NewAuthenticator creates a new authenticator.
// The tokenPath parameter can be an empty string to use the default token endpoint.
func NewAuthenticator(httpClient *http.Client, appID, appSecret, userAgent, baseURL, tokenPath string) (*Authenticator, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if appID == "" || appSecret == "" {
		return nil, &pkgerrs.AuthError{Err: fmt.Errorf("app id and app secret are both required")}
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, &pkgerrs.AuthError{Err: fmt.Errorf("failed to parse base URL: %w", err)}
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &pkgerrs.AuthError{Err: fmt.Errorf("base URL %q is not absolute", baseURL)}
	}
	if !strings.HasSuffix(parsedURL.Path, "/") {
		parsedURL.Path += "/"
	}

	if tokenPath == "" {
		tokenPath = defaultTokenEndpointPath
	}

	resolvedTokenURL, err := parsedURL.Parse(tokenPath)
	if err != nil {
		return nil, &pkgerrs.AuthError{Err: fmt.Errorf("failed to parse token endpoint path: %w", err)}
	}

	q := resolvedTokenURL.Query()
	q.Set("grant_type", "client_credentials")
	q.Set("client_id", appID)
	q.Set("client_secret", appSecret)
	resolvedTokenURL.RawQuery = q.Encode()

	return &Authenticator{
		client:    httpClient,
		appID:     appID,
		appSecret: appSecret,
		userAgent: userAgent,
		tokenURL:  resolvedTokenURL,
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// GetToken requests an app access token.
func (a *Authenticator) GetToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.tokenURL.String(), nil)
	if err != nil {
		return "", &pkgerrs.AuthError{Err: fmt.Errorf("failed to create token request: %w", err)}
	}
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &pkgerrs.AuthError{Err: fmt.Errorf("failed to execute token request: %w", err)}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &pkgerrs.AuthError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response body: %w", err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &pkgerrs.AuthError{
			StatusCode: resp.StatusCode,
			Body:       string(preview(bodyBytes, 500)),
			Err:        DecodeAPIError(resp.StatusCode, bodyBytes),
		}
	}

	token, err := parseTokenBody(bodyBytes)
	if err != nil {
		return "", &pkgerrs.AuthError{
			StatusCode: resp.StatusCode,
			Body:       string(preview(bodyBytes, 500)),
			Err:        err,
		}
	}
	return token, nil
}

// parseTokenBody accepts the JSON body and the older form-encoded
// "access_token=...&expires=..." body.
func parseTokenBody(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))

	if strings.HasPrefix(trimmed, "{") {
		var tokenResp tokenResponse
		if err := json.Unmarshal([]byte(trimmed), &tokenResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal token response: %w", err)
		}
		if tokenResp.AccessToken == "" {
			return "", fmt.Errorf("access token was empty in response")
		}
		return tokenResp.AccessToken, nil
	}

	values, err := url.ParseQuery(trimmed)
	if err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	token := values.Get("access_token")
	if token == "" {
		return "", fmt.Errorf("access token was empty in response")
	}
	return token, nil
}
