package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      Error
		contains []string
	}{
		{
			name:     "kind only",
			err:      Error{Kind: KindAuthorizationRequired},
			contains: []string{"graph: authorization required"},
		},
		{
			name: "operation and url",
			err: Error{
				Kind:      KindMalformedResponse,
				Operation: "GetAlbums",
				URL:       "https://graph.example.com/me/albums",
				Message:   "missing data array",
			},
			contains: []string{"malformed response", "during GetAlbums", "me/albums", "missing data array"},
		},
		{
			name:     "cause only",
			err:      Error{Kind: KindTransport, Err: io.ErrUnexpectedEOF},
			contains: []string{"transport error", "unexpected EOF"},
		},
		{
			name:     "message and cause",
			err:      Error{Kind: KindEncoding, Message: "encode params", Err: errors.New("bad value")},
			contains: []string{"encoding error", "encode params: bad value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("Error.Error() = %q, want to contain %q", result, want)
				}
			}
		})
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Kind: KindAPI, Operation: "GetMe"})

	if !errors.Is(err, ErrAPI) {
		t.Error("expected errors.Is to match ErrAPI")
	}
	if errors.Is(err, ErrTransport) {
		t.Error("did not expect errors.Is to match ErrTransport")
	}
}

func TestError_UnwrapReachesCause(t *testing.T) {
	cause := &APIError{StatusCode: 400, Code: 100, Type: "GraphMethodException", Message: "Unsupported get request"}
	err := New(KindAPI, "GetPost", "", cause)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected errors.As to find *APIError in %v", err)
	}
	if apiErr.Code != 100 {
		t.Errorf("Code = %d, want 100", apiErr.Code)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindUnknown},
		{name: "plain error", err: errors.New("x"), want: KindUnknown},
		{name: "direct", err: &Error{Kind: KindEncoding}, want: KindEncoding},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", &Error{Kind: KindTransport}), want: KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      APIError
		contains []string
	}{
		{
			name:     "structured",
			err:      APIError{StatusCode: 400, Code: 190, Subcode: 460, Type: "OAuthException", Message: "Session expired"},
			contains: []string{"status 400", "OAuthException code 190", "subcode 460", "Session expired"},
		},
		{
			name:     "raw body",
			err:      APIError{StatusCode: 502, Body: "Bad Gateway"},
			contains: []string{"status 502", `"Bad Gateway"`},
		},
		{
			name:     "message only",
			err:      APIError{StatusCode: 500, Message: "internal"},
			contains: []string{"status 500: internal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("APIError.Error() = %q, want to contain %q", result, want)
				}
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ConfigError
		contains []string
	}{
		{
			name:     "with field and message",
			err:      ConfigError{Field: "RestBaseURL", Message: "must be a URL"},
			contains: []string{"config error", "RestBaseURL", "must be a URL"},
		},
		{
			name:     "only message",
			err:      ConfigError{Message: "config cannot be nil"},
			contains: []string{"config error", "config cannot be nil"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("ConfigError.Error() = %q, want to contain %q", result, want)
				}
			}
		})
	}
}

func TestAuthError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      AuthError
		contains []string
	}{
		{
			name:     "full",
			err:      AuthError{StatusCode: 400, Body: `{"error":"bad secret"}`, Err: errors.New("rejected")},
			contains: []string{"auth error", "status code 400", "bad secret", "err: rejected"},
		},
		{
			name:     "empty",
			err:      AuthError{},
			contains: []string{"auth error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("AuthError.Error() = %q, want to contain %q", result, want)
				}
			}
		})
	}
}

func TestAuthError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &AuthError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("expected AuthError to unwrap to its cause")
	}
}
