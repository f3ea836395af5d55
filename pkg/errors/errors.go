// Package errors defines the error types returned by the Graph API wrapper.
//
// Every failure surfaced by a client operation is an *Error carrying a Kind and,
// where one exists, the original cause. Callers can branch on the kind with
// errors.Is against the exported sentinels, or reach the cause with errors.As:
//
//	var apiErr *errors.APIError
//	if errors.As(err, &apiErr) {
//		log.Printf("graph error %d: %s", apiErr.Code, apiErr.Message)
//	}
package errors

import (
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is the zero Kind; it is never produced by the client.
	KindUnknown Kind = iota
	// KindAuthorizationRequired means the operation needs a credential and none was configured.
	// It is reported before any network call is made.
	KindAuthorizationRequired
	// KindTransport wraps network and timeout failures from the HTTP transport.
	KindTransport
	// KindAPI means the service answered with a non-2xx status. The cause is an *APIError.
	KindAPI
	// KindMalformedResponse means a 2xx body did not match the shape the call expects.
	KindMalformedResponse
	// KindEncoding means a parameter or query value could not be put on the wire.
	KindEncoding
)

func (k Kind) String() string {
	switch k {
	case KindAuthorizationRequired:
		return "authorization required"
	case KindTransport:
		return "transport error"
	case KindAPI:
		return "api error"
	case KindMalformedResponse:
		return "malformed response"
	case KindEncoding:
		return "encoding error"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrAuthorizationRequired = &Error{Kind: KindAuthorizationRequired}
	ErrTransport             = &Error{Kind: KindTransport}
	ErrAPI                   = &Error{Kind: KindAPI}
	ErrMalformedResponse     = &Error{Kind: KindMalformedResponse}
	ErrEncoding              = &Error{Kind: KindEncoding}
)

// Error is the single failure category returned by client operations.
type Error struct {
	// Kind classifies the failure
	Kind Kind
	// Operation is the client method that failed (e.g. "GetAlbums")
	Operation string
	// URL is the request URL, with any access token redacted
	URL string
	// Message contains additional detail
	Message string
	// Err is the original cause, if any
	Err error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("graph: ")
	sb.WriteString(e.Kind.String())

	if e.Operation != "" {
		fmt.Fprintf(&sb, " during %s", e.Operation)
	}
	if e.URL != "" {
		fmt.Fprintf(&sb, " (%s)", e.URL)
	}

	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if msg != "" && e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if msg != "" {
		sb.WriteString(": ")
		sb.WriteString(msg)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New returns an *Error of the given kind.
func New(kind Kind, operation, message string, cause error) *Error {
	return &Error{Kind: kind, Operation: operation, Message: message, Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return KindUnknown
		}
		err = u.Unwrap()
	}
	return KindUnknown
}

// APIError is the structured error body returned by the Graph API with a non-2xx status.
//
//	{"error": {"message": "...", "type": "OAuthException", "code": 190, "error_subcode": 460, "fbtrace_id": "..."}}
type APIError struct {
	// StatusCode is the HTTP status code
	StatusCode int
	// Code is the Graph error code
	Code int `json:"code"`
	// Subcode is the Graph error subcode, if any
	Subcode int `json:"error_subcode"`
	// Type is the error type, e.g. "OAuthException"
	Type string `json:"type"`
	// Message is the error message from the service
	Message string `json:"message"`
	// TraceID identifies the failed request on the service side
	TraceID string `json:"fbtrace_id"`
	// Body holds the raw response when it did not carry a structured error
	Body string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Code != 0 || e.Type != "" {
		msg := fmt.Sprintf("status %d, %s code %d", e.StatusCode, e.Type, e.Code)
		if e.Subcode != 0 {
			msg += fmt.Sprintf(" subcode %d", e.Subcode)
		}
		return msg + ": " + e.Message
	}
	if e.Body != "" {
		return fmt.Sprintf("status %d: %q", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// ConfigError indicates a problem with the client configuration.
type ConfigError struct {
	// Field contains the name of the configuration field that caused the error
	Field string
	// Message contains the detailed error message
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// AuthError indicates that an app access token could not be obtained.
type AuthError struct {
	// StatusCode is the HTTP status code (if from an HTTP response)
	StatusCode int
	// Body contains the raw response body (if available)
	Body string
	// Err contains the underlying error if available
	Err error
}

func (e *AuthError) Error() string {
	parts := []string{"auth error"}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status code %d", e.StatusCode))
	}
	if e.Body != "" {
		parts = append(parts, fmt.Sprintf("body: %q", e.Body))
	}
	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("err: %v", e.Err))
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + ": " + strings.Join(parts[1:], ", ")
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
