package helpers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
)

// ChaosMode defines the type of chaos to inject
type ChaosMode int

const (
	// ChaosNone passes requests through unchanged
	ChaosNone ChaosMode = iota

	// ChaosConnectionReset fails the round trip before it reaches the server
	ChaosConnectionReset

	// ChaosPartialRead truncates the response body and fails the read
	ChaosPartialRead

	// ChaosEmptyBody replaces the response with an empty 200
	ChaosEmptyBody

	// ChaosInvalidJSON replaces the response with a body that is not JSON
	ChaosInvalidJSON

	// ChaosHTMLError replaces the response with a 502 HTML page, as returned by
	// a proxy in front of the service
	ChaosHTMLError
)

// ErrConnectionReset is returned by ChaosConnectionReset round trips.
var ErrConnectionReset = errors.New("connection reset by peer")

// ChaosTransport is an http.RoundTripper that injects failures. Every
// FailEvery-th request gets Mode; the rest are passed to Base. A FailEvery of
// zero or one fails every request.
type ChaosTransport struct {
	Base      http.RoundTripper
	Mode      ChaosMode
	FailEvery uint64

	requests uint64
}

// Requests returns how many round trips were attempted.
func (c *ChaosTransport) Requests() uint64 {
	return atomic.LoadUint64(&c.requests)
}

// RoundTrip implements http.RoundTripper.
func (c *ChaosTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	n := atomic.AddUint64(&c.requests, 1)
	base := c.Base
	if base == nil {
		base = http.DefaultTransport
	}

	mode := c.Mode
	if c.FailEvery > 1 && n%c.FailEvery != 0 {
		mode = ChaosNone
	}

	switch mode {
	case ChaosConnectionReset:
		return nil, ErrConnectionReset

	case ChaosPartialRead:
		resp, err := base.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		resp.Body = &partialReadCloser{reader: bytes.NewReader(body[:len(body)/2])}
		return resp, nil

	case ChaosEmptyBody:
		return synthetic(req, http.StatusOK, ""), nil

	case ChaosInvalidJSON:
		return synthetic(req, http.StatusOK, "This is not valid JSON\x00\x01\x02"), nil

	case ChaosHTMLError:
		return synthetic(req, http.StatusBadGateway, "<html><body>502 Bad Gateway</body></html>"), nil

	default:
		return base.RoundTrip(req)
	}
}

func synthetic(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		Status:        http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
		Header:        make(http.Header),
	}
}

// partialReadCloser returns what it has and then fails instead of reporting EOF.
type partialReadCloser struct {
	reader io.Reader
}

func (p *partialReadCloser) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if errors.Is(err, io.EOF) {
		return n, errors.New("connection reset during read")
	}
	return n, err
}

func (p *partialReadCloser) Close() error {
	return nil
}
