package internal

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// URLComposer builds request URLs from object ids, connection names and readings.
// It performs no I/O and holds no mutable state.
type URLComposer struct {
	RestBase  string
	VideoBase string
}

// NewURLComposer validates both base URLs and normalizes them to end in "/".
func NewURLComposer(restBase, videoBase string) (*URLComposer, error) {
	rest, err := normalizeBase(restBase)
	if err != nil {
		return nil, fmt.Errorf("invalid rest base URL: %w", err)
	}
	video, err := normalizeBase(videoBase)
	if err != nil {
		return nil, fmt.Errorf("invalid video base URL: %w", err)
	}
	return &URLComposer{RestBase: rest, VideoBase: video}, nil
}

func normalizeBase(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%q is not an absolute URL", base)
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base, nil
}

// Build returns RestBase + id [+ "/" + connection] [+ "?" + reading].
// The connection may contain further path segments such as "attending/123".
func (c *URLComposer) Build(id, connection string, r *reading.Reading) string {
	return compose(c.RestBase, id, connection, r)
}

// Video is Build against the video upload host.
func (c *URLComposer) Video(id, connection string, r *reading.Reading) string {
	return compose(c.VideoBase, id, connection, r)
}

func compose(base, id, connection string, r *reading.Reading) string {
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString(id)
	if connection != "" {
		sb.WriteString("/")
		sb.WriteString(connection)
	}
	if q := r.Query(); q != "" {
		sb.WriteString("?")
		sb.WriteString(q)
	}
	return sb.String()
}

// Search builds a search URL. Directives are appended in the order type, q,
// extra, reading; the first present one is introduced by '?' and the rest by '&'.
// Extra parameter values are URL-encoded.
func (c *URLComposer) Search(query, objectType string, extra types.Params, r *reading.Reading) string {
	var parts []string
	if objectType != "" {
		parts = append(parts, "type="+url.QueryEscape(objectType))
	}
	if query != "" {
		parts = append(parts, "q="+url.QueryEscape(query))
	}
	for _, p := range extra {
		parts = append(parts, url.QueryEscape(p.Name)+"="+url.QueryEscape(p.Value))
	}
	if q := r.Query(); q != "" {
		parts = append(parts, q)
	}

	u := c.RestBase + "search"
	if len(parts) == 0 {
		return u
	}
	return u + "?" + strings.Join(parts, "&")
}

// FQL returns the URL of a single FQL query.
func (c *URLComposer) FQL(query string) string {
	return c.RestBase + "fql?q=" + url.QueryEscape(query)
}

// MultiFQL returns the URL of a named multi-query. The queries are sent as one
// JSON object; encoding/json sorts map keys so the URL is deterministic.
func (c *URLComposer) MultiFQL(queries map[string]string) (string, error) {
	b, err := json.Marshal(queries)
	if err != nil {
		return "", fmt.Errorf("failed to encode queries: %w", err)
	}
	return c.RestBase + "fql?q=" + url.QueryEscape(string(b)), nil
}

// HasAccessToken reports whether a URL already carries an access_token query parameter.
func HasAccessToken(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Query().Has("access_token")
}
