// Package reading builds the response-shaping query directives accepted by Graph
// API read endpoints: field selection, paging limits, time ranges and ordering.
//
// A Reading is immutable. Every builder method returns a new value, so a Reading
// can be shared between goroutines and reused across calls:
//
//	r := reading.New().Fields("id", "name", "photos.limit(5){id,picture}").Limit(25)
//	fmt.Println(r.Query()) // fields=id,name,photos.limit(5)%7Bid,picture%7D&limit=25
package reading

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Order controls result ordering on connections that support it.
type Order string

const (
	Chronological        Order = "chronological"
	ReverseChronological Order = "reverse_chronological"
)

// Reading is a set of optional read directives. The zero value and nil both
// serialize to an empty query.
type Reading struct {
	fields       []string
	limit        int
	offset       int
	since        time.Time
	until        time.Time
	order        Order
	locale       string
	filter       string
	withLocation bool
	metadata     bool
}

// New returns an empty Reading.
func New() *Reading {
	return &Reading{}
}

func (r *Reading) clone() *Reading {
	if r == nil {
		return &Reading{}
	}
	c := *r
	c.fields = append([]string(nil), r.fields...)
	return &c
}

// Fields appends field names to the selection. Names may carry nested
// sub-selection syntax such as "friends(id,name)" or "photos.limit(5){id}".
func (r *Reading) Fields(names ...string) *Reading {
	c := r.clone()
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			c.fields = append(c.fields, n)
		}
	}
	return c
}

// Limit sets the page size. Values <= 0 clear it.
func (r *Reading) Limit(n int) *Reading {
	c := r.clone()
	c.limit = max(n, 0)
	return c
}

// Offset skips the first n results. Values <= 0 clear it.
func (r *Reading) Offset(n int) *Reading {
	c := r.clone()
	c.offset = max(n, 0)
	return c
}

// Since restricts results to those created at or after t.
func (r *Reading) Since(t time.Time) *Reading {
	c := r.clone()
	c.since = t
	return c
}

// Until restricts results to those created before t.
func (r *Reading) Until(t time.Time) *Reading {
	c := r.clone()
	c.until = t
	return c
}

// Order sets the result ordering.
func (r *Reading) Order(o Order) *Reading {
	c := r.clone()
	c.order = o
	return c
}

// Locale requests localized strings, e.g. "ja_JP".
func (r *Reading) Locale(locale string) *Reading {
	c := r.clone()
	c.locale = locale
	return c
}

// Filter sets the stream filter key.
func (r *Reading) Filter(filter string) *Reading {
	c := r.clone()
	c.filter = filter
	return c
}

// WithLocation restricts results to objects that carry location data.
func (r *Reading) WithLocation() *Reading {
	c := r.clone()
	c.withLocation = true
	return c
}

// Metadata asks the service to include connection metadata in the response.
func (r *Reading) Metadata() *Reading {
	c := r.clone()
	c.metadata = true
	return c
}

// SelectedFields returns a copy of the selected field names in insertion order.
func (r *Reading) SelectedFields() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.fields...)
}

// IsEmpty reports whether the Reading carries no directive.
func (r *Reading) IsEmpty() bool {
	return r.Query() == ""
}

// Query serializes the Reading into a query-string fragment without a leading
// '?'. Directives appear in a fixed order; unset directives are omitted.
func (r *Reading) Query() string {
	if r == nil {
		return ""
	}

	var parts []string
	if len(r.fields) > 0 {
		escaped := make([]string, len(r.fields))
		for i, f := range r.fields {
			escaped[i] = escapeField(f)
		}
		parts = append(parts, "fields="+strings.Join(escaped, ","))
	}
	if r.limit > 0 {
		parts = append(parts, "limit="+strconv.Itoa(r.limit))
	}
	if r.offset > 0 {
		parts = append(parts, "offset="+strconv.Itoa(r.offset))
	}
	if !r.since.IsZero() {
		parts = append(parts, "since="+strconv.FormatInt(r.since.Unix(), 10))
	}
	if !r.until.IsZero() {
		parts = append(parts, "until="+strconv.FormatInt(r.until.Unix(), 10))
	}
	if r.order != "" {
		parts = append(parts, "order="+url.QueryEscape(string(r.order)))
	}
	if r.locale != "" {
		parts = append(parts, "locale="+url.QueryEscape(r.locale))
	}
	if r.filter != "" {
		parts = append(parts, "filter="+url.QueryEscape(r.filter))
	}
	if r.withLocation {
		parts = append(parts, "with=location")
	}
	if r.metadata {
		parts = append(parts, "metadata=1")
	}
	return strings.Join(parts, "&")
}

// String returns Query().
func (r *Reading) String() string {
	return r.Query()
}

// nested selection syntax stays readable on the wire
var fieldUnescaper = strings.NewReplacer("%28", "(", "%29", ")", "%2C", ",")

func escapeField(f string) string {
	return fieldUnescaper.Replace(url.QueryEscape(f))
}
