package types

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Media is a file uploaded as part of a mutation, e.g. a photo or video source.
type Media struct {
	// Name is the file name sent in the multipart part
	Name string
	// Content is read once when the request is sent
	Content io.Reader
}

// NewMedia wraps raw bytes as an upload.
func NewMedia(name string, data []byte) *Media {
	return &Media{Name: name, Content: bytes.NewReader(data)}
}

// MediaFromFile loads a file from disk as an upload.
func MediaFromFile(path string) (*Media, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read media file: %w", err)
	}
	return NewMedia(filepath.Base(path), data), nil
}

// Param is a single request parameter. When File is set the request is sent as
// multipart/form-data and Value is ignored.
type Param struct {
	Name  string
	Value string
	File  *Media
}

// Params is an ordered list of request parameters. Names may repeat.
type Params []Param

// P builds a Params list from alternating name/value pairs. Values are formatted with %v.
// A trailing name without a value is ignored.
func P(pairs ...any) Params {
	ps := make(Params, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		ps = append(ps, Param{Name: fmt.Sprint(pairs[i]), Value: formatValue(pairs[i+1])})
	}
	return ps
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}

// File returns a parameter carrying an upload.
func File(name string, media *Media) Param {
	return Param{Name: name, File: media}
}

// Add appends a parameter and returns the extended list.
func (ps Params) Add(name, value string) Params {
	return append(ps, Param{Name: name, Value: value})
}

// Merge concatenates parameter lists in order. Duplicate names are kept.
func Merge(lists ...Params) Params {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	merged := make(Params, 0, n)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	return merged
}

// Has reports whether a parameter with the given name is present.
func (ps Params) Has(name string) bool {
	for _, p := range ps {
		if p.Name == name {
			return true
		}
	}
	return false
}

// HasFile reports whether any parameter carries an upload.
func (ps Params) HasFile() bool {
	for _, p := range ps {
		if p.File != nil {
			return true
		}
	}
	return false
}
