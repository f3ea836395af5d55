package internal

import (
	"bytes"
	"encoding/json"
	"fmt"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// Decoder turns one JSON element into a typed value.
type Decoder[T any] func(json.RawMessage) (T, error)

// JSONDecoder returns a Decoder that unmarshals into T with encoding/json.
func JSONDecoder[T any]() Decoder[T] {
	return func(raw json.RawMessage) (T, error) {
		var v T
		err := json.Unmarshal(raw, &v)
		return v, err
	}
}

// List is a decoded list envelope.
type List[T any] struct {
	Items  []T
	Paging types.Paging
	Raw    json.RawMessage
}

type listEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Paging *types.Paging   `json:"paging"`
}

func malformed(format string, args ...any) *pkgerrs.Error {
	return &pkgerrs.Error{Kind: pkgerrs.KindMalformedResponse, Message: fmt.Sprintf(format, args...)}
}

func malformedCause(message string, err error) *pkgerrs.Error {
	return &pkgerrs.Error{Kind: pkgerrs.KindMalformedResponse, Message: message, Err: err}
}

// DecodeList decodes a {"data": [...], "paging": {...}} envelope. Every element
// must decode; a missing or non-array "data" is a malformed response.
func DecodeList[T any](body []byte, decode Decoder[T]) (*List[T], error) {
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, malformedCause("failed to parse list envelope", err)
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || data[0] != '[' {
		return nil, malformed("list envelope has no data array")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, malformedCause("failed to parse data array", err)
	}

	items := make([]T, 0, len(elems))
	for i, raw := range elems {
		item, err := decode(raw)
		if err != nil {
			return nil, malformedCause(fmt.Sprintf("failed to decode element %d", i), err)
		}
		items = append(items, item)
	}

	list := &List[T]{Items: items, Raw: json.RawMessage(body)}
	if env.Paging != nil {
		list.Paging = *env.Paging
	}
	return list, nil
}

// DecodeEntity decodes a bare object. A body of exactly "false" (after trimming)
// means the object is not visible and reports found=false without an error.
func DecodeEntity[T any](body []byte, decode Decoder[T]) (T, bool, error) {
	var zero T
	trimmed := bytes.TrimSpace(body)
	if string(trimmed) == "false" {
		return zero, false, nil
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return zero, false, malformed("expected a JSON object, got %q", preview(trimmed, 64))
	}

	v, err := decode(json.RawMessage(trimmed))
	if err != nil {
		return zero, false, malformedCause("failed to decode object", err)
	}
	return v, true, nil
}

// DecodeAck decodes a plaintext or JSON boolean acknowledgement.
// Anything other than "true" or "false" after trimming is malformed.
func DecodeAck(body []byte) (bool, error) {
	switch string(bytes.TrimSpace(body)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, malformed("expected true or false, got %q", preview(body, 64))
	}
}

// DecodeID reads the "id" of a created object.
func DecodeID(body []byte) (string, error) {
	var created struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", malformedCause("failed to parse creation response", err)
	}
	if len(created.ID) == 0 {
		return "", malformed("creation response has no id")
	}

	// Some endpoints return numeric ids.
	var s string
	if err := json.Unmarshal(created.ID, &s); err == nil && s != "" {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(created.ID, &n); err == nil && n != "" {
		return n.String(), nil
	}
	return "", malformed("creation response has an invalid id %s", created.ID)
}

// DecodeFQL returns the rows of a single FQL query.
func DecodeFQL(body []byte) ([]json.RawMessage, error) {
	list, err := DecodeList(body, func(raw json.RawMessage) (json.RawMessage, error) { return raw, nil })
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

// DecodeMultiFQL returns the result sets of a multi-query keyed by query name.
func DecodeMultiFQL(body []byte) (map[string][]json.RawMessage, error) {
	list, err := DecodeList(body, JSONDecoder[types.FQLResult]())
	if err != nil {
		return nil, err
	}

	results := make(map[string][]json.RawMessage, len(list.Items))
	for _, r := range list.Items {
		if r.Name == "" {
			return nil, malformed("multi-query result has no name")
		}
		results[r.Name] = r.ResultSet
	}
	return results, nil
}

// DecodeAPIError converts a non-2xx body into an APIError. Bodies without the
// {"error": {...}} shape are kept verbatim.
func DecodeAPIError(statusCode int, body []byte) *pkgerrs.APIError {
	var env struct {
		Error *pkgerrs.APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		env.Error.StatusCode = statusCode
		return env.Error
	}
	return &pkgerrs.APIError{StatusCode: statusCode, Body: string(preview(body, 500))}
}

func preview(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
