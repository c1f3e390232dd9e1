package sessions

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformed is returned when a cookie value cannot be decoded into a complete payload
var ErrMalformed = errors.New("malformed session")

// Format identifies which encoding a session cookie value was written in
type Format int

const (
	FormatUnknown Format = iota
	// FormatJSON is the payload as a JSON object, usually percent-encoded by the browser
	FormatJSON
	// FormatBase64 is base64 of the JSON payload. New sessions are always written this way.
	FormatBase64
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatBase64:
		return "base64"
	default:
		return "unknown"
	}
}

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// wirePayload accepts the older "slug" key alongside "tenantSlug"
type wirePayload struct {
	Payload
	Slug string `json:"slug"`
}

// Encode serializes the payload in the canonical base64 format.
// Plain JSON is never written since '"' is not a legal cookie octet.
func Encode(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("[sessions Encode] marshal payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses a cookie value written either as JSON or as base64 of JSON.
// The returned format tells which branch matched.
func Decode(value string) (*Payload, Format, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, FormatUnknown, fmt.Errorf("[sessions Decode] empty value: %w", ErrMalformed)
	}

	if raw, ok := jsonObject(value); ok {
		p, err := unmarshalPayload(raw)
		if err != nil {
			return nil, FormatJSON, fmt.Errorf("[sessions Decode] json: %w", err)
		}
		return p, FormatJSON, nil
	}

	raw, ok := decodeBase64(value)
	if !ok {
		return nil, FormatUnknown, fmt.Errorf("[sessions Decode] neither json nor base64: %w", ErrMalformed)
	}
	p, err := unmarshalPayload(raw)
	if err != nil {
		return nil, FormatBase64, fmt.Errorf("[sessions Decode] base64: %w", err)
	}
	return p, FormatBase64, nil
}

// jsonObject returns the value as JSON bytes when it (or its percent-decoded form) is an object.
// Base64 alphabets contain neither '%' nor '{', so the two formats cannot be confused.
func jsonObject(value string) ([]byte, bool) {
	if unescaped, err := url.PathUnescape(value); err == nil {
		value = unescaped
	}
	if !strings.HasPrefix(strings.TrimSpace(value), "{") {
		return nil, false
	}
	return []byte(value), true
}

func decodeBase64(value string) ([]byte, bool) {
	for _, enc := range base64Encodings {
		if raw, err := enc.DecodeString(value); err == nil {
			return raw, true
		}
	}
	return nil, false
}

func unmarshalPayload(raw []byte) (*Payload, error) {
	var w wirePayload
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrMalformed)
	}
	p := w.Payload
	if p.TenantSlug == "" {
		p.TenantSlug = w.Slug
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
