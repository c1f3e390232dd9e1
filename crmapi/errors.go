package crmapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/jrsteele09/crm-gateway-admin/internal/errors"
)

// APIError is a non 2xx response from the integrations API
type APIError struct {
	Op         string
	StatusCode int
	Message    string

	body []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[crmapi %s] status %d: %s", e.Op, e.StatusCode, e.Message)
}

// Unwrap maps the status onto the shared sentinels so callers can use errors.Is
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.ErrNotAuthenticated
	case http.StatusBadRequest:
		return errors.ErrInvalidArgument
	default:
		return errors.ErrUpstream
	}
}

func newAPIError(op string, status int, body []byte, fallback string) *APIError {
	return &APIError{
		Op:         op,
		StatusCode: status,
		Message:    errorMessage(body, fallback),
		body:       body,
	}
}

// jsonBody reports whether the upstream replied with a JSON document
func jsonBody(e *APIError) bool {
	return json.Valid(e.body)
}

// errorMessage prefers a "detail" string, then every field error joined with ", "
// (field errors arrive as strings or lists of strings), then the fallback.
func errorMessage(body []byte, fallback string) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return fallback
	}
	if detail, ok := fields["detail"].(string); ok && detail != "" {
		return detail
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		parts = append(parts, flatten(fields[k])...)
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

func flatten(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, flatten(item)...)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []string
		for _, k := range keys {
			out = append(out, flatten(t[k])...)
		}
		return out
	case nil:
		return nil
	default:
		return []string{fmt.Sprint(t)}
	}
}

// UserMessage turns an error from this package into text that can be shown on a page
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, errors.ErrNotAuthenticated):
		return "No estás autenticado."
	case errors.Is(err, errors.ErrMissingTenant):
		return "No se pudo encontrar el slug de la organización en la sesión."
	case errors.Is(err, errors.ErrInvalidResponse):
		return "Invalid response from server."
	case errors.Is(err, errors.ErrUpstream):
		return "The integrations service could not be reached. Please try again."
	default:
		return "An unknown error occurred."
	}
}
