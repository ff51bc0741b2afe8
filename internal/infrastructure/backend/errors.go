package backend

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// categorize maps an upstream status code onto the console's error taxonomy.
func categorize(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return domain.ErrBadRequest
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusForbidden:
		return domain.ErrForbidden
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case status == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case status >= 500:
		return domain.ErrUpstream
	default:
		return domain.ErrBadRequest
	}
}

func newAPIError(method, path string, status int, body []byte) *domain.APIError {
	return &domain.APIError{
		Status:   status,
		Category: categorize(status),
		Message:  ExtractMessage(body),
		Method:   method,
		Path:     path,
	}
}

// ExtractMessage builds a human-readable message from an error body. Field
// level shapes win over the top-level text:
//
//	{"details": ["a", {"field": "x", "message": "b"}]} → "a; b"
//	{"errors": {"email": "taken", "name": ["required"]}} → "email: taken; name: required"
//	{"message": "..."} or {"error": "..."}              → the text itself
//
// It returns "" when nothing usable is present.
func ExtractMessage(body []byte) string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return ""
	}

	var parts []string
	if d, ok := raw["details"]; ok {
		parts = append(parts, detailMessages(d)...)
	}
	if e, ok := raw["errors"]; ok {
		parts = append(parts, fieldMessages(e)...)
	}
	if len(parts) > 0 {
		return strings.Join(parts, "; ")
	}

	for _, key := range []string{"message", "error"} {
		if s := asString(raw[key]); s != "" {
			return s
		}
	}
	return ""
}

func detailMessages(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		if s := asString(raw); s != "" {
			return []string{s}
		}
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, s)
			continue
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		for _, key := range []string{"message", "msg", "error"} {
			if s := asString(obj[key]); s != "" {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func fieldMessages(raw json.RawMessage) []string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// Some endpoints send "errors" as a plain list.
		return detailMessages(raw)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, name := range names {
		var msgs []string
		if s := asString(fields[name]); s != "" {
			msgs = []string{s}
		} else {
			_ = json.Unmarshal(fields[name], &msgs)
		}
		if len(msgs) > 0 {
			out = append(out, name+": "+strings.Join(msgs, ", "))
		}
	}
	return out
}

func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
