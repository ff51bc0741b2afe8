package backend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// DecodeError reports a 2xx body that does not match the endpoint schema.
type DecodeError struct {
	Endpoint string
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %s", e.Endpoint, e.Reason)
}

func (e *DecodeError) Unwrap() error { return domain.ErrBadResponse }

// dataEnvelope is the single-record and stats response schema: {"data": {...}}.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// pagination is the paging block of list responses.
type pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// listEnvelope is the list response schema: {"data": [...], "pagination": {...}}.
type listEnvelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination *pagination     `json:"pagination"`
}

// loginEnvelope is the POST /auth/login response schema.
type loginEnvelope struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func decodeInto(endpoint string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Endpoint: endpoint, Reason: err.Error()}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeData[T any](endpoint string, env dataEnvelope) (*T, error) {
	if isNull(env.Data) {
		return nil, &DecodeError{Endpoint: endpoint, Reason: `missing "data"`}
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Reason: err.Error()}
	}
	return &out, nil
}

func decodePage[T any](endpoint string, env listEnvelope) (*ports.Page[T], error) {
	if isNull(env.Data) {
		return nil, &DecodeError{Endpoint: endpoint, Reason: `missing "data"`}
	}
	var items []T
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Reason: `"data" is not a list: ` + err.Error()}
	}

	page := &ports.Page[T]{Items: items, Total: int64(len(items)), Page: 1, Limit: len(items), TotalPages: 1}
	if p := env.Pagination; p != nil {
		page.Total = p.Total
		page.Page = p.Page
		page.Limit = p.Limit
		page.TotalPages = p.TotalPages
	}
	return page, nil
}
