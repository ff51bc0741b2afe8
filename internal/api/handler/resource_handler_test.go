package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

type stubCompanyService struct {
	companies []domain.Company
	lastQuery ports.ListQuery
	created   ports.CompanyInput
	createErr error
}

func (s *stubCompanyService) List(_ context.Context, q ports.ListQuery) (*ports.Page[domain.Company], error) {
	s.lastQuery = q
	return &ports.Page[domain.Company]{Items: s.companies, Total: int64(len(s.companies)), Page: 1, Limit: 10, TotalPages: 1}, nil
}

func (s *stubCompanyService) Get(_ context.Context, id string) (*domain.Company, error) {
	return nil, &domain.APIError{Status: 404, Category: domain.ErrNotFound}
}

func (s *stubCompanyService) Create(_ context.Context, in ports.CompanyInput) (*domain.Company, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = in
	c := domain.Company{ID: "c9", Name: in.Name, CompanyCode: in.CompanyCode}
	s.companies = append(s.companies, c)
	return &c, nil
}

func (s *stubCompanyService) Update(_ context.Context, id string, in ports.CompanyInput) (*domain.Company, error) {
	return &domain.Company{ID: id, Name: in.Name}, nil
}

func (s *stubCompanyService) Deactivate(_ context.Context, id string) (*domain.Company, error) {
	return &domain.Company{ID: id, Status: domain.CompanyInactive}, nil
}

func (s *stubCompanyService) Delete(_ context.Context, id string) error { return nil }

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestCompanyHandler_CreateReturnsRecordAndRefetchedList(t *testing.T) {
	e := newTestEcho()
	svc := &stubCompanyService{companies: []domain.Company{{ID: "c1", Name: "Old"}}}
	h := NewCompanyHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/companies?page=2&search=ac", `{"name":"Acme","company_code":"ACME"}`), rec)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp mutationResponse[domain.Company]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "c9", resp.Record.ID)
	require.NotNil(t, resp.List)
	assert.Len(t, resp.List.Items, 2)
	assert.Equal(t, 2, svc.lastQuery.Page)
	assert.Equal(t, "ac", svc.lastQuery.Search)
}

func TestCompanyHandler_CreateValidation(t *testing.T) {
	e := newTestEcho()
	h := NewCompanyHandler(&stubCompanyService{})

	c := e.NewContext(jsonRequest(http.MethodPost, "/companies", `{"name":"A","contact_email":"nope"}`), httptest.NewRecorder())
	err := h.Create(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Contains(t, he.Message, "name must be at least 2")
	assert.Contains(t, he.Message, "company_code is required")
	assert.Contains(t, he.Message, "contact_email must be a valid email")
}

func TestCompanyHandler_BackendErrorPropagates(t *testing.T) {
	e := newTestEcho()
	backendErr := &domain.APIError{Status: 400, Category: domain.ErrBadRequest, Message: "company_code already exists"}
	h := NewCompanyHandler(&stubCompanyService{createErr: backendErr})

	c := e.NewContext(jsonRequest(http.MethodPost, "/companies", `{"name":"Acme","company_code":"ACME"}`), httptest.NewRecorder())
	assert.ErrorIs(t, h.Create(c), domain.ErrBadRequest)
}

type stubEmployeeService struct {
	employees []domain.Employee
}

func (s *stubEmployeeService) List(context.Context, ports.ListQuery) (*ports.Page[domain.Employee], error) {
	return &ports.Page[domain.Employee]{Items: s.employees, Total: int64(len(s.employees))}, nil
}

func (s *stubEmployeeService) Create(_ context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	return &domain.Employee{ID: "u9", FullName: in.FullName, IsActive: true}, nil
}

func (s *stubEmployeeService) Update(_ context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	return &domain.Employee{ID: id, IsActive: true}, nil
}

func (s *stubEmployeeService) Deactivate(_ context.Context, id string) (*domain.Employee, error) {
	return &domain.Employee{ID: id, IsActive: false}, nil
}

func TestEmployeeHandler_StatusLabels(t *testing.T) {
	e := newTestEcho()
	h := NewEmployeeHandler(&stubEmployeeService{employees: []domain.Employee{
		{ID: "u1", IsActive: true},
		{ID: "u2", IsActive: false},
	}})

	rec := httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/employees", nil), rec)))

	var page struct {
		Items []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Active", page.Items[0].Status)
	assert.Equal(t, "Inactive", page.Items[1].Status)

	rec = httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPut, "/employees/u1/deactivate", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	require.NoError(t, h.Deactivate(c))
	assert.Contains(t, rec.Body.String(), `"status":"Inactive"`)
}

func TestLeadRequest_Input(t *testing.T) {
	req := leadRequest{
		VisitorID:    "v1",
		Visitor:      visitorRequest{FullName: "Eve", Phone: "555"},
		Interests:    "Hot",
		FollowUpDate: "2026-04-01",
	}
	in := req.input()
	require.NotNil(t, in.FollowUpDate)
	assert.Equal(t, "2026-04-01", in.FollowUpDate.Format("2006-01-02"))
	assert.Equal(t, "Eve", in.Visitor.FullName)

	req.FollowUpDate = ""
	assert.Nil(t, req.input().FollowUpDate)
}
