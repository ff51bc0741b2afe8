package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

type employeeService interface {
	List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Employee], error)
	Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error)
	Deactivate(ctx context.Context, id string) (*domain.Employee, error)
}

type companyAdminService interface {
	List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Employee], error)
	Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error)
}

// employeePage attaches the derived status label to every row.
func employeePage(p *ports.Page[domain.Employee]) *ports.Page[employeeView] {
	if p == nil {
		return nil
	}
	return &ports.Page[employeeView]{
		Items:      employeeViews(p.Items),
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

func employeeMutation(c echo.Context, list func(context.Context, ports.ListQuery) (*ports.Page[domain.Employee], error), e *domain.Employee) mutationResponse[employeeView] {
	res := refetch(c, list, e)
	out := mutationResponse[employeeView]{List: employeePage(res.List)}
	if e != nil {
		out.Record = &employeeView{Employee: *e, Status: e.StatusLabel()}
	}
	return out
}

// EmployeeHandler serves the company admin's Employees page.
type EmployeeHandler struct {
	service employeeService
}

func NewEmployeeHandler(service employeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /employees.
//
// @Summary      List employees of the admin's company
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Name or email search"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  ports.Page[employeeView]
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeePage(page))
}

// Create handles POST /employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Employee"
// @Success      201   {object}  mutationResponse[employeeView]
// @Failure      400   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employeeMutation(c, h.service.List, e))
}

// Update handles PUT /employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Employee"
// @Success      200   {object}  mutationResponse[employeeView]
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeMutation(c, h.service.List, e))
}

// Deactivate handles PUT /employees/:id/deactivate.
//
// @Summary      Deactivate an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  mutationResponse[employeeView]
// @Router       /employees/{id}/deactivate [put]
func (h *EmployeeHandler) Deactivate(c echo.Context) error {
	e, err := h.service.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeMutation(c, h.service.List, e))
}

// CompanyAdminHandler serves the platform admin's Company Admins page.
type CompanyAdminHandler struct {
	service companyAdminService
}

func NewCompanyAdminHandler(service companyAdminService) *CompanyAdminHandler {
	return &CompanyAdminHandler{service: service}
}

// List handles GET /company-admins.
//
// @Summary      List company admins
// @Tags         company-admins
// @Produce      json
// @Security     BearerAuth
// @Param        company_id  query     string  false  "Company filter"
// @Param        page        query     int     false  "Page (1-based)"
// @Param        limit       query     int     false  "Page size"
// @Success      200         {object}  ports.Page[employeeView]
// @Router       /company-admins [get]
func (h *CompanyAdminHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeePage(page))
}

// Create handles POST /company-admins.
//
// @Summary      Create a company admin
// @Tags         company-admins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Company admin"
// @Success      201   {object}  mutationResponse[employeeView]
// @Router       /company-admins [post]
func (h *CompanyAdminHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.CompanyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "company_id is required")
	}
	e, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employeeMutation(c, h.service.List, e))
}

// Update handles PUT /company-admins/:id.
//
// @Summary      Update a company admin
// @Tags         company-admins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Company admin"
// @Success      200   {object}  mutationResponse[employeeView]
// @Router       /company-admins/{id} [put]
func (h *CompanyAdminHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeMutation(c, h.service.List, e))
}
