package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stores
// ---------------------------------------------------------------------------

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	saveErr  error
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]*domain.Session)}
}

func (m *memSessions) Save(_ context.Context, s *domain.Session, _ time.Duration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *s
	m.sessions[s.ID] = &clone
	return nil
}

func (m *memSessions) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

type memNotifications struct {
	mu    sync.Mutex
	queue map[string][]domain.Notification
}

func newMemNotifications() *memNotifications {
	return &memNotifications{queue: make(map[string][]domain.Notification)}
}

func (m *memNotifications) Append(_ context.Context, sid string, n domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue[sid] = append(m.queue[sid], n)
	return nil
}

func (m *memNotifications) List(_ context.Context, sid string) ([]domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Notification(nil), m.queue[sid]...), nil
}

func (m *memNotifications) Remove(_ context.Context, sid, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, n := range m.queue[sid] {
		if n.ID == id {
			m.queue[sid] = append(m.queue[sid][:i], m.queue[sid][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memNotifications) Clear(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.queue, sid)
	return nil
}

// messages returns "type:message" for every queued notification of sid.
func (m *memNotifications) messages(sid string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.queue[sid]))
	for _, n := range m.queue[sid] {
		out = append(out, string(n.Type)+":"+n.Message)
	}
	return out
}

type memExports struct {
	mu    sync.Mutex
	jobs  map[string]domain.ExportJob
	files map[string][]byte
}

func newMemExports() *memExports {
	return &memExports{jobs: make(map[string]domain.ExportJob), files: make(map[string][]byte)}
}

func (m *memExports) SaveJob(_ context.Context, job *domain.ExportJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[job.ID] = *job
	return nil
}

func (m *memExports) GetJob(_ context.Context, id string) (*domain.ExportJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, domain.ErrExportNotFound
	}
	return &j, nil
}

func (m *memExports) SaveFile(_ context.Context, id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[id] = data
	return nil
}

func (m *memExports) GetFile(_ context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[id]
	if !ok {
		return nil, domain.ErrExportNotFound
	}
	return f, nil
}

type memDedup struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemDedup() *memDedup { return &memDedup{held: make(map[string]bool)} }

func (m *memDedup) Acquire(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[key] {
		return false, nil
	}
	m.held[key] = true
	return true, nil
}

func (m *memDedup) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, key)
	return nil
}

type memSettings struct {
	byUser map[string]domain.Settings
}

func newMemSettings() *memSettings { return &memSettings{byUser: make(map[string]domain.Settings)} }

func (m *memSettings) FindByUser(_ context.Context, userID string) (*domain.Settings, error) {
	s, ok := m.byUser[userID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memSettings) Upsert(_ context.Context, s *domain.Settings) error {
	m.byUser[s.UserID] = *s
	return nil
}

// ---------------------------------------------------------------------------
// Stub backend
// ---------------------------------------------------------------------------

type stubBackend struct {
	mu sync.Mutex

	login    *ports.LoginResult
	loginErr error

	companies []domain.Company
	users     []domain.Employee
	admins    []domain.Employee
	visitors  []domain.Visitor
	leads     []domain.Lead
	badges    []domain.BadgeMapping
	audit     []domain.AuditLog

	overview *ports.PlatformOverview
	company  *ports.CompanyDashboard

	err error // returned by every call except Login when set

	calls      []string
	lastQuery  ports.ListQuery
	lastUser   ports.EmployeeInput
	lastLead   ports.LeadInput
	lastVisit  ports.VisitorInput
	lastBadge  ports.BadgeMappingInput
	lastCompIn ports.CompanyInput
}

var _ ports.Backend = (*stubBackend)(nil)

func (b *stubBackend) record(call string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call)
	return b.err
}

func (b *stubBackend) recordList(call string, q ports.ListQuery) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call)
	b.lastQuery = q
	return b.err
}

func (b *stubBackend) called() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func pageOf[T any](items []T, q ports.ListQuery) *ports.Page[T] {
	limit := q.Limit
	if limit <= 0 {
		limit = len(items)
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	totalPages := 1
	if limit > 0 {
		totalPages = (len(items) + limit - 1) / limit
	}
	return &ports.Page[T]{
		Items:      append([]T(nil), items[start:end]...),
		Total:      int64(len(items)),
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func (b *stubBackend) Login(_ context.Context, _, _ string) (*ports.LoginResult, error) {
	_ = b.record("POST /auth/login")
	if b.loginErr != nil {
		return nil, b.loginErr
	}
	return b.login, nil
}

func (b *stubBackend) ListCompanies(_ context.Context, q ports.ListQuery) (*ports.Page[domain.Company], error) {
	if err := b.recordList("GET /admin/companies", q); err != nil {
		return nil, err
	}
	return pageOf(b.companies, q), nil
}

func (b *stubBackend) GetCompany(_ context.Context, id string) (*domain.Company, error) {
	if err := b.record("GET /admin/companies/" + id); err != nil {
		return nil, err
	}
	for _, c := range b.companies {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, &domain.APIError{Status: 404, Category: domain.ErrNotFound, Message: "Company not found"}
}

func (b *stubBackend) CreateCompany(_ context.Context, in ports.CompanyInput) (*domain.Company, error) {
	if err := b.record("POST /admin/companies"); err != nil {
		return nil, err
	}
	b.lastCompIn = in
	return &domain.Company{ID: "c-new", Name: in.Name, CompanyCode: in.CompanyCode, Status: domain.CompanyStatus(in.Status)}, nil
}

func (b *stubBackend) UpdateCompany(_ context.Context, id string, in ports.CompanyInput) (*domain.Company, error) {
	if err := b.record("PUT /admin/companies/" + id); err != nil {
		return nil, err
	}
	b.lastCompIn = in
	return &domain.Company{ID: id, Name: in.Name, Status: domain.CompanyStatus(in.Status)}, nil
}

func (b *stubBackend) DeleteCompany(_ context.Context, id string) error {
	return b.record("DELETE /admin/companies/" + id)
}

func (b *stubBackend) ListUsers(_ context.Context, q ports.ListQuery) (*ports.Page[domain.Employee], error) {
	if err := b.recordList("GET /admin/users", q); err != nil {
		return nil, err
	}
	return pageOf(b.users, q), nil
}

func (b *stubBackend) CreateUser(_ context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	if err := b.record("POST /admin/users"); err != nil {
		return nil, err
	}
	b.lastUser = in
	return &domain.Employee{ID: "u-new", FullName: in.FullName, Role: domain.Role(in.Role), CompanyID: in.CompanyID, IsActive: true}, nil
}

func (b *stubBackend) UpdateUser(_ context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	if err := b.record("PUT /admin/users/" + id); err != nil {
		return nil, err
	}
	b.lastUser = in
	return &domain.Employee{ID: id, FullName: in.FullName, CompanyID: in.CompanyID, IsActive: true}, nil
}

func (b *stubBackend) DeactivateUser(_ context.Context, id string) (*domain.Employee, error) {
	if err := b.record("PUT /admin/users/" + id + "/deactivate"); err != nil {
		return nil, err
	}
	return &domain.Employee{ID: id, IsActive: false}, nil
}

func (b *stubBackend) ListCompanyAdmins(_ context.Context, q ports.ListQuery) (*ports.Page[domain.Employee], error) {
	if err := b.recordList("GET /admin/company-admins", q); err != nil {
		return nil, err
	}
	return pageOf(b.admins, q), nil
}

func (b *stubBackend) CreateCompanyAdmin(_ context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	if err := b.record("POST /admin/company-admins"); err != nil {
		return nil, err
	}
	b.lastUser = in
	return &domain.Employee{ID: "a-new", Role: domain.Role(in.Role), CompanyID: in.CompanyID, IsActive: true}, nil
}

func (b *stubBackend) UpdateCompanyAdmin(_ context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	if err := b.record("PUT /admin/company-admins/" + id); err != nil {
		return nil, err
	}
	b.lastUser = in
	return &domain.Employee{ID: id}, nil
}

func (b *stubBackend) ListVisitors(_ context.Context, q ports.ListQuery) (*ports.Page[domain.Visitor], error) {
	if err := b.recordList("GET /visitors", q); err != nil {
		return nil, err
	}
	return pageOf(b.visitors, q), nil
}

func (b *stubBackend) SearchVisitorsByPhone(_ context.Context, phone string) ([]domain.Visitor, error) {
	if err := b.record("GET /visitors/search/" + phone); err != nil {
		return nil, err
	}
	var out []domain.Visitor
	for _, v := range b.visitors {
		if v.Phone == phone {
			out = append(out, v)
		}
	}
	return out, nil
}

func (b *stubBackend) CreateVisitor(_ context.Context, in ports.VisitorInput) (*domain.Visitor, error) {
	if err := b.record("POST /visitors"); err != nil {
		return nil, err
	}
	b.lastVisit = in
	return &domain.Visitor{ID: "v-new", FullName: in.FullName, Phone: in.Phone}, nil
}

func (b *stubBackend) UpdateVisitor(_ context.Context, id string, in ports.VisitorInput) (*domain.Visitor, error) {
	if err := b.record("PUT /visitors/" + id); err != nil {
		return nil, err
	}
	b.lastVisit = in
	return &domain.Visitor{ID: id, FullName: in.FullName}, nil
}

func (b *stubBackend) DeleteVisitor(_ context.Context, id string) error {
	return b.record("DELETE /visitors/" + id)
}

func (b *stubBackend) VisitorStats(_ context.Context) (*ports.VisitorStats, error) {
	if err := b.record("GET /visitors/stats/overview"); err != nil {
		return nil, err
	}
	return &ports.VisitorStats{TotalVisitors: len(b.visitors)}, nil
}

func (b *stubBackend) ListLeads(_ context.Context, q ports.ListQuery) (*ports.Page[domain.Lead], error) {
	if err := b.recordList("GET /leads", q); err != nil {
		return nil, err
	}
	return pageOf(b.leads, q), nil
}

func (b *stubBackend) GetLead(_ context.Context, id string) (*domain.Lead, error) {
	if err := b.record("GET /leads/" + id); err != nil {
		return nil, err
	}
	for _, l := range b.leads {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, &domain.APIError{Status: 404, Category: domain.ErrNotFound}
}

func (b *stubBackend) CreateLead(_ context.Context, in ports.LeadInput) (*domain.Lead, error) {
	if err := b.record("POST /leads"); err != nil {
		return nil, err
	}
	b.lastLead = in
	return &domain.Lead{ID: "l-new", VisitorID: in.VisitorID, CompanyID: in.CompanyID}, nil
}

func (b *stubBackend) UpdateLead(_ context.Context, id string, in ports.LeadInput) (*domain.Lead, error) {
	if err := b.record("PUT /leads/" + id); err != nil {
		return nil, err
	}
	b.lastLead = in
	return &domain.Lead{ID: id, VisitorID: in.VisitorID, Notes: in.Notes}, nil
}

func (b *stubBackend) DeleteLead(_ context.Context, id string) error {
	return b.record("DELETE /leads/" + id)
}

func (b *stubBackend) LeadStats(_ context.Context) (*ports.LeadStats, error) {
	if err := b.record("GET /leads/stats/overview"); err != nil {
		return nil, err
	}
	return &ports.LeadStats{TotalLeads: len(b.leads)}, nil
}

func (b *stubBackend) ListBadgeMappings(_ context.Context, q ports.ListQuery) (*ports.Page[domain.BadgeMapping], error) {
	if err := b.recordList("GET /admin/badge-mappings", q); err != nil {
		return nil, err
	}
	return pageOf(b.badges, q), nil
}

func (b *stubBackend) CreateBadgeMapping(_ context.Context, in ports.BadgeMappingInput) (*domain.BadgeMapping, error) {
	if err := b.record("POST /admin/badge-mappings"); err != nil {
		return nil, err
	}
	b.lastBadge = in
	return &domain.BadgeMapping{ID: "b-new", BadgeID: in.BadgeID, EmployeeID: in.EmployeeID, CompanyID: in.CompanyID}, nil
}

func (b *stubBackend) DeleteBadgeMapping(_ context.Context, id string) error {
	return b.record("DELETE /admin/badge-mappings/" + id)
}

func (b *stubBackend) ListAuditLogs(_ context.Context, q ports.ListQuery) (*ports.Page[domain.AuditLog], error) {
	if err := b.recordList("GET /admin/audit-logs", q); err != nil {
		return nil, err
	}
	return pageOf(b.audit, q), nil
}

func (b *stubBackend) PlatformOverview(_ context.Context) (*ports.PlatformOverview, error) {
	if err := b.record("GET /admin/dashboard/overview"); err != nil {
		return nil, err
	}
	return b.overview, nil
}

func (b *stubBackend) CompanyDashboard(_ context.Context) (*ports.CompanyDashboard, error) {
	if err := b.record("GET /admin/dashboard/company"); err != nil {
		return nil, err
	}
	return b.company, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func sessionCtx(role domain.Role) context.Context {
	return domain.WithSession(context.Background(), &domain.Session{
		ID:    "s1",
		Token: "backend-token",
		User:  domain.User{ID: "u1", FullName: "Ana", Role: role, CompanyID: "c1"},
	})
}

func newTestNotifier() (*NotificationService, *memNotifications) {
	store := newMemNotifications()
	return NewNotificationService(store, time.Minute, zerolog.Nop()), store
}
