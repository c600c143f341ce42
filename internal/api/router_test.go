package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/smarthome/building-dashboard/internal/api/handler"
	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
	"github.com/smarthome/building-dashboard/internal/core/service"
	"github.com/smarthome/building-dashboard/internal/infrastructure/db/memory"
	"github.com/smarthome/building-dashboard/internal/infrastructure/fixtures"
	"github.com/smarthome/building-dashboard/internal/infrastructure/token"
)

const testCookie = "dashboard_session"

var domainNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

type recordingQueue struct {
	mu   sync.Mutex
	cmds []ports.DeviceCommand
}

func (q *recordingQueue) Enqueue(cmd ports.DeviceCommand) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.cmds = append(q.cmds, cmd)
	return nil
}

type testServer struct {
	e       *echo.Echo
	queue   *recordingQueue
	catalog *memory.CatalogRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithVerifier(t, nil)
}

func newTestServerWithVerifier(t *testing.T, verifier ports.CredentialVerifier) *testServer {
	t.Helper()
	log := zerolog.Nop()
	catalog := memory.NewCatalogRepository(fixtures.Seed(domainNow))
	tokens := token.NewJWTIssuer(token.JWTConfig{Secret: "test-secret", Issuer: "building-dashboard"})
	sessions := service.NewSessionService(
		memory.NewSessionRepository(0, nil),
		verifier,
		tokens,
		service.SessionOptions{AllowRoleSwitch: true},
		log,
	)
	queue := &recordingQueue{}

	e := NewRouter(Dependencies{
		Log:        log,
		Sessions:   sessions,
		Tokens:     tokens,
		Dashboards: service.NewDashboardService(catalog, service.SystemInfo{Environment: "test"}, log),
		Devices:    service.NewDeviceService(catalog, nil, log),
		WorkOrders: service.NewWorkOrderService(catalog, nil, log),
		Commands:   queue,
		Cookie:     handler.CookieConfig{Name: testCookie},
		Registry:   prometheus.NewRegistry(),
	})
	return &testServer{e: e, queue: queue, catalog: catalog}
}

func (s *testServer) do(method, path, bearer, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// login signs in as role and returns the session token.
func (s *testServer) login(t *testing.T, role domain.Role) string {
	t.Helper()
	rec := s.do(http.MethodPost, "/auth/login", "", `{"email":"a@b.com","password":"x","role":"`+string(role)+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", role, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token    string `json:"token"`
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if resp.Redirect != role.RootPath() {
		t.Fatalf("expected redirect %s, got %s", role.RootPath(), resp.Redirect)
	}
	return resp.Token
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != location {
		t.Fatalf("expected redirect to %s, got %s", location, got)
	}
}

func TestRouter_AnonymousIsSentToLogin(t *testing.T) {
	s := newTestServer(t)

	expectRedirect(t, s.do(http.MethodGet, "/admin", "", ""), "/login")
	expectRedirect(t, s.do(http.MethodGet, "/admin/reports", "", ""), "/login")
	expectRedirect(t, s.do(http.MethodGet, "/", "", ""), "/login")

	rec := s.do(http.MethodGet, "/login", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected login view, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"view":"login"`) {
		t.Fatalf("unexpected login view: %s", rec.Body.String())
	}
}

func TestRouter_RoleMismatchGoesToOwnRoot(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, domain.RoleHomeowner)

	expectRedirect(t, s.do(http.MethodGet, "/admin", tok, ""), "/homeowner")
	expectRedirect(t, s.do(http.MethodGet, "/maintenance/orders", tok, ""), "/homeowner")
	expectRedirect(t, s.do(http.MethodPost, "/maintenance/orders/wo-001/start", tok, ""), "/homeowner")
	expectRedirect(t, s.do(http.MethodGet, "/", tok, ""), "/homeowner")
}

func TestRouter_MaintenanceOrdersRender(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, domain.RoleMaintenance)

	rec := s.do(http.MethodGet, "/maintenance/orders", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var view struct {
		Name       string `json:"view"`
		ActivePath string `json:"active_path"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.Name != "maintenance.orders" || view.ActivePath != "/maintenance/orders" {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestRouter_LoginAuthenticatesWithCookie(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/auth/login", "", `{"email":"a@b.com","password":"x","role":"admin"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" || !cookie.HttpOnly {
		t.Fatalf("session cookie not set: %+v", cookie)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)
	me := httptest.NewRecorder()
	s.e.ServeHTTP(me, req)

	var resp struct {
		Authenticated bool             `json:"authenticated"`
		Identity      *domain.Identity `json:"identity"`
	}
	if err := json.Unmarshal(me.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if !resp.Authenticated || resp.Identity == nil || resp.Identity.Role != domain.RoleAdmin {
		t.Fatalf("expected authenticated admin, got %+v", resp)
	}
}

func TestRouter_LoginRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"unknown role":  `{"email":"a@b.com","password":"x","role":"superuser"}`,
		"missing email": `{"password":"x","role":"admin"}`,
		"bad email":     `{"email":"nope","password":"x","role":"admin"}`,
	}
	for name, body := range cases {
		if rec := s.do(http.MethodPost, "/auth/login", "", body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestRouter_UnknownPathIsNotFound(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, domain.RoleAdmin)

	for _, bearer := range []string{"", tok} {
		rec := s.do(http.MethodGet, "/unknown/path", bearer, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "" {
			t.Fatalf("not-found view must not redirect, got %s", loc)
		}
		var resp struct {
			Name string `json:"view"`
			Path string `json:"path"`
			Home string `json:"home"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		want := "/login"
		if bearer != "" {
			want = "/admin"
		}
		if resp.Name != "not_found" || resp.Path != "/unknown/path" || resp.Home != want {
			t.Fatalf("unexpected not-found view %+v", resp)
		}
	}
}

func TestRouter_LogoutEndsSession(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, domain.RoleAdmin)

	if rec := s.do(http.MethodGet, "/admin", tok, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 before logout, got %d", rec.Code)
	}
	if rec := s.do(http.MethodPost, "/auth/logout", tok, ""); rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	expectRedirect(t, s.do(http.MethodGet, "/admin", tok, ""), "/login")

	// A second logout is a no-op.
	if rec := s.do(http.MethodPost, "/auth/logout", tok, ""); rec.Code != http.StatusOK {
		t.Fatalf("second logout: expected 200, got %d", rec.Code)
	}
}

func TestRouter_SwitchRoleKeepsSession(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, domain.RoleAdmin)

	rec := s.do(http.MethodPost, "/auth/switch-role", tok, `{"role":"maintenance"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("switch: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	expectRedirect(t, s.do(http.MethodGet, "/admin", tok, ""), "/maintenance")
}

func TestRouter_SecondLoginRetiresPreviousToken(t *testing.T) {
	s := newTestServer(t)
	first := s.login(t, domain.RoleAdmin)

	rec := s.do(http.MethodPost, "/auth/login", first, `{"email":"a@b.com","password":"x","role":"homeowner"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if resp.Token == "" || resp.Token == first {
		t.Fatalf("expected a new token, got %q", resp.Token)
	}

	expectRedirect(t, s.do(http.MethodGet, "/admin", first, ""), "/login")
	if rec := s.do(http.MethodGet, "/homeowner", resp.Token, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected homeowner view with new token, got %d", rec.Code)
	}
}

func TestRouter_SwitchRoleCannotBypassPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	s := newTestServerWithVerifier(t, service.NewBcryptVerifier(map[domain.Role]string{domain.RoleAdmin: string(hash)}))

	rec := s.do(http.MethodPost, "/auth/switch-role", "", `{"role":"admin"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("anonymous switch to admin: expected 403, got %d: %s", rec.Code, rec.Body.String())
	}

	tok := s.login(t, domain.RoleHomeowner)
	if rec := s.do(http.MethodPost, "/auth/switch-role", tok, `{"role":"admin"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("switch to admin: expected 403, got %d", rec.Code)
	}
	expectRedirect(t, s.do(http.MethodGet, "/admin", tok, ""), "/homeowner")
}

func TestRouter_DeviceControlIsQueued(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, domain.RoleHomeowner)

	rec := s.do(http.MethodPost, "/homeowner/devices/dev-101-thermo/control", tok, `{"value":24.5}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(s.queue.cmds) != 1 || s.queue.cmds[0].DeviceID != "dev-101-thermo" || s.queue.cmds[0].Value != 24.5 {
		t.Fatalf("unexpected queued commands %+v", s.queue.cmds)
	}

	cases := []struct {
		path, body string
		code       int
	}{
		{"/homeowner/devices/dev-101-thermo/control", `{"value":99}`, http.StatusUnprocessableEntity},
		{"/homeowner/devices/dev-101-thermo/control", `{}`, http.StatusBadRequest},
		{"/homeowner/devices/dev-101-doorbell/control", `{"value":true}`, http.StatusConflict},
		{"/homeowner/devices/dev-102-lock/control", `{"value":true}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		if rec := s.do(http.MethodPost, tc.path, tok, tc.body); rec.Code != tc.code {
			t.Fatalf("%s %s: expected %d, got %d", tc.path, tc.body, tc.code, rec.Code)
		}
	}
	if len(s.queue.cmds) != 1 {
		t.Fatalf("rejected commands must not be queued")
	}
}

func TestRouter_WorkOrderTransitions(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, domain.RoleMaintenance)

	rec := s.do(http.MethodPost, "/maintenance/orders/wo-001/start", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var order domain.WorkOrder
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Status != domain.WorkOrderInProgress {
		t.Fatalf("expected in-progress, got %s", order.Status)
	}

	if rec := s.do(http.MethodPost, "/maintenance/orders/wo-007/cancel", tok, ""); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("terminal order: expected 422, got %d", rec.Code)
	}
	if rec := s.do(http.MethodPost, "/maintenance/orders/wo-404/start", tok, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("missing order: expected 404, got %d", rec.Code)
	}
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	if rec := s.do(http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", rec.Code)
	}
	if rec := s.do(http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d", rec.Code)
	}
	if rec := s.do(http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}
