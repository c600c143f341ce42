package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

type stubDeviceService struct {
	controlFn func(ctx context.Context, identity *domain.Identity, deviceID string, value any) (*ports.DeviceCommand, error)
}

func (s *stubDeviceService) Control(ctx context.Context, identity *domain.Identity, deviceID string, value any) (*ports.DeviceCommand, error) {
	return s.controlFn(ctx, identity, deviceID, value)
}

func (s *stubDeviceService) Apply(context.Context, ports.DeviceCommand) error { return nil }

type stubQueue struct {
	err  error
	cmds []ports.DeviceCommand
}

func (q *stubQueue) Enqueue(cmd ports.DeviceCommand) error {
	if q.err != nil {
		return q.err
	}
	q.cmds = append(q.cmds, cmd)
	return nil
}

func homeownerContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/homeowner/devices/dev-1/control", body), rec)
	c.SetParamNames("id")
	c.SetParamValues("dev-1")
	identity, _ := domain.IdentityFor(domain.RoleHomeowner, time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	c.Set("session", &domain.Session{ID: "s1", Identity: identity})
	return c, rec
}

func acceptingDevices() *stubDeviceService {
	return &stubDeviceService{
		controlFn: func(_ context.Context, _ *domain.Identity, deviceID string, value any) (*ports.DeviceCommand, error) {
			return &ports.DeviceCommand{ID: "cmd-1", DeviceID: deviceID, Value: value}, nil
		},
	}
}

func TestDeviceHandler_Control_Queued(t *testing.T) {
	e := newEcho()
	queue := &stubQueue{}
	h := NewDeviceHandler(acceptingDevices(), queue)

	c, rec := homeownerContext(e, `{"value":true}`)
	if err := h.Control(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(queue.cmds) != 1 || queue.cmds[0].DeviceID != "dev-1" || queue.cmds[0].Value != true {
		t.Fatalf("unexpected queue: %+v", queue.cmds)
	}
}

func TestDeviceHandler_Control_MissingValue(t *testing.T) {
	e := newEcho()
	h := NewDeviceHandler(acceptingDevices(), &stubQueue{})

	c, _ := homeownerContext(e, `{}`)
	var he *echo.HTTPError
	if err := h.Control(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestDeviceHandler_Control_QueueFull(t *testing.T) {
	e := newEcho()
	h := NewDeviceHandler(acceptingDevices(), &stubQueue{err: domain.ErrCommandQueueFull})

	c, _ := homeownerContext(e, `{"value":50}`)
	if err := h.Control(c); !errors.Is(err, domain.ErrCommandQueueFull) {
		t.Fatalf("expected ErrCommandQueueFull, got %v", err)
	}
}

func TestDeviceHandler_Control_RequiresSession(t *testing.T) {
	e := newEcho()
	h := NewDeviceHandler(acceptingDevices(), &stubQueue{})

	c := e.NewContext(jsonRequest(http.MethodPost, "/homeowner/devices/dev-1/control", `{"value":true}`), httptest.NewRecorder())
	var he *echo.HTTPError
	if err := h.Control(c); !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
