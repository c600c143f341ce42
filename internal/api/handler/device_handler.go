package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthome/building-dashboard/internal/core/ports"
)

// CommandQueue accepts validated device commands for asynchronous execution.
type CommandQueue interface {
	Enqueue(cmd ports.DeviceCommand) error
}

type DeviceHandler struct {
	devices ports.DeviceService
	queue   CommandQueue
}

func NewDeviceHandler(devices ports.DeviceService, queue CommandQueue) *DeviceHandler {
	return &DeviceHandler{devices: devices, queue: queue}
}

// Control queues a command for one of the caller's devices.
//
// @Summary      Control a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Device id"
// @Param        body  body      controlRequest  true  "Target value: number or boolean"
// @Success      202   {object}  controlResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /homeowner/devices/{id}/control [post]
func (h *DeviceHandler) Control(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req controlRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Value == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "value is required")
	}

	cmd, err := h.devices.Control(c.Request().Context(), identity, c.Param("id"), req.Value)
	if err != nil {
		return err
	}
	if err := h.queue.Enqueue(*cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, controlResponse{
		CommandID: cmd.ID,
		DeviceID:  cmd.DeviceID,
		Value:     cmd.Value,
		Status:    "queued",
	})
}
