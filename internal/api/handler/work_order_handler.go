package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthome/building-dashboard/internal/api/metrics"
	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

type WorkOrderHandler struct {
	orders ports.WorkOrderService
}

func NewWorkOrderHandler(orders ports.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{orders: orders}
}

// Start moves a pending work order to in-progress.
//
// @Summary      Start a work order
// @Tags         work-orders
// @Produce      json
// @Param        id   path      string  true  "Work order id"
// @Success      200  {object}  domain.WorkOrder
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /maintenance/orders/{id}/start [post]
func (h *WorkOrderHandler) Start(c echo.Context) error {
	return h.transition(c, domain.WorkOrderInProgress)
}

// Complete moves an in-progress work order to completed.
//
// @Summary      Complete a work order
// @Tags         work-orders
// @Produce      json
// @Param        id   path      string  true  "Work order id"
// @Success      200  {object}  domain.WorkOrder
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /maintenance/orders/{id}/complete [post]
func (h *WorkOrderHandler) Complete(c echo.Context) error {
	return h.transition(c, domain.WorkOrderCompleted)
}

// Cancel cancels a pending or in-progress work order.
//
// @Summary      Cancel a work order
// @Tags         work-orders
// @Produce      json
// @Param        id   path      string  true  "Work order id"
// @Success      200  {object}  domain.WorkOrder
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /maintenance/orders/{id}/cancel [post]
func (h *WorkOrderHandler) Cancel(c echo.Context) error {
	return h.transition(c, domain.WorkOrderCancelled)
}

func (h *WorkOrderHandler) transition(c echo.Context, next domain.WorkOrderStatus) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.orders.Transition(c.Request().Context(), identity, c.Param("id"), next)
	if err != nil {
		return err
	}

	metrics.WorkOrderTransitionsTotal.WithLabelValues(string(next)).Inc()
	return c.JSON(http.StatusOK, order)
}
