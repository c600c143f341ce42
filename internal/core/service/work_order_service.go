package service

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

type workOrderService struct {
	catalog ports.CatalogRepository
	clock   clock.Clock
	log     zerolog.Logger
}

// NewWorkOrderService returns a WorkOrderService implementation.
func NewWorkOrderService(catalog ports.CatalogRepository, clk clock.Clock, log zerolog.Logger) ports.WorkOrderService {
	if clk == nil {
		clk = clock.New()
	}
	return &workOrderService{catalog: catalog, clock: clk, log: log}
}

// Transition validates the state machine and moves work order id to next.
func (s *workOrderService) Transition(ctx context.Context, identity *domain.Identity, id string, next domain.WorkOrderStatus) (*domain.WorkOrder, error) {
	order, err := s.catalog.FindWorkOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("transition work order: %w", err)
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("transition work order: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	now := s.clock.Now().UTC()
	var completedAt *time.Time
	if next == domain.WorkOrderCompleted {
		completedAt = &now
	}

	if err := s.catalog.UpdateWorkOrderStatus(ctx, id, next, completedAt); err != nil {
		return nil, fmt.Errorf("transition work order: update status: %w", err)
	}

	actor := "system"
	if identity != nil {
		actor = identity.Name
	}
	activity := domain.Activity{
		ID:          fmt.Sprintf("act-%s-%s-%d", id, next, now.UnixNano()),
		Type:        transitionActivity(next),
		Message:     fmt.Sprintf("Work order %s %s by %s", id, transitionVerb(next), actor),
		Timestamp:   now,
		ApartmentID: order.ApartmentID,
	}
	if err := s.catalog.AppendActivity(ctx, activity); err != nil {
		s.log.Warn().Err(err).Str("work_order", id).Msg("failed to record work order activity")
	}

	s.log.Info().
		Str("work_order", id).
		Str("from", string(order.Status)).
		Str("to", string(next)).
		Msg("work order transitioned")

	order.Status = next
	order.CompletedAt = completedAt
	return order, nil
}

func transitionVerb(status domain.WorkOrderStatus) string {
	switch status {
	case domain.WorkOrderInProgress:
		return "started"
	case domain.WorkOrderCompleted:
		return "completed"
	case domain.WorkOrderCancelled:
		return "cancelled"
	}
	return "updated"
}

func transitionActivity(status domain.WorkOrderStatus) domain.ActivityType {
	switch status {
	case domain.WorkOrderCompleted:
		return domain.ActivitySuccess
	case domain.WorkOrderCancelled:
		return domain.ActivityWarning
	}
	return domain.ActivityInfo
}
