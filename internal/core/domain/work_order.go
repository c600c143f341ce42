package domain

import "time"

// WorkOrderStatus is the lifecycle state of a work order.
type WorkOrderStatus string

const (
	WorkOrderPending    WorkOrderStatus = "pending"
	WorkOrderInProgress WorkOrderStatus = "in-progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	WorkOrderPending:    {WorkOrderInProgress, WorkOrderCancelled},
	WorkOrderInProgress: {WorkOrderCompleted, WorkOrderCancelled},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s WorkOrderStatus) CanTransitionTo(next WorkOrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Active reports whether the order still needs work.
func (s WorkOrderStatus) Active() bool {
	return s == WorkOrderPending || s == WorkOrderInProgress
}

// WorkOrderPriority ranks how urgently an order must be handled.
type WorkOrderPriority string

const (
	PriorityLow    WorkOrderPriority = "low"
	PriorityMedium WorkOrderPriority = "medium"
	PriorityHigh   WorkOrderPriority = "high"
	PriorityUrgent WorkOrderPriority = "urgent"
)

// Rank orders priorities, urgent first.
func (p WorkOrderPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	}
	return 3
}

// WorkOrder is a maintenance task raised against an apartment or device.
type WorkOrder struct {
	ID          string            `json:"id" bson:"_id"`
	DeviceID    string            `json:"device_id,omitempty" bson:"device_id,omitempty"`
	ApartmentID string            `json:"apartment_id" bson:"apartment_id"`
	Type        string            `json:"type" bson:"type"`
	Status      WorkOrderStatus   `json:"status" bson:"status"`
	Priority    WorkOrderPriority `json:"priority" bson:"priority"`
	Description string            `json:"description" bson:"description"`
	AssignedTo  string            `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}
