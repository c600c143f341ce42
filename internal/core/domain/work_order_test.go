package domain

import "testing"

func TestWorkOrderStatus_CanTransitionTo(t *testing.T) {
	valid := [][2]WorkOrderStatus{
		{WorkOrderPending, WorkOrderInProgress},
		{WorkOrderPending, WorkOrderCancelled},
		{WorkOrderInProgress, WorkOrderCompleted},
		{WorkOrderInProgress, WorkOrderCancelled},
	}
	for _, p := range valid {
		if !p[0].CanTransitionTo(p[1]) {
			t.Fatalf("expected %s -> %s to be valid", p[0], p[1])
		}
	}

	invalid := [][2]WorkOrderStatus{
		{WorkOrderPending, WorkOrderCompleted},
		{WorkOrderCompleted, WorkOrderInProgress},
		{WorkOrderCancelled, WorkOrderPending},
		{WorkOrderInProgress, WorkOrderPending},
	}
	for _, p := range invalid {
		if p[0].CanTransitionTo(p[1]) {
			t.Fatalf("expected %s -> %s to be invalid", p[0], p[1])
		}
	}
}

func TestWorkOrderPriority_Rank(t *testing.T) {
	if !(PriorityUrgent.Rank() < PriorityHigh.Rank() &&
		PriorityHigh.Rank() < PriorityMedium.Rank() &&
		PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Fatalf("priorities out of order")
	}
}
