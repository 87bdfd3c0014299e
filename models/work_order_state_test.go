package models

import (
	"testing"

	"facility/constants"
)

func TestWorkOrderState_ValidTransitions(t *testing.T) {
	cases := []struct {
		name       string
		fromStatus int
		action     func(WorkOrderState, *WorkOrder) error
		wantStatus int
	}{
		{"logged -> start", constants.WorkOrderStatusLogged, WorkOrderState.Start, constants.WorkOrderStatusInProgress},
		{"logged -> hold", constants.WorkOrderStatusLogged, WorkOrderState.Hold, constants.WorkOrderStatusOnHold},
		{"logged -> cancel", constants.WorkOrderStatusLogged, WorkOrderState.Cancel, constants.WorkOrderStatusCancelled},
		{"in progress -> hold", constants.WorkOrderStatusInProgress, WorkOrderState.Hold, constants.WorkOrderStatusOnHold},
		{"in progress -> complete", constants.WorkOrderStatusInProgress, WorkOrderState.Complete, constants.WorkOrderStatusCompleted},
		{"in progress -> cancel", constants.WorkOrderStatusInProgress, WorkOrderState.Cancel, constants.WorkOrderStatusCancelled},
		{"on hold -> start", constants.WorkOrderStatusOnHold, WorkOrderState.Start, constants.WorkOrderStatusInProgress},
		{"on hold -> cancel", constants.WorkOrderStatusOnHold, WorkOrderState.Cancel, constants.WorkOrderStatusCancelled},
	}

	for _, tc := range cases {
		workOrder := &WorkOrder{Status: tc.fromStatus}
		state := GetWorkOrderState(workOrder.Status)
		if err := tc.action(state, workOrder); err != nil {
			t.Errorf("%s: lỗi không mong đợi: %v", tc.name, err)
			continue
		}
		if workOrder.Status != tc.wantStatus {
			t.Errorf("%s: status = %d, want %d", tc.name, workOrder.Status, tc.wantStatus)
		}
	}
}

func TestWorkOrderState_InvalidTransitions(t *testing.T) {
	cases := []struct {
		name       string
		fromStatus int
		action     func(WorkOrderState, *WorkOrder) error
	}{
		{"logged -> complete", constants.WorkOrderStatusLogged, WorkOrderState.Complete},
		{"in progress -> start", constants.WorkOrderStatusInProgress, WorkOrderState.Start},
		{"on hold -> hold", constants.WorkOrderStatusOnHold, WorkOrderState.Hold},
		{"on hold -> complete", constants.WorkOrderStatusOnHold, WorkOrderState.Complete},
		{"cancelled -> start", constants.WorkOrderStatusCancelled, WorkOrderState.Start},
		{"cancelled -> complete", constants.WorkOrderStatusCancelled, WorkOrderState.Complete},
		{"completed -> start", constants.WorkOrderStatusCompleted, WorkOrderState.Start},
		{"completed -> cancel", constants.WorkOrderStatusCompleted, WorkOrderState.Cancel},
	}

	for _, tc := range cases {
		workOrder := &WorkOrder{Status: tc.fromStatus}
		state := GetWorkOrderState(workOrder.Status)
		if err := tc.action(state, workOrder); err == nil {
			t.Errorf("%s: phải trả lỗi nhưng không có", tc.name)
		}
		if workOrder.Status != tc.fromStatus {
			t.Errorf("%s: chuyển trạng thái sai không được đổi status, got %d", tc.name, workOrder.Status)
		}
	}
}

func TestGetWorkOrderState_UnknownDefaultsToLogged(t *testing.T) {
	state := GetWorkOrderState(99)
	if _, ok := state.(*LoggedState); !ok {
		t.Errorf("trạng thái lạ phải trả LoggedState, got %T", state)
	}
}
