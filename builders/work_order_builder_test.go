package builders

import (
	"testing"

	"facility/constants"
)

func TestWorkOrderBuilder(t *testing.T) {
	assigneeID := uint(5)
	workOrder := NewWorkOrderBuilder().
		WithTitle("Sửa điều hòa phòng 301").
		WithDescription("Điều hòa không lạnh").
		WithStatus(constants.WorkOrderStatusLogged).
		WithPriority(constants.PriorityHigh).
		WithCategory("HVAC").
		WithLocation(3).
		WithAsset(7).
		WithHotel(1).
		WithCreator(2).
		WithAssignee(&assigneeID).
		Build()

	if workOrder.Title != "Sửa điều hòa phòng 301" {
		t.Errorf("Title = %q", workOrder.Title)
	}
	if workOrder.Priority != constants.PriorityHigh {
		t.Errorf("Priority = %d, want %d", workOrder.Priority, constants.PriorityHigh)
	}
	if workOrder.LocationID != 3 || workOrder.AssetID != 7 || workOrder.HotelID != 1 {
		t.Error("LocationID/AssetID/HotelID không khớp giá trị builder")
	}
	if workOrder.CreatedByID != 2 {
		t.Errorf("CreatedByID = %d, want 2", workOrder.CreatedByID)
	}
	if workOrder.AssignedToID == nil || *workOrder.AssignedToID != assigneeID {
		t.Errorf("AssignedToID = %v, want %d", workOrder.AssignedToID, assigneeID)
	}
}

func TestWorkOrderBuilder_DefaultsToActive(t *testing.T) {
	workOrder := NewWorkOrderBuilder().WithTitle("WO").Build()
	if !workOrder.IsActive {
		t.Error("work order mới build phải active")
	}
	if workOrder.AssignedToID != nil {
		t.Error("AssignedToID mặc định phải nil")
	}
}
