package models

import (
	"errors"

	"facility/constants"
)

// WorkOrderState định nghĩa interface cho các trạng thái lệnh công việc
type WorkOrderState interface {
	Start(wo *WorkOrder) error
	Hold(wo *WorkOrder) error
	Cancel(wo *WorkOrder) error
	Complete(wo *WorkOrder) error
}

// LoggedState trạng thái mới ghi nhận
type LoggedState struct{}

func (s *LoggedState) Start(wo *WorkOrder) error {
	wo.Status = constants.WorkOrderStatusInProgress
	return nil
}

func (s *LoggedState) Hold(wo *WorkOrder) error {
	wo.Status = constants.WorkOrderStatusOnHold
	return nil
}

func (s *LoggedState) Cancel(wo *WorkOrder) error {
	wo.Status = constants.WorkOrderStatusCancelled
	return nil
}

func (s *LoggedState) Complete(wo *WorkOrder) error {
	return errors.New("cannot complete work order that has not started")
}

// InProgressState trạng thái đang xử lý
type InProgressState struct{}

func (s *InProgressState) Start(wo *WorkOrder) error {
	return errors.New("work order already in progress")
}

func (s *InProgressState) Hold(wo *WorkOrder) error {
	wo.Status = constants.WorkOrderStatusOnHold
	return nil
}

func (s *InProgressState) Cancel(wo *WorkOrder) error {
	wo.Status = constants.WorkOrderStatusCancelled
	return nil
}

func (s *InProgressState) Complete(wo *WorkOrder) error {
	wo.Status = constants.WorkOrderStatusCompleted
	return nil
}

// OnHoldState trạng thái tạm dừng
type OnHoldState struct{}

func (s *OnHoldState) Start(wo *WorkOrder) error {
	wo.Status = constants.WorkOrderStatusInProgress
	return nil
}

func (s *OnHoldState) Hold(wo *WorkOrder) error {
	return errors.New("work order already on hold")
}

func (s *OnHoldState) Cancel(wo *WorkOrder) error {
	wo.Status = constants.WorkOrderStatusCancelled
	return nil
}

func (s *OnHoldState) Complete(wo *WorkOrder) error {
	return errors.New("cannot complete work order on hold")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Start(wo *WorkOrder) error {
	return errors.New("cannot start cancelled work order")
}

func (s *CancelledState) Hold(wo *WorkOrder) error {
	return errors.New("cannot hold cancelled work order")
}

func (s *CancelledState) Cancel(wo *WorkOrder) error {
	return errors.New("work order already cancelled")
}

func (s *CancelledState) Complete(wo *WorkOrder) error {
	return errors.New("cannot complete cancelled work order")
}

// CompletedState trạng thái hoàn thành
type CompletedState struct{}

func (s *CompletedState) Start(wo *WorkOrder) error {
	return errors.New("work order already completed")
}

func (s *CompletedState) Hold(wo *WorkOrder) error {
	return errors.New("work order already completed")
}

func (s *CompletedState) Cancel(wo *WorkOrder) error {
	return errors.New("cannot cancel completed work order")
}

func (s *CompletedState) Complete(wo *WorkOrder) error {
	return errors.New("work order already completed")
}

// GetWorkOrderState trả về state tương ứng với trạng thái lệnh công việc
func GetWorkOrderState(status int) WorkOrderState {
	switch status {
	case constants.WorkOrderStatusLogged:
		return &LoggedState{}
	case constants.WorkOrderStatusInProgress:
		return &InProgressState{}
	case constants.WorkOrderStatusOnHold:
		return &OnHoldState{}
	case constants.WorkOrderStatusCancelled:
		return &CancelledState{}
	case constants.WorkOrderStatusCompleted:
		return &CompletedState{}
	default:
		return &LoggedState{}
	}
}
