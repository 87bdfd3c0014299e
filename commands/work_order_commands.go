package commands

import (
	"facility/models"

	"gorm.io/gorm"
)

// WorkOrderCommand định nghĩa interface cho các command
type WorkOrderCommand interface {
	Execute() error
}

// CreateWorkOrderCommand command để tạo lệnh công việc mới
type CreateWorkOrderCommand struct {
	workOrder *models.WorkOrder
	db        *gorm.DB
}

func NewCreateWorkOrderCommand(workOrder *models.WorkOrder, db *gorm.DB) *CreateWorkOrderCommand {
	return &CreateWorkOrderCommand{
		workOrder: workOrder,
		db:        db,
	}
}

func (c *CreateWorkOrderCommand) Execute() error {
	return c.db.Create(c.workOrder).Error
}

// UpdateWorkOrderCommand command để cập nhật lệnh công việc
type UpdateWorkOrderCommand struct {
	workOrder *models.WorkOrder
	db        *gorm.DB
}

func NewUpdateWorkOrderCommand(workOrder *models.WorkOrder, db *gorm.DB) *UpdateWorkOrderCommand {
	return &UpdateWorkOrderCommand{
		workOrder: workOrder,
		db:        db,
	}
}

func (c *UpdateWorkOrderCommand) Execute() error {
	return c.db.Save(c.workOrder).Error
}

// DeleteWorkOrderCommand command để xóa cứng lệnh công việc
type DeleteWorkOrderCommand struct {
	workOrderID uint
	db          *gorm.DB
}

func NewDeleteWorkOrderCommand(workOrderID uint, db *gorm.DB) *DeleteWorkOrderCommand {
	return &DeleteWorkOrderCommand{
		workOrderID: workOrderID,
		db:          db,
	}
}

func (c *DeleteWorkOrderCommand) Execute() error {
	return c.db.Delete(&models.WorkOrder{}, c.workOrderID).Error
}
