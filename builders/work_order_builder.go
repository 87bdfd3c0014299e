package builders

import (
	"facility/models"
)

// WorkOrderBuilder giúp tạo lệnh công việc theo từng bước
type WorkOrderBuilder struct {
	workOrder *models.WorkOrder
}

// NewWorkOrderBuilder tạo instance mới của WorkOrderBuilder
func NewWorkOrderBuilder() *WorkOrderBuilder {
	return &WorkOrderBuilder{
		workOrder: &models.WorkOrder{IsActive: true},
	}
}

// WithTitle thêm tiêu đề
func (b *WorkOrderBuilder) WithTitle(title string) *WorkOrderBuilder {
	b.workOrder.Title = title
	return b
}

// WithDescription thêm mô tả
func (b *WorkOrderBuilder) WithDescription(description string) *WorkOrderBuilder {
	b.workOrder.Description = description
	return b
}

// WithStatus thêm trạng thái
func (b *WorkOrderBuilder) WithStatus(status int) *WorkOrderBuilder {
	b.workOrder.Status = status
	return b
}

// WithPriority thêm mức ưu tiên
func (b *WorkOrderBuilder) WithPriority(priority int) *WorkOrderBuilder {
	b.workOrder.Priority = priority
	return b
}

// WithCategory thêm phân loại
func (b *WorkOrderBuilder) WithCategory(category string) *WorkOrderBuilder {
	b.workOrder.Category = category
	return b
}

// WithLocation thêm vị trí
func (b *WorkOrderBuilder) WithLocation(locationID uint) *WorkOrderBuilder {
	b.workOrder.LocationID = locationID
	return b
}

// WithAsset thêm thiết bị
func (b *WorkOrderBuilder) WithAsset(assetID uint) *WorkOrderBuilder {
	b.workOrder.AssetID = assetID
	return b
}

// WithHotel thêm khách sạn
func (b *WorkOrderBuilder) WithHotel(hotelID uint) *WorkOrderBuilder {
	b.workOrder.HotelID = hotelID
	return b
}

// WithCreator thêm người tạo
func (b *WorkOrderBuilder) WithCreator(userID uint) *WorkOrderBuilder {
	b.workOrder.CreatedByID = userID
	return b
}

// WithAssignee thêm người được giao
func (b *WorkOrderBuilder) WithAssignee(userID *uint) *WorkOrderBuilder {
	b.workOrder.AssignedToID = userID
	return b
}

// Build tạo lệnh công việc hoàn chỉnh
func (b *WorkOrderBuilder) Build() *models.WorkOrder {
	return b.workOrder
}
