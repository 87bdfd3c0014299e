package dto

import "time"

// CreateScheduleRequest là DTO cho yêu cầu tạo lịch bảo trì định kỳ
type CreateScheduleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Frequency   string `json:"frequency" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate"`
	HotelID     uint   `json:"hotelId" binding:"required"`
}

// UpdateScheduleActiveRequest là DTO cho yêu cầu bật/tắt lịch bảo trì
type UpdateScheduleActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ScheduleResponse kèm các bộ đếm dẫn xuất từ danh sách nhiệm vụ
type ScheduleResponse struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Frequency    string     `json:"frequency"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsActive     bool       `json:"isActive"`
	HotelID      uint       `json:"hotelId"`
	TaskCount    int        `json:"taskCount"`
	ActiveTasks  int        `json:"activeTasks"`
	OverdueTasks int        `json:"overdueTasks"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// GenerateWorkOrderRequest là DTO cho yêu cầu sinh lệnh công việc từ lịch bảo trì
type GenerateWorkOrderRequest struct {
	TaskID       *uint `json:"taskId"`
	LocationID   uint  `json:"locationId" binding:"required"`
	AssetID      uint  `json:"assetId" binding:"required"`
	AssignedToID *uint `json:"assignedToId"`
}
