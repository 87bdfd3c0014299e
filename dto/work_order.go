package dto

import (
	"time"

	"facility/types"
)

// CreateWorkOrderRequest là DTO cho yêu cầu tạo lệnh công việc
type CreateWorkOrderRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Priority     int    `json:"priority"`
	Category     string `json:"category"`
	LocationID   uint   `json:"locationId" binding:"required"`
	AssetID      uint   `json:"assetId"`
	HotelID      uint   `json:"hotelId" binding:"required"`
	AssignedToID *uint  `json:"assignedToId"`
}

// UpdateWorkOrderRequest là DTO cho yêu cầu cập nhật lệnh công việc
type UpdateWorkOrderRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     *int   `json:"priority"`
	Category     string `json:"category"`
	LocationID   *uint  `json:"locationId"`
	AssetID      *uint  `json:"assetId"`
	AssignedToID *uint  `json:"assignedToId"`
}

// ChangeWorkOrderStatusRequest là DTO cho yêu cầu chuyển trạng thái
type ChangeWorkOrderStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// BulkActionRequest là DTO cho thao tác hàng loạt trên lệnh công việc
type BulkActionRequest struct {
	Action       string `json:"action" binding:"required"`
	WorkOrderIDs []uint `json:"workOrderIds" binding:"required"`
}

// CreateCommentRequest là DTO cho yêu cầu thêm bình luận
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Type    string `json:"type"`
}

// WorkOrderResponse là DTO cho response của lệnh công việc
type WorkOrderResponse struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Status       int           `json:"status"`
	Priority     int           `json:"priority"`
	Category     string        `json:"category"`
	LocationID   uint          `json:"locationId"`
	LocationName string        `json:"locationName,omitempty"`
	AssetID      uint          `json:"assetId"`
	AssetName    string        `json:"assetName,omitempty"`
	HotelID      uint          `json:"hotelId"`
	CreatedBy    *UserResponse `json:"createdBy,omitempty"`
	AssignedTo   *UserResponse `json:"assignedTo,omitempty"`
	IsActive     bool          `json:"isActive"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// CommentResponse là DTO cho bình luận kèm thông tin người viết
type CommentResponse struct {
	ID          uint                         `json:"id"`
	WorkOrderID uint                         `json:"workOrderId"`
	Content     string                       `json:"content"`
	Type        string                       `json:"type"`
	Author      *types.CommentAuthorResponse `json:"author,omitempty"`
	CreatedAt   time.Time                    `json:"createdAt"`
}

// UserResponse là DTO rút gọn cho user trong các response
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}
