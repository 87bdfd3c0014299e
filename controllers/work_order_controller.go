package controllers

import (
	"strconv"

	"facility/builders"
	"facility/commands"
	"facility/constants"
	"facility/dto"
	"facility/models"
	"facility/response"
	"facility/services"
	"facility/services/logger"
	"facility/services/notification"
	"facility/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// WorkOrderController xử lý vòng đời lệnh công việc và bình luận
type WorkOrderController struct {
	db       *gorm.DB
	service  *services.WorkOrderService
	notifier notification.Service
}

func NewWorkOrderController(db *gorm.DB, m *melody.Melody) *WorkOrderController {
	return &WorkOrderController{
		db: db,
		service: services.NewWorkOrderService(services.WorkOrderServiceOptions{
			DB:     db,
			Logger: logger.NewDefaultLogger(logger.InfoLevel),
		}),
		notifier: notification.NewMelodyService(m),
	}
}

// currentUserID lấy userID do AuthMiddleware gắn vào context
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}

func currentHotelID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("hotelID")
	if !exists {
		return 0, false
	}
	hotelID, ok := v.(uint)
	return hotelID, ok
}

// GetWorkOrders lấy danh sách lệnh công việc có phân trang và lọc
func (ctrl *WorkOrderController) GetWorkOrders(c *gin.Context) {
	page := 0
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := ctrl.db.Model(&models.WorkOrder{})
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			tx = tx.Where("status = ?", status)
		}
	}
	if priorityStr := c.Query("priority"); priorityStr != "" {
		if priority, err := strconv.Atoi(priorityStr); err == nil {
			tx = tx.Where("priority = ?", priority)
		}
	}
	if hotelStr := c.Query("hotelId"); hotelStr != "" {
		if hotelID, err := strconv.Atoi(hotelStr); err == nil {
			tx = tx.Where("hotel_id = ?", hotelID)
		}
	}

	var totalWorkOrders int64
	if err := tx.Count(&totalWorkOrders).Error; err != nil {
		response.ServerError(c)
		return
	}

	var workOrders []models.WorkOrder
	if err := tx.Preload("Location").Preload("Asset").Preload("CreatedBy").Preload("AssignedTo").
		Order("created_at desc").Offset(page * limit).Limit(limit).Find(&workOrders).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, "workOrders", workOrders, page, limit, int(totalWorkOrders))
}

// CreateWorkOrder tạo lệnh công việc mới ở trạng thái LOGGED
func (ctrl *WorkOrderController) CreateWorkOrder(c *gin.Context) {
	var request dto.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		userID = constants.SystemUserID
	}

	workOrder := builders.NewWorkOrderBuilder().
		WithTitle(request.Title).
		WithDescription(request.Description).
		WithStatus(constants.WorkOrderStatusLogged).
		WithPriority(request.Priority).
		WithCategory(request.Category).
		WithLocation(request.LocationID).
		WithAsset(request.AssetID).
		WithHotel(request.HotelID).
		WithCreator(userID).
		WithAssignee(request.AssignedToID).
		Build()

	if err := validator.ValidateWorkOrder(workOrder); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := commands.NewCreateWorkOrderCommand(workOrder, ctrl.db).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	message := notification.NewWorkOrderMessageBuilder(workOrder.ID, workOrder.Title, "created").Build()
	_ = ctrl.notifier.SendToHotel(workOrder.HotelID, message)

	response.SuccessWithMessage(c, "workOrder", workOrder, "Tạo lệnh công việc thành công")
}

// toWorkOrderResponse map model sang DTO, rút gọn thông tin user liên quan
func toWorkOrderResponse(workOrder models.WorkOrder) dto.WorkOrderResponse {
	resp := dto.WorkOrderResponse{
		ID:          workOrder.ID,
		Title:       workOrder.Title,
		Description: workOrder.Description,
		Status:      workOrder.Status,
		Priority:    workOrder.Priority,
		Category:    workOrder.Category,
		LocationID:  workOrder.LocationID,
		AssetID:     workOrder.AssetID,
		HotelID:     workOrder.HotelID,
		IsActive:    workOrder.IsActive,
		CreatedAt:   workOrder.CreatedAt,
		UpdatedAt:   workOrder.UpdatedAt,
	}
	if workOrder.Location != nil {
		resp.LocationName = workOrder.Location.Name
	}
	if workOrder.Asset != nil {
		resp.AssetName = workOrder.Asset.Name
	}
	if workOrder.CreatedBy != nil {
		resp.CreatedBy = &dto.UserResponse{
			ID:    workOrder.CreatedBy.ID,
			Name:  workOrder.CreatedBy.Name,
			Email: workOrder.CreatedBy.Email,
			Role:  workOrder.CreatedBy.Role,
		}
	}
	if workOrder.AssignedTo != nil {
		resp.AssignedTo = &dto.UserResponse{
			ID:    workOrder.AssignedTo.ID,
			Name:  workOrder.AssignedTo.Name,
			Email: workOrder.AssignedTo.Email,
			Role:  workOrder.AssignedTo.Role,
		}
	}
	return resp
}

func (ctrl *WorkOrderController) GetWorkOrderDetail(c *gin.Context) {
	var workOrder models.WorkOrder
	if err := ctrl.db.Preload("Location").Preload("Asset").Preload("Hotel").
		Preload("CreatedBy").Preload("AssignedTo").
		Where("id = ?", c.Param("id")).First(&workOrder).Error; err != nil {
		response.NotFoundWithMessage(c, "Không tìm thấy lệnh công việc")
		return
	}

	response.Success(c, toWorkOrderResponse(workOrder))
}

// UpdateWorkOrder cập nhật thông tin lệnh công việc, không đổi trạng thái
func (ctrl *WorkOrderController) UpdateWorkOrder(c *gin.Context) {
	var workOrder models.WorkOrder
	if err := ctrl.db.First(&workOrder, c.Param("id")).Error; err != nil {
		response.NotFoundWithMessage(c, "Không tìm thấy lệnh công việc")
		return
	}

	var request dto.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Title != "" {
		workOrder.Title = request.Title
	}
	if request.Description != "" {
		workOrder.Description = request.Description
	}
	if request.Priority != nil {
		workOrder.Priority = *request.Priority
	}
	if request.Category != "" {
		workOrder.Category = request.Category
	}
	if request.LocationID != nil {
		workOrder.LocationID = *request.LocationID
	}
	if request.AssetID != nil {
		workOrder.AssetID = *request.AssetID
	}
	if request.AssignedToID != nil {
		workOrder.AssignedToID = request.AssignedToID
	}

	if err := validator.ValidateWorkOrder(&workOrder); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := commands.NewUpdateWorkOrderCommand(&workOrder, ctrl.db).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	message := notification.NewWorkOrderMessageBuilder(workOrder.ID, workOrder.Title, "updated").Build()
	_ = ctrl.notifier.SendToHotel(workOrder.HotelID, message)

	response.SuccessWithMessage(c, "workOrder", workOrder, "Cập nhật lệnh công việc thành công")
}

// ChangeWorkOrderStatus chuyển trạng thái qua state machine, action:
// start/hold/cancel/complete
func (ctrl *WorkOrderController) ChangeWorkOrderStatus(c *gin.Context) {
	var request dto.ChangeWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var workOrder models.WorkOrder
	if err := ctrl.db.First(&workOrder, request.ID).Error; err != nil {
		response.NotFoundWithMessage(c, "Không tìm thấy lệnh công việc")
		return
	}

	state := models.GetWorkOrderState(workOrder.Status)
	var err error
	switch request.Action {
	case "start":
		err = state.Start(&workOrder)
	case "hold":
		err = state.Hold(&workOrder)
	case "cancel":
		err = state.Cancel(&workOrder)
	case "complete":
		err = state.Complete(&workOrder)
	default:
		response.BadRequest(c, "Action không hợp lệ: "+request.Action)
		return
	}
	if err != nil {
		response.BadRequest(c, "Không thể chuyển trạng thái: "+err.Error())
		return
	}

	if err := ctrl.db.Model(&workOrder).Update("status", workOrder.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	message := notification.NewWorkOrderMessageBuilder(workOrder.ID, workOrder.Title, "updated").Build()
	_ = ctrl.notifier.SendToHotel(workOrder.HotelID, message)

	response.SuccessWithMessage(c, "workOrder", workOrder, "Chuyển trạng thái thành công")
}

// BulkAction áp dụng assign/cancel/delete lên nhiều lệnh công việc
func (ctrl *WorkOrderController) BulkAction(c *gin.Context) {
	var request dto.BulkActionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := ctrl.service.BulkAction(request.Action, request.WorkOrderIDs); err != nil {
		respondWithAppError(c, err)
		return
	}

	response.SuccessWithMessage(c, "workOrderIds", request.WorkOrderIDs, "Thao tác hàng loạt thành công")
}

// GetMyRequests lấy các yêu cầu do user hiện tại tạo
func (ctrl *WorkOrderController) GetMyRequests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var status *int
	if statusStr := c.Query("status"); statusStr != "" {
		if parsedStatus, err := strconv.Atoi(statusStr); err == nil {
			status = &parsedStatus
		}
	}

	workOrders, err := ctrl.service.MyRequests(userID, status, c.Query("query"))
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.Success(c, gin.H{"workOrders": workOrders})
}

// GetMyRecent lấy 5 yêu cầu mới nhất của user hiện tại
func (ctrl *WorkOrderController) GetMyRecent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	workOrders, err := ctrl.service.MyRecent(userID)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.Success(c, gin.H{"workOrders": workOrders})
}

// GetRecent lấy 10 lệnh công việc mới nhất của khách sạn hiện tại
func (ctrl *WorkOrderController) GetRecent(c *gin.Context) {
	hotelID, ok := currentHotelID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	workOrders, err := ctrl.service.Recent(hotelID)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.Success(c, gin.H{"workOrders": workOrders})
}

// GetMyOpenCount đếm lệnh công việc đang mở của user hiện tại
func (ctrl *WorkOrderController) GetMyOpenCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	count, err := ctrl.service.MyOpenCount(userID)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.Success(c, gin.H{"count": count})
}

// CreateComment thêm bình luận vào lệnh công việc
func (ctrl *WorkOrderController) CreateComment(c *gin.Context) {
	workOrderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID lệnh công việc không hợp lệ")
		return
	}

	var request dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	comment, err := ctrl.service.AddComment(uint(workOrderID), userID, request.Content, request.Type)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.SuccessWithMessage(c, "comment", comment, "Thêm bình luận thành công")
}

// GetComments lấy bình luận của lệnh công việc, mới nhất trước
func (ctrl *WorkOrderController) GetComments(c *gin.Context) {
	workOrderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID lệnh công việc không hợp lệ")
		return
	}

	comments, err := ctrl.service.ListComments(uint(workOrderID))
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.Success(c, gin.H{"comments": comments})
}
