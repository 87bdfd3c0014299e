package services

import (
	stderrors "errors"

	"facility/commands"
	"facility/constants"
	"facility/dto"
	"facility/errors"
	"facility/models"
	"facility/services/logger"
	"facility/types"

	"gorm.io/gorm"
)

// Các action hàng loạt hỗ trợ trên lệnh công việc
const (
	BulkActionAssign = "assign"
	BulkActionCancel = "cancel"
	BulkActionDelete = "delete"
)

// WorkOrderService xử lý truy vấn và thao tác hàng loạt trên lệnh công việc
type WorkOrderService struct {
	db     *gorm.DB
	logger logger.Logger
}

type WorkOrderServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewWorkOrderService(opts WorkOrderServiceOptions) *WorkOrderService {
	return &WorkOrderService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// AssignRoundRobin chia kỹ thuật viên theo vòng tròn: ids[i] -> technicians[i mod N].
// Hàm thuần, không giữ trạng thái giữa các lần gọi.
func AssignRoundRobin(workOrderIDs []uint, technicians []models.User) map[uint]uint {
	assignments := make(map[uint]uint, len(workOrderIDs))
	if len(technicians) == 0 {
		return assignments
	}
	for i, id := range workOrderIDs {
		assignments[id] = technicians[i%len(technicians)].ID
	}
	return assignments
}

// BulkAction áp dụng một thao tác lên nhiều lệnh công việc. Mỗi bản ghi là một
// lần ghi riêng, không đảm bảo nguyên tử cho cả lô.
func (s *WorkOrderService) BulkAction(action string, workOrderIDs []uint) error {
	if len(workOrderIDs) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Danh sách lệnh công việc trống", nil)
	}

	switch action {
	case BulkActionAssign:
		return s.bulkAssign(workOrderIDs)
	case BulkActionCancel:
		return s.bulkCancel(workOrderIDs)
	case BulkActionDelete:
		return s.bulkDelete(workOrderIDs)
	default:
		return errors.NewAppError(errors.ErrCodeInvalidAction, "Action không hợp lệ: "+action, nil)
	}
}

func (s *WorkOrderService) bulkAssign(workOrderIDs []uint) error {
	var technicians []models.User
	if err := s.db.Where("role = ?", constants.RoleTechnician).Order("id asc").Find(&technicians).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách kỹ thuật viên", err)
	}
	if len(technicians) == 0 {
		return errors.NewAppError(errors.ErrCodeNoTechnician, "Không có kỹ thuật viên nào để phân công", nil)
	}

	assignments := AssignRoundRobin(workOrderIDs, technicians)
	for _, id := range workOrderIDs {
		technicianID := assignments[id]
		if err := s.db.Model(&models.WorkOrder{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"assigned_to_id": technicianID,
				"status":         constants.WorkOrderStatusInProgress,
			}).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể phân công lệnh công việc", err)
		}
		if s.logger != nil {
			s.logger.Info("Đã phân công lệnh công việc %d cho kỹ thuật viên %d", id, technicianID)
		}
	}

	return nil
}

func (s *WorkOrderService) bulkCancel(workOrderIDs []uint) error {
	for _, id := range workOrderIDs {
		if err := s.db.Model(&models.WorkOrder{}).Where("id = ?", id).
			Update("status", constants.WorkOrderStatusCancelled).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể hủy lệnh công việc", err)
		}
	}
	return nil
}

func (s *WorkOrderService) bulkDelete(workOrderIDs []uint) error {
	for _, id := range workOrderIDs {
		if err := commands.NewDeleteWorkOrderCommand(id, s.db).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa lệnh công việc", err)
		}
	}
	return nil
}

// MyRequests trả về các lệnh công việc do user tạo, lọc tùy chọn theo trạng thái
// và chuỗi tìm kiếm (không phân biệt hoa thường trên tiêu đề/mô tả/tên vị trí)
func (s *WorkOrderService) MyRequests(userID uint, status *int, query string) ([]models.WorkOrder, error) {
	tx := s.db.Model(&models.WorkOrder{}).
		Joins("LEFT JOIN locations ON locations.id = work_orders.location_id").
		Where("work_orders.created_by_id = ?", userID)

	if status != nil {
		tx = tx.Where("work_orders.status = ?", *status)
	}
	if query != "" {
		like := "%" + query + "%"
		tx = tx.Where("work_orders.title ILIKE ? OR work_orders.description ILIKE ? OR locations.name ILIKE ?",
			like, like, like)
	}

	var workOrders []models.WorkOrder
	if err := tx.Preload("Location").Preload("Asset").Preload("AssignedTo").
		Order("work_orders.created_at desc").Find(&workOrders).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách yêu cầu", err)
	}
	return workOrders, nil
}

// MyRecent trả về 5 lệnh công việc mới nhất do user tạo
func (s *WorkOrderService) MyRecent(userID uint) ([]models.WorkOrder, error) {
	var workOrders []models.WorkOrder
	if err := s.db.Where("created_by_id = ?", userID).
		Order("created_at desc").Limit(5).Find(&workOrders).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy lệnh công việc gần đây", err)
	}
	return workOrders, nil
}

// Recent trả về 10 lệnh công việc mới nhất của khách sạn
func (s *WorkOrderService) Recent(hotelID uint) ([]models.WorkOrder, error) {
	var workOrders []models.WorkOrder
	if err := s.db.Where("hotel_id = ?", hotelID).
		Order("created_at desc").Limit(10).Find(&workOrders).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy lệnh công việc gần đây", err)
	}
	return workOrders, nil
}

// MyOpenCount đếm lệnh công việc đang mở (LOGGED/IN_PROGRESS/ON_HOLD) của user
func (s *WorkOrderService) MyOpenCount(userID uint) (int64, error) {
	var count int64
	openStatuses := []int{
		constants.WorkOrderStatusLogged,
		constants.WorkOrderStatusInProgress,
		constants.WorkOrderStatusOnHold,
	}
	if err := s.db.Model(&models.WorkOrder{}).
		Where("created_by_id = ? AND status IN ? AND is_active = ?", userID, openStatuses, true).
		Count(&count).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể đếm lệnh công việc", err)
	}
	return count, nil
}

// AddComment thêm bình luận vào lệnh công việc
func (s *WorkOrderService) AddComment(workOrderID uint, authorID uint, content, commentType string) (*models.WorkOrderComment, error) {
	var workOrder models.WorkOrder
	if err := s.db.First(&workOrder, workOrderID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeWorkOrderNotFound, "Không tìm thấy lệnh công việc", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy lệnh công việc", err)
	}

	if commentType == "" {
		commentType = "comment"
	}
	comment := models.WorkOrderComment{
		WorkOrderID: workOrderID,
		AuthorID:    authorID,
		Content:     content,
		Type:        commentType,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo bình luận", err)
	}

	if err := s.db.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể nạp bình luận vừa tạo", err)
	}
	return &comment, nil
}

// ListComments trả về bình luận của lệnh công việc, mới nhất trước
func (s *WorkOrderService) ListComments(workOrderID uint) ([]dto.CommentResponse, error) {
	var comments []models.WorkOrderComment
	if err := s.db.Where("work_order_id = ?", workOrderID).
		Preload("Author").Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách bình luận", err)
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp := dto.CommentResponse{
			ID:          comment.ID,
			WorkOrderID: comment.WorkOrderID,
			Content:     comment.Content,
			Type:        comment.Type,
			CreatedAt:   comment.CreatedAt,
		}
		if comment.Author != nil {
			resp.Author = &types.CommentAuthorResponse{
				ID:          comment.Author.ID,
				Name:        comment.Author.Name,
				Email:       comment.Author.Email,
				PhoneNumber: comment.Author.PhoneNumber,
			}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
