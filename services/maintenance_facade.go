package services

import (
	"facility/dto"
	"facility/models"
	"facility/services/logger"
	"facility/services/notification"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// MaintenanceFacade đơn giản hóa luồng sinh lệnh công việc từ lịch bảo trì:
// gọi generator rồi bắn thông báo, lỗi thông báo không làm hỏng nghiệp vụ
type MaintenanceFacade struct {
	ppmService          *PPMService
	notificationService notification.Service
	logger              logger.Logger
}

// NewMaintenanceFacade tạo instance mới của MaintenanceFacade
func NewMaintenanceFacade(db *gorm.DB, m *melody.Melody, l logger.Logger) *MaintenanceFacade {
	return &MaintenanceFacade{
		ppmService: NewPPMService(PPMServiceOptions{
			DB:     db,
			Logger: l,
		}),
		notificationService: notification.NewMelodyService(m),
		logger:              l,
	}
}

// GenerateWorkOrder sinh lệnh công việc rồi thông báo cho khách sạn liên quan
func (f *MaintenanceFacade) GenerateWorkOrder(scheduleID uint, req dto.GenerateWorkOrderRequest) (*models.WorkOrder, error) {
	workOrder, err := f.ppmService.GenerateWorkOrder(scheduleID, req)
	if err != nil {
		return nil, err
	}

	message := notification.NewWorkOrderMessageBuilder(workOrder.ID, workOrder.Title, "created").Build()
	if err := f.notificationService.SendToHotel(workOrder.HotelID, message); err != nil {
		if f.logger != nil {
			f.logger.Error("Lỗi gửi thông báo lệnh công việc %d: %v", workOrder.ID, err)
		}
	}

	return workOrder, nil
}
