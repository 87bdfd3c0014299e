package controllers

import (
	stderrors "errors"
	"strconv"

	"facility/models"
	"facility/response"
	"facility/services/logger"
	"facility/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// NotificationObserver nhận thông báo đẩy qua websocket
type NotificationObserver interface {
	Notify(message string) error
}

type MelodyObserver struct {
	session *melody.Session
	userID  uint
}

func NewMelodyObserver(session *melody.Session, userID uint) *MelodyObserver {
	return &MelodyObserver{
		session: session,
		userID:  userID,
	}
}

func (o *MelodyObserver) Notify(message string) error {
	return o.session.Write([]byte(message))
}

// NotificationController quản lý thông báo đẩy và lịch sử thông báo
type NotificationController struct {
	db        *gorm.DB
	logger    logger.Logger
	melody    *melody.Melody
	observers map[uint][]NotificationObserver
}

func NewNotificationController(db *gorm.DB, m *melody.Melody) *NotificationController {
	return &NotificationController{
		db:        db,
		logger:    logger.NewDefaultLogger(logger.InfoLevel),
		melody:    m,
		observers: make(map[uint][]NotificationObserver),
	}
}

// NotifyAll gửi thông báo đến mọi session đang kết nối
func (ctrl *NotificationController) NotifyAll(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tin nhắn là bắt buộc")
		return
	}

	notificationService := notification.NewMelodyService(ctrl.melody)
	if err := notificationService.SendMessage(req.Message); err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "message", req.Message, "Đã gửi thông báo tổng thành công")
}

// NotifyHotel gửi thông báo đến các session của một khách sạn
func (ctrl *NotificationController) NotifyHotel(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID khách sạn không hợp lệ")
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tin nhắn là bắt buộc")
		return
	}

	notificationService := notification.NewMelodyService(ctrl.melody)
	if err := notificationService.SendToHotel(uint(hotelID), req.Message); err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "message", req.Message, "Đã gửi thông báo đến khách sạn")
}

// NotifyUser gửi thông báo đến một user, lưu lại lịch sử
func (ctrl *NotificationController) NotifyUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userID"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID người dùng không hợp lệ")
		return
	}

	var req struct {
		Message     string `json:"message" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tin nhắn là bắt buộc")
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundWithMessage(c, "Không tìm thấy người dùng")
			return
		}
		response.ServerError(c)
		return
	}

	for _, observer := range ctrl.observers[uint(userID)] {
		if err := observer.Notify(req.Message); err != nil {
			ctrl.logger.Error("Lỗi gửi thông báo đến userID %d: %v", userID, err)
		}
	}

	notify := models.Notification{
		UserID:      uint(userID),
		Message:     req.Message,
		Description: req.Description,
	}
	if err := ctrl.db.Create(&notify).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "notification", notify, "Thông báo đã được gửi đến người dùng")
}

// GetMyNotifications lấy lịch sử thông báo của user hiện tại
func (ctrl *NotificationController) GetMyNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var notifications []models.Notification
	if err := ctrl.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"notifications": notifications})
}

// GetAllNotifications lấy toàn bộ lịch sử thông báo, chỉ dành cho quản lý
func (ctrl *NotificationController) GetAllNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := ctrl.db.Order("created_at DESC").Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"notifications": notifications})
}

// RegisterObserver đăng ký session theo userID để nhận thông báo riêng
func (ctrl *NotificationController) RegisterObserver(session *melody.Session, userID uint) {
	observer := NewMelodyObserver(session, userID)
	ctrl.observers[userID] = append(ctrl.observers[userID], observer)
	ctrl.logger.Info("Người quan sát đã đăng ký cho userID: %d", userID)
}

// RemoveObserver gỡ session của userID khi ngắt kết nối
func (ctrl *NotificationController) RemoveObserver(session *melody.Session, userID uint) {
	observers := ctrl.observers[userID]
	for i, obs := range observers {
		if melodyObs, ok := obs.(*MelodyObserver); ok && melodyObs.session == session {
			ctrl.observers[userID] = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	ctrl.logger.Info("Đã xóa người quan sát cho userID: %d", userID)
}
