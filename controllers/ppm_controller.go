package controllers

import (
	"strconv"

	"facility/config"
	"facility/dto"
	"facility/errors"
	"facility/response"
	"facility/services"
	"facility/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// PPMController xử lý lịch bảo trì định kỳ và sinh lệnh công việc
type PPMController struct {
	service *services.PPMService
	facade  *services.MaintenanceFacade
	rdb     *redis.Client
}

func NewPPMController(db *gorm.DB, rdb *redis.Client, m *melody.Melody) *PPMController {
	l := logger.NewDefaultLogger(logger.InfoLevel)
	return &PPMController{
		service: services.NewPPMService(services.PPMServiceOptions{
			DB:     db,
			Logger: l,
		}),
		facade: services.NewMaintenanceFacade(db, m, l),
		rdb:    rdb,
	}
}

// respondWithAppError quy đổi AppError sang mã HTTP tương ứng
func respondWithAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}
	switch {
	case errors.IsNotFound(err):
		response.NotFoundWithMessage(c, appErr.Message)
	case errors.IsValidation(err):
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

// CreateSchedule tạo lịch bảo trì mới
func (ctrl *PPMController) CreateSchedule(c *gin.Context) {
	var request dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	schedule, err := ctrl.service.CreateSchedule(request)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	// Xóa cache danh sách
	_ = services.DeleteFromRedis(config.Ctx, ctrl.rdb, services.CacheKeySchedules)

	response.SuccessWithMessage(c, "schedule", schedule, "Tạo lịch bảo trì thành công")
}

// GetSchedules lấy danh sách lịch kèm bộ đếm nhiệm vụ, có cache Redis
func (ctrl *PPMController) GetSchedules(c *gin.Context) {
	var cached []dto.ScheduleResponse
	if ctrl.rdb != nil {
		if hit, err := services.GetFromRedis(config.Ctx, ctrl.rdb, services.CacheKeySchedules, &cached); err == nil && hit {
			response.Success(c, gin.H{"schedules": cached})
			return
		}
	}

	schedules, err := ctrl.service.ListSchedules()
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	if ctrl.rdb != nil {
		_ = services.SetToRedis(config.Ctx, ctrl.rdb, services.CacheKeySchedules, schedules, services.ScheduleCacheTTL)
	}

	response.Success(c, gin.H{"schedules": schedules})
}

// GetScheduleDetail lấy chi tiết một lịch kèm nhiệm vụ
func (ctrl *PPMController) GetScheduleDetail(c *gin.Context) {
	scheduleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID lịch bảo trì không hợp lệ")
		return
	}

	schedule, err := ctrl.service.GetSchedule(uint(scheduleID))
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.Success(c, schedule)
}

// SetScheduleActive bật/tắt lịch bảo trì, không cascade xuống nhiệm vụ
func (ctrl *PPMController) SetScheduleActive(c *gin.Context) {
	scheduleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID lịch bảo trì không hợp lệ")
		return
	}

	var request dto.UpdateScheduleActiveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	schedule, err := ctrl.service.SetActive(uint(scheduleID), *request.IsActive)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, ctrl.rdb, services.CacheKeySchedules)

	response.SuccessWithMessage(c, "schedule", schedule, "Cập nhật lịch bảo trì thành công")
}

// GenerateWorkOrder sinh lệnh công việc từ lịch bảo trì
func (ctrl *PPMController) GenerateWorkOrder(c *gin.Context) {
	scheduleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID lịch bảo trì không hợp lệ")
		return
	}

	var request dto.GenerateWorkOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	workOrder, err := ctrl.facade.GenerateWorkOrder(uint(scheduleID), request)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, ctrl.rdb, services.CacheKeySchedules)

	response.SuccessWithMessage(c, "workOrder", workOrder, "Sinh lệnh công việc thành công")
}
