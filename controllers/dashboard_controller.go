package controllers

import (
	"strconv"

	"facility/config"
	"facility/constants"
	"facility/dto"
	"facility/models"
	"facility/response"
	"facility/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DashboardController tổng hợp số liệu cho trang dashboard
type DashboardController struct {
	db            *gorm.DB
	rdb           *redis.Client
	safetyService *services.SafetyService
}

func NewDashboardController(db *gorm.DB, rdb *redis.Client) *DashboardController {
	return &DashboardController{
		db:            db,
		rdb:           rdb,
		safetyService: services.NewSafetyService(db),
	}
}

// envFloat đọc số liệu cấu hình sẵn, chưa có nguồn dữ liệu thật
func envFloat(key string, fallback float64) float64 {
	raw := config.GetEnvDefault(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

// GetDashboardStats trả về số liệu tổng hợp, cache Redis trong thời gian ngắn
func (ctrl *DashboardController) GetDashboardStats(c *gin.Context) {
	var hotelID uint
	if hotelStr := c.Query("hotelId"); hotelStr != "" {
		if parsed, err := strconv.ParseUint(hotelStr, 10, 32); err == nil {
			hotelID = uint(parsed)
		}
	}

	cacheKey := services.CacheKeyDashboardStats
	if hotelID != 0 {
		cacheKey = cacheKey + ":" + strconv.FormatUint(uint64(hotelID), 10)
	}

	var cached dto.DashboardStatsResponse
	if ctrl.rdb != nil {
		if hit, err := services.GetFromRedis(config.Ctx, ctrl.rdb, cacheKey, &cached); err == nil && hit {
			response.Success(c, cached)
			return
		}
	}

	stats, err := ctrl.collectStats(hotelID)
	if err != nil {
		response.ServerError(c)
		return
	}

	if ctrl.rdb != nil {
		_ = services.SetToRedis(config.Ctx, ctrl.rdb, cacheKey, stats, services.DashboardCacheTTL)
	}

	response.Success(c, stats)
}

func (ctrl *DashboardController) collectStats(hotelID uint) (dto.DashboardStatsResponse, error) {
	var stats dto.DashboardStatsResponse

	taskCounts := map[int]*int64{
		constants.PPMTaskStatusScheduled: &stats.PPMTasks.Scheduled,
		constants.PPMTaskStatusCompleted: &stats.PPMTasks.Completed,
		constants.PPMTaskStatusOverdue:   &stats.PPMTasks.Overdue,
	}
	for status, target := range taskCounts {
		tx := ctrl.db.Model(&models.PPMTask{}).Where("status = ?", status)
		if hotelID != 0 {
			tx = tx.Joins("JOIN ppm_schedules ON ppm_schedules.id = ppm_tasks.schedule_id").
				Where("ppm_schedules.hotel_id = ?", hotelID)
		}
		if err := tx.Count(target).Error; err != nil {
			return stats, err
		}
	}

	openStatuses := []int{
		constants.WorkOrderStatusLogged,
		constants.WorkOrderStatusInProgress,
		constants.WorkOrderStatusOnHold,
	}
	tx := ctrl.db.Model(&models.WorkOrder{}).
		Where("status IN ? AND priority = ? AND is_active = ?", openStatuses, constants.PriorityHigh, true)
	if hotelID != 0 {
		tx = tx.Where("hotel_id = ?", hotelID)
	}
	if err := tx.Count(&stats.OpenHighPriority).Error; err != nil {
		return stats, err
	}

	certStats, err := ctrl.safetyService.CountCertificatesByStatus(hotelID)
	if err != nil {
		return stats, err
	}
	stats.Certificates = certStats

	stats.ResponseTimeHours = envFloat("DASHBOARD_RESPONSE_TIME_HOURS", 4.2)
	stats.MonthlySpend = envFloat("DASHBOARD_MONTHLY_SPEND", 0)
	stats.UptimePercent = envFloat("DASHBOARD_UPTIME_PERCENT", 99.2)

	return stats, nil
}
