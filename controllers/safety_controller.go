package controllers

import (
	"strconv"
	"time"

	"facility/constants"
	"facility/dto"
	"facility/models"
	"facility/response"
	"facility/services"
	"facility/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SafetyController xử lý chứng chỉ, sự cố và hồ sơ đào tạo
type SafetyController struct {
	db      *gorm.DB
	service *services.SafetyService
}

func NewSafetyController(db *gorm.DB) *SafetyController {
	return &SafetyController{
		db:      db,
		service: services.NewSafetyService(db),
	}
}

// CreateCertificate tạo chứng chỉ, resolve nhân viên theo mã nhân viên
func (ctrl *SafetyController) CreateCertificate(c *gin.Context) {
	var request dto.CreateCertificateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	certificate, err := ctrl.service.CreateCertificate(request)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.SuccessWithMessage(c, "certificate", certificate, "Tạo chứng chỉ thành công")
}

// GetCertificates lấy danh sách chứng chỉ với trạng thái tính theo hiện tại
func (ctrl *SafetyController) GetCertificates(c *gin.Context) {
	var hotelID uint
	if hotelStr := c.Query("hotelId"); hotelStr != "" {
		if parsed, err := strconv.ParseUint(hotelStr, 10, 32); err == nil {
			hotelID = uint(parsed)
		}
	}

	certificates, err := ctrl.service.ListCertificates(hotelID)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.Success(c, gin.H{"certificates": certificates})
}

// CreateIncident ghi nhận sự cố mới
func (ctrl *SafetyController) CreateIncident(c *gin.Context) {
	var request dto.CreateIncidentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	reportedByID, ok := currentUserID(c)
	if !ok {
		reportedByID = constants.SystemUserID
	}

	incident := models.Incident{
		Title:        request.Title,
		Description:  request.Description,
		Severity:     request.Severity,
		Status:       models.IncidentStatusOpen,
		LocationID:   request.LocationID,
		HotelID:      request.HotelID,
		ReportedByID: reportedByID,
		OccurredAt:   time.Now(),
	}
	if request.OccurredAt != "" {
		occurredAt, err := time.Parse("2006-01-02", request.OccurredAt)
		if err != nil {
			response.BadRequest(c, "Định dạng thời điểm xảy ra không hợp lệ")
			return
		}
		incident.OccurredAt = occurredAt
	}

	if err := validator.ValidateIncident(&incident); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.db.Create(&incident).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "incident", incident, "Ghi nhận sự cố thành công")
}

// GetIncidents lấy danh sách sự cố, lọc tùy chọn theo khách sạn và trạng thái
func (ctrl *SafetyController) GetIncidents(c *gin.Context) {
	tx := ctrl.db.Model(&models.Incident{})
	if hotelStr := c.Query("hotelId"); hotelStr != "" {
		if hotelID, err := strconv.Atoi(hotelStr); err == nil {
			tx = tx.Where("hotel_id = ?", hotelID)
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			tx = tx.Where("status = ?", status)
		}
	}

	var incidents []models.Incident
	if err := tx.Preload("Location").Preload("ReportedBy").
		Order("occurred_at desc").Find(&incidents).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"incidents": incidents})
}

// UpdateIncidentStatus đổi trạng thái xử lý sự cố
func (ctrl *SafetyController) UpdateIncidentStatus(c *gin.Context) {
	var request dto.UpdateIncidentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Status < models.IncidentStatusOpen || request.Status > models.IncidentStatusClosed {
		response.BadRequest(c, "Trạng thái sự cố không hợp lệ")
		return
	}

	var incident models.Incident
	if err := ctrl.db.First(&incident, request.ID).Error; err != nil {
		response.NotFoundWithMessage(c, "Không tìm thấy sự cố")
		return
	}

	incident.Status = request.Status
	if err := ctrl.db.Save(&incident).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "incident", incident, "Cập nhật trạng thái sự cố thành công")
}

// CreateTrainingRecord ghi nhận hồ sơ đào tạo của nhân viên
func (ctrl *SafetyController) CreateTrainingRecord(c *gin.Context) {
	var request dto.CreateTrainingRecordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	record, err := ctrl.service.CreateTrainingRecord(request)
	if err != nil {
		respondWithAppError(c, err)
		return
	}

	response.SuccessWithMessage(c, "trainingRecord", record, "Ghi nhận đào tạo thành công")
}

// GetTrainingRecords lấy hồ sơ đào tạo theo nhân viên hoặc khách sạn
func (ctrl *SafetyController) GetTrainingRecords(c *gin.Context) {
	tx := ctrl.db.Model(&models.TrainingRecord{})
	if employeeID := c.Query("employeeId"); employeeID != "" {
		employee, err := ctrl.service.ResolveEmployee(employeeID)
		if err != nil {
			respondWithAppError(c, err)
			return
		}
		tx = tx.Where("employee_id = ?", employee.ID)
	}
	if hotelStr := c.Query("hotelId"); hotelStr != "" {
		if hotelID, err := strconv.Atoi(hotelStr); err == nil {
			tx = tx.Where("hotel_id = ?", hotelID)
		}
	}

	var records []models.TrainingRecord
	if err := tx.Preload("Employee").Order("completed_at desc").Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"trainingRecords": records})
}
