package services

import (
	stderrors "errors"
	"time"

	"facility/constants"
	"facility/dto"
	"facility/errors"
	"facility/models"

	"gorm.io/gorm"
)

// SafetyService xử lý chứng chỉ, sự cố và hồ sơ đào tạo
type SafetyService struct {
	db *gorm.DB
}

func NewSafetyService(db *gorm.DB) *SafetyService {
	return &SafetyService{db: db}
}

// CertificateStatus tính trạng thái chứng chỉ theo thời điểm đọc:
// EXPIRED nếu còn <= 0 ngày, EXPIRING nếu còn <= 30 ngày, ngược lại VALID.
// Không bao giờ cache kết quả.
func CertificateStatus(now, expiryDate time.Time) (string, int) {
	remaining := expiryDate.Sub(now)
	daysUntilExpiry := int(remaining.Hours() / 24)
	if remaining <= 0 {
		return constants.CertificateStatusExpired, daysUntilExpiry
	}
	if remaining <= 30*24*time.Hour {
		return constants.CertificateStatusExpiring, daysUntilExpiry
	}
	return constants.CertificateStatusValid, daysUntilExpiry
}

// ResolveEmployee tìm nhân viên theo mã nhân viên bên ngoài
func (s *SafetyService) ResolveEmployee(employeeID string) (*models.User, error) {
	var employee models.User
	if err := s.db.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tra cứu nhân viên", err)
	}
	return &employee, nil
}

// CreateCertificate tạo chứng chỉ mới, resolve nhân viên theo employeeId
func (s *SafetyService) CreateCertificate(req dto.CreateCertificateRequest) (*models.Certificate, error) {
	employee, err := s.ResolveEmployee(req.EmployeeID)
	if err != nil {
		return nil, err
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày hết hạn không hợp lệ", err)
	}

	certificate := models.Certificate{
		Name:       req.Name,
		Type:       req.Type,
		Issuer:     req.Issuer,
		ExpiryDate: expiryDate,
		EmployeeID: employee.ID,
		HotelID:    req.HotelID,
	}

	if req.IssueDate != "" {
		issueDate, err := time.Parse("2006-01-02", req.IssueDate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày cấp không hợp lệ", err)
		}
		certificate.IssueDate = issueDate
	}

	if err := certificate.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}

	if err := s.db.Create(&certificate).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo chứng chỉ", err)
	}

	return &certificate, nil
}

// ListCertificates trả về chứng chỉ kèm trạng thái tính lại theo thời gian hiện tại
func (s *SafetyService) ListCertificates(hotelID uint) ([]dto.CertificateResponse, error) {
	tx := s.db.Model(&models.Certificate{}).Preload("Employee")
	if hotelID != 0 {
		tx = tx.Where("hotel_id = ?", hotelID)
	}

	var certificates []models.Certificate
	if err := tx.Order("expiry_date asc").Find(&certificates).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách chứng chỉ", err)
	}

	now := time.Now()
	responses := make([]dto.CertificateResponse, 0, len(certificates))
	for _, cert := range certificates {
		status, days := CertificateStatus(now, cert.ExpiryDate)
		resp := dto.CertificateResponse{
			ID:              cert.ID,
			Name:            cert.Name,
			Type:            cert.Type,
			Issuer:          cert.Issuer,
			IssueDate:       cert.IssueDate,
			ExpiryDate:      cert.ExpiryDate,
			Status:          status,
			DaysUntilExpiry: days,
			EmployeeID:      cert.EmployeeID,
			HotelID:         cert.HotelID,
			CreatedAt:       cert.CreatedAt,
		}
		if cert.Employee != nil {
			resp.EmployeeName = cert.Employee.Name
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// CountCertificatesByStatus đếm chứng chỉ theo trạng thái dẫn xuất cho dashboard
func (s *SafetyService) CountCertificatesByStatus(hotelID uint) (dto.CertificateStats, error) {
	responses, err := s.ListCertificates(hotelID)
	if err != nil {
		return dto.CertificateStats{}, err
	}

	var stats dto.CertificateStats
	for _, cert := range responses {
		switch cert.Status {
		case constants.CertificateStatusValid:
			stats.Valid++
		case constants.CertificateStatusExpiring:
			stats.Expiring++
		case constants.CertificateStatusExpired:
			stats.Expired++
		}
	}
	return stats, nil
}

// CreateTrainingRecord ghi nhận hồ sơ đào tạo, resolve nhân viên như chứng chỉ
func (s *SafetyService) CreateTrainingRecord(req dto.CreateTrainingRecordRequest) (*models.TrainingRecord, error) {
	employee, err := s.ResolveEmployee(req.EmployeeID)
	if err != nil {
		return nil, err
	}

	completedAt, err := time.Parse("2006-01-02", req.CompletedAt)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày hoàn thành không hợp lệ", err)
	}

	record := models.TrainingRecord{
		EmployeeID:  employee.ID,
		CourseName:  req.CourseName,
		CompletedAt: completedAt,
		HotelID:     req.HotelID,
	}

	if req.ValidUntil != "" {
		validUntil, err := time.Parse("2006-01-02", req.ValidUntil)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày hết hiệu lực không hợp lệ", err)
		}
		record.ValidUntil = &validUntil
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo hồ sơ đào tạo", err)
	}

	return &record, nil
}
