package dto

import "time"

// CreateCertificateRequest là DTO cho yêu cầu tạo chứng chỉ
type CreateCertificateRequest struct {
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Issuer     string `json:"issuer"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate" binding:"required"`
	EmployeeID string `json:"employeeId" binding:"required"`
	HotelID    uint   `json:"hotelId" binding:"required"`
}

// CertificateResponse kèm trạng thái dẫn xuất theo thời điểm đọc
type CertificateResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Issuer          string    `json:"issuer"`
	IssueDate       time.Time `json:"issueDate"`
	ExpiryDate      time.Time `json:"expiryDate"`
	Status          string    `json:"status"`
	DaysUntilExpiry int       `json:"daysUntilExpiry"`
	EmployeeID      uint      `json:"employeeId"`
	EmployeeName    string    `json:"employeeName,omitempty"`
	HotelID         uint      `json:"hotelId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateIncidentRequest là DTO cho yêu cầu ghi nhận sự cố
type CreateIncidentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Severity    int    `json:"severity"`
	LocationID  uint   `json:"locationId"`
	HotelID     uint   `json:"hotelId" binding:"required"`
	OccurredAt  string `json:"occurredAt"`
}

// UpdateIncidentStatusRequest là DTO cho yêu cầu đổi trạng thái sự cố
type UpdateIncidentStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// CreateTrainingRecordRequest là DTO cho yêu cầu ghi nhận đào tạo
type CreateTrainingRecordRequest struct {
	EmployeeID  string `json:"employeeId" binding:"required"`
	CourseName  string `json:"courseName" binding:"required"`
	CompletedAt string `json:"completedAt" binding:"required"`
	ValidUntil  string `json:"validUntil"`
	HotelID     uint   `json:"hotelId" binding:"required"`
}
