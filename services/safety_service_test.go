package services

import (
	"testing"
	"time"

	"facility/constants"
	"facility/dto"
	"facility/errors"
	"facility/models"
)

func TestCertificateStatus(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		expiryDate time.Time
		wantStatus string
		wantDays   int
	}{
		{"hết hạn hôm qua", now.AddDate(0, 0, -1), constants.CertificateStatusExpired, -1},
		{"hết hạn đúng lúc này", now, constants.CertificateStatusExpired, 0},
		{"còn 1 ngày", now.AddDate(0, 0, 1), constants.CertificateStatusExpiring, 1},
		{"còn đúng 30 ngày", now.AddDate(0, 0, 30), constants.CertificateStatusExpiring, 30},
		{"còn 30 ngày 1 giờ", now.Add(30*24*time.Hour + time.Hour), constants.CertificateStatusValid, 30},
		{"còn 31 ngày", now.AddDate(0, 0, 31), constants.CertificateStatusValid, 31},
		{"còn 1 năm", now.AddDate(1, 0, 0), constants.CertificateStatusValid, 365},
	}

	for _, tc := range cases {
		status, days := CertificateStatus(now, tc.expiryDate)
		if status != tc.wantStatus {
			t.Errorf("%s: status = %s, want %s", tc.name, status, tc.wantStatus)
		}
		if days != tc.wantDays {
			t.Errorf("%s: daysUntilExpiry = %d, want %d", tc.name, days, tc.wantDays)
		}
	}
}

func TestResolveEmployee(t *testing.T) {
	db := newTestDB(t)
	service := NewSafetyService(db)

	employee := models.User{Name: "Nguyễn Văn A", Email: "a@test.local", EmployeeID: "EMP-001"}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	resolved, err := service.ResolveEmployee("EMP-001")
	if err != nil {
		t.Fatalf("ResolveEmployee: %v", err)
	}
	if resolved.ID != employee.ID {
		t.Errorf("resolved.ID = %d, want %d", resolved.ID, employee.ID)
	}
}

func TestResolveEmployee_NotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewSafetyService(db)

	_, err := service.ResolveEmployee("EMP-404")
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeEmployeeNotFound {
		t.Errorf("mã nhân viên lạ phải trả ErrCodeEmployeeNotFound, got %v", err)
	}
}

func TestCreateCertificate(t *testing.T) {
	db := newTestDB(t)
	service := NewSafetyService(db)

	employee := models.User{Name: "Trần B", Email: "b@test.local", EmployeeID: "EMP-002"}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	certificate, err := service.CreateCertificate(dto.CreateCertificateRequest{
		Name:       "Chứng chỉ PCCC",
		Type:       "FIRE_SAFETY",
		Issuer:     "Cục PCCC",
		IssueDate:  "2024-01-01",
		ExpiryDate: "2026-01-01",
		EmployeeID: "EMP-002",
		HotelID:    1,
	})
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	if certificate.EmployeeID != employee.ID {
		t.Errorf("EmployeeID = %d, want %d", certificate.EmployeeID, employee.ID)
	}
}

func TestCreateCertificate_UnknownEmployee(t *testing.T) {
	db := newTestDB(t)
	service := NewSafetyService(db)

	_, err := service.CreateCertificate(dto.CreateCertificateRequest{
		Name:       "Chứng chỉ PCCC",
		Type:       "FIRE_SAFETY",
		ExpiryDate: "2026-01-01",
		EmployeeID: "EMP-404",
		HotelID:    1,
	})
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeEmployeeNotFound {
		t.Errorf("want ErrCodeEmployeeNotFound, got %v", err)
	}
}

func TestCreateCertificate_InvalidType(t *testing.T) {
	db := newTestDB(t)
	service := NewSafetyService(db)

	employee := models.User{Name: "Lê C", Email: "c@test.local", EmployeeID: "EMP-003"}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	_, err := service.CreateCertificate(dto.CreateCertificateRequest{
		Name:       "Chứng chỉ lạ",
		Type:       "UNKNOWN_TYPE",
		ExpiryDate: "2026-01-01",
		EmployeeID: "EMP-003",
		HotelID:    1,
	})
	if !errors.IsValidation(err) {
		t.Errorf("loại chứng chỉ lạ phải trả lỗi validation, got %v", err)
	}
}

func TestCountCertificatesByStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewSafetyService(db)

	employee := models.User{Name: "Phạm D", Email: "d@test.local", EmployeeID: "EMP-004"}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	now := time.Now()
	certificates := []models.Certificate{
		{Name: "Còn hạn", Type: "ELECTRICAL", ExpiryDate: now.AddDate(1, 0, 0), EmployeeID: employee.ID, HotelID: 1},
		{Name: "Sắp hết hạn", Type: "GAS_SAFETY", ExpiryDate: now.AddDate(0, 0, 10), EmployeeID: employee.ID, HotelID: 1},
		{Name: "Hết hạn", Type: "ELEVATOR", ExpiryDate: now.AddDate(0, 0, -10), EmployeeID: employee.ID, HotelID: 1},
		{Name: "Khách sạn khác", Type: "ELEVATOR", ExpiryDate: now.AddDate(1, 0, 0), EmployeeID: employee.ID, HotelID: 2},
	}
	for i := range certificates {
		if err := db.Create(&certificates[i]).Error; err != nil {
			t.Fatalf("seed certificate: %v", err)
		}
	}

	stats, err := service.CountCertificatesByStatus(1)
	if err != nil {
		t.Fatalf("CountCertificatesByStatus: %v", err)
	}
	if stats.Valid != 1 || stats.Expiring != 1 || stats.Expired != 1 {
		t.Errorf("stats = %+v, want 1/1/1", stats)
	}
}

func TestCreateTrainingRecord(t *testing.T) {
	db := newTestDB(t)
	service := NewSafetyService(db)

	employee := models.User{Name: "Hoàng E", Email: "e@test.local", EmployeeID: "EMP-005"}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	record, err := service.CreateTrainingRecord(dto.CreateTrainingRecordRequest{
		EmployeeID:  "EMP-005",
		CourseName:  "An toàn điện",
		CompletedAt: "2024-05-01",
		ValidUntil:  "2026-05-01",
		HotelID:     1,
	})
	if err != nil {
		t.Fatalf("CreateTrainingRecord: %v", err)
	}
	if record.EmployeeID != employee.ID {
		t.Errorf("EmployeeID = %d, want %d", record.EmployeeID, employee.ID)
	}
	if record.ValidUntil == nil {
		t.Error("ValidUntil không được nil khi request có validUntil")
	}
}
