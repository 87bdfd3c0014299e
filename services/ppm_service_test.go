package services

import (
	"testing"
	"time"

	"facility/constants"
	"facility/dto"
	"facility/errors"
	"facility/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Bảng users tạo tay vì cột mảng integer[] chỉ có trên postgres
	usersDDL := `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME,
		updated_at DATETIME,
		name TEXT,
		email TEXT,
		phone_number TEXT,
		avatar TEXT,
		role INTEGER DEFAULT 0,
		status INTEGER DEFAULT 1,
		employee_id TEXT
	);`
	if err := db.Exec(usersDDL).Error; err != nil {
		t.Fatalf("create users table: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Hotel{}, &models.Location{}, &models.Asset{},
		&models.WorkOrder{}, &models.WorkOrderComment{},
		&models.PPMSchedule{}, &models.PPMTask{},
		&models.Certificate{}, &models.Incident{}, &models.TrainingRecord{},
	); err != nil {
		t.Fatalf("migrate tables: %v", err)
	}

	return db
}

func newTestPPMService(t *testing.T) (*PPMService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewPPMService(PPMServiceOptions{DB: db}), db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate_Frequencies(t *testing.T) {
	now := date(2024, time.March, 15)

	cases := []struct {
		frequency string
		want      time.Time
	}{
		{constants.FrequencyDaily, date(2024, time.March, 16)},
		{constants.FrequencyWeekly, date(2024, time.March, 22)},
		{constants.FrequencyMonthly, date(2024, time.April, 15)},
		{constants.FrequencyQuarterly, date(2024, time.June, 15)},
		{constants.FrequencyYearly, date(2025, time.March, 15)},
		{"weekly", date(2024, time.March, 22)},
		{"UNKNOWN", date(2024, time.April, 14)},
	}

	for _, tc := range cases {
		got := NextDueDate(now, tc.frequency)
		if !got.Equal(tc.want) {
			t.Errorf("NextDueDate(%s) = %v, want %v", tc.frequency, got, tc.want)
		}
	}
}

func TestNextDueDate_MonthEndClamped(t *testing.T) {
	cases := []struct {
		now       time.Time
		frequency string
		want      time.Time
	}{
		// Năm nhuận: 31/01 + 1 tháng = 29/02
		{date(2024, time.January, 31), constants.FrequencyMonthly, date(2024, time.February, 29)},
		{date(2023, time.January, 31), constants.FrequencyMonthly, date(2023, time.February, 28)},
		{date(2024, time.August, 31), constants.FrequencyQuarterly, date(2024, time.November, 30)},
		{date(2024, time.February, 29), constants.FrequencyYearly, date(2025, time.February, 28)},
		{date(2024, time.March, 31), constants.FrequencyMonthly, date(2024, time.April, 30)},
	}

	for _, tc := range cases {
		got := NextDueDate(tc.now, tc.frequency)
		if !got.Equal(tc.want) {
			t.Errorf("NextDueDate(%v, %s) = %v, want %v", tc.now, tc.frequency, got, tc.want)
		}
	}
}

func TestIsValidFrequency(t *testing.T) {
	for _, frequency := range []string{"DAILY", "WEEKLY", "MONTHLY", "QUARTERLY", "YEARLY", "monthly"} {
		if !IsValidFrequency(frequency) {
			t.Errorf("IsValidFrequency(%s) = false, want true", frequency)
		}
	}
	for _, frequency := range []string{"", "HOURLY", "BIWEEKLY"} {
		if IsValidFrequency(frequency) {
			t.Errorf("IsValidFrequency(%s) = true, want false", frequency)
		}
	}
}

func TestCreateSchedule(t *testing.T) {
	service, db := newTestPPMService(t)

	schedule, err := service.CreateSchedule(dto.CreateScheduleRequest{
		Name:      "Bảo trì điều hòa",
		Frequency: "monthly",
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
		HotelID:   1,
	})
	if err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}
	if !schedule.IsActive {
		t.Error("lịch mới tạo phải active")
	}
	if schedule.Frequency != constants.FrequencyMonthly {
		t.Errorf("Frequency = %s, want %s", schedule.Frequency, constants.FrequencyMonthly)
	}

	var count int64
	db.Model(&models.PPMSchedule{}).Count(&count)
	if count != 1 {
		t.Errorf("số lịch trong db = %d, want 1", count)
	}
}

func TestCreateSchedule_InvalidFrequency(t *testing.T) {
	service, _ := newTestPPMService(t)

	_, err := service.CreateSchedule(dto.CreateScheduleRequest{
		Name:      "Lịch lỗi",
		Frequency: "HOURLY",
		StartDate: "2024-01-01",
		HotelID:   1,
	})
	if !errors.IsValidation(err) {
		t.Errorf("tần suất sai phải trả lỗi validation, got %v", err)
	}
}

func TestCreateSchedule_EndDateBeforeStartDate(t *testing.T) {
	service, _ := newTestPPMService(t)

	_, err := service.CreateSchedule(dto.CreateScheduleRequest{
		Name:      "Lịch lỗi",
		Frequency: "WEEKLY",
		StartDate: "2024-06-01",
		EndDate:   "2024-01-01",
		HotelID:   1,
	})
	if !errors.IsValidation(err) {
		t.Errorf("ngày kết thúc trước ngày bắt đầu phải trả lỗi validation, got %v", err)
	}
}

func TestSetActive_DoesNotTouchTasks(t *testing.T) {
	service, db := newTestPPMService(t)

	schedule := models.PPMSchedule{Name: "Lịch test", Frequency: "WEEKLY", StartDate: date(2024, time.January, 1), IsActive: true, HotelID: 1}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	task := models.PPMTask{Title: "Nhiệm vụ", DueDate: date(2024, time.January, 8), Status: constants.PPMTaskStatusScheduled, ScheduleID: schedule.ID}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}

	updated, err := service.SetActive(schedule.ID, false)
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if updated.IsActive {
		t.Error("IsActive = true, want false")
	}

	var reloaded models.PPMTask
	if err := db.First(&reloaded, task.ID).Error; err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if reloaded.Status != constants.PPMTaskStatusScheduled {
		t.Errorf("tắt lịch không được đổi trạng thái nhiệm vụ, got %d", reloaded.Status)
	}
}

func TestSetActive_NotFound(t *testing.T) {
	service, _ := newTestPPMService(t)

	_, err := service.SetActive(999, false)
	if !errors.IsNotFound(err) {
		t.Errorf("lịch không tồn tại phải trả lỗi not found, got %v", err)
	}
}

func TestGenerateWorkOrder_WithoutTask(t *testing.T) {
	service, db := newTestPPMService(t)

	schedule := models.PPMSchedule{Name: "Kiểm tra thang máy", Frequency: "MONTHLY", StartDate: date(2024, time.January, 1), IsActive: true, HotelID: 3}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	workOrder, err := service.GenerateWorkOrder(schedule.ID, dto.GenerateWorkOrderRequest{
		LocationID: 7,
		AssetID:    9,
	})
	if err != nil {
		t.Fatalf("GenerateWorkOrder: %v", err)
	}

	if workOrder.Title != "PPM: Kiểm tra thang máy" {
		t.Errorf("Title = %q", workOrder.Title)
	}
	if workOrder.Status != constants.WorkOrderStatusLogged {
		t.Errorf("Status = %d, want %d", workOrder.Status, constants.WorkOrderStatusLogged)
	}
	if workOrder.Priority != constants.PriorityMedium {
		t.Errorf("Priority = %d, want %d", workOrder.Priority, constants.PriorityMedium)
	}
	if workOrder.Category != constants.CategoryPreventiveMaintenance {
		t.Errorf("Category = %q", workOrder.Category)
	}
	if workOrder.HotelID != 3 {
		t.Errorf("HotelID = %d, want 3", workOrder.HotelID)
	}
	if workOrder.CreatedByID != constants.SystemUserID {
		t.Errorf("không có người được giao thì người tạo là tài khoản hệ thống, got %d", workOrder.CreatedByID)
	}

	var taskCount int64
	db.Model(&models.PPMTask{}).Count(&taskCount)
	if taskCount != 0 {
		t.Errorf("không có taskId thì không được tạo nhiệm vụ kế tiếp, got %d", taskCount)
	}
}

func TestGenerateWorkOrder_WithTask(t *testing.T) {
	service, db := newTestPPMService(t)

	schedule := models.PPMSchedule{Name: "Vệ sinh hồ bơi", Frequency: "WEEKLY", StartDate: date(2024, time.January, 1), IsActive: true, HotelID: 2}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	taskID := uint(11)
	technicianID := uint(5)
	workOrder, err := service.GenerateWorkOrder(schedule.ID, dto.GenerateWorkOrderRequest{
		TaskID:       &taskID,
		LocationID:   4,
		AssetID:      6,
		AssignedToID: &technicianID,
	})
	if err != nil {
		t.Fatalf("GenerateWorkOrder: %v", err)
	}

	if workOrder.AssignedToID == nil || *workOrder.AssignedToID != technicianID {
		t.Errorf("AssignedToID = %v, want %d", workOrder.AssignedToID, technicianID)
	}
	if workOrder.CreatedByID != technicianID {
		t.Errorf("CreatedByID = %d, want %d", workOrder.CreatedByID, technicianID)
	}

	var tasks []models.PPMTask
	if err := db.Find(&tasks).Error; err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("số nhiệm vụ kế tiếp = %d, want 1", len(tasks))
	}
	followUp := tasks[0]
	if followUp.Status != constants.PPMTaskStatusScheduled {
		t.Errorf("nhiệm vụ kế tiếp phải ở trạng thái SCHEDULED, got %d", followUp.Status)
	}
	if followUp.ScheduleID != schedule.ID {
		t.Errorf("ScheduleID = %d, want %d", followUp.ScheduleID, schedule.ID)
	}
	if followUp.AssetID == nil || *followUp.AssetID != 6 {
		t.Errorf("AssetID = %v, want 6", followUp.AssetID)
	}

	// Ngày đến hạn theo tần suất WEEKLY, tính từ thời điểm sinh
	wantDue := time.Now().AddDate(0, 0, 7)
	if diff := followUp.DueDate.Sub(wantDue); diff > time.Minute || diff < -time.Minute {
		t.Errorf("DueDate = %v, want xấp xỉ %v", followUp.DueDate, wantDue)
	}
}

func TestGenerateWorkOrder_ScheduleNotFound(t *testing.T) {
	service, db := newTestPPMService(t)

	_, err := service.GenerateWorkOrder(999, dto.GenerateWorkOrderRequest{LocationID: 1, AssetID: 1})
	if !errors.IsNotFound(err) {
		t.Errorf("lịch không tồn tại phải trả lỗi not found, got %v", err)
	}

	var count int64
	db.Model(&models.WorkOrder{}).Count(&count)
	if count != 0 {
		t.Errorf("không được tạo lệnh công việc khi lịch không tồn tại, got %d", count)
	}
}
