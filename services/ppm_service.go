package services

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"facility/builders"
	"facility/constants"
	"facility/dto"
	"facility/errors"
	"facility/models"
	"facility/services/logger"
	"facility/validator"

	"gorm.io/gorm"
)

// PPMService xử lý lịch bảo trì định kỳ và sinh lệnh công việc
type PPMService struct {
	db     *gorm.DB
	logger logger.Logger
}

type PPMServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewPPMService(opts PPMServiceOptions) *PPMService {
	return &PPMService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// NextDueDate tính ngày đến hạn kế tiếp theo tần suất của lịch.
// Tần suất không nhận dạng được mặc định cộng 30 ngày.
func NextDueDate(now time.Time, frequency string) time.Time {
	switch strings.ToUpper(frequency) {
	case constants.FrequencyDaily:
		return now.AddDate(0, 0, 1)
	case constants.FrequencyWeekly:
		return now.AddDate(0, 0, 7)
	case constants.FrequencyMonthly:
		return addMonthsClamped(now, 1)
	case constants.FrequencyQuarterly:
		return addMonthsClamped(now, 3)
	case constants.FrequencyYearly:
		return addMonthsClamped(now, 12)
	default:
		return now.AddDate(0, 0, 30)
	}
}

// addMonthsClamped cộng tháng và kẹp về ngày cuối tháng nếu tháng đích ngắn hơn
// (31/01 + 1 tháng = 29/02 năm nhuận, không phải 02/03 như AddDate)
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// IsValidFrequency kiểm tra tần suất có thuộc 5 giá trị cho phép không
func IsValidFrequency(frequency string) bool {
	switch strings.ToUpper(frequency) {
	case constants.FrequencyDaily, constants.FrequencyWeekly, constants.FrequencyMonthly,
		constants.FrequencyQuarterly, constants.FrequencyYearly:
		return true
	}
	return false
}

// CreateSchedule tạo lịch bảo trì mới với isActive=true
func (s *PPMService) CreateSchedule(req dto.CreateScheduleRequest) (*models.PPMSchedule, error) {
	if !IsValidFrequency(req.Frequency) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Tần suất không hợp lệ", nil)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	schedule := models.PPMSchedule{
		Name:        req.Name,
		Description: req.Description,
		Frequency:   strings.ToUpper(req.Frequency),
		StartDate:   startDate,
		IsActive:    true,
		HotelID:     req.HotelID,
	}

	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
		}
		schedule.EndDate = &endDate
	}

	if err := validator.ValidateSchedule(&schedule); err != nil {
		return nil, err
	}

	if err := s.db.Create(&schedule).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo lịch bảo trì", err)
	}

	return &schedule, nil
}

// ListSchedules trả về danh sách lịch theo ngày bắt đầu tăng dần,
// kèm các bộ đếm tính từ danh sách nhiệm vụ đã nạp
func (s *PPMService) ListSchedules() ([]dto.ScheduleResponse, error) {
	var schedules []models.PPMSchedule
	if err := s.db.Preload("Tasks").Order("start_date asc").Find(&schedules).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách lịch bảo trì", err)
	}

	responses := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		activeTasks := 0
		overdueTasks := 0
		for _, task := range schedule.Tasks {
			switch task.Status {
			case constants.PPMTaskStatusScheduled:
				activeTasks++
			case constants.PPMTaskStatusOverdue:
				overdueTasks++
			}
		}

		responses = append(responses, dto.ScheduleResponse{
			ID:           schedule.ID,
			Name:         schedule.Name,
			Description:  schedule.Description,
			Frequency:    schedule.Frequency,
			StartDate:    schedule.StartDate,
			EndDate:      schedule.EndDate,
			IsActive:     schedule.IsActive,
			HotelID:      schedule.HotelID,
			TaskCount:    len(schedule.Tasks),
			ActiveTasks:  activeTasks,
			OverdueTasks: overdueTasks,
			CreatedAt:    schedule.CreatedAt,
			UpdatedAt:    schedule.UpdatedAt,
		})
	}

	return responses, nil
}

// GetSchedule lấy chi tiết một lịch kèm nhiệm vụ
func (s *PPMService) GetSchedule(scheduleID uint) (*models.PPMSchedule, error) {
	var schedule models.PPMSchedule
	if err := s.db.Preload("Tasks").First(&schedule, scheduleID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeScheduleNotFound, "Không tìm thấy lịch bảo trì", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy lịch bảo trì", err)
	}
	return &schedule, nil
}

// SetActive bật/tắt lịch bảo trì, không ảnh hưởng nhiệm vụ hay lệnh công việc con
func (s *PPMService) SetActive(scheduleID uint, isActive bool) (*models.PPMSchedule, error) {
	var schedule models.PPMSchedule
	if err := s.db.First(&schedule, scheduleID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeScheduleNotFound, "Không tìm thấy lịch bảo trì", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy lịch bảo trì", err)
	}

	schedule.IsActive = isActive
	if err := s.db.Save(&schedule).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật lịch bảo trì", err)
	}

	return &schedule, nil
}

// GenerateWorkOrder sinh một lệnh công việc từ lịch bảo trì; nếu có taskId thì
// tạo thêm nhiệm vụ kế tiếp với ngày đến hạn theo tần suất. Hai bản ghi được
// tạo trong cùng một transaction.
func (s *PPMService) GenerateWorkOrder(scheduleID uint, req dto.GenerateWorkOrderRequest) (*models.WorkOrder, error) {
	var schedule models.PPMSchedule
	if err := s.db.First(&schedule, scheduleID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeScheduleNotFound, "Không tìm thấy lịch bảo trì", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy lịch bảo trì", err)
	}

	description := schedule.Description
	if description == "" {
		description = fmt.Sprintf("Công việc bảo trì định kỳ theo lịch %s", schedule.Name)
	}

	createdByID := constants.SystemUserID
	if req.AssignedToID != nil {
		createdByID = *req.AssignedToID
	}

	workOrder := builders.NewWorkOrderBuilder().
		WithTitle("PPM: " + schedule.Name).
		WithDescription(description).
		WithStatus(constants.WorkOrderStatusLogged).
		WithPriority(constants.PriorityMedium).
		WithCategory(constants.CategoryPreventiveMaintenance).
		WithLocation(req.LocationID).
		WithAsset(req.AssetID).
		WithHotel(schedule.HotelID).
		WithCreator(createdByID).
		WithAssignee(req.AssignedToID).
		Build()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workOrder).Error; err != nil {
			return err
		}

		if req.TaskID != nil {
			assetID := req.AssetID
			task := models.PPMTask{
				Title:        schedule.Name,
				Description:  description,
				DueDate:      NextDueDate(time.Now(), schedule.Frequency),
				Status:       constants.PPMTaskStatusScheduled,
				ScheduleID:   schedule.ID,
				AssetID:      &assetID,
				AssignedToID: req.AssignedToID,
			}
			if err := tx.Create(&task).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể sinh lệnh công việc", err)
	}

	if s.logger != nil {
		s.logger.Info("Đã sinh lệnh công việc %d từ lịch bảo trì %d", workOrder.ID, schedule.ID)
	}

	// Trả về kèm các quan hệ đã resolve
	if err := s.db.Preload("CreatedBy").Preload("AssignedTo").Preload("Location").
		Preload("Asset").Preload("Hotel").First(workOrder, workOrder.ID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể nạp lệnh công việc vừa tạo", err)
	}

	return workOrder, nil
}
