package validator

import (
	"regexp"
	"time"

	"facility/constants"
	"facility/errors"
	"facility/models"
)

var frequencies = map[string]bool{
	constants.FrequencyDaily:     true,
	constants.FrequencyWeekly:    true,
	constants.FrequencyMonthly:   true,
	constants.FrequencyQuarterly: true,
	constants.FrequencyYearly:    true,
}

// ValidateSchedule validate thông tin lịch bảo trì
func ValidateSchedule(schedule *models.PPMSchedule) error {
	if schedule.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên lịch bảo trì không được để trống", nil)
	}

	if !frequencies[schedule.Frequency] {
		return errors.NewAppError(errors.ErrCodeValidation, "Tần suất không hợp lệ: "+schedule.Frequency, nil)
	}

	if schedule.StartDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày bắt đầu không được để trống", nil)
	}

	if schedule.EndDate != nil && schedule.EndDate.Before(schedule.StartDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	if schedule.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID khách sạn không được để trống", nil)
	}

	return nil
}

// ValidateWorkOrder validate thông tin lệnh công việc
func ValidateWorkOrder(workOrder *models.WorkOrder) error {
	if workOrder.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề không được để trống", nil)
	}

	if workOrder.CreatedByID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID người tạo không được để trống", nil)
	}

	if workOrder.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID khách sạn không được để trống", nil)
	}

	if workOrder.Priority < constants.PriorityLow || workOrder.Priority > constants.PriorityHigh {
		return errors.NewAppError(errors.ErrCodeValidation, "Mức ưu tiên không hợp lệ", nil)
	}

	if workOrder.Status < constants.WorkOrderStatusLogged || workOrder.Status > constants.WorkOrderStatusCompleted {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái không hợp lệ", nil)
	}

	return nil
}

// ValidateAsset validate thông tin thiết bị
func ValidateAsset(asset *models.Asset) error {
	if asset.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên thiết bị không được để trống", nil)
	}

	if asset.SerialNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số serial không được để trống", nil)
	}

	if !isValidSerialNumber(asset.SerialNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số serial không hợp lệ: "+asset.SerialNumber, nil)
	}

	if asset.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID khách sạn không được để trống", nil)
	}

	if asset.PurchaseDate != nil && asset.WarrantyExpiry != nil && asset.WarrantyExpiry.Before(*asset.PurchaseDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày hết bảo hành phải sau ngày mua", nil)
	}

	return nil
}

// ValidateIncident validate thông tin sự cố
func ValidateIncident(incident *models.Incident) error {
	if incident.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề sự cố không được để trống", nil)
	}

	if incident.Severity < models.IncidentSeverityLow || incident.Severity > models.IncidentSeverityCritical {
		return errors.NewAppError(errors.ErrCodeValidation, "Mức độ nghiêm trọng không hợp lệ", nil)
	}

	if incident.OccurredAt.After(time.Now()) {
		return errors.NewAppError(errors.ErrCodeValidation, "Thời điểm xảy ra không được ở tương lai", nil)
	}

	return nil
}

// isValidSerialNumber kiểm tra số serial hợp lệ
func isValidSerialNumber(serial string) bool {
	serialRegex := regexp.MustCompile(`^[A-Za-z0-9\-]{4,32}$`)
	return serialRegex.MatchString(serial)
}
