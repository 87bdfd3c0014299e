package constants

// User role
const (
	RoleStaff      = 0
	RoleTechnician = 1
	RoleManager    = 2
	RoleAdmin      = 3
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Work order status
const (
	WorkOrderStatusLogged     = 0
	WorkOrderStatusInProgress = 1
	WorkOrderStatusOnHold     = 2
	WorkOrderStatusCancelled  = 3
	WorkOrderStatusCompleted  = 4
)

// Work order priority
const (
	PriorityLow    = 0
	PriorityMedium = 1
	PriorityHigh   = 2
)

// PPM task status
const (
	PPMTaskStatusScheduled = 0
	PPMTaskStatusCompleted = 1
	PPMTaskStatusOverdue   = 2
)

// Asset status
const (
	AssetStatusOperational      = 1
	AssetStatusUnderMaintenance = 2
	AssetStatusRetired          = 3
)

// Certificate status (tính lại mỗi lần đọc, không lưu)
const (
	CertificateStatusValid    = "VALID"
	CertificateStatusExpiring = "EXPIRING"
	CertificateStatusExpired  = "EXPIRED"
)

// PPM frequency
const (
	FrequencyDaily     = "DAILY"
	FrequencyWeekly    = "WEEKLY"
	FrequencyMonthly   = "MONTHLY"
	FrequencyQuarterly = "QUARTERLY"
	FrequencyYearly    = "YEARLY"
)

// Work order category cho lệnh sinh từ lịch bảo trì
const CategoryPreventiveMaintenance = "Preventive Maintenance"

// SystemUserID là tài khoản hệ thống dùng khi sinh lệnh công việc không có người tạo
const SystemUserID uint = 1
