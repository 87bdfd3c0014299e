package jobs

import (
	"facility/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// OverdueTaskMarker định nghĩa interface cho việc dẫn xuất trạng thái quá hạn
type OverdueTaskMarker interface {
	MarkOverdueTasks(m *melody.Melody) error
}

var overdueTaskMarker OverdueTaskMarker

// SetOverdueTaskMarker thiết lập implementation cho OverdueTaskMarker
func SetOverdueTaskMarker(marker OverdueTaskMarker) {
	overdueTaskMarker = marker
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: nhiệm vụ SCHEDULED quá ngày đến hạn chuyển sang OVERDUE
	_, err := c.AddFunc("0 0 * * *", func() {
		if overdueTaskMarker == nil {
			utils.LogError("OverdueTaskMarker chưa được thiết lập")
			return
		}
		if err := overdueTaskMarker.MarkOverdueTasks(m); err != nil {
			utils.LogError("Lỗi khi cập nhật nhiệm vụ quá hạn: %v", err)
			return
		}
		utils.LogInfo("Đã chạy xong job cập nhật nhiệm vụ quá hạn")
	})
	if err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs initialized successfully")
	return nil
}
