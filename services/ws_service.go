package services

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"facility/constants"
	"facility/models"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// GetDueScheduledTasks lấy các nhiệm vụ bảo trì SCHEDULED đã quá ngày đến hạn
func GetDueScheduledTasks(db *gorm.DB) ([]models.PPMTask, error) {
	var tasks []models.PPMTask

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return nil, fmt.Errorf("lỗi khi tải múi giờ: %w", err)
	}

	now := time.Now().In(loc)

	err = db.Where("status = ? AND due_date < ?", constants.PPMTaskStatusScheduled, now).Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("lỗi khi truy vấn nhiệm vụ đến hạn: %w", err)
	}

	return tasks, nil
}

// MarkOverdueTasks chuyển các nhiệm vụ quá hạn sang OVERDUE và thông báo
// qua websocket. Đây là nơi duy nhất dẫn xuất trạng thái OVERDUE.
func MarkOverdueTasks(db *gorm.DB, m *melody.Melody) error {
	tasks, err := GetDueScheduledTasks(db)
	if err != nil {
		log.Println("Lỗi lấy nhiệm vụ đến hạn:", err)
		return err
	}

	if len(tasks) == 0 {
		log.Println("Không có nhiệm vụ nào quá hạn hôm nay.")
		return nil
	}

	tx := db.Begin()

	for _, task := range tasks {
		if err := tx.Model(&models.PPMTask{}).
			Where("id = ?", task.ID).
			Update("status", constants.PPMTaskStatusOverdue).Error; err != nil {
			tx.Rollback()
			log.Printf("Lỗi cập nhật trạng thái nhiệm vụ %d: %v\n", task.ID, err)
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	// Thông báo fire-and-forget
	if m != nil {
		message := fmt.Sprintf("🔔 Có %d nhiệm vụ bảo trì vừa chuyển sang quá hạn.", len(tasks))
		m.Broadcast([]byte(message))
	}

	log.Printf("Đã chuyển %d nhiệm vụ sang trạng thái quá hạn.\n", len(tasks))
	return nil
}
