package services

import (
	"testing"
	"time"

	"facility/constants"
	"facility/models"
)

func TestMarkOverdueTasks(t *testing.T) {
	db := newTestDB(t)

	schedule := models.PPMSchedule{Name: "Lịch", Frequency: "DAILY", StartDate: time.Now().AddDate(0, -1, 0), IsActive: true, HotelID: 1}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	overdue := models.PPMTask{Title: "Quá hạn", DueDate: time.Now().AddDate(0, 0, -2), Status: constants.PPMTaskStatusScheduled, ScheduleID: schedule.ID}
	upcoming := models.PPMTask{Title: "Chưa đến hạn", DueDate: time.Now().AddDate(0, 0, 2), Status: constants.PPMTaskStatusScheduled, ScheduleID: schedule.ID}
	completed := models.PPMTask{Title: "Đã xong", DueDate: time.Now().AddDate(0, 0, -2), Status: constants.PPMTaskStatusCompleted, ScheduleID: schedule.ID}
	for _, task := range []*models.PPMTask{&overdue, &upcoming, &completed} {
		if err := db.Create(task).Error; err != nil {
			t.Fatalf("seed task: %v", err)
		}
	}

	if err := MarkOverdueTasks(db, nil); err != nil {
		t.Fatalf("MarkOverdueTasks: %v", err)
	}

	cases := []struct {
		id         uint
		wantStatus int
	}{
		{overdue.ID, constants.PPMTaskStatusOverdue},
		{upcoming.ID, constants.PPMTaskStatusScheduled},
		{completed.ID, constants.PPMTaskStatusCompleted},
	}
	for _, tc := range cases {
		var reloaded models.PPMTask
		if err := db.First(&reloaded, tc.id).Error; err != nil {
			t.Fatalf("reload task %d: %v", tc.id, err)
		}
		if reloaded.Status != tc.wantStatus {
			t.Errorf("task %d status = %d, want %d", tc.id, reloaded.Status, tc.wantStatus)
		}
	}
}

func TestMarkOverdueTasks_NothingDue(t *testing.T) {
	db := newTestDB(t)

	if err := MarkOverdueTasks(db, nil); err != nil {
		t.Fatalf("không có nhiệm vụ nào vẫn phải trả nil, got %v", err)
	}
}
