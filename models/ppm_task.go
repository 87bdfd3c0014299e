package models

import "time"

type PPMTask struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	DueDate      time.Time    `json:"dueDate"`
	Status       int          `gorm:"default:0" json:"status"`
	ScheduleID   uint         `gorm:"not null" json:"scheduleId"`
	Schedule     *PPMSchedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID"`
	AssetID      *uint        `json:"assetId,omitempty"`
	Asset        *Asset       `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
	AssignedToID *uint        `json:"assignedToId,omitempty"`
	AssignedTo   *User        `json:"assignedTo,omitempty" gorm:"foreignKey:AssignedToID"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}
