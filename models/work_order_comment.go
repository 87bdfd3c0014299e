package models

import "time"

type WorkOrderComment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	WorkOrderID uint       `gorm:"not null" json:"workOrderId"`
	WorkOrder   *WorkOrder `json:"workOrder,omitempty" gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	AuthorID    uint       `json:"authorId"`
	Author      *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Type        string     `gorm:"default:comment" json:"type"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
