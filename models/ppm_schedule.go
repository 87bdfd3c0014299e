package models

import "time"

type PPMSchedule struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Frequency   string     `gorm:"not null" json:"frequency"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	HotelID     uint       `json:"hotelId"`
	Hotel       *Hotel     `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Tasks       []PPMTask  `json:"tasks,omitempty" gorm:"foreignKey:ScheduleID"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
