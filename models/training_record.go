package models

import "time"

type TrainingRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	EmployeeID  uint       `gorm:"not null" json:"employeeId"`
	Employee    *User      `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	CourseName  string     `gorm:"not null" json:"courseName"`
	CompletedAt time.Time  `json:"completedAt"`
	ValidUntil  *time.Time `json:"validUntil,omitempty"`
	HotelID     uint       `json:"hotelId"`
	Hotel       *Hotel     `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
