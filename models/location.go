package models

import "time"

type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Floor     string    `json:"floor"`
	HotelID   uint      `json:"hotelId"`
	Hotel     *Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
