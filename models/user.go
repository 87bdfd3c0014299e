package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string        `gorm:"default:New User" json:"name"`
	Email       string        `gorm:"unique" json:"email"`
	PhoneNumber string        `gorm:"type:varchar(11)" json:"phoneNumber"`
	Avatar      string        `json:"avatar"`
	Role        int           `gorm:"default:0" json:"role"`
	Status      int           `gorm:"default:1" json:"status"`
	EmployeeID  string        `gorm:"uniqueIndex;type:varchar(20)" json:"employeeId"`
	HotelIDs    pq.Int64Array `json:"hotelIds" gorm:"type:integer[]"`
}
