package models

import "time"

type WorkOrder struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Status       int       `gorm:"default:0" json:"status"`
	Priority     int       `gorm:"default:1" json:"priority"`
	Category     string    `json:"category"`
	LocationID   uint      `json:"locationId"`
	Location     *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	AssetID      uint      `json:"assetId"`
	Asset        *Asset    `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
	HotelID      uint      `json:"hotelId"`
	Hotel        *Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	CreatedByID  uint      `gorm:"not null" json:"createdById"`
	CreatedBy    *User     `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	AssignedToID *uint     `json:"assignedToId,omitempty"`
	AssignedTo   *User     `json:"assignedTo,omitempty" gorm:"foreignKey:AssignedToID"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
