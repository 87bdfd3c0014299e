package models

import "time"

type Asset struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"not null" json:"name"`
	Description    string     `gorm:"type:text" json:"description"`
	SerialNumber   string     `gorm:"uniqueIndex" json:"serialNumber"`
	Category       string     `json:"category"`
	Status         int        `gorm:"default:1" json:"status"`
	PurchaseDate   *time.Time `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time `json:"warrantyExpiry,omitempty"`
	PhotoURL       string     `json:"photoUrl"`
	QRCodeURL      string     `json:"qrCodeUrl"`
	LocationID     uint       `json:"locationId"`
	Location       *Location  `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	HotelID        uint       `json:"hotelId"`
	Hotel          *Hotel     `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	IsActive       bool       `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
