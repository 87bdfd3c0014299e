package models

import "time"

// Incident severity
const (
	IncidentSeverityLow      = 0
	IncidentSeverityMedium   = 1
	IncidentSeverityHigh     = 2
	IncidentSeverityCritical = 3
)

// Incident status
const (
	IncidentStatusOpen     = 0
	IncidentStatusResolved = 1
	IncidentStatusClosed   = 2
)

type Incident struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Severity     int       `gorm:"default:0" json:"severity"`
	Status       int       `gorm:"default:0" json:"status"`
	LocationID   uint      `json:"locationId"`
	Location     *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	HotelID      uint      `json:"hotelId"`
	Hotel        *Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	ReportedByID uint      `json:"reportedById"`
	ReportedBy   *User     `json:"reportedBy,omitempty" gorm:"foreignKey:ReportedByID"`
	OccurredAt   time.Time `json:"occurredAt"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
