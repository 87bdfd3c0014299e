package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Certificate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name" validate:"required"`
	Type       string    `json:"type" validate:"required"`
	Issuer     string    `json:"issuer"`
	IssueDate  time.Time `json:"issueDate"`
	ExpiryDate time.Time `json:"expiryDate" validate:"required"`
	EmployeeID uint      `gorm:"not null" json:"employeeId"`
	Employee   *User     `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	HotelID    uint      `json:"hotelId"`
	Hotel      *Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

var validCertificateTypes = map[string]bool{
	"FIRE_SAFETY": true, "ELECTRICAL": true, "GAS_SAFETY": true,
	"ELEVATOR": true, "POOL_HYGIENE": true, "FOOD_HYGIENE": true, "OTHER": true,
}

func validateCertificateType(certType string) error {
	if _, ok := validCertificateTypes[certType]; !ok {
		return fmt.Errorf("loại chứng chỉ không hợp lệ: %s", certType)
	}
	return nil
}

func (cert *Certificate) Validate() error {
	validate := validator.New()

	if err := validate.Struct(cert); err != nil {
		return err
	}

	if err := validateCertificateType(cert.Type); err != nil {
		return err
	}

	if !cert.IssueDate.IsZero() && cert.ExpiryDate.Before(cert.IssueDate) {
		return fmt.Errorf("ngày hết hạn phải sau ngày cấp")
	}

	return nil
}
