package models

import "gorm.io/gorm"

type Hospital struct {
	gorm.Model

	Name    string `gorm:"not null"`
	Address string `gorm:"not null"`
	City    string `gorm:"not null;index"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:HospitalID"`
}
