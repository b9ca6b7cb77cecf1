package models

import "gorm.io/gorm"

type Doctor struct {
	gorm.Model

	FirstName  string `gorm:"not null"`
	LastName   string `gorm:"not null"`
	Specialty  string `gorm:"not null;index"` // free text, matched case-insensitively
	HospitalID uint   `gorm:"not null;index"`

	// Relationships
	Hospital     Hospital      `gorm:"foreignKey:HospitalID"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID"`
}
