package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	gorm.Model

	DoctorID        uint      `gorm:"not null;index"`
	PatientID       uint      `gorm:"not null;index"`
	AppointmentDate time.Time `gorm:"not null"`
	Notes           string

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID"`
	Patient Patient `gorm:"foreignKey:PatientID"`
}
