package models

import (
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model

	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	BirthDate time.Time `gorm:"not null"`
	UserID    uint      `gorm:"not null;uniqueIndex"` // one profile per user

	// Relationships
	User         User          `gorm:"foreignKey:UserID"`
	Appointments []Appointment `gorm:"foreignKey:PatientID"`
}
