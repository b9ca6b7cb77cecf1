// Package repositories is the persistence collaborator. Contracts return
// (nil, nil) when a lookup does not match, so callers decide which misses are
// NotFound failures; a non-nil error always means the store itself failed.
package repositories

import (
	"time"

	"github.com/carebook-dev/carebook/internal/models"
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
}

type RoleRepository interface {
	FindByName(name string) (*models.Role, error)
	Create(role *models.Role) error
	CreateLink(userID, roleID uint) error
	// RolesForUser returns role names through the link rows, duplicates
	// included when duplicate links exist.
	RolesForUser(userID uint) ([]string, error)
	UserHasRole(userID uint, roleName string) (bool, error)
}

type HospitalRepository interface {
	FindAll() ([]models.Hospital, error)
	FindByID(id uint) (*models.Hospital, error)
	FindByCity(city string) ([]models.Hospital, error)
	Create(hospital *models.Hospital) error
	Save(hospital *models.Hospital) error
	Delete(hospital *models.Hospital) error
	HasDoctors(hospitalID uint) (bool, error)
}

type DoctorRepository interface {
	FindAll() ([]models.Doctor, error)
	FindByID(id uint) (*models.Doctor, error)
	FindByHospital(hospitalID uint) ([]models.Doctor, error)
	FindBySpecialty(specialty string) ([]models.Doctor, error)
	Create(doctor *models.Doctor) error
	Save(doctor *models.Doctor) error
	Delete(doctor *models.Doctor) error
	// CountSpecialty counts doctors at the hospital whose specialty matches
	// case-insensitively, excluding excludeID when non-zero.
	CountSpecialty(hospitalID uint, specialty string, excludeID uint) (int, error)
	HasAppointments(doctorID uint) (bool, error)
}

type PatientRepository interface {
	FindAll() ([]models.Patient, error)
	FindByID(id uint) (*models.Patient, error)
	FindByUserID(userID uint) (*models.Patient, error)
	Create(patient *models.Patient) error
	Save(patient *models.Patient) error
	Delete(patient *models.Patient) error
	HasAppointments(patientID uint) (bool, error)
}

type AppointmentRepository interface {
	FindAll() ([]models.Appointment, error)
	FindByID(id uint) (*models.Appointment, error)
	FindByDoctor(doctorID uint) ([]models.Appointment, error)
	FindByPatient(patientID uint) ([]models.Appointment, error)
	// DatesForPair returns the appointment dates already booked for the
	// (patient, doctor) pair, for the conflict-window check.
	DatesForPair(patientID, doctorID uint) ([]time.Time, error)
	Create(appointment *models.Appointment) error
	Save(appointment *models.Appointment) error
	Delete(appointment *models.Appointment) error
}
