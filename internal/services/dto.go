package services

import (
	"time"

	"github.com/carebook-dev/carebook/internal/models"
)

// Caller is the identity established by authentication, input to every
// ownership check.
type Caller struct {
	UserID  uint
	IsAdmin bool
}

type UserDTO struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type HospitalDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type DoctorDTO struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Specialty    string `json:"specialty"`
	HospitalID   uint   `json:"hospital_id"`
	HospitalName string `json:"hospital_name"`
}

type PatientDTO struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
	UserID    uint      `json:"user_id"`
}

type AppointmentDTO struct {
	ID               uint      `json:"id"`
	DoctorID         uint      `json:"doctor_id"`
	DoctorFullName   string    `json:"doctor_full_name"`
	PatientID        uint      `json:"patient_id"`
	PatientFullName  string    `json:"patient_full_name"`
	AppointmentDate  time.Time `json:"appointment_date"`
	AppointmentDay   int       `json:"appointment_day"`
	AppointmentMonth string    `json:"appointment_month"`
	AppointmentYear  int       `json:"appointment_year"`
	Notes            string    `json:"notes"`
}

func mapHospital(hospital *models.Hospital) HospitalDTO {
	return HospitalDTO{
		ID:      hospital.ID,
		Name:    hospital.Name,
		Address: hospital.Address,
		City:    hospital.City,
	}
}

func mapDoctor(doctor *models.Doctor) DoctorDTO {
	return DoctorDTO{
		ID:           doctor.ID,
		FirstName:    doctor.FirstName,
		LastName:     doctor.LastName,
		Specialty:    doctor.Specialty,
		HospitalID:   doctor.HospitalID,
		HospitalName: doctor.Hospital.Name,
	}
}

func mapPatient(patient *models.Patient) PatientDTO {
	return PatientDTO{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		BirthDate: patient.BirthDate,
		UserID:    patient.UserID,
	}
}

func mapAppointment(appointment *models.Appointment) AppointmentDTO {
	date := appointment.AppointmentDate

	return AppointmentDTO{
		ID:               appointment.ID,
		DoctorID:         appointment.DoctorID,
		DoctorFullName:   appointment.Doctor.FirstName + " " + appointment.Doctor.LastName,
		PatientID:        appointment.PatientID,
		PatientFullName:  appointment.Patient.FirstName + " " + appointment.Patient.LastName,
		AppointmentDate:  date,
		AppointmentDay:   date.Day(),
		AppointmentMonth: date.Month().String(),
		AppointmentYear:  date.Year(),
		Notes:            appointment.Notes,
	}
}
