package repositories

import (
	"errors"
	"time"

	"github.com/carebook-dev/carebook/internal/models"
	"gorm.io/gorm"
)

type gormAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &gormAppointmentRepository{db: db}
}

func (r *gormAppointmentRepository) FindAll() ([]models.Appointment, error) {
	var appointments []models.Appointment

	err := r.db.Preload("Doctor").Preload("Patient").Find(&appointments).Error
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *gormAppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment

	err := r.db.Preload("Doctor").Preload("Patient").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &appointment, nil
}

func (r *gormAppointmentRepository) FindByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment

	err := r.db.Preload("Doctor").Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *gormAppointmentRepository) FindByPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment

	err := r.db.Preload("Doctor").Preload("Patient").
		Where("patient_id = ?", patientID).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *gormAppointmentRepository) DatesForPair(patientID, doctorID uint) ([]time.Time, error) {
	var dates []time.Time

	err := r.db.Model(&models.Appointment{}).
		Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).
		Pluck("appointment_date", &dates).Error
	if err != nil {
		return nil, err
	}

	return dates, nil
}

func (r *gormAppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *gormAppointmentRepository) Save(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *gormAppointmentRepository) Delete(appointment *models.Appointment) error {
	return r.db.Delete(appointment).Error
}
