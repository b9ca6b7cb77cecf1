package repositories

import (
	"errors"

	"github.com/carebook-dev/carebook/internal/models"
	"gorm.io/gorm"
)

type gormDoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &gormDoctorRepository{db: db}
}

func (r *gormDoctorRepository) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor

	if err := r.db.Preload("Hospital").Find(&doctors).Error; err != nil {
		return nil, err
	}

	return doctors, nil
}

func (r *gormDoctorRepository) FindByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor

	if err := r.db.Preload("Hospital").First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &doctor, nil
}

func (r *gormDoctorRepository) FindByHospital(hospitalID uint) ([]models.Doctor, error) {
	var doctors []models.Doctor

	err := r.db.Preload("Hospital").
		Where("hospital_id = ?", hospitalID).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}

	return doctors, nil
}

func (r *gormDoctorRepository) FindBySpecialty(specialty string) ([]models.Doctor, error) {
	var doctors []models.Doctor

	err := r.db.Preload("Hospital").
		Where("LOWER(specialty) = LOWER(?)", specialty).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}

	return doctors, nil
}

func (r *gormDoctorRepository) Create(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

func (r *gormDoctorRepository) Save(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

func (r *gormDoctorRepository) Delete(doctor *models.Doctor) error {
	return r.db.Delete(doctor).Error
}

func (r *gormDoctorRepository) CountSpecialty(hospitalID uint, specialty string, excludeID uint) (int, error) {
	var count int64

	query := r.db.Model(&models.Doctor{}).
		Where("hospital_id = ? AND LOWER(specialty) = LOWER(?)", hospitalID, specialty)

	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

func (r *gormDoctorRepository) HasAppointments(doctorID uint) (bool, error) {
	var count int64

	err := r.db.Model(&models.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
