package repositories

import (
	"errors"

	"github.com/carebook-dev/carebook/internal/models"
	"gorm.io/gorm"
)

type gormHospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) HospitalRepository {
	return &gormHospitalRepository{db: db}
}

func (r *gormHospitalRepository) FindAll() ([]models.Hospital, error) {
	var hospitals []models.Hospital

	if err := r.db.Find(&hospitals).Error; err != nil {
		return nil, err
	}

	return hospitals, nil
}

func (r *gormHospitalRepository) FindByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital

	if err := r.db.First(&hospital, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &hospital, nil
}

func (r *gormHospitalRepository) FindByCity(city string) ([]models.Hospital, error) {
	var hospitals []models.Hospital

	if err := r.db.Where("LOWER(city) = LOWER(?)", city).Find(&hospitals).Error; err != nil {
		return nil, err
	}

	return hospitals, nil
}

func (r *gormHospitalRepository) Create(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

func (r *gormHospitalRepository) Save(hospital *models.Hospital) error {
	return r.db.Save(hospital).Error
}

func (r *gormHospitalRepository) Delete(hospital *models.Hospital) error {
	return r.db.Delete(hospital).Error
}

func (r *gormHospitalRepository) HasDoctors(hospitalID uint) (bool, error) {
	var count int64

	err := r.db.Model(&models.Doctor{}).
		Where("hospital_id = ?", hospitalID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
