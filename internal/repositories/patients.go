package repositories

import (
	"errors"

	"github.com/carebook-dev/carebook/internal/models"
	"gorm.io/gorm"
)

type gormPatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &gormPatientRepository{db: db}
}

func (r *gormPatientRepository) FindAll() ([]models.Patient, error) {
	var patients []models.Patient

	if err := r.db.Find(&patients).Error; err != nil {
		return nil, err
	}

	return patients, nil
}

func (r *gormPatientRepository) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient

	if err := r.db.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &patient, nil
}

func (r *gormPatientRepository) FindByUserID(userID uint) (*models.Patient, error) {
	var patient models.Patient

	if err := r.db.Where("user_id = ?", userID).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &patient, nil
}

func (r *gormPatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

func (r *gormPatientRepository) Save(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// Delete removes the row for real. A soft delete would keep user_id in the
// unique index and block re-provisioning a profile for the same user.
func (r *gormPatientRepository) Delete(patient *models.Patient) error {
	return r.db.Unscoped().Delete(patient).Error
}

func (r *gormPatientRepository) HasAppointments(patientID uint) (bool, error) {
	var count int64

	err := r.db.Model(&models.Appointment{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
