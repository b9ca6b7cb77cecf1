package services

import (
	"github.com/carebook-dev/carebook/internal/apperrors"
	"github.com/carebook-dev/carebook/internal/models"
	"github.com/carebook-dev/carebook/internal/repositories"
)

type HospitalService struct {
	hospitals repositories.HospitalRepository
}

func NewHospitalService(hospitals repositories.HospitalRepository) *HospitalService {
	return &HospitalService{hospitals: hospitals}
}

type HospitalInput struct {
	Name    string
	Address string
	City    string
}

func (s *HospitalService) List() ([]HospitalDTO, error) {
	hospitals, err := s.hospitals.FindAll()
	if err != nil {
		return nil, err
	}

	dtos := make([]HospitalDTO, 0, len(hospitals))
	for i := range hospitals {
		dtos = append(dtos, mapHospital(&hospitals[i]))
	}

	return dtos, nil
}

func (s *HospitalService) GetByID(id uint) (*HospitalDTO, error) {
	hospital, err := s.hospitals.FindByID(id)
	if err != nil {
		return nil, err
	}

	if hospital == nil {
		return nil, apperrors.NotFound("hospital", id)
	}

	dto := mapHospital(hospital)
	return &dto, nil
}

func (s *HospitalService) ListByCity(city string) ([]HospitalDTO, error) {
	hospitals, err := s.hospitals.FindByCity(city)
	if err != nil {
		return nil, err
	}

	dtos := make([]HospitalDTO, 0, len(hospitals))
	for i := range hospitals {
		dtos = append(dtos, mapHospital(&hospitals[i]))
	}

	return dtos, nil
}

func (s *HospitalService) Create(input HospitalInput) (*HospitalDTO, error) {
	hospital := models.Hospital{
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
	}

	if err := s.hospitals.Create(&hospital); err != nil {
		return nil, err
	}

	dto := mapHospital(&hospital)
	return &dto, nil
}

func (s *HospitalService) Update(id uint, input HospitalInput) (*HospitalDTO, error) {
	hospital, err := s.hospitals.FindByID(id)
	if err != nil {
		return nil, err
	}

	if hospital == nil {
		return nil, apperrors.NotFound("hospital", id)
	}

	hospital.Name = input.Name
	hospital.Address = input.Address
	hospital.City = input.City

	if err := s.hospitals.Save(hospital); err != nil {
		return nil, err
	}

	dto := mapHospital(hospital)
	return &dto, nil
}

// Delete refuses to remove a hospital that still employs doctors.
func (s *HospitalService) Delete(id uint) error {
	hospital, err := s.hospitals.FindByID(id)
	if err != nil {
		return err
	}

	if hospital == nil {
		return apperrors.NotFound("hospital", id)
	}

	hasDoctors, err := s.hospitals.HasDoctors(id)
	if err != nil {
		return err
	}

	if hasDoctors {
		return apperrors.Conflictf("cannot delete hospital with assigned doctors")
	}

	return s.hospitals.Delete(hospital)
}
