package services

import (
	"github.com/carebook-dev/carebook/internal/apperrors"
	"github.com/carebook-dev/carebook/internal/models"
	"github.com/carebook-dev/carebook/internal/repositories"
	"github.com/carebook-dev/carebook/internal/rules"
)

type DoctorService struct {
	doctors   repositories.DoctorRepository
	hospitals repositories.HospitalRepository
}

func NewDoctorService(
	doctors repositories.DoctorRepository,
	hospitals repositories.HospitalRepository,
) *DoctorService {
	return &DoctorService{
		doctors:   doctors,
		hospitals: hospitals,
	}
}

type DoctorInput struct {
	FirstName  string
	LastName   string
	Specialty  string
	HospitalID uint
}

func (s *DoctorService) List() ([]DoctorDTO, error) {
	doctors, err := s.doctors.FindAll()
	if err != nil {
		return nil, err
	}

	return mapDoctors(doctors), nil
}

func (s *DoctorService) GetByID(id uint) (*DoctorDTO, error) {
	doctor, err := s.doctors.FindByID(id)
	if err != nil {
		return nil, err
	}

	if doctor == nil {
		return nil, apperrors.NotFound("doctor", id)
	}

	dto := mapDoctor(doctor)
	return &dto, nil
}

func (s *DoctorService) ListByHospital(hospitalID uint) ([]DoctorDTO, error) {
	doctors, err := s.doctors.FindByHospital(hospitalID)
	if err != nil {
		return nil, err
	}

	return mapDoctors(doctors), nil
}

func (s *DoctorService) ListBySpecialty(specialty string) ([]DoctorDTO, error) {
	doctors, err := s.doctors.FindBySpecialty(specialty)
	if err != nil {
		return nil, err
	}

	return mapDoctors(doctors), nil
}

// Create enforces the per-specialty cap at the target hospital before
// persisting. The count-then-insert is not serialized against concurrent
// creates; two racing requests can transiently overshoot the cap.
func (s *DoctorService) Create(input DoctorInput) (*DoctorDTO, error) {
	hospital, err := s.hospitals.FindByID(input.HospitalID)
	if err != nil {
		return nil, err
	}

	if hospital == nil {
		return nil, apperrors.NotFound("hospital", input.HospitalID)
	}

	count, err := s.doctors.CountSpecialty(input.HospitalID, input.Specialty, 0)
	if err != nil {
		return nil, err
	}

	if rules.ExceedsSpecialtyCap(count) {
		return nil, apperrors.Conflictf(
			"hospital %s already has the maximum number of %s specialists",
			hospital.Name, input.Specialty,
		)
	}

	doctor := models.Doctor{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Specialty:  input.Specialty,
		HospitalID: input.HospitalID,
	}

	if err := s.doctors.Create(&doctor); err != nil {
		return nil, err
	}

	created, err := s.doctors.FindByID(doctor.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apperrors.NotFound("doctor", doctor.ID)
	}

	dto := mapDoctor(created)
	return &dto, nil
}

// Update re-checks the cap whenever the specialty or the hospital changes,
// counting against the destination hospital and excluding the doctor itself.
func (s *DoctorService) Update(id uint, input DoctorInput) (*DoctorDTO, error) {
	doctor, err := s.doctors.FindByID(id)
	if err != nil {
		return nil, err
	}

	if doctor == nil {
		return nil, apperrors.NotFound("doctor", id)
	}

	if doctor.HospitalID != input.HospitalID {
		hospital, err := s.hospitals.FindByID(input.HospitalID)
		if err != nil {
			return nil, err
		}
		if hospital == nil {
			return nil, apperrors.NotFound("hospital", input.HospitalID)
		}
	}

	if !rules.SpecialtyMatches(doctor.Specialty, input.Specialty) ||
		doctor.HospitalID != input.HospitalID {
		count, err := s.doctors.CountSpecialty(input.HospitalID, input.Specialty, id)
		if err != nil {
			return nil, err
		}

		if rules.ExceedsSpecialtyCap(count) {
			return nil, apperrors.Conflictf(
				"hospital already has the maximum number of %s specialists",
				input.Specialty,
			)
		}
	}

	doctor.FirstName = input.FirstName
	doctor.LastName = input.LastName
	doctor.Specialty = input.Specialty
	doctor.HospitalID = input.HospitalID

	if err := s.doctors.Save(doctor); err != nil {
		return nil, err
	}

	updated, err := s.doctors.FindByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound("doctor", id)
	}

	dto := mapDoctor(updated)
	return &dto, nil
}

// Delete refuses to remove a doctor with existing appointments.
func (s *DoctorService) Delete(id uint) error {
	doctor, err := s.doctors.FindByID(id)
	if err != nil {
		return err
	}

	if doctor == nil {
		return apperrors.NotFound("doctor", id)
	}

	hasAppointments, err := s.doctors.HasAppointments(id)
	if err != nil {
		return err
	}

	if hasAppointments {
		return apperrors.Conflictf("cannot delete doctor with existing appointments")
	}

	return s.doctors.Delete(doctor)
}

func mapDoctors(doctors []models.Doctor) []DoctorDTO {
	dtos := make([]DoctorDTO, 0, len(doctors))
	for i := range doctors {
		dtos = append(dtos, mapDoctor(&doctors[i]))
	}
	return dtos
}
