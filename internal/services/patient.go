package services

import (
	"time"

	"github.com/carebook-dev/carebook/internal/apperrors"
	"github.com/carebook-dev/carebook/internal/models"
	"github.com/carebook-dev/carebook/internal/policy"
	"github.com/carebook-dev/carebook/internal/repositories"
)

type PatientService struct {
	patients repositories.PatientRepository
	users    repositories.UserRepository
}

func NewPatientService(
	patients repositories.PatientRepository,
	users repositories.UserRepository,
) *PatientService {
	return &PatientService{
		patients: patients,
		users:    users,
	}
}

type PatientInput struct {
	FirstName string
	LastName  string
	BirthDate time.Time
	UserID    uint
}

func (s *PatientService) List() ([]PatientDTO, error) {
	patients, err := s.patients.FindAll()
	if err != nil {
		return nil, err
	}

	dtos := make([]PatientDTO, 0, len(patients))
	for i := range patients {
		dtos = append(dtos, mapPatient(&patients[i]))
	}

	return dtos, nil
}

// GetByID is owner-or-admin scoped: a non-admin caller may only read their
// own profile, and a denial surfaces as Forbidden, not as an empty result.
func (s *PatientService) GetByID(caller Caller, id uint) (*PatientDTO, error) {
	patient, err := s.patients.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		return nil, apperrors.NotFound("patient", id)
	}

	callerPatientID, err := s.callerPatientID(caller)
	if err != nil {
		return nil, err
	}

	if policy.Authorize(caller.IsAdmin, callerPatientID, patient.ID) == policy.Deny {
		return nil, apperrors.Forbiddenf("you are not allowed to access this patient profile")
	}

	dto := mapPatient(patient)
	return &dto, nil
}

func (s *PatientService) GetByUserID(userID uint) (*PatientDTO, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		return nil, apperrors.NotFoundf("no patient profile found for user with ID %d", userID)
	}

	dto := mapPatient(patient)
	return &dto, nil
}

// Create provisions a standalone profile for an existing user; registration
// is the other path that creates one. A user can only ever hold one.
func (s *PatientService) Create(input PatientInput) (*PatientDTO, error) {
	user, err := s.users.FindByID(input.UserID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperrors.NotFound("user", input.UserID)
	}

	existing, err := s.patients.FindByUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, apperrors.Conflictf(
			"a patient profile already exists for user with ID %d", input.UserID,
		)
	}

	patient := models.Patient{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.BirthDate,
		UserID:    input.UserID,
	}

	if err := s.patients.Create(&patient); err != nil {
		return nil, err
	}

	dto := mapPatient(&patient)
	return &dto, nil
}

func (s *PatientService) Update(caller Caller, id uint, input PatientInput) (*PatientDTO, error) {
	patient, err := s.patients.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		return nil, apperrors.NotFound("patient", id)
	}

	callerPatientID, err := s.callerPatientID(caller)
	if err != nil {
		return nil, err
	}

	if policy.Authorize(caller.IsAdmin, callerPatientID, patient.ID) == policy.Deny {
		return nil, apperrors.Forbiddenf("you are not allowed to update this patient profile")
	}

	patient.FirstName = input.FirstName
	patient.LastName = input.LastName
	patient.BirthDate = input.BirthDate

	if err := s.patients.Save(patient); err != nil {
		return nil, err
	}

	dto := mapPatient(patient)
	return &dto, nil
}

// Delete refuses to remove a patient with existing appointments.
func (s *PatientService) Delete(id uint) error {
	patient, err := s.patients.FindByID(id)
	if err != nil {
		return err
	}

	if patient == nil {
		return apperrors.NotFound("patient", id)
	}

	hasAppointments, err := s.patients.HasAppointments(id)
	if err != nil {
		return err
	}

	if hasAppointments {
		return apperrors.Conflictf("cannot delete patient with existing appointments")
	}

	return s.patients.Delete(patient)
}

// callerPatientID resolves the caller's own profile for ownership checks.
// Admins skip the resolve; a missing profile just means nothing is owned.
func (s *PatientService) callerPatientID(caller Caller) (uint, error) {
	if caller.IsAdmin {
		return 0, nil
	}

	patient, err := s.patients.FindByUserID(caller.UserID)
	if err != nil {
		return 0, err
	}

	if patient == nil {
		return 0, nil
	}

	return patient.ID, nil
}
