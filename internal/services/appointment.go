package services

import (
	"time"

	"github.com/carebook-dev/carebook/internal/apperrors"
	"github.com/carebook-dev/carebook/internal/models"
	"github.com/carebook-dev/carebook/internal/policy"
	"github.com/carebook-dev/carebook/internal/repositories"
	"github.com/carebook-dev/carebook/internal/rules"
)

type AppointmentService struct {
	appointments repositories.AppointmentRepository
	doctors      repositories.DoctorRepository
	patients     repositories.PatientRepository

	// now is the clock the conflict window is anchored to.
	now func() time.Time
}

func NewAppointmentService(
	appointments repositories.AppointmentRepository,
	doctors repositories.DoctorRepository,
	patients repositories.PatientRepository,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
		now:          time.Now,
	}
}

type CreateAppointmentInput struct {
	DoctorID        uint
	AppointmentDate time.Time
	Notes           string
}

type UpdateAppointmentInput struct {
	AppointmentDate time.Time
	Notes           string
}

func (s *AppointmentService) List() ([]AppointmentDTO, error) {
	appointments, err := s.appointments.FindAll()
	if err != nil {
		return nil, err
	}

	return mapAppointments(appointments), nil
}

// GetByID loads first and authorizes second, so a non-owner learns the
// appointment exists but not its content: NotFound and Forbidden stay
// distinguishable.
func (s *AppointmentService) GetByID(caller Caller, id uint) (*AppointmentDTO, error) {
	appointment, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, err
	}

	if appointment == nil {
		return nil, apperrors.NotFound("appointment", id)
	}

	callerPatientID, err := s.resolvePatientID(caller)
	if err != nil {
		return nil, err
	}

	if policy.Authorize(caller.IsAdmin, callerPatientID, appointment.PatientID) == policy.Deny {
		return nil, apperrors.Forbiddenf("you are not allowed to access this appointment")
	}

	dto := mapAppointment(appointment)
	return &dto, nil
}

func (s *AppointmentService) ListByDoctor(doctorID uint) ([]AppointmentDTO, error) {
	appointments, err := s.appointments.FindByDoctor(doctorID)
	if err != nil {
		return nil, err
	}

	return mapAppointments(appointments), nil
}

func (s *AppointmentService) ListByPatient(patientID uint) ([]AppointmentDTO, error) {
	appointments, err := s.appointments.FindByPatient(patientID)
	if err != nil {
		return nil, err
	}

	return mapAppointments(appointments), nil
}

// ListForUser resolves the caller's patient profile and returns its bookings.
func (s *AppointmentService) ListForUser(userID uint) ([]AppointmentDTO, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		return nil, apperrors.NotFoundf("no patient profile found for this user")
	}

	appointments, err := s.appointments.FindByPatient(patient.ID)
	if err != nil {
		return nil, err
	}

	return mapAppointments(appointments), nil
}

// Create books an appointment for the caller's own patient profile. The
// conflict check compares the pair's existing bookings against the current
// instant, not against the proposed date, and only runs here: updates never
// re-validate the window.
func (s *AppointmentService) Create(userID uint, input CreateAppointmentInput) (*AppointmentDTO, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		return nil, apperrors.NotFoundf("no patient profile found for this user")
	}

	doctor, err := s.doctors.FindByID(input.DoctorID)
	if err != nil {
		return nil, err
	}

	if doctor == nil {
		return nil, apperrors.NotFound("doctor", input.DoctorID)
	}

	existingDates, err := s.appointments.DatesForPair(patient.ID, input.DoctorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, existing := range existingDates {
		if rules.InConflictWindow(existing, now) {
			return nil, apperrors.Conflictf(
				"you already have an appointment with Dr. %s %s within a week",
				doctor.FirstName, doctor.LastName,
			)
		}
	}

	appointment := models.Appointment{
		DoctorID:        input.DoctorID,
		PatientID:       patient.ID,
		AppointmentDate: input.AppointmentDate,
		Notes:           input.Notes,
	}

	if err := s.appointments.Create(&appointment); err != nil {
		return nil, err
	}

	created, err := s.appointments.FindByID(appointment.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apperrors.NotFound("appointment", appointment.ID)
	}

	dto := mapAppointment(created)
	return &dto, nil
}

func (s *AppointmentService) Update(caller Caller, id uint, input UpdateAppointmentInput) (*AppointmentDTO, error) {
	appointment, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, err
	}

	if appointment == nil {
		return nil, apperrors.NotFound("appointment", id)
	}

	callerPatientID, err := s.resolvePatientID(caller)
	if err != nil {
		return nil, err
	}

	if policy.Authorize(caller.IsAdmin, callerPatientID, appointment.PatientID) == policy.Deny {
		return nil, apperrors.Forbiddenf("you are not allowed to update this appointment")
	}

	appointment.AppointmentDate = input.AppointmentDate
	appointment.Notes = input.Notes

	if err := s.appointments.Save(appointment); err != nil {
		return nil, err
	}

	dto := mapAppointment(appointment)
	return &dto, nil
}

func (s *AppointmentService) Delete(caller Caller, id uint) error {
	appointment, err := s.appointments.FindByID(id)
	if err != nil {
		return err
	}

	if appointment == nil {
		return apperrors.NotFound("appointment", id)
	}

	callerPatientID, err := s.resolvePatientID(caller)
	if err != nil {
		return err
	}

	if policy.Authorize(caller.IsAdmin, callerPatientID, appointment.PatientID) == policy.Deny {
		return apperrors.Forbiddenf("you are not allowed to delete this appointment")
	}

	return s.appointments.Delete(appointment)
}

// resolvePatientID is the two-step ownership resolve (user -> patient).
// Non-admin callers without a profile fail here; admins never need one.
func (s *AppointmentService) resolvePatientID(caller Caller) (uint, error) {
	if caller.IsAdmin {
		return 0, nil
	}

	patient, err := s.patients.FindByUserID(caller.UserID)
	if err != nil {
		return 0, err
	}

	if patient == nil {
		return 0, apperrors.NotFoundf("no patient profile found for this user")
	}

	return patient.ID, nil
}

func mapAppointments(appointments []models.Appointment) []AppointmentDTO {
	dtos := make([]AppointmentDTO, 0, len(appointments))
	for i := range appointments {
		dtos = append(dtos, mapAppointment(&appointments[i]))
	}
	return dtos
}
