package services

import (
	"errors"
	"testing"
	"time"

	"github.com/carebook-dev/carebook/internal/apperrors"
	"github.com/carebook-dev/carebook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

type appointmentFixture struct {
	service      *AppointmentService
	appointments *MockAppointmentRepository
	doctors      *MockDoctorRepository
	patients     *MockPatientRepository
}

// Fixture: user 100 owns patient 10; doctor 5 works at hospital 1.
func newAppointmentFixture() *appointmentFixture {
	appointments := &MockAppointmentRepository{}
	doctors := &MockDoctorRepository{
		FindByIDFunc: func(id uint) (*models.Doctor, error) {
			if id != 5 {
				return nil, nil
			}
			return &models.Doctor{
				Model:     gorm.Model{ID: 5},
				FirstName: "Gregory", LastName: "House",
				Specialty: "Diagnostics", HospitalID: 1,
			}, nil
		},
	}
	patients := &MockPatientRepository{
		FindByUserIDFunc: func(userID uint) (*models.Patient, error) {
			if userID != 100 {
				return nil, nil
			}
			return &models.Patient{
				Model:     gorm.Model{ID: 10},
				FirstName: "Jane", LastName: "Doe",
				UserID: 100,
			}, nil
		},
	}

	service := NewAppointmentService(appointments, doctors, patients)
	service.now = func() time.Time { return testNow }

	return &appointmentFixture{
		service:      service,
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
	}
}

func storedAppointment(id uint) *models.Appointment {
	return &models.Appointment{
		Model:           gorm.Model{ID: id},
		DoctorID:        5,
		PatientID:       10,
		AppointmentDate: testNow.Add(3 * day),
		Notes:           "checkup",
		Doctor: models.Doctor{
			Model:     gorm.Model{ID: 5},
			FirstName: "Gregory", LastName: "House",
		},
		Patient: models.Patient{
			Model:     gorm.Model{ID: 10},
			FirstName: "Jane", LastName: "Doe",
			UserID: 100,
		},
	}
}

func TestCreateAppointment(t *testing.T) {
	f := newAppointmentFixture()
	f.appointments.FindByIDFunc = func(id uint) (*models.Appointment, error) {
		return storedAppointment(id), nil
	}

	dto, err := f.service.Create(100, CreateAppointmentInput{
		DoctorID:        5,
		AppointmentDate: testNow.Add(3 * day),
		Notes:           "checkup",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), dto.DoctorID)
	assert.Equal(t, "Gregory House", dto.DoctorFullName)
	assert.Equal(t, uint(10), dto.PatientID)
	assert.Equal(t, "Jane Doe", dto.PatientFullName)
	assert.Equal(t, "March", dto.AppointmentMonth)
	assert.Equal(t, 2025, dto.AppointmentYear)
}

func TestCreateAppointmentWithoutProfile(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.service.Create(999, CreateAppointmentInput{
		DoctorID:        5,
		AppointmentDate: testNow.Add(3 * day),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "no patient profile")
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.service.Create(100, CreateAppointmentInput{
		DoctorID:        77,
		AppointmentDate: testNow.Add(3 * day),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "doctor")
	assert.Contains(t, err.Error(), "77")
}

func TestCreateAppointmentConflictWindow(t *testing.T) {
	tests := []struct {
		name         string
		existingDate time.Time
		wantConflict bool
	}{
		{"existing three days ahead", testNow.Add(3 * day), true},
		{"existing five days ago", testNow.Add(-5 * day), true},
		{"existing exactly seven days ahead", testNow.Add(7 * day), true},
		{"existing eight days ahead", testNow.Add(8 * day), false},
		{"existing eight days ago", testNow.Add(-8 * day), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppointmentFixture()
			f.appointments.DatesForPairFunc = func(patientID, doctorID uint) ([]time.Time, error) {
				assert.Equal(t, uint(10), patientID)
				assert.Equal(t, uint(5), doctorID)
				return []time.Time{tt.existingDate}, nil
			}
			f.appointments.FindByIDFunc = func(id uint) (*models.Appointment, error) {
				return storedAppointment(id), nil
			}

			_, err := f.service.Create(100, CreateAppointmentInput{
				DoctorID:        5,
				AppointmentDate: testNow.Add(30 * day),
			})

			if tt.wantConflict {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrConflict))
				assert.Contains(t, err.Error(), "Gregory House")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// The window is measured from now, never from the proposed date: a booking
// far outside the window of the proposed date still conflicts when the
// existing one sits near the current instant.
func TestCreateAppointmentWindowAnchoredToNow(t *testing.T) {
	f := newAppointmentFixture()
	f.appointments.DatesForPairFunc = func(patientID, doctorID uint) ([]time.Time, error) {
		return []time.Time{testNow.Add(-6 * day)}, nil
	}

	_, err := f.service.Create(100, CreateAppointmentInput{
		DoctorID:        5,
		AppointmentDate: testNow.Add(60 * day),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestGetAppointmentByID(t *testing.T) {
	f := newAppointmentFixture()
	f.appointments.FindByIDFunc = func(id uint) (*models.Appointment, error) {
		if id != 1 {
			return nil, nil
		}
		return storedAppointment(1), nil
	}

	t.Run("owner can read", func(t *testing.T) {
		dto, err := f.service.GetByID(Caller{UserID: 100}, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), dto.ID)
	})

	t.Run("admin can read", func(t *testing.T) {
		dto, err := f.service.GetByID(Caller{UserID: 1, IsAdmin: true}, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), dto.ID)
	})

	t.Run("non-owner is forbidden, not filtered", func(t *testing.T) {
		f.patients.FindByUserIDFunc = func(userID uint) (*models.Patient, error) {
			return &models.Patient{Model: gorm.Model{ID: 99}, UserID: userID}, nil
		}
		defer func() { f.patients.FindByUserIDFunc = nil }()

		_, err := f.service.GetByID(Caller{UserID: 200}, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("missing id is not found", func(t *testing.T) {
		_, err := f.service.GetByID(Caller{UserID: 100}, 42)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		assert.Contains(t, err.Error(), "42")
	})
}

// Updating never re-runs the conflict window, even when the pair has other
// bookings near now.
func TestUpdateAppointmentSkipsConflictCheck(t *testing.T) {
	f := newAppointmentFixture()
	f.appointments.FindByIDFunc = func(id uint) (*models.Appointment, error) {
		return storedAppointment(1), nil
	}
	f.appointments.DatesForPairFunc = func(patientID, doctorID uint) ([]time.Time, error) {
		t.Fatal("conflict window must not be evaluated on update")
		return nil, nil
	}

	dto, err := f.service.Update(Caller{UserID: 100}, 1, UpdateAppointmentInput{
		AppointmentDate: testNow.Add(2 * day),
		Notes:           "moved up",
	})

	require.NoError(t, err)
	assert.Equal(t, testNow.Add(2*day), dto.AppointmentDate)
	assert.Equal(t, "moved up", dto.Notes)
}

func TestUpdateAppointmentForbiddenForNonOwner(t *testing.T) {
	f := newAppointmentFixture()
	f.appointments.FindByIDFunc = func(id uint) (*models.Appointment, error) {
		return storedAppointment(1), nil
	}
	f.patients.FindByUserIDFunc = func(userID uint) (*models.Patient, error) {
		return &models.Patient{Model: gorm.Model{ID: 99}, UserID: userID}, nil
	}

	_, err := f.service.Update(Caller{UserID: 200}, 1, UpdateAppointmentInput{
		AppointmentDate: testNow.Add(2 * day),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointments.FindByIDFunc = func(id uint) (*models.Appointment, error) {
			return storedAppointment(1), nil
		}

		require.NoError(t, f.service.Delete(Caller{UserID: 100}, 1))
		assert.Equal(t, []uint{1}, f.appointments.Deleted)
	})

	t.Run("admin can delete without a profile", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointments.FindByIDFunc = func(id uint) (*models.Appointment, error) {
			return storedAppointment(1), nil
		}

		require.NoError(t, f.service.Delete(Caller{UserID: 1, IsAdmin: true}, 1))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointments.FindByIDFunc = func(id uint) (*models.Appointment, error) {
			return storedAppointment(1), nil
		}
		f.patients.FindByUserIDFunc = func(userID uint) (*models.Patient, error) {
			return &models.Patient{Model: gorm.Model{ID: 99}, UserID: userID}, nil
		}

		err := f.service.Delete(Caller{UserID: 200}, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
		assert.Empty(t, f.appointments.Deleted)
	})
}

func TestListForUser(t *testing.T) {
	f := newAppointmentFixture()
	f.appointments.FindByPatientFunc = func(patientID uint) ([]models.Appointment, error) {
		assert.Equal(t, uint(10), patientID)
		return []models.Appointment{*storedAppointment(1)}, nil
	}

	dtos, err := f.service.ListForUser(100)
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "Jane Doe", dtos[0].PatientFullName)
}

func TestListForUserWithoutProfile(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.service.ListForUser(999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "no patient profile")
}
