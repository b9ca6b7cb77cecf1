package services

import (
	"time"

	"github.com/carebook-dev/carebook/internal/models"
	"github.com/carebook-dev/carebook/internal/repositories"
)

// Func-field mocks: tests set only the calls they care about; everything
// else answers "no rows".

var _ repositories.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	FindByIDFunc       func(id uint) (*models.User, error)
	FindByUsernameFunc func(username string) (*models.User, error)
	FindByEmailFunc    func(email string) (*models.User, error)
	CreateFunc         func(user *models.User) error
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(username)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, nil
}

func (m *MockUserRepository) Create(user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(user)
	}
	user.ID = 1
	return nil
}

var _ repositories.RoleRepository = (*MockRoleRepository)(nil)

type MockRoleRepository struct {
	FindByNameFunc   func(name string) (*models.Role, error)
	CreateFunc       func(role *models.Role) error
	CreateLinkFunc   func(userID, roleID uint) error
	RolesForUserFunc func(userID uint) ([]string, error)
	UserHasRoleFunc  func(userID uint, roleName string) (bool, error)

	CreatedLinks [][2]uint
}

func (m *MockRoleRepository) FindByName(name string) (*models.Role, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(name)
	}
	return nil, nil
}

func (m *MockRoleRepository) Create(role *models.Role) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(role)
	}
	role.ID = 1
	return nil
}

func (m *MockRoleRepository) CreateLink(userID, roleID uint) error {
	m.CreatedLinks = append(m.CreatedLinks, [2]uint{userID, roleID})
	if m.CreateLinkFunc != nil {
		return m.CreateLinkFunc(userID, roleID)
	}
	return nil
}

func (m *MockRoleRepository) RolesForUser(userID uint) ([]string, error) {
	if m.RolesForUserFunc != nil {
		return m.RolesForUserFunc(userID)
	}
	return nil, nil
}

func (m *MockRoleRepository) UserHasRole(userID uint, roleName string) (bool, error) {
	if m.UserHasRoleFunc != nil {
		return m.UserHasRoleFunc(userID, roleName)
	}
	return false, nil
}

var _ repositories.HospitalRepository = (*MockHospitalRepository)(nil)

type MockHospitalRepository struct {
	FindAllFunc    func() ([]models.Hospital, error)
	FindByIDFunc   func(id uint) (*models.Hospital, error)
	FindByCityFunc func(city string) ([]models.Hospital, error)
	CreateFunc     func(hospital *models.Hospital) error
	SaveFunc       func(hospital *models.Hospital) error
	DeleteFunc     func(hospital *models.Hospital) error
	HasDoctorsFunc func(hospitalID uint) (bool, error)

	Deleted []uint
}

func (m *MockHospitalRepository) FindAll() ([]models.Hospital, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *MockHospitalRepository) FindByID(id uint) (*models.Hospital, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *MockHospitalRepository) FindByCity(city string) ([]models.Hospital, error) {
	if m.FindByCityFunc != nil {
		return m.FindByCityFunc(city)
	}
	return nil, nil
}

func (m *MockHospitalRepository) Create(hospital *models.Hospital) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(hospital)
	}
	hospital.ID = 1
	return nil
}

func (m *MockHospitalRepository) Save(hospital *models.Hospital) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(hospital)
	}
	return nil
}

func (m *MockHospitalRepository) Delete(hospital *models.Hospital) error {
	m.Deleted = append(m.Deleted, hospital.ID)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(hospital)
	}
	return nil
}

func (m *MockHospitalRepository) HasDoctors(hospitalID uint) (bool, error) {
	if m.HasDoctorsFunc != nil {
		return m.HasDoctorsFunc(hospitalID)
	}
	return false, nil
}

var _ repositories.DoctorRepository = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	FindAllFunc         func() ([]models.Doctor, error)
	FindByIDFunc        func(id uint) (*models.Doctor, error)
	FindByHospitalFunc  func(hospitalID uint) ([]models.Doctor, error)
	FindBySpecialtyFunc func(specialty string) ([]models.Doctor, error)
	CreateFunc          func(doctor *models.Doctor) error
	SaveFunc            func(doctor *models.Doctor) error
	DeleteFunc          func(doctor *models.Doctor) error
	CountSpecialtyFunc  func(hospitalID uint, specialty string, excludeID uint) (int, error)
	HasAppointmentsFunc func(doctorID uint) (bool, error)

	Deleted []uint
}

func (m *MockDoctorRepository) FindAll() ([]models.Doctor, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindByID(id uint) (*models.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindByHospital(hospitalID uint) ([]models.Doctor, error) {
	if m.FindByHospitalFunc != nil {
		return m.FindByHospitalFunc(hospitalID)
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindBySpecialty(specialty string) ([]models.Doctor, error) {
	if m.FindBySpecialtyFunc != nil {
		return m.FindBySpecialtyFunc(specialty)
	}
	return nil, nil
}

func (m *MockDoctorRepository) Create(doctor *models.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(doctor)
	}
	doctor.ID = 1
	return nil
}

func (m *MockDoctorRepository) Save(doctor *models.Doctor) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(doctor)
	}
	return nil
}

func (m *MockDoctorRepository) Delete(doctor *models.Doctor) error {
	m.Deleted = append(m.Deleted, doctor.ID)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(doctor)
	}
	return nil
}

func (m *MockDoctorRepository) CountSpecialty(hospitalID uint, specialty string, excludeID uint) (int, error) {
	if m.CountSpecialtyFunc != nil {
		return m.CountSpecialtyFunc(hospitalID, specialty, excludeID)
	}
	return 0, nil
}

func (m *MockDoctorRepository) HasAppointments(doctorID uint) (bool, error) {
	if m.HasAppointmentsFunc != nil {
		return m.HasAppointmentsFunc(doctorID)
	}
	return false, nil
}

var _ repositories.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	FindAllFunc         func() ([]models.Patient, error)
	FindByIDFunc        func(id uint) (*models.Patient, error)
	FindByUserIDFunc    func(userID uint) (*models.Patient, error)
	CreateFunc          func(patient *models.Patient) error
	SaveFunc            func(patient *models.Patient) error
	DeleteFunc          func(patient *models.Patient) error
	HasAppointmentsFunc func(patientID uint) (bool, error)

	Deleted []uint
}

func (m *MockPatientRepository) FindAll() ([]models.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByID(id uint) (*models.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByUserID(userID uint) (*models.Patient, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(userID)
	}
	return nil, nil
}

func (m *MockPatientRepository) Create(patient *models.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(patient)
	}
	patient.ID = 1
	return nil
}

func (m *MockPatientRepository) Save(patient *models.Patient) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(patient)
	}
	return nil
}

func (m *MockPatientRepository) Delete(patient *models.Patient) error {
	m.Deleted = append(m.Deleted, patient.ID)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(patient)
	}
	return nil
}

func (m *MockPatientRepository) HasAppointments(patientID uint) (bool, error) {
	if m.HasAppointmentsFunc != nil {
		return m.HasAppointmentsFunc(patientID)
	}
	return false, nil
}

var _ repositories.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	FindAllFunc       func() ([]models.Appointment, error)
	FindByIDFunc      func(id uint) (*models.Appointment, error)
	FindByDoctorFunc  func(doctorID uint) ([]models.Appointment, error)
	FindByPatientFunc func(patientID uint) ([]models.Appointment, error)
	DatesForPairFunc  func(patientID, doctorID uint) ([]time.Time, error)
	CreateFunc        func(appointment *models.Appointment) error
	SaveFunc          func(appointment *models.Appointment) error
	DeleteFunc        func(appointment *models.Appointment) error

	Deleted []uint
}

func (m *MockAppointmentRepository) FindAll() ([]models.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByDoctor(doctorID uint) ([]models.Appointment, error) {
	if m.FindByDoctorFunc != nil {
		return m.FindByDoctorFunc(doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByPatient(patientID uint) ([]models.Appointment, error) {
	if m.FindByPatientFunc != nil {
		return m.FindByPatientFunc(patientID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) DatesForPair(patientID, doctorID uint) ([]time.Time, error) {
	if m.DatesForPairFunc != nil {
		return m.DatesForPairFunc(patientID, doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) Create(appointment *models.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(appointment)
	}
	appointment.ID = 1
	return nil
}

func (m *MockAppointmentRepository) Save(appointment *models.Appointment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) Delete(appointment *models.Appointment) error {
	m.Deleted = append(m.Deleted, appointment.ID)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(appointment)
	}
	return nil
}
