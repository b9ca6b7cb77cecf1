package services

import (
	"strings"
	"time"

	"github.com/carebook-dev/carebook/internal/apperrors"
	"github.com/carebook-dev/carebook/internal/auth"
	"github.com/carebook-dev/carebook/internal/models"
	"github.com/carebook-dev/carebook/internal/repositories"
	"github.com/carebook-dev/carebook/internal/types"
)

type AuthService struct {
	users    repositories.UserRepository
	roles    repositories.RoleRepository
	patients repositories.PatientRepository
}

func NewAuthService(
	users repositories.UserRepository,
	roles repositories.RoleRepository,
	patients repositories.PatientRepository,
) *AuthService {
	return &AuthService{
		users:    users,
		roles:    roles,
		patients: patients,
	}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	BirthDate time.Time
}

// Register creates the user, links the default User role and creates the 1:1
// patient profile, then issues a token.
func (s *AuthService) Register(input RegisterInput) (*AuthResponse, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflictf("username already exists")
	}

	existing, err = s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflictf("email already exists")
	}

	hash, salt, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	}

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	userRole, err := s.roles.FindByName(types.RoleUser)
	if err != nil {
		return nil, err
	}

	if userRole == nil {
		userRole = &models.Role{Name: types.RoleUser, Description: "Regular User"}
		if err := s.roles.Create(userRole); err != nil {
			return nil, err
		}
	}

	// Always a fresh link row; duplicates are tolerated by design.
	if err := s.roles.CreateLink(user.ID, userRole.ID); err != nil {
		return nil, err
	}

	patient := models.Patient{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.BirthDate,
		UserID:    user.ID,
	}

	if err := s.patients.Create(&patient); err != nil {
		return nil, err
	}

	roleNames := []string{userRole.Name}

	token, err := auth.GenerateJWT(user.ID, user.Username, roleNames)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User: UserDTO{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Roles:    roleNames,
		},
	}, nil
}

// Login verifies the password against the stored hash and salt and issues a
// token carrying the user's full role list. Failures never reveal whether
// the username or the password was wrong.
func (s *AuthService) Login(username, password string) (*AuthResponse, error) {
	user, err := s.users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	if user == nil || !auth.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return nil, apperrors.Validationf("username or password is incorrect")
	}

	roleNames, err := s.roles.RolesForUser(user.ID)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateJWT(user.ID, user.Username, roleNames)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User: UserDTO{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Roles:    roleNames,
		},
	}, nil
}

func (s *AuthService) CurrentUser(userID uint) (*UserDTO, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperrors.NotFound("user", userID)
	}

	roleNames, err := s.roles.RolesForUser(user.ID)
	if err != nil {
		return nil, err
	}

	return &UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    roleNames,
	}, nil
}

func (s *AuthService) IsAdmin(userID uint) (bool, error) {
	return s.roles.UserHasRole(userID, types.RoleAdmin)
}
