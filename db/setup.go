package db

import (
	"os"

	"github.com/carebook-dev/carebook/internal/auth"
	"github.com/carebook-dev/carebook/internal/models"
	"github.com/carebook-dev/carebook/internal/types"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Role{},
		&models.UserRoleLink{},
		&models.Hospital{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedDefaults ensures the Admin and User roles exist and provisions the
// initial admin account with its role link. Idempotent across restarts.
func SeedDefaults() error {
	adminRole, err := ensureRole(types.RoleAdmin, "Administrator")
	if err != nil {
		return err
	}

	if _, err := ensureRole(types.RoleUser, "Regular User"); err != nil {
		return err
	}

	var admin models.User

	err = DB.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	hash, salt, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin = models.User{
		Username:     "admin",
		Email:        "admin@carebook.local",
		PasswordHash: hash,
		PasswordSalt: salt,
	}

	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	link := models.UserRoleLink{
		UserID: admin.ID,
		RoleID: adminRole.ID,
	}

	return DB.Create(&link).Error
}

func ensureRole(name, description string) (*models.Role, error) {
	var role models.Role

	err := DB.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	role = models.Role{Name: name, Description: description}

	if err := DB.Create(&role).Error; err != nil {
		return nil, err
	}

	return &role, nil
}
