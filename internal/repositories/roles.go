package repositories

import (
	"errors"

	"github.com/carebook-dev/carebook/internal/models"
	"gorm.io/gorm"
)

type gormRoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &gormRoleRepository{db: db}
}

func (r *gormRoleRepository) FindByName(name string) (*models.Role, error) {
	var role models.Role

	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &role, nil
}

func (r *gormRoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

func (r *gormRoleRepository) CreateLink(userID, roleID uint) error {
	link := models.UserRoleLink{
		UserID: userID,
		RoleID: roleID,
	}

	return r.db.Create(&link).Error
}

func (r *gormRoleRepository) RolesForUser(userID uint) ([]string, error) {
	var links []models.UserRoleLink

	err := r.db.Preload("Role").Where("user_id = ?", userID).Find(&links).Error
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(links))

	for _, link := range links {
		names = append(names, link.Role.Name)
	}

	return names, nil
}

func (r *gormRoleRepository) UserHasRole(userID uint, roleName string) (bool, error) {
	var count int64

	err := r.db.Model(&models.UserRoleLink{}).
		Joins("JOIN roles ON roles.id = user_role_links.role_id").
		Where("user_role_links.user_id = ? AND roles.name = ?", userID, roleName).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
