package models

import "gorm.io/gorm"

type Role struct {
	gorm.Model

	Name        string `gorm:"not null;index"`
	Description string

	// Relationships
	UserLinks []UserRoleLink `gorm:"foreignKey:RoleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
