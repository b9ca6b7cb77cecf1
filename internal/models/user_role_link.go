package models

import "gorm.io/gorm"

// UserRoleLink rows carry their own surrogate key and only plain indexes on
// user_id/role_id. Duplicate links for the same pair are legal and must not
// be collapsed into a unique index.
type UserRoleLink struct {
	gorm.Model

	UserID uint `gorm:"not null;index"`
	RoleID uint `gorm:"not null;index"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Role Role `gorm:"foreignKey:RoleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
