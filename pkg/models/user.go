package models

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEngineer   Role = "engineer"
	RoleTechnician Role = "technician"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEngineer || r == RoleTechnician
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:technician" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
