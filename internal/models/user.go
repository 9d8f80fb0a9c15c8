package models

import "time"

type Role string

const (
	RoleOwner    Role = "owner"
	RoleStylist  Role = "stylist"
	RoleCustomer Role = "customer"
	RoleGuest    Role = "guest"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleStylist, RoleCustomer, RoleGuest:
		return true
	}
	return false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100" json:"full_name"`
	Role         Role   `gorm:"size:20;default:'customer'" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
