package models

import "gorm.io/gorm"

// Role is a closed enumeration. Authorization checks compare against
// these constants only; new roles require touching every switch.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Email    string    `gorm:"not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `json:"name"`
	Role     Role      `gorm:"not null;default:'STUDENT'" json:"role"`
	Items    []Item    `json:"-"`
	Sessions []Session `json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
