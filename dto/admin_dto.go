package dto

import "github.com/sankalpa008/lost-and-found/models"

type CreateUserInput struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role" binding:"required"`
}

// UserWithItemCount is the admin user listing row.
type UserWithItemCount struct {
	models.User
	ItemCount int64 `json:"itemCount"`
}
