package model

import "manege/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldFullName = "full_name"
	FieldPhone    = "phone"
	FieldActive   = "active"
)

type User struct {
	ID       string  `db:"id"`
	Email    string  `db:"email"`
	Password string  `db:"password"`
	Role     string  `db:"role"`
	FullName *string `db:"full_name"`
	Phone    *string `db:"phone"`
	Active   bool    `db:"active"`
	model.Metadata
}
