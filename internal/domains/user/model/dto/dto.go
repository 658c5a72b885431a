package dto

import (
	"github.com/google/uuid"

	"manege/internal/domains/user/model"
	"manege/shared"
	gDto "manege/shared/dto"
	gModel "manege/shared/model"
	"manege/shared/timezone"
)

type CreateUserRequest struct {
	Email    string `json:"email"     validate:"required,email,max=100"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	Role     string `json:"role"      validate:"required,oneof=superadmin admin member"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	Active   *bool  `json:"active"    validate:"omitempty"`
}

func (c *CreateUserRequest) ToModel(user, hashedPassword string) model.User {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	var fullName, phone *string
	if c.FullName != "" {
		fullName = &c.FullName
	}

	if c.Phone != "" {
		phone = &c.Phone
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    c.Email,
		Password: hashedPassword,
		Role:     c.Role,
		FullName: fullName,
		Phone:    phone,
		Active:   active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	Role     string `db:"role"      json:"role"      validate:"omitempty,oneof=superadmin admin member"`
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
	Active   *bool  `db:"active"    json:"active"    validate:"omitempty"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Active   bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
