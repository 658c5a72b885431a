package dto

import (
	"github.com/google/uuid"

	"manege/internal/domains/resource/model"
	"manege/shared"
	gDto "manege/shared/dto"
	gModel "manege/shared/model"
	"manege/shared/timezone"
)

type CreateResourceRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Code     string `json:"code"     validate:"required,max=50,lowercase"`
	Location string `json:"location" validate:"omitempty,max=100"`
	Capacity int    `json:"capacity" validate:"omitempty,min=0"`
	Indoor   *bool  `json:"indoor"   validate:"omitempty"`
	Active   *bool  `json:"active"   validate:"omitempty"`
}

func (c *CreateResourceRequest) ToModel(user string) model.Resource {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	indoor := false
	if c.Indoor != nil {
		indoor = *c.Indoor
	}

	return model.Resource{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Code:     c.Code,
		Location: c.Location,
		Capacity: c.Capacity,
		Indoor:   indoor,
		Active:   active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateResourceRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Location string `db:"location" json:"location" validate:"omitempty,max=100"`
	Capacity *int   `db:"capacity" json:"capacity" validate:"omitempty,min=0"`
	Indoor   *bool  `db:"indoor"   json:"indoor"   validate:"omitempty"`
	Active   *bool  `db:"active"   json:"active"   validate:"omitempty"`
}

type ResourceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	Indoor   bool   `json:"indoor"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(model model.Resource) {
	r.ID = model.ID
	r.Name = model.Name
	r.Code = model.Code
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.Indoor = model.Indoor
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Resources = make([]ResourceResponse, len(models))
	for i, mod := range models {
		r.Resources[i].FromModel(mod)
	}
}
