package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"manege/internal/domains/photo/model"
	"manege/shared"
	gDto "manege/shared/dto"
	gModel "manege/shared/model"
	"manege/shared/timezone"
)

type CreatePhotoRequest struct {
	ResourceID string                `json:"resource_id" validate:"required"`
	Title      string                `json:"title"       validate:"omitempty,max=100"`
	Image      *multipart.FileHeader `json:"image"       swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

func (c *CreatePhotoRequest) ToModel(user, url string) model.Photo {
	return model.Photo{
		ID:         uuid.NewString(),
		ResourceID: c.ResourceID,
		Title:      c.Title,
		URL:        url,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PhotoResponse struct {
	ID         string `json:"id"`
	ResourceID string `json:"resource_id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	gDto.Metadata
}

func (r *PhotoResponse) FromModel(model model.Photo) {
	r.ID = model.ID
	r.ResourceID = model.ResourceID
	r.Title = model.Title
	r.URL = model.URL
	r.Metadata.FromModel(model.Metadata)
}

type GetPhotosResponse struct {
	Photos    []PhotoResponse `json:"photos"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetPhotosResponse) FromModels(models []model.Photo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Photos = make([]PhotoResponse, len(models))
	for i, mod := range models {
		r.Photos[i].FromModel(mod)
	}
}
